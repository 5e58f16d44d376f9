// Package dynamodb implements the ledger on a single DynamoDB table.
//
// Every item carries a version counter. A transaction remembers the version
// of each key it reads and commits with one TransactWriteItems call whose
// conditions re-check those versions, so a concurrent change to anything the
// transaction looked at cancels the whole commit.
package dynamodb

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/chris/regnet/pkg/ledger"
)

// maxTransactItems is the DynamoDB limit on actions per TransactWriteItems.
const maxTransactItems = 100

//go:generate go run github.com/vektra/mockery/v2 --name DynamoDBAPI --output ./mocks --outpkg mocks

// DynamoDBAPI is the subset of the DynamoDB client used by the store.
type DynamoDBAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	TransactWriteItems(ctx context.Context, params *dynamodb.TransactWriteItemsInput, optFns ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error)
}

// Store implements ledger.Ledger using AWS DynamoDB.
type Store struct {
	Client    DynamoDBAPI
	TableName string
	Clock     ledger.Clock
	Sink      ledger.EventSink
	Logger    *slog.Logger

	// ConflictRetries bounds how often Submit re-runs a transaction whose
	// commit was cancelled by a concurrent change.
	ConflictRetries int
}

// New creates a new Store.
func New(client DynamoDBAPI, tableName string, sink ledger.EventSink, logger *slog.Logger) *Store {
	return &Store{
		Client:          client,
		TableName:       tableName,
		Clock:           ledger.SystemClock,
		Sink:            sink,
		Logger:          logger,
		ConflictRetries: ledger.DefaultConflictRetries,
	}
}

// Make sure we conform to the interface
var _ ledger.Ledger = (*Store)(nil)

// item is the stored shape of one ledger record.
type item struct {
	RecordKey string `dynamodbav:"record_key"`
	Value     []byte `dynamodbav:"value"`
	Version   int64  `dynamodbav:"version"`
}

// ErrTooManyWrites is returned when a transaction touches more keys than one
// TransactWriteItems call can carry.
var ErrTooManyWrites = fmt.Errorf("transaction touches more than %d keys", maxTransactItems)
