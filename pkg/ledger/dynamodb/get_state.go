package dynamodb

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/chris/regnet/pkg/ledger"
)

// getItem reads one record with a strongly consistent read. It returns nil
// if the key is absent.
func (s *Store) getItem(ctx context.Context, key ledger.Key) (*item, error) {
	input := &dynamodb.GetItemInput{
		TableName:      aws.String(s.TableName),
		Key:            keyAttribute(key),
		ConsistentRead: aws.Bool(true),
	}

	result, err := s.Client.GetItem(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to get %s from DynamoDB: %w", key, err)
	}

	if result.Item == nil {
		return nil, nil
	}

	var it item
	if err := attributevalue.UnmarshalMap(result.Item, &it); err != nil {
		return nil, fmt.Errorf("failed to unmarshal ledger item %s: %w", key, err)
	}

	return &it, nil
}

// Evaluate implements ledger.Ledger. Each read is strongly consistent on its
// own; the view is not a cross-key snapshot.
func (s *Store) Evaluate(ctx context.Context, fn func(tx ledger.Tx) error) error {
	read := func(ctx context.Context, key ledger.Key) ([]byte, error) {
		it, err := s.getItem(ctx, key)
		if err != nil || it == nil {
			return nil, err
		}
		return it.Value, nil
	}
	return fn(ledger.NewBufferedTx(read, s.Clock(), ledger.CallerFrom(ctx)))
}

func keyAttribute(key ledger.Key) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"record_key": &types.AttributeValueMemberS{Value: string(key)},
	}
}
