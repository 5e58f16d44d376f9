package dynamodb

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/chris/regnet/pkg/ledger"
)

// Submit implements ledger.Ledger.
func (s *Store) Submit(ctx context.Context, fn func(tx ledger.Tx) error) error {
	return ledger.RetryConflicts(s.ConflictRetries, s.Logger, func() error {
		return s.submit(ctx, fn)
	})
}

func (s *Store) submit(ctx context.Context, fn func(tx ledger.Tx) error) error {
	// Version of every key at its first read; 0 means the key was absent.
	reads := make(map[ledger.Key]int64)
	var readOrder []ledger.Key

	read := func(ctx context.Context, key ledger.Key) ([]byte, error) {
		it, err := s.getItem(ctx, key)
		if err != nil {
			return nil, err
		}
		if _, seen := reads[key]; !seen {
			readOrder = append(readOrder, key)
			reads[key] = 0
			if it != nil {
				reads[key] = it.Version
			}
		}
		if it == nil {
			return nil, nil
		}
		return it.Value, nil
	}

	tx := ledger.NewBufferedTx(read, s.Clock(), ledger.CallerFrom(ctx))
	if err := fn(tx); err != nil {
		return err
	}

	writes := tx.Writes()
	if len(writes) == 0 {
		ledger.Deliver(ctx, s.Sink, s.Logger, tx)
		return nil
	}

	input, err := s.buildCommit(reads, readOrder, writes)
	if err != nil {
		return err
	}

	_, err = s.Client.TransactWriteItems(ctx, input)
	if err != nil {
		var txc *types.TransactionCanceledException
		if errors.As(err, &txc) {
			for _, reason := range txc.CancellationReasons {
				if reason.Code != nil && *reason.Code == "ConditionalCheckFailed" {
					return fmt.Errorf("%w: %d keys read by the transaction were modified", ledger.ErrConflict, len(reads))
				}
			}
		}
		return fmt.Errorf("failed to execute ledger transaction: %w", err)
	}

	ledger.Deliver(ctx, s.Sink, s.Logger, tx)
	return nil
}

// buildCommit turns the write set into Update actions and the keys that were
// only read into ConditionCheck actions.
func (s *Store) buildCommit(reads map[ledger.Key]int64, readOrder []ledger.Key, writes []ledger.Write) (*dynamodb.TransactWriteItemsInput, error) {
	written := make(map[ledger.Key]bool, len(writes))
	items := make([]types.TransactWriteItem, 0, len(writes)+len(readOrder))

	for _, w := range writes {
		written[w.Key] = true

		update := &types.Update{
			TableName:        aws.String(s.TableName),
			Key:              keyAttribute(w.Key),
			UpdateExpression: aws.String("SET #value = :value ADD #version :inc"),
			ExpressionAttributeNames: map[string]string{
				"#value":   "value",
				"#version": "version",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":value": &types.AttributeValueMemberB{Value: w.Value},
				":inc":   &types.AttributeValueMemberN{Value: "1"},
			},
		}
		if version, ok := reads[w.Key]; ok {
			cond, _, values := versionCondition(version)
			update.ConditionExpression = aws.String(cond)
			for k, v := range values {
				update.ExpressionAttributeValues[k] = v
			}
		}
		items = append(items, types.TransactWriteItem{Update: update})
	}

	for _, key := range readOrder {
		if written[key] {
			continue
		}
		cond, names, values := versionCondition(reads[key])
		check := &types.ConditionCheck{
			TableName:           aws.String(s.TableName),
			Key:                 keyAttribute(key),
			ConditionExpression: aws.String(cond),
		}
		if len(values) > 0 {
			check.ExpressionAttributeNames = names
			check.ExpressionAttributeValues = values
		}
		items = append(items, types.TransactWriteItem{ConditionCheck: check})
	}

	if len(items) > maxTransactItems {
		return nil, ErrTooManyWrites
	}

	return &dynamodb.TransactWriteItemsInput{TransactItems: items}, nil
}

// versionCondition expresses "unchanged since read". Version 0 stands for a
// key that was absent when read.
func versionCondition(version int64) (string, map[string]string, map[string]types.AttributeValue) {
	if version == 0 {
		return "attribute_not_exists(record_key)", nil, nil
	}
	return "#version = :version",
		map[string]string{"#version": "version"},
		map[string]types.AttributeValue{
			":version": &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", version)},
		}
}
