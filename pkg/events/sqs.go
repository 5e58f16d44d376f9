package events

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
	"github.com/chris/regnet/pkg/ledger"
)

//go:generate go run github.com/vektra/mockery/v2 --name SQSAPI --output ./mocks --outpkg mocks

// SQSAPI is the subset of the SQS client used by SQSPublisher.
type SQSAPI interface {
	SendMessage(ctx context.Context, params *sqs.SendMessageInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageOutput, error)
}

// SQSPublisher sends every event to an SQS queue.
type SQSPublisher struct {
	Client   SQSAPI
	QueueURL string
}

// NewSQSPublisher creates a new SQSPublisher.
func NewSQSPublisher(client SQSAPI, queueURL string) *SQSPublisher {
	return &SQSPublisher{
		Client:   client,
		QueueURL: queueURL,
	}
}

// Make sure we conform to the interface
var _ ledger.EventSink = (*SQSPublisher)(nil)

// Publish sends the event payload as the message body. The event name and
// ID travel as message attributes.
func (p *SQSPublisher) Publish(ctx context.Context, event ledger.Event) error {
	attrs := map[string]types.MessageAttributeValue{
		"event": {
			DataType:    aws.String("String"),
			StringValue: aws.String(event.Name),
		},
	}
	if id := eventID(event.Payload); id != "" {
		attrs["event_id"] = types.MessageAttributeValue{
			DataType:    aws.String("String"),
			StringValue: aws.String(id),
		}
	}

	_, err := p.Client.SendMessage(ctx, &sqs.SendMessageInput{
		QueueUrl:          aws.String(p.QueueURL),
		MessageBody:       aws.String(string(event.Payload)),
		MessageAttributes: attrs,
	})
	if err != nil {
		return fmt.Errorf("failed to send %s event to SQS: %w", event.Name, err)
	}

	return nil
}
