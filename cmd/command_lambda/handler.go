package main

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/aws/aws-lambda-go/events"
	"github.com/chris/regnet/pkg/ledger"
	"github.com/chris/regnet/pkg/registry"
)

// Command is the body of one queued registry invocation.
type Command struct {
	Function string           `json:"function"`
	Args     []string         `json:"args"`
	Caller   *ledger.Identity `json:"caller,omitempty"`
}

// Handler runs queued commands against a registry.
type Handler struct {
	Registry registry.Registry
	Logger   *slog.Logger
}

// HandleRequest processes a batch of SQS messages. Rejected transactions are
// logged and acknowledged; only conflicts and infrastructure failures are
// reported back so SQS redelivers them.
func (h *Handler) HandleRequest(ctx context.Context, sqsEvent events.SQSEvent) (events.SQSEventResponse, error) {
	var resp events.SQSEventResponse

	for _, message := range sqsEvent.Records {
		logger := h.Logger.With("message_id", message.MessageId)

		var cmd Command
		if err := json.Unmarshal([]byte(message.Body), &cmd); err != nil {
			// Redelivery cannot fix a malformed body.
			logger.Error("failed to unmarshal command", "error", err)
			continue
		}

		cctx := ctx
		if cmd.Caller != nil {
			cctx = ledger.WithCaller(ctx, *cmd.Caller)
		}

		if _, err := registry.Invoke(cctx, h.Registry, cmd.Function, cmd.Args); err != nil {
			if retryable(err) {
				logger.Error("command failed, will retry", "function", cmd.Function, "error", err)
				resp.BatchItemFailures = append(resp.BatchItemFailures, events.SQSBatchItemFailure{ItemIdentifier: message.MessageId})
				continue
			}
			logger.Warn("command rejected", "function", cmd.Function, "error", err)
			continue
		}

		logger.Info("command committed", "function", cmd.Function)
	}

	return resp, nil
}

func retryable(err error) bool {
	if errors.Is(err, ledger.ErrConflict) {
		return true
	}
	for _, business := range []error{
		registry.ErrNotFound,
		registry.ErrUnauthorized,
		registry.ErrInvalidTransaction,
		registry.ErrDataCorruption,
		registry.ErrUnknownFunction,
	} {
		if errors.Is(err, business) {
			return false
		}
	}
	return true
}
