package ledger

import (
	"errors"
	"log/slog"
)

// DefaultConflictRetries is how many times the optimistic backends re-run a
// transaction that lost a race. One re-run lets the loser of a two-way race
// observe the winner's commit and fail on its own preconditions.
const DefaultConflictRetries = 1

// RetryConflicts calls attempt, calling it again up to retries more times
// while it fails with ErrConflict. attempt must start from fresh reads.
func RetryConflicts(retries int, logger *slog.Logger, attempt func() error) error {
	err := attempt()
	for i := 0; i < retries && errors.Is(err, ErrConflict); i++ {
		if logger == nil {
			logger = slog.Default()
		}
		logger.Info("re-running transaction after conflict", slog.Int("attempt", i+2))
		err = attempt()
	}
	return err
}
