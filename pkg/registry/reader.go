package registry

import (
	"context"
	"log/slog"

	"github.com/chris/regnet/pkg/ledger"
	"github.com/chris/regnet/pkg/models"
)

// reader holds what both contracts share: the ledger, logging and the
// read-only views.
type reader struct {
	Ledger ledger.Ledger
	Logger *slog.Logger
}

func (r *reader) log() *slog.Logger {
	if r.Logger == nil {
		return slog.Default()
	}
	return r.Logger
}

// submit runs fn as one ledger transaction and logs the outcome.
func (r *reader) submit(ctx context.Context, op string, fn func(tx ledger.Tx) error) error {
	caller := ledger.CallerFrom(ctx)
	if err := r.Ledger.Submit(ctx, fn); err != nil {
		r.log().Warn("transaction rejected",
			slog.String("op", op),
			slog.String("caller", caller.ID),
			slog.String("error", err.Error()),
		)
		return err
	}
	r.log().Info("transaction committed",
		slog.String("op", op),
		slog.String("caller", caller.ID),
	)
	return nil
}

// ViewUser returns the approved user identified by name and ssn.
func (r *reader) ViewUser(ctx context.Context, name, ssn string) (*models.User, error) {
	key, err := userKey(name, ssn)
	if err != nil {
		return nil, err
	}

	var user *models.User
	err = r.Ledger.Evaluate(ctx, func(tx ledger.Tx) error {
		user, err = loadUser(ctx, tx, key, "no matching user found")
		return err
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

// ViewProperty returns the approved property propID.
func (r *reader) ViewProperty(ctx context.Context, propID string) (*models.Property, error) {
	key, err := propertyKey(propID)
	if err != nil {
		return nil, err
	}

	var property *models.Property
	err = r.Ledger.Evaluate(ctx, func(tx ledger.Tx) error {
		property, err = loadProperty(ctx, tx, key)
		return err
	})
	if err != nil {
		return nil, err
	}
	return property, nil
}
