package registry

import (
	"context"
	"log/slog"

	"github.com/chris/regnet/pkg/ledger"
	"github.com/chris/regnet/pkg/models"
)

// UserRegistry defines the operations on user requests and accounts.
type UserRegistry interface {
	RequestNewUser(ctx context.Context, name, email, phone, ssn string) (*models.UserRequest, error)
	ApproveNewUser(ctx context.Context, name, ssn string) (*models.User, error)
	ViewUser(ctx context.Context, name, ssn string) (*models.User, error)
	RechargeAccount(ctx context.Context, name, ssn, bankTxID string) (*models.User, error)
}

// PropertyRegistry defines the operations on property requests and
// properties.
type PropertyRegistry interface {
	PropertyRegistrationRequest(ctx context.Context, propID string, price int64, ownerName, ownerSSN string) (*models.PropertyRequest, error)
	ApprovePropertyRegistration(ctx context.Context, propID string) (*models.Property, error)
	ViewProperty(ctx context.Context, propID string) (*models.Property, error)
	UpdateProperty(ctx context.Context, propID string, status models.PropertyStatus, ownerName, ownerSSN string) (*models.Property, error)
	PurchaseProperty(ctx context.Context, propID, buyerName, buyerSSN string) (*models.Property, error)
}

//go:generate go run github.com/vektra/mockery/v2 --name Registry --output ./mocks --outpkg mocks

// Registry combines the user and property operations.
type Registry interface {
	UserRegistry
	PropertyRegistry
}

// Service implements Registry over a single ledger.
type Service struct {
	*Workflow
	*Market
}

// Ensure Service implements the Registry interface
var _ Registry = (*Service)(nil)

// NewService creates a Service whose workflow and market share l.
func NewService(l ledger.Ledger, logger *slog.Logger) *Service {
	return &Service{
		Workflow: NewWorkflow(l, logger),
		Market:   NewMarket(l, logger),
	}
}

func (s *Service) ViewUser(ctx context.Context, name, ssn string) (*models.User, error) {
	return s.Workflow.ViewUser(ctx, name, ssn)
}

func (s *Service) ViewProperty(ctx context.Context, propID string) (*models.Property, error) {
	return s.Workflow.ViewProperty(ctx, propID)
}
