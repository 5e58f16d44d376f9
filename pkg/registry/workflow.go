package registry

import (
	"context"
	"log/slog"

	"github.com/chris/regnet/pkg/ledger"
	"github.com/chris/regnet/pkg/models"
)

// Workflow turns pending requests into approved users and properties.
//
// Approval does not check who the caller is. Restricting approvals to the
// registrar is the job of the platform's access layer in front of the
// ledger.
type Workflow struct {
	reader
}

// NewWorkflow creates a Workflow over l.
func NewWorkflow(l ledger.Ledger, logger *slog.Logger) *Workflow {
	return &Workflow{reader{Ledger: l, Logger: logger}}
}

// RequestNewUser records a request for a new account. An earlier request
// with the same name and ssn is overwritten.
func (w *Workflow) RequestNewUser(ctx context.Context, name, email, phone, ssn string) (*models.UserRequest, error) {
	key, err := userRequestKey(name, ssn)
	if err != nil {
		return nil, err
	}

	var request *models.UserRequest
	err = w.submit(ctx, "requestNewUser", func(tx ledger.Tx) error {
		request = &models.UserRequest{
			DocType:     models.DocTypeRequest,
			RequestType: models.RequestTypeUser,
			Name:        name,
			Email:       email,
			Phone:       phone,
			SSN:         ssn,
			CreatedAt:   tx.Timestamp(),
		}
		if err := store(ctx, tx, key, request); err != nil {
			return err
		}
		return emit(tx, EventUserRequested, key, request)
	})
	if err != nil {
		return nil, err
	}
	return request, nil
}

// ApproveNewUser creates the user for an existing request with a zero
// balance. The request itself stays on the ledger.
func (w *Workflow) ApproveNewUser(ctx context.Context, name, ssn string) (*models.User, error) {
	requestKey, err := userRequestKey(name, ssn)
	if err != nil {
		return nil, err
	}
	key, err := userKey(name, ssn)
	if err != nil {
		return nil, err
	}

	var user *models.User
	err = w.submit(ctx, "approveNewUser", func(tx ledger.Tx) error {
		request, err := loadUserRequest(ctx, tx, requestKey)
		if err != nil {
			return err
		}

		user = &models.User{
			DocType:     models.DocTypeUser,
			Name:        name,
			Email:       request.Email,
			Phone:       request.Phone,
			SSN:         request.SSN,
			UpgradCoins: 0,
			CreatedAt:   tx.Timestamp(),
		}
		if err := store(ctx, tx, key, user); err != nil {
			return err
		}
		return emit(tx, EventUserApproved, key, user)
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

// ApprovePropertyRegistration creates the property for an existing request,
// copying price, status and owner from it.
func (w *Workflow) ApprovePropertyRegistration(ctx context.Context, propID string) (*models.Property, error) {
	requestKey, err := propertyRequestKey(propID)
	if err != nil {
		return nil, err
	}
	key, err := propertyKey(propID)
	if err != nil {
		return nil, err
	}

	var property *models.Property
	err = w.submit(ctx, "approvePropertyRegistration", func(tx ledger.Tx) error {
		request, err := loadPropertyRequest(ctx, tx, requestKey)
		if err != nil {
			return err
		}

		property = &models.Property{
			DocType:   models.DocTypeProperty,
			PropID:    request.PropID,
			Price:     request.Price,
			Status:    request.Status,
			Owner:     request.Owner,
			CreatedAt: tx.Timestamp(),
		}
		if err := store(ctx, tx, key, property); err != nil {
			return err
		}
		return emit(tx, EventPropertyApproved, key, property)
	})
	if err != nil {
		return nil, err
	}
	return property, nil
}
