package chaincode

import (
	"log/slog"

	"github.com/chris/regnet/pkg/api"
	"github.com/chris/regnet/pkg/mapping"
	"github.com/hyperledger/fabric-contract-api-go/contractapi"
)

// UserContract exposes the operations available to network users.
type UserContract struct {
	contractapi.Contract
	Logger *slog.Logger
}

// NewUserContract returns the regnet.user contract.
func NewUserContract(logger *slog.Logger) *UserContract {
	c := &UserContract{Logger: logger}
	c.Name = UserContractName
	return c
}

// Instantiate is called when the chaincode is deployed.
func (c *UserContract) Instantiate(ctx contractapi.TransactionContextInterface) error {
	instantiated(c.Logger, c.Name)
	return nil
}

// RequestNewUser submits a request for a new account.
func (c *UserContract) RequestNewUser(ctx contractapi.TransactionContextInterface, name string, email string, phone string, ssn string) (*api.UserRequest, error) {
	svc, goCtx := service(ctx, c.Logger)
	req, err := svc.RequestNewUser(goCtx, name, email, phone, ssn)
	if err != nil {
		return nil, err
	}
	return mapping.ToApiUserRequest(req), nil
}

// RechargeAccount sets the balance of an approved user from a bank
// transaction code.
func (c *UserContract) RechargeAccount(ctx contractapi.TransactionContextInterface, name string, ssn string, bankTxID string) (*api.User, error) {
	svc, goCtx := service(ctx, c.Logger)
	user, err := svc.RechargeAccount(goCtx, name, ssn, bankTxID)
	if err != nil {
		return nil, err
	}
	return mapping.ToApiUser(user), nil
}

// ViewUser returns an approved user.
func (c *UserContract) ViewUser(ctx contractapi.TransactionContextInterface, name string, ssn string) (*api.User, error) {
	svc, goCtx := service(ctx, c.Logger)
	user, err := svc.ViewUser(goCtx, name, ssn)
	if err != nil {
		return nil, err
	}
	return mapping.ToApiUser(user), nil
}

// PropertyRegistrationRequest submits a property for registration.
func (c *UserContract) PropertyRegistrationRequest(ctx contractapi.TransactionContextInterface, propID string, price int64, ownerName string, ownerSSN string) (*api.PropertyRequest, error) {
	svc, goCtx := service(ctx, c.Logger)
	req, err := svc.PropertyRegistrationRequest(goCtx, propID, price, ownerName, ownerSSN)
	if err != nil {
		return nil, err
	}
	return mapping.ToApiPropertyRequest(req), nil
}

// ViewProperty returns an approved property.
func (c *UserContract) ViewProperty(ctx contractapi.TransactionContextInterface, propID string) (*api.Property, error) {
	svc, goCtx := service(ctx, c.Logger)
	p, err := svc.ViewProperty(goCtx, propID)
	if err != nil {
		return nil, err
	}
	return mapping.ToApiProperty(p), nil
}

// UpdateProperty changes the status of a property. Only its owner may.
func (c *UserContract) UpdateProperty(ctx contractapi.TransactionContextInterface, propID string, status string, ownerName string, ownerSSN string) (*api.Property, error) {
	svc, goCtx := service(ctx, c.Logger)
	p, err := svc.UpdateProperty(goCtx, propID, mapping.ToDomainStatus(status), ownerName, ownerSSN)
	if err != nil {
		return nil, err
	}
	return mapping.ToApiProperty(p), nil
}

// PurchaseProperty buys a property that is on sale.
func (c *UserContract) PurchaseProperty(ctx contractapi.TransactionContextInterface, propID string, buyerName string, buyerSSN string) (*api.Property, error) {
	svc, goCtx := service(ctx, c.Logger)
	p, err := svc.PurchaseProperty(goCtx, propID, buyerName, buyerSSN)
	if err != nil {
		return nil, err
	}
	return mapping.ToApiProperty(p), nil
}
