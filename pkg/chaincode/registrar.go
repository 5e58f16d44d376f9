package chaincode

import (
	"log/slog"

	"github.com/chris/regnet/pkg/api"
	"github.com/chris/regnet/pkg/mapping"
	"github.com/hyperledger/fabric-contract-api-go/contractapi"
)

// RegistrarContract exposes the approvals performed by the registrar.
type RegistrarContract struct {
	contractapi.Contract
	Logger *slog.Logger
}

// NewRegistrarContract returns the regnet.registrar contract.
func NewRegistrarContract(logger *slog.Logger) *RegistrarContract {
	c := &RegistrarContract{Logger: logger}
	c.Name = RegistrarContractName
	return c
}

// Instantiate is called when the chaincode is deployed.
func (c *RegistrarContract) Instantiate(ctx contractapi.TransactionContextInterface) error {
	instantiated(c.Logger, c.Name)
	return nil
}

// ApproveNewUser turns a user request into an account with a zero balance.
func (c *RegistrarContract) ApproveNewUser(ctx contractapi.TransactionContextInterface, name string, ssn string) (*api.User, error) {
	svc, goCtx := service(ctx, c.Logger)
	user, err := svc.ApproveNewUser(goCtx, name, ssn)
	if err != nil {
		return nil, err
	}
	return mapping.ToApiUser(user), nil
}

// ViewUser returns an approved user.
func (c *RegistrarContract) ViewUser(ctx contractapi.TransactionContextInterface, name string, ssn string) (*api.User, error) {
	svc, goCtx := service(ctx, c.Logger)
	user, err := svc.ViewUser(goCtx, name, ssn)
	if err != nil {
		return nil, err
	}
	return mapping.ToApiUser(user), nil
}

// ApprovePropertyRegistration turns a property request into a property.
func (c *RegistrarContract) ApprovePropertyRegistration(ctx contractapi.TransactionContextInterface, propID string) (*api.Property, error) {
	svc, goCtx := service(ctx, c.Logger)
	p, err := svc.ApprovePropertyRegistration(goCtx, propID)
	if err != nil {
		return nil, err
	}
	return mapping.ToApiProperty(p), nil
}

// ViewProperty returns an approved property.
func (c *RegistrarContract) ViewProperty(ctx contractapi.TransactionContextInterface, propID string) (*api.Property, error) {
	svc, goCtx := service(ctx, c.Logger)
	p, err := svc.ViewProperty(goCtx, propID)
	if err != nil {
		return nil, err
	}
	return mapping.ToApiProperty(p), nil
}
