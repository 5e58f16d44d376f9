package chaincode

import (
	"context"
	"log/slog"

	"github.com/chris/regnet/pkg/ledger"
	"github.com/chris/regnet/pkg/registry"
	"github.com/hyperledger/fabric-contract-api-go/contractapi"
)

// Contract names as deployed on the channel.
const (
	UserContractName      = "regnet.user"
	RegistrarContractName = "regnet.registrar"
)

// caller reads the submitting identity from the transaction context.
func caller(ctx contractapi.TransactionContextInterface) ledger.Identity {
	ci := ctx.GetClientIdentity()
	if ci == nil {
		return ledger.Anonymous
	}
	id, err := ci.GetID()
	if err != nil {
		return ledger.Anonymous
	}
	mspID, _ := ci.GetMSPID()
	return ledger.Identity{ID: id, MSPID: mspID}
}

// service builds a registry bound to the stub of one transaction.
func service(ctx contractapi.TransactionContextInterface, logger *slog.Logger) (*registry.Service, context.Context) {
	goCtx := ledger.WithCaller(context.Background(), caller(ctx))
	return registry.NewService(&StubLedger{Stub: ctx.GetStub()}, logger), goCtx
}

func instantiated(logger *slog.Logger, name string) {
	if logger == nil {
		logger = slog.Default()
	}
	logger.Info("contract instantiated", slog.String("contract", name))
}
