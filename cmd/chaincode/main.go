package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/chris/regnet/pkg/chaincode"
	"github.com/hyperledger/fabric-contract-api-go/contractapi"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, nil))

	cc, err := contractapi.NewChaincode(
		chaincode.NewUserContract(logger),
		chaincode.NewRegistrarContract(logger),
	)
	if err != nil {
		log.Panicf("Error creating regnet chaincode: %v", err)
	}

	if err := cc.Start(); err != nil {
		log.Panicf("Error starting regnet chaincode: %v", err)
	}
}
