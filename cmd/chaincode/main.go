package main

import (
	"fmt"
	"os"
	"time"

	"github.com/hyperledger/fabric-chaincode-go/shim"
	"github.com/hyperledger/fabric-contract-api-go/contractapi"
	"go.uber.org/zap"

	"github.com/feral-file/ff-estate-ledger/internal/contract"
	"github.com/feral-file/ff-estate-ledger/internal/logger"
)

func main() {
	err := logger.Initialize(logger.Config{
		Debug: os.Getenv("CHAINCODE_DEBUG") == "true",
		Tags: map[string]string{
			"service": "estate-ledger-chaincode",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)

	ledgerContract := contract.NewLedgerContract()
	cc, err := contractapi.NewChaincode(ledgerContract)
	if err != nil {
		logger.Fatal("Failed to create chaincode", zap.Error(err))
	}
	cc.Info.Title = ledgerContract.Info.Title
	cc.Info.Version = ledgerContract.Info.Version

	// Chaincode as an external service when an address is configured, peer-launched otherwise
	address := os.Getenv("CHAINCODE_SERVER_ADDRESS")
	if address == "" {
		logger.Info("Starting chaincode", zap.String("contract", ledgerContract.Name))
		if err := cc.Start(); err != nil {
			logger.Fatal("Failed to start chaincode", zap.Error(err))
		}
		return
	}

	server := &shim.ChaincodeServer{
		CCID:    os.Getenv("CHAINCODE_ID"),
		Address: address,
		CC:      cc,
		TLSProps: shim.TLSProperties{
			Disabled: true,
		},
	}
	logger.Info("Starting chaincode server",
		zap.String("contract", ledgerContract.Name),
		zap.String("address", address),
	)
	if err := server.Start(); err != nil {
		logger.Fatal("Failed to start chaincode server", zap.Error(err))
	}
}
