package adapter

import (
	"fmt"
	"path/filepath"

	"github.com/hyperledger/fabric-sdk-go/pkg/core/config"
	"github.com/hyperledger/fabric-sdk-go/pkg/gateway"
)

// FabricProfile is everything needed to open one gateway session
type FabricProfile struct {
	// ConnectionProfile is the path of the network connection profile (YAML)
	ConnectionProfile string
	// WalletPath is the file system credential store
	WalletPath string
	// Identity is the wallet label of the calling identity
	Identity string
	// MSPID, CertPath and KeyPath are used to enroll Identity into the wallet when it is missing
	MSPID    string
	CertPath string
	KeyPath  string
}

// FabricDialer opens gateway sessions to the ledger network
//
//go:generate mockgen -source=fabric.go -destination=../mocks/fabric.go -package=mocks -mock_names=FabricDialer=MockFabricDialer,FabricGateway=MockFabricGateway,FabricNetwork=MockFabricNetwork,FabricContract=MockFabricContract
type FabricDialer interface {
	Connect(profile FabricProfile) (FabricGateway, error)
}

// FabricGateway is one connected gateway session
type FabricGateway interface {
	GetNetwork(channel string) (FabricNetwork, error)
	Close()
}

// FabricNetwork is a channel reachable through a gateway session
type FabricNetwork interface {
	GetContract(name string) FabricContract
}

// FabricContract invokes chaincode functions
type FabricContract interface {
	// Submit endorses, orders and commits a transaction and returns its result and transaction id
	Submit(name string, args ...string) ([]byte, string, error)
	// Evaluate queries a single peer without committing
	Evaluate(name string, args ...string) ([]byte, error)
}

// RealFabricDialer implements FabricDialer using the Fabric gateway SDK
type RealFabricDialer struct {
	fs FileSystem
}

// NewFabricDialer creates a new real Fabric dialer
func NewFabricDialer(fs FileSystem) FabricDialer {
	return &RealFabricDialer{fs: fs}
}

func (d *RealFabricDialer) Connect(profile FabricProfile) (FabricGateway, error) {
	if !d.fs.Exists(profile.ConnectionProfile) {
		return nil, fmt.Errorf("connection profile %s not found", profile.ConnectionProfile)
	}

	wallet, err := gateway.NewFileSystemWallet(filepath.Clean(profile.WalletPath))
	if err != nil {
		return nil, fmt.Errorf("failed to open wallet: %w", err)
	}

	if !wallet.Exists(profile.Identity) {
		if err := d.populateWallet(wallet, profile); err != nil {
			return nil, fmt.Errorf("failed to populate wallet: %w", err)
		}
	}

	gw, err := gateway.Connect(
		gateway.WithConfig(config.FromFile(filepath.Clean(profile.ConnectionProfile))),
		gateway.WithIdentity(wallet, profile.Identity),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to gateway: %w", err)
	}

	return &fabricGatewayAdapter{gw: gw}, nil
}

func (d *RealFabricDialer) populateWallet(wallet *gateway.Wallet, profile FabricProfile) error {
	if profile.CertPath == "" || profile.KeyPath == "" {
		return fmt.Errorf("identity %s is not in the wallet and no certificate is configured", profile.Identity)
	}

	cert, err := d.fs.ReadFile(profile.CertPath)
	if err != nil {
		return fmt.Errorf("failed to read certificate: %w", err)
	}
	key, err := d.fs.ReadFile(profile.KeyPath)
	if err != nil {
		return fmt.Errorf("failed to read private key: %w", err)
	}

	return wallet.Put(profile.Identity, gateway.NewX509Identity(profile.MSPID, string(cert), string(key)))
}

// fabricGatewayAdapter adapts *gateway.Gateway to FabricGateway
type fabricGatewayAdapter struct {
	gw *gateway.Gateway
}

func (a *fabricGatewayAdapter) GetNetwork(channel string) (FabricNetwork, error) {
	network, err := a.gw.GetNetwork(channel)
	if err != nil {
		return nil, err
	}
	return &fabricNetworkAdapter{network: network}, nil
}

func (a *fabricGatewayAdapter) Close() {
	a.gw.Close()
}

// fabricNetworkAdapter adapts *gateway.Network to FabricNetwork
type fabricNetworkAdapter struct {
	network *gateway.Network
}

func (a *fabricNetworkAdapter) GetContract(name string) FabricContract {
	return &fabricContractAdapter{contract: a.network.GetContract(name)}
}

// fabricContractAdapter adapts *gateway.Contract to FabricContract
type fabricContractAdapter struct {
	contract *gateway.Contract
}

func (a *fabricContractAdapter) Submit(name string, args ...string) ([]byte, string, error) {
	txn, err := a.contract.CreateTransaction(name)
	if err != nil {
		return nil, "", err
	}

	// The commit notifier is buffered and receives the committed transaction id once Submit returns
	commit := txn.RegisterCommitEvent()
	result, err := txn.Submit(args...)
	if err != nil {
		return nil, "", err
	}

	var txID string
	select {
	case ev := <-commit:
		if ev != nil {
			txID = ev.TxID
		}
	default:
	}
	if txID == "" {
		return nil, "", fmt.Errorf("transaction %s committed without a transaction id", name)
	}

	return result, txID, nil
}

func (a *fabricContractAdapter) Evaluate(name string, args ...string) ([]byte, error) {
	return a.contract.EvaluateTransaction(name, args...)
}
