// Package gateway submits registry operations to the regnet chaincode
// through a Fabric gateway.
package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/chris/regnet/pkg/api"
	"github.com/chris/regnet/pkg/chaincode"
	"github.com/chris/regnet/pkg/mapping"
	"github.com/chris/regnet/pkg/models"
	"github.com/chris/regnet/pkg/registry"
	"github.com/hyperledger/fabric-sdk-go/pkg/core/config"
	"github.com/hyperledger/fabric-sdk-go/pkg/gateway"
)

const walletLabel = "appUser"

//go:generate go run github.com/vektra/mockery/v2 --name Contract --output ./mocks --outpkg mocks

// Contract is the part of *gateway.Contract the client uses.
type Contract interface {
	SubmitTransaction(name string, args ...string) ([]byte, error)
	EvaluateTransaction(name string, args ...string) ([]byte, error)
}

// Config locates the network and the client identity.
type Config struct {
	ConnectionProfile string
	Channel           string
	Chaincode         string
	MSPID             string
	CertPath          string
	KeyPath           string
	WalletPath        string
}

// Client implements registry.Registry against the deployed chaincode.
type Client struct {
	User      Contract
	Registrar Contract
	Events    EventSource

	gw *gateway.Gateway
}

// Make sure we conform to the interface
var _ registry.Registry = (*Client)(nil)

// New creates a Client over already-resolved contracts.
func New(user, registrar Contract) *Client {
	return &Client{User: user, Registrar: registrar}
}

// Connect opens a gateway connection described by cfg.
func Connect(cfg Config) (*Client, error) {
	wallet, err := gateway.NewFileSystemWallet(cfg.WalletPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create wallet: %w", err)
	}

	if !wallet.Exists(walletLabel) {
		if err := populateWallet(wallet, cfg.MSPID, cfg.CertPath, cfg.KeyPath); err != nil {
			return nil, fmt.Errorf("failed to populate wallet: %w", err)
		}
	}

	gw, err := gateway.Connect(
		gateway.WithConfig(config.FromFile(filepath.Clean(cfg.ConnectionProfile))),
		gateway.WithIdentity(wallet, walletLabel),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to gateway: %w", err)
	}

	network, err := gw.GetNetwork(cfg.Channel)
	if err != nil {
		gw.Close()
		return nil, fmt.Errorf("failed to get network: %w", err)
	}

	// Events are raised per chaincode, so one listener covers both contracts.
	user := network.GetContractWithName(cfg.Chaincode, chaincode.UserContractName)
	return &Client{
		User:      user,
		Registrar: network.GetContractWithName(cfg.Chaincode, chaincode.RegistrarContractName),
		Events:    user,
		gw:        gw,
	}, nil
}

// Close releases the gateway connection.
func (c *Client) Close() {
	if c.gw != nil {
		c.gw.Close()
	}
}

func populateWallet(wallet *gateway.Wallet, mspID, certPath, keyPath string) error {
	cert, err := os.ReadFile(filepath.Clean(certPath))
	if err != nil {
		return err
	}

	key, err := os.ReadFile(filepath.Clean(keyPath))
	if err != nil {
		return err
	}

	identity := gateway.NewX509Identity(mspID, string(cert), string(key))

	return wallet.Put(walletLabel, identity)
}

func submit(contract Contract, dst interface{}, name string, args ...string) error {
	payload, err := contract.SubmitTransaction(name, args...)
	if err != nil {
		return classify(name, err)
	}
	return decode(name, payload, dst)
}

func evaluate(contract Contract, dst interface{}, name string, args ...string) error {
	payload, err := contract.EvaluateTransaction(name, args...)
	if err != nil {
		return classify(name, err)
	}
	return decode(name, payload, dst)
}

func decode(name string, payload []byte, dst interface{}) error {
	if err := json.Unmarshal(payload, dst); err != nil {
		return fmt.Errorf("failed to decode %s result: %w", name, err)
	}
	return nil
}

// The SDK calls are not context aware; ctx is accepted to satisfy
// registry.Registry.

func (c *Client) RequestNewUser(ctx context.Context, name, email, phone, ssn string) (*models.UserRequest, error) {
	var out api.UserRequest
	if err := submit(c.User, &out, "RequestNewUser", name, email, phone, ssn); err != nil {
		return nil, err
	}
	return mapping.ToDomainUserRequest(&out)
}

func (c *Client) ApproveNewUser(ctx context.Context, name, ssn string) (*models.User, error) {
	var out api.User
	if err := submit(c.Registrar, &out, "ApproveNewUser", name, ssn); err != nil {
		return nil, err
	}
	return mapping.ToDomainUser(&out)
}

func (c *Client) ViewUser(ctx context.Context, name, ssn string) (*models.User, error) {
	var out api.User
	if err := evaluate(c.User, &out, "ViewUser", name, ssn); err != nil {
		return nil, err
	}
	return mapping.ToDomainUser(&out)
}

func (c *Client) RechargeAccount(ctx context.Context, name, ssn, bankTxID string) (*models.User, error) {
	var out api.User
	if err := submit(c.User, &out, "RechargeAccount", name, ssn, bankTxID); err != nil {
		return nil, err
	}
	return mapping.ToDomainUser(&out)
}

func (c *Client) PropertyRegistrationRequest(ctx context.Context, propID string, price int64, ownerName, ownerSSN string) (*models.PropertyRequest, error) {
	var out api.PropertyRequest
	if err := submit(c.User, &out, "PropertyRegistrationRequest", propID, strconv.FormatInt(price, 10), ownerName, ownerSSN); err != nil {
		return nil, err
	}
	return mapping.ToDomainPropertyRequest(&out)
}

func (c *Client) ApprovePropertyRegistration(ctx context.Context, propID string) (*models.Property, error) {
	var out api.Property
	if err := submit(c.Registrar, &out, "ApprovePropertyRegistration", propID); err != nil {
		return nil, err
	}
	return mapping.ToDomainProperty(&out)
}

func (c *Client) ViewProperty(ctx context.Context, propID string) (*models.Property, error) {
	var out api.Property
	if err := evaluate(c.User, &out, "ViewProperty", propID); err != nil {
		return nil, err
	}
	return mapping.ToDomainProperty(&out)
}

func (c *Client) UpdateProperty(ctx context.Context, propID string, status models.PropertyStatus, ownerName, ownerSSN string) (*models.Property, error) {
	var out api.Property
	if err := submit(c.User, &out, "UpdateProperty", propID, string(status), ownerName, ownerSSN); err != nil {
		return nil, err
	}
	return mapping.ToDomainProperty(&out)
}

func (c *Client) PurchaseProperty(ctx context.Context, propID, buyerName, buyerSSN string) (*models.Property, error) {
	var out api.Property
	if err := submit(c.User, &out, "PurchaseProperty", propID, buyerName, buyerSSN); err != nil {
		return nil, err
	}
	return mapping.ToDomainProperty(&out)
}
