package ledger

import (
	"errors"
	"fmt"
	"strings"
)

// Config is the immutable gateway configuration, loaded once at process start
type Config struct {
	Enabled           bool   `mapstructure:"enabled"`
	ConnectionProfile string `mapstructure:"connection_profile"` // Fabric SDK connection profile (yaml)
	Channel           string `mapstructure:"channel"`
	Contract          string `mapstructure:"contract"`
	WalletPath        string `mapstructure:"wallet_path"`
	Identity          string `mapstructure:"identity"` // Wallet label
	MSPID             string `mapstructure:"msp_id"`
	CertPath          string `mapstructure:"cert_path"` // Used to enroll the identity into an empty wallet
	KeyPath           string `mapstructure:"key_path"`
}

// Validate fails when the ledger is enabled and a required setting is missing
func (c Config) Validate() error {
	if !c.Enabled {
		return nil
	}

	required := []struct {
		key   string
		value string
	}{
		{"ledger.connection_profile", c.ConnectionProfile},
		{"ledger.channel", c.Channel},
		{"ledger.contract", c.Contract},
		{"ledger.wallet_path", c.WalletPath},
		{"ledger.identity", c.Identity},
	}

	var missing []string
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			missing = append(missing, r.key)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("ledger is enabled but %s not set", strings.Join(missing, ", "))
	}

	if (c.CertPath == "") != (c.KeyPath == "") {
		return errors.New("ledger.cert_path and ledger.key_path must be set together")
	}
	if c.CertPath != "" && c.MSPID == "" {
		return errors.New("ledger.msp_id is required to enroll an identity from cert_path")
	}

	return nil
}
