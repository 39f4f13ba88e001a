package auth

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// ErrMissingCredential is returned when a required credential field is empty.
var ErrMissingCredential = errors.New("missing required credential")

// Environment variables read by CredentialsFromEnv.
const (
	EnvAccessKey     = "OKX_ACCESS_KEY"
	EnvSecretKey     = "OKX_SECRET_KEY"
	EnvPassphrase    = "OKX_PASSPHRASE"
	EnvProjectID     = "OKX_PROJECT_ID"
	EnvWalletAddress = "OKX_WALLET_ADDRESS"
	EnvAccountID     = "OKX_ACCOUNT_ID"
)

// Credentials are the long-lived API credentials of a project.
// AccessKey, SecretKey, Passphrase and ProjectID are required.
type Credentials struct {
	AccessKey  string
	SecretKey  string
	Passphrase string
	ProjectID  string
	// WalletAddress is used when an operation needs a user wallet
	// and none is given
	WalletAddress string
	// AccountID is the default account for transaction queries
	AccountID string
}

// Validate fails with ErrMissingCredential listing every empty required field.
func (c Credentials) Validate() error {
	var missing []string
	if strings.TrimSpace(c.AccessKey) == "" {
		missing = append(missing, "access_key")
	}
	if strings.TrimSpace(c.SecretKey) == "" {
		missing = append(missing, "secret_key")
	}
	if strings.TrimSpace(c.Passphrase) == "" {
		missing = append(missing, "passphrase")
	}
	if strings.TrimSpace(c.ProjectID) == "" {
		missing = append(missing, "access_project")
	}

	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingCredential, strings.Join(missing, ", "))
	}
	return nil
}

// String never prints the secret or the passphrase.
func (c Credentials) String() string {
	return fmt.Sprintf(
		"Credentials{AccessKey: %s, ProjectID: %s, WalletAddress: %s, AccountID: %s}",
		c.AccessKey, c.ProjectID, c.WalletAddress, c.AccountID,
	)
}

// credentialsFile is the on-disk layout. JSON files parse as YAML too.
type credentialsFile struct {
	AccessKey        string `yaml:"access_key"`
	SecretKey        string `yaml:"secret_key"`
	Passphrase       string `yaml:"passphrase"`
	AccessProject    string `yaml:"access_project"`
	WalletAddress    string `yaml:"wallet_address"`
	SolanaWalletAddr string `yaml:"solana_wallet_addr"`
	AccountID        string `yaml:"account_id"`
}

// LoadCredentialsFile reads credentials from a JSON or YAML file with the
// keys access_key, secret_key, passphrase, access_project and optionally
// wallet_address (or solana_wallet_addr) and account_id.
func LoadCredentialsFile(path string) (Credentials, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Credentials{}, fmt.Errorf("read credentials: %w", err)
	}

	var f credentialsFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return Credentials{}, fmt.Errorf("decode credentials: %w", err)
	}

	wallet := f.WalletAddress
	if wallet == "" {
		wallet = f.SolanaWalletAddr
	}

	creds := Credentials{
		AccessKey:     f.AccessKey,
		SecretKey:     f.SecretKey,
		Passphrase:    f.Passphrase,
		ProjectID:     f.AccessProject,
		WalletAddress: wallet,
		AccountID:     f.AccountID,
	}
	if err := creds.Validate(); err != nil {
		return Credentials{}, err
	}
	return creds, nil
}

// CredentialsFromEnv reads credentials from the OKX_* environment variables
// after loading the given dotenv files. With no files, a .env in the working
// directory is loaded if present. Variables already set are not overridden.
func CredentialsFromEnv(files ...string) (Credentials, error) {
	if len(files) > 0 {
		if err := godotenv.Load(files...); err != nil {
			return Credentials{}, fmt.Errorf("load env files: %w", err)
		}
	} else {
		_ = godotenv.Load()
	}

	creds := Credentials{
		AccessKey:     os.Getenv(EnvAccessKey),
		SecretKey:     os.Getenv(EnvSecretKey),
		Passphrase:    os.Getenv(EnvPassphrase),
		ProjectID:     os.Getenv(EnvProjectID),
		WalletAddress: os.Getenv(EnvWalletAddress),
		AccountID:     os.Getenv(EnvAccountID),
	}
	if err := creds.Validate(); err != nil {
		return Credentials{}, err
	}
	return creds, nil
}
