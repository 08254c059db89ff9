package config

import (
	"errors"
	"fmt"
	"math/big"
	"os"
	"strings"
	"time"
)

var errEnvVarNotFound error = errors.New("environment variable not found")
var errEnvVarInvalid error = errors.New("environment variable is invalid")

const (
	apiPortEnvKey         = "API_PORT"
	ethNodeEnvKey         = "ETH_NODE_URL"
	dbConnEnvKey          = "DB_CONNECTION_URL"
	jwtSecretEnvKey       = "JWT_SECRET"
	contractAddrEnvKey    = "CONTRACT_ADDRESS"
	contractABIEnvKey     = "CONTRACT_ABI_PATH"
	chainIDEnvKey         = "CHAIN_ID"
	privateKeyEnvKey      = "RELAYER_PRIVATE_KEY"
	receiptTimeoutEnvKey  = "RECEIPT_TIMEOUT"
	pollIntervalEnvKey    = "RECEIPT_POLL_INTERVAL"
	reconcileEnvKey       = "RECONCILE_INTERVAL"
	operatorsEnvKey       = "OPERATORS"
	defaultReceiptTimeout = 120 * time.Second
	defaultPollInterval   = 2 * time.Second
)

type App struct {
	Port            string
	NodeURL         string
	DBConnectionURL string
	JWTSecret       string
	ContractAddress string
	ContractABI     string
	// ChainID is nil when no expected chain identity is configured.
	ChainID *big.Int
	// PrivateKey is the raw hex relayer key; empty disables write operations.
	PrivateKey     string
	ReceiptTimeout time.Duration
	PollInterval   time.Duration
	// ReconcileInterval is zero when the background reconciler is disabled.
	ReconcileInterval time.Duration
	// Operators maps operator usernames to bcrypt password hashes.
	Operators map[string]string
}

// NewAppConfig reads the application configuration from the environment.
func NewAppConfig() (App, error) {
	required := map[string]*string{}
	cfg := App{
		ReceiptTimeout: defaultReceiptTimeout,
		PollInterval:   defaultPollInterval,
	}

	required[apiPortEnvKey] = &cfg.Port
	required[ethNodeEnvKey] = &cfg.NodeURL
	required[dbConnEnvKey] = &cfg.DBConnectionURL
	required[jwtSecretEnvKey] = &cfg.JWTSecret
	required[contractAddrEnvKey] = &cfg.ContractAddress

	for key, dest := range required {
		value, ok := os.LookupEnv(key)
		if !ok || value == "" {
			return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, key)
		}
		*dest = value
	}

	if chainID, ok := os.LookupEnv(chainIDEnvKey); ok && chainID != "" {
		id, ok := new(big.Int).SetString(chainID, 10)
		if !ok || id.Sign() <= 0 {
			return App{}, fmt.Errorf("%w: %s", errEnvVarInvalid, chainIDEnvKey)
		}
		cfg.ChainID = id
	}

	// An empty ABI source selects the bundled EVoting interface.
	cfg.ContractABI = os.Getenv(contractABIEnvKey)
	cfg.PrivateKey = os.Getenv(privateKeyEnvKey)

	var err error
	cfg.ReceiptTimeout, err = durationFromEnv(receiptTimeoutEnvKey, cfg.ReceiptTimeout)
	if err != nil {
		return App{}, err
	}

	cfg.PollInterval, err = durationFromEnv(pollIntervalEnvKey, cfg.PollInterval)
	if err != nil {
		return App{}, err
	}

	cfg.ReconcileInterval, err = durationFromEnv(reconcileEnvKey, 0)
	if err != nil {
		return App{}, err
	}

	cfg.Operators, err = parseOperators(os.Getenv(operatorsEnvKey))
	if err != nil {
		return App{}, err
	}

	return cfg, nil
}

func durationFromEnv(key string, fallback time.Duration) (time.Duration, error) {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return fallback, nil
	}

	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("%w: %s", errEnvVarInvalid, key)
	}

	return d, nil
}

// parseOperators reads "name:hash,name:hash" pairs.
func parseOperators(raw string) (map[string]string, error) {
	operators := map[string]string{}
	if raw == "" {
		return operators, nil
	}

	for _, pair := range strings.Split(raw, ",") {
		name, hash, ok := strings.Cut(strings.TrimSpace(pair), ":")
		if !ok || name == "" || hash == "" {
			return nil, fmt.Errorf("%w: %s", errEnvVarInvalid, operatorsEnvKey)
		}
		operators[name] = hash
	}

	return operators, nil
}
