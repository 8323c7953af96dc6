package network

import (
	"crypto/ecdsa"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/calindra/gatewayctl/internal/commons"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/joho/godotenv"
)

const (
	EnvRpcUrl        = "RPC_URL"
	EnvPrivateKey    = "PRIVATE_KEY"
	EnvMnemonic      = "MNEMONIC"
	EnvMnemonicIndex = "MNEMONIC_INDEX"
)

var (
	ErrNoCredentials = errors.New("no credentials: set PRIVATE_KEY or MNEMONIC")
	ErrNoRpcUrl      = errors.New("no rpc url: set --rpc-url or RPC_URL")
)

// LoadEnv reads a .env file into the process environment.
// Variables that are already set win over the file and a missing file is ignored.
func LoadEnv(path string) error {
	content, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		slog.Debug("env: no env file", "path", path)
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read env file: %w", err)
	}

	parse, err := godotenv.Unmarshal(string(content))
	if err != nil {
		return fmt.Errorf("failed to parse env file: %w", err)
	}

	for k, v := range parse {
		if _, ok := os.LookupEnv(k); ok {
			slog.Debug("env: skipping env", "key", k)
			continue
		}
		slog.Debug("env: setting env", "key", k)
		if err := os.Setenv(k, v); err != nil {
			return err
		}
	}

	slog.Debug("env: loaded", "path", path)
	return nil
}

// LoadCredentials returns the signing key from PRIVATE_KEY or, when unset,
// from MNEMONIC at MNEMONIC_INDEX.
func LoadCredentials() (*ecdsa.PrivateKey, error) {
	if raw := strings.TrimSpace(os.Getenv(EnvPrivateKey)); raw != "" {
		key, err := crypto.HexToECDSA(strings.TrimPrefix(raw, "0x"))
		if err != nil {
			return nil, fmt.Errorf("invalid %v: %w", EnvPrivateKey, err)
		}
		return key, nil
	}

	mnemonic := strings.TrimSpace(os.Getenv(EnvMnemonic))
	if mnemonic == "" {
		return nil, ErrNoCredentials
	}
	var index uint32
	if raw := os.Getenv(EnvMnemonicIndex); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid %v: %w", EnvMnemonicIndex, err)
		}
		index = uint32(parsed)
	}
	return commons.GetPrivateKeyFromMnemonic(mnemonic, index)
}

// RpcUrl picks the flag value and falls back to RPC_URL.
func RpcUrl(flag string) (string, error) {
	if flag != "" {
		return flag, nil
	}
	if env := os.Getenv(EnvRpcUrl); env != "" {
		return env, nil
	}
	return "", ErrNoRpcUrl
}
