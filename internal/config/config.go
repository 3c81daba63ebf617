package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

// Environment names select logging behavior.
const (
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"
)

// Config is the process configuration, read from the environment.
type Config struct {
	Env             string
	StartingBalance decimal.Decimal

	// Seeds for the deterministic wheel. When ServerSeed is empty the
	// wheel draws from crypto/rand instead.
	ServerSeed string
	ClientSeed string
	Nonce      uint64
}

var defaultStartingBalance = decimal.NewFromInt(100)

// MustLoad reads the optional .env file at path (empty path tries ./.env)
// and then the environment. Malformed values panic; absent ones default.
func MustLoad(path string) *Config {
	if path != "" {
		if err := godotenv.Load(path); err != nil {
			panic(fmt.Sprintf("config: load %s: %v", path, err))
		}
	} else {
		// A missing default .env is fine.
		_ = godotenv.Load()
	}

	cfg := &Config{
		Env:             getEnv("ROULETTE_ENV", EnvLocal),
		StartingBalance: defaultStartingBalance,
		ServerSeed:      os.Getenv("ROULETTE_SERVER_SEED"),
		ClientSeed:      os.Getenv("ROULETTE_CLIENT_SEED"),
	}

	if v := os.Getenv("ROULETTE_STARTING_BALANCE"); v != "" {
		bal, err := decimal.NewFromString(v)
		if err != nil || bal.Sign() <= 0 {
			panic(fmt.Sprintf("config: invalid ROULETTE_STARTING_BALANCE %q", v))
		}
		cfg.StartingBalance = bal.Round(2)
	}

	if v := os.Getenv("ROULETTE_NONCE"); v != "" {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			panic(fmt.Sprintf("config: invalid ROULETTE_NONCE %q", v))
		}
		cfg.Nonce = n
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
