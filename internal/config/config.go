package config

import (
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"
)

// Storage drivers understood by the server.
const (
	DriverJSONFile = "jsonfile"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Password hashing schemes. sha256 keeps account files readable by the
// legacy mobile app; argon2id is for installations that want a real KDF.
const (
	HashSHA256   = "sha256"
	HashArgon2id = "argon2id"
)

type Config struct {
	Env     string
	Server  server
	Storage storage
	Auth    auth
	Logger  logger
}

type server struct {
	RunAddress string
}

type storage struct {
	Driver      string
	DataDir     string
	SQLitePath  string
	DatabaseURI string
	Migrations  string
}

type auth struct {
	HashScheme string
	SessionTTL time.Duration
	// Bootstrap is the explicit development/admin backdoor: a literal
	// credential pair that logs in without touching the account store.
	// Disabled unless both values are set.
	BootstrapLogin    string
	BootstrapPassword string
}

type logger struct {
	LogLevel string
}

func NewConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	viper.AutomaticEnv()

	viper.SetDefault("APP_ENV", EnvLocal)
	viper.SetDefault("RUN_ADDRESS", "localhost:8080")
	viper.SetDefault("STORAGE_DRIVER", DriverJSONFile)
	viper.SetDefault("DATA_DIR", "data")
	viper.SetDefault("SQLITE_PATH", "data/synapse.db")
	viper.SetDefault("MIGRATIONS_PATH", "migrations")
	viper.SetDefault("HASH_SCHEME", HashSHA256)
	viper.SetDefault("SESSION_TTL_HOURS", 24)
	viper.SetDefault("LOG_LEVEL", "info")

	config := Config{
		Env: viper.GetString("APP_ENV"),
		Server: server{
			RunAddress: viper.GetString("RUN_ADDRESS"),
		},
		Storage: storage{
			Driver:      viper.GetString("STORAGE_DRIVER"),
			DataDir:     viper.GetString("DATA_DIR"),
			SQLitePath:  viper.GetString("SQLITE_PATH"),
			DatabaseURI: viper.GetString("DATABASE_URI"),
			Migrations:  viper.GetString("MIGRATIONS_PATH"),
		},
		Auth: auth{
			HashScheme:        viper.GetString("HASH_SCHEME"),
			SessionTTL:        time.Duration(viper.GetInt("SESSION_TTL_HOURS")) * time.Hour,
			BootstrapLogin:    viper.GetString("BOOTSTRAP_LOGIN"),
			BootstrapPassword: viper.GetString("BOOTSTRAP_PASSWORD"),
		},
		Logger: logger{
			LogLevel: viper.GetString("LOG_LEVEL"),
		},
	}

	return &config
}

func (c *Config) Validate() error {
	switch c.Storage.Driver {
	case DriverJSONFile, DriverSQLite:
	case DriverPostgres:
		if c.Storage.DatabaseURI == "" {
			return fmt.Errorf("storage driver %s requires DATABASE_URI", c.Storage.Driver)
		}
	default:
		return fmt.Errorf("unknown storage driver: %s", c.Storage.Driver)
	}

	switch c.Auth.HashScheme {
	case HashSHA256, HashArgon2id:
	default:
		return fmt.Errorf("unknown hash scheme: %s", c.Auth.HashScheme)
	}

	return nil
}

// BootstrapEnabled reports whether the admin backdoor is switched on.
func (c *Config) BootstrapEnabled() bool {
	return c.Auth.BootstrapLogin != "" && c.Auth.BootstrapPassword != ""
}
