// Package configpkg provides parsing functionality for environment variables.
package configpkg

import (
	"time"

	"github.com/spf13/viper"
)

// Storage drivers understood by the server.
const (
	StorageFile     = "file"
	StoragePostgres = "postgres"
	StorageSQLite   = "sqlite"
	StorageMemory   = "memory"
)

// Config stores all configuration of the application.
//
// The values are read by viper from a config file or environment variables.
type Config struct {
	BankName         string  `mapstructure:"BANK_NAME"`
	IncomingInterest float64 `mapstructure:"INCOMING_INTEREST"`
	OutgoingInterest float64 `mapstructure:"OUTGOING_INTEREST"`

	StorageDriver string `mapstructure:"STORAGE_DRIVER"`
	StorageRoot   string `mapstructure:"STORAGE_ROOT"`
	DBDriver      string `mapstructure:"DB_DRIVER"`
	DBSource      string `mapstructure:"DB_SOURCE"`
	SQLitePath    string `mapstructure:"SQLITE_PATH"`

	ServerAddress        string        `mapstructure:"SERVER_ADDRESS"`
	TokenType            string        `mapstructure:"TOKEN_TYPE"`
	TokenSymmetricKey    string        `mapstructure:"TOKEN_SYMMETRIC_KEY"`
	AccessTokenDuration  time.Duration `mapstructure:"ACCESS_TOKEN_DURATION"`
	OperatorUsername     string        `mapstructure:"OPERATOR_USERNAME"`
	OperatorPasswordHash string        `mapstructure:"OPERATOR_PASSWORD_HASH"`

	Environement string `mapstructure:"GO_ENV"`
}

// Load read configuration from file or environment variables.
func Load(path string) (Config, error) {
	var c Config

	v := viper.New()

	v.AddConfigPath(path)
	v.SetConfigName("app")
	v.SetConfigType("env")

	v.SetDefault("BANK_NAME", "Private Bank")
	v.SetDefault("INCOMING_INTEREST", 0.05)
	v.SetDefault("OUTGOING_INTEREST", 0.02)
	v.SetDefault("STORAGE_DRIVER", StorageFile)
	v.SetDefault("STORAGE_ROOT", "data")
	v.SetDefault("TOKEN_TYPE", "paseto")
	v.SetDefault("ACCESS_TOKEN_DURATION", 15*time.Minute)

	v.AutomaticEnv()

	err := v.ReadInConfig()
	if err != nil {
		return c, err
	}

	err = v.Unmarshal(&c)
	if err != nil {
		return c, err
	}

	return c, nil
}
