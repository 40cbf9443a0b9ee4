package configurations

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

const (
	// HistoryDriverMemory keeps the query history in process memory.
	HistoryDriverMemory = "memory"
	// HistoryDriverPostgres persists the query history in PostgreSQL.
	HistoryDriverPostgres = "postgres"
)

// QueryHistoryConfiguration defines a struct with required environment variables for the query history.
type QueryHistoryConfiguration struct {
	Driver     string `envconfig:"HISTORY_DRIVER" default:"memory"`
	Capacity   int    `envconfig:"HISTORY_CAPACITY" default:"128"`
	DBHost     string `envconfig:"HISTORY_DB_HOST" default:"localhost"`
	DBName     string `envconfig:"HISTORY_DB_NAME" default:"search_service"`
	DBUser     string `envconfig:"HISTORY_DB_USER" default:""`
	DBPassword string `envconfig:"HISTORY_DB_PASSWORD" default:""`
	DBSSLMode  string `envconfig:"HISTORY_DB_SSL_MODE" default:"disable"`
}

// LoadFromEnvVars from the query history.
func (hc *QueryHistoryConfiguration) LoadFromEnvVars() error {
	if err := envconfig.Process("", hc); err != nil {
		return err
	}

	if hc.Driver != HistoryDriverMemory && hc.Driver != HistoryDriverPostgres {
		return fmt.Errorf("unknown history driver: %s", hc.Driver)
	}

	return nil
}
