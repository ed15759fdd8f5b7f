package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"time"
)

const (
	BackendMemory   = "memory"
	BackendDynamoDB = "dynamodb"
	BackendSQLite   = "sqlite"
)

var validBackends = []string{BackendMemory, BackendDynamoDB, BackendSQLite}

type Config struct {
	// HTTP Server
	Port string

	// Backend selection
	DataBackend string

	// SQLite
	SQLiteDBPath string

	// Load the bundled sample records into a persistent backend at startup
	SeedSampleData bool

	// DynamoDB
	RecordsTable     string
	PaymentsTable    string
	AWSRegion        string
	DynamoDBEndpoint string

	// Read cache in front of the record store; zero disables it.
	CacheTTL time.Duration

	// Optional YAML with hospital header and invoice line template
	InvoiceProfileFile string

	// Mercado Pago
	MercadoPagoAccessToken string
	PaymentGatewayMock     bool
}

func Load() *Config {
	return &Config{
		Port:        getEnv("PORT", "8080"),
		DataBackend: strings.ToLower(getEnv("DATA_BACKEND", BackendMemory)),

		SQLiteDBPath:   getEnv("SQLITE_DB_PATH", "./data/billing.db"),
		SeedSampleData: getEnvBool("SEED_SAMPLE_DATA", false),

		RecordsTable:     getEnv("RECORDS_TABLE", "billing_records"),
		PaymentsTable:    getEnv("PAYMENTS_TABLE", "invoice_payments"),
		AWSRegion:        getEnv("AWS_REGION", "us-east-1"),
		DynamoDBEndpoint: getEnv("DYNAMODB_ENDPOINT", ""),

		CacheTTL: getEnvDuration("CACHE_TTL", 30*time.Second),

		InvoiceProfileFile: getEnv("INVOICE_PROFILE_FILE", ""),

		MercadoPagoAccessToken: getEnv("MERCADOPAGO_ACCESS_TOKEN", ""),
		PaymentGatewayMock:     IsPaymentGatewayMockEnabled(),
	}
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errs []string

	if port, err := strconv.Atoi(c.Port); err != nil {
		errs = append(errs, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		errs = append(errs, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	if !slices.Contains(validBackends, c.DataBackend) {
		errs = append(errs, fmt.Sprintf("invalid data backend '%s': must be one of %v", c.DataBackend, validBackends))
	}

	switch c.DataBackend {
	case BackendSQLite:
		if c.SQLiteDBPath == "" {
			errs = append(errs, "SQLite database path cannot be empty when using sqlite backend")
		} else if dir := filepath.Dir(c.SQLiteDBPath); dir != "." && dir != "" {
			if _, err := os.Stat(dir); os.IsNotExist(err) {
				if err := os.MkdirAll(dir, 0o755); err != nil {
					errs = append(errs, fmt.Sprintf("cannot create SQLite database directory '%s': %v", dir, err))
				}
			}
		}
	case BackendDynamoDB:
		if c.RecordsTable == "" {
			errs = append(errs, "records table cannot be empty when using dynamodb backend")
		}
		if c.PaymentsTable == "" {
			errs = append(errs, "payments table cannot be empty when using dynamodb backend")
		}
		if c.AWSRegion == "" {
			errs = append(errs, "AWS region cannot be empty when using dynamodb backend")
		}
	}

	if c.CacheTTL < 0 {
		errs = append(errs, fmt.Sprintf("invalid cache ttl %v: must not be negative", c.CacheTTL))
	} else if c.CacheTTL > time.Hour {
		errs = append(errs, fmt.Sprintf("invalid cache ttl %v: must be at most 1 hour", c.CacheTTL))
	}

	if c.InvoiceProfileFile != "" {
		if _, err := os.Stat(c.InvoiceProfileFile); os.IsNotExist(err) {
			errs = append(errs, fmt.Sprintf("invoice profile file does not exist: %s", c.InvoiceProfileFile))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errs, "\n- "))
	}
	return nil
}

// IsPaymentGatewayMockEnabled reports whether payments skip Mercado Pago.
func IsPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}
