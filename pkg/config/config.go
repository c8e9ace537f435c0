package config

import (
	"fmt"
	"strings"

	"github.com/kelseyhightower/envconfig"
)

const (
	EnvPrefix = ""

	AppEnvDev  = "development"
	AppEnvProd = "production"
)

type Config struct {
	App     AppConfig
	Store   StoreConfig
	LocalDB LocalDBConfig
	JWT     JWTConfig
	Admin   AdminConfig
	Genai   GenaiConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Store.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"AQUASTORE_APP_ENV" default:"development"`
	Port         string `envconfig:"AQUASTORE_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"AQUASTORE_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"AQUASTORE_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

// StoreConfig carries the storefront identity and commerce constants.
type StoreConfig struct {
	Name              string  `envconfig:"AQUASTORE_STORE_NAME" default:"MVS Aqua"`
	WhatsAppNumber    string  `envconfig:"AQUASTORE_STORE_WHATSAPP" default:"9490255775"`
	GPayNumber        string  `envconfig:"AQUASTORE_STORE_GPAY" default:"9490255775"`
	Instagram         string  `envconfig:"AQUASTORE_STORE_INSTAGRAM" default:"mvs_aqua"`
	YouTube           string  `envconfig:"AQUASTORE_STORE_YOUTUBE" default:"mvs_aqua"`
	Address           string  `envconfig:"AQUASTORE_STORE_ADDRESS" default:"15 Line, Upadhyaya Nagar, Tirupati, Andhra Pradesh 517507"`
	TrackingURL       string  `envconfig:"AQUASTORE_STORE_TRACKING_URL" default:"https://www.tpcindia.com/"`
	ShippingRatePerKg float64 `envconfig:"AQUASTORE_STORE_SHIPPING_RATE_PER_KG" default:"80"`
}

func (s StoreConfig) validate() error {
	if s.ShippingRatePerKg < 0 {
		return fmt.Errorf("shipping rate per kg must be non-negative")
	}
	if strings.TrimSpace(s.WhatsAppNumber) == "" {
		return fmt.Errorf("store whatsapp number is required")
	}
	return nil
}

// LocalDBConfig locates the profile-local document storage.
type LocalDBConfig struct {
	Dir string `envconfig:"AQUASTORE_LOCALDB_DIR" default:"./data"`
}

type JWTConfig struct {
	Secret            string `envconfig:"AQUASTORE_JWT_SECRET" required:"true"`
	Issuer            string `envconfig:"AQUASTORE_JWT_ISSUER" default:"aquastore"`
	ExpirationMinutes int    `envconfig:"AQUASTORE_JWT_EXPIRATION_MINUTES" default:"720"`
}

// AdminConfig is the static credential pair backing the demo-grade admin
// gate. It feeds the default Authenticator; swapping in a real credential
// store replaces that implementation, not this config.
type AdminConfig struct {
	Username string `envconfig:"AQUASTORE_ADMIN_USERNAME" default:"admin"`
	Password string `envconfig:"AQUASTORE_ADMIN_PASSWORD" default:"admin"`
	Email    string `envconfig:"AQUASTORE_ADMIN_EMAIL" default:"admin@mvs.aqua"`
}

type GenaiConfig struct {
	APIKey string `envconfig:"AQUASTORE_GENAI_API_KEY"`
	Model  string `envconfig:"AQUASTORE_GENAI_MODEL" default:"gemini-2.5-flash"`
}
