package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

/* Config is loaded from an optional .env file plus environment variables.
 * Environment values win over the file.
 */
type Config struct {
	Port                   string `mapstructure:"PORT"`
	DatabaseURL            string `mapstructure:"DATABASE_URL"`
	WebhookPath            string `mapstructure:"WEBHOOK_PATH"`
	DispatchTimeoutSeconds int    `mapstructure:"DISPATCH_TIMEOUT_SECONDS"`
	AuthSecret             string `mapstructure:"AUTH_SECRET"`
	SeedFile               string `mapstructure:"SEED_FILE"`
}

func GetConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("toml")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	// Registering defaults also makes the keys visible to AutomaticEnv
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DATABASE_URL", "")
	viper.SetDefault("WEBHOOK_PATH", "/webhook")
	viper.SetDefault("DISPATCH_TIMEOUT_SECONDS", 30)
	viper.SetDefault("AUTH_SECRET", "")
	viper.SetDefault("SEED_FILE", "")

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// No .env file is fine: everything can come from the environment
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("parsing config data: %w", err)
	}

	if config.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	return &config, nil
}

// GetDispatchTimeout returns the bounded timeout for one downstream dispatch
func (c *Config) GetDispatchTimeout() time.Duration {
	if c.DispatchTimeoutSeconds <= 0 {
		return 30 * time.Second
	}
	return time.Duration(c.DispatchTimeoutSeconds) * time.Second
}
