package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/newsboard/newsboard-api/internal/domain"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable, e.g.
// NEWSBOARD_DATABASE_URL for database.url.
const EnvPrefix = "NEWSBOARD"

// Load reads configuration from defaults, an optional config.yaml (working
// directory or /etc/newsboard), an optional .env file and environment
// variables, in increasing order of precedence. The result is validated
// before it is returned.
func Load() (*Config, error) {
	// A missing .env file is the normal case outside local development.
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/newsboard")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	bindEnv(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("server.log_format", "json")
	v.SetDefault("server.shutdown_timeout_seconds", 10)

	v.SetDefault("database.max_open_conns", 10)
	v.SetDefault("database.max_idle_conns", 5)
	v.SetDefault("database.conn_max_lifetime_minutes", 5)

	v.SetDefault("article.default_image_url", domain.DefaultArticleImageURL)
}

// bindEnv registers keys without defaults so AutomaticEnv picks them up
// during Unmarshal.
func bindEnv(v *viper.Viper) {
	for _, key := range []string{"database.url"} {
		_ = v.BindEnv(key)
	}
}
