// Package config manages environment variables.
//
// It reads variables from the process environment (optionally preloaded
// from a `.env` file), maps them into structured Go types, and validates
// that required values are present so the app fails fast on bad config.
//
// Env vars are read with the EMPLOYEE_API_ prefix; after trimming the
// prefix, the first underscore nests the key:
//
//	EMPLOYEE_API_SERVER_PORT          -> server.port
//	EMPLOYEE_API_DATABASE_SSL_MODE    -> database.ssl_mode
package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	// Side-effect import: loads a `.env` file into the process env (if one
	// exists) before any env vars are read.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// envPrefix selects which environment variables belong to this app.
const envPrefix = "EMPLOYEE_API_"

// Config is the root configuration object for the application.
//
// The `koanf` tags map values from the environment; the `validate` tags are
// enforced by go-playground/validator so missing required values abort startup.
type Config struct {
	Primary  Primary        `koanf:"primary" validate:"required"`
	Server   ServerConfig   `koanf:"server" validate:"required"`
	Database DatabaseConfig `koanf:"database" validate:"required"`
}

// Primary holds top-level information about the runtime environment,
// used to tag logs and switch behavior (console logging, SQL tracing).
type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

// ServerConfig groups settings for the HTTP server runtime.
// Timeouts are stored as seconds.
type ServerConfig struct {
	Port               string   `koanf:"port" validate:"required"`
	ReadTimeout        int      `koanf:"read_timeout" validate:"required"`
	WriteTimeout       int      `koanf:"write_timeout" validate:"required"`
	IdleTimeout        int      `koanf:"idle_timeout" validate:"required"`
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins" validate:"required"`
}

// DatabaseConfig contains PostgreSQL connection parameters and pool tuning.
// Lifetime/idle values are stored as seconds.
type DatabaseConfig struct {
	Host            string `koanf:"host" validate:"required"`
	Port            int    `koanf:"port" validate:"required"`
	User            string `koanf:"user" validate:"required"`
	Password        string `koanf:"password" validate:"required"`
	Name            string `koanf:"name" validate:"required"`
	SSLMode         string `koanf:"ssl_mode" validate:"required"`
	MaxConns        int    `koanf:"max_conns" validate:"required"`
	MinConns        int    `koanf:"min_conns"`
	ConnMaxLifetime int    `koanf:"conn_max_lifetime" validate:"required"`
	ConnMaxIdleTime int    `koanf:"conn_max_idle_time" validate:"required"`
}

// Load reads configuration from environment variables, unmarshals it into
// Config, and validates it.
//
// Behavior:
//   - only env vars with the EMPLOYEE_API_ prefix are considered
//   - the first underscore after the prefix becomes the nesting delimiter
//   - comma-separated values decode into string slices
func Load() (*Config, error) {
	// "." is the key-path delimiter koanf uses to represent nesting,
	// e.g. "server.port" means Config.Server.Port.
	k := koanf.New(".")

	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		// EMPLOYEE_API_SERVER_READ_TIMEOUT -> server.read_timeout
		key := strings.ToLower(strings.TrimPrefix(s, envPrefix))
		return strings.Replace(key, "_", ".", 1)
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("loading env variables: %w", err)
	}

	// Env values are flat strings, so decoding needs two hooks beyond the
	// defaults: weak typing ("8080" -> int) and comma splitting for slices.
	mainConfig := &Config{}
	err = k.UnmarshalWithConf("", mainConfig, koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToSliceHookFunc(","),
			),
			Result:           mainConfig,
			WeaklyTypedInput: true,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(mainConfig); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return mainConfig, nil
}
