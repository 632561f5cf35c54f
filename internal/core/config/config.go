package config

import (
	"errors"
	"fmt"
	"reflect"
	"time"

	"github.com/spf13/viper"
)

// AppConfig holds the configuration for the application.
// Tags used:
// - mapstructure: used by viper to unmarshal
// - default: default value to set if missing
// - required: if "true", error if missing
type AppConfig struct {
	// Environment specifies the runtime environment (e.g., development, production).
	Environment string `mapstructure:"APP_ENV" default:"development"`
	// LogLevel defines the logging verbosity (e.g., debug, info, error).
	LogLevel string `mapstructure:"LOG_LEVEL" default:"info"`
	// ServerPort is the port where the server will listen.
	ServerPort int `mapstructure:"SERVER_PORT" default:"8080"`
	// ReadTimeoutSeconds bounds reading a whole request.
	ReadTimeoutSeconds int `mapstructure:"SERVER_READ_TIMEOUT_SECONDS" default:"15"`
	// WriteTimeoutSeconds bounds writing a response, workbook exports included.
	WriteTimeoutSeconds int `mapstructure:"SERVER_WRITE_TIMEOUT_SECONDS" default:"60"`
	// Timezone is the IANA zone used to decide what "today" means for deviations.
	Timezone string `mapstructure:"TIMEZONE" default:"America/Sao_Paulo"`

	// Sheets holds the spreadsheet API configuration.
	Sheets SheetsConfig `mapstructure:",squash"`

	// Snapshot holds the record cache and refresh settings.
	Snapshot SnapshotConfig `mapstructure:",squash"`
}

// SheetsConfig holds the connection details of the spreadsheet-backed record store.
type SheetsConfig struct {
	// URL is the web app endpoint serving and accepting container rows.
	URL string `mapstructure:"SHEETS_API_URL" required:"true"`
	// TimeoutSeconds bounds every request to the spreadsheet API.
	TimeoutSeconds int `mapstructure:"SHEETS_TIMEOUT_SECONDS" default:"10"`
}

// SnapshotConfig controls how the container snapshot is cached and refreshed.
type SnapshotConfig struct {
	// RedisURL enables the shared snapshot cache when set.
	// Format: redis://[:password@]host[:port][/database]
	RedisURL string `mapstructure:"REDIS_URL"`
	// TTLSeconds is how long a cached snapshot stays valid.
	TTLSeconds int `mapstructure:"SNAPSHOT_TTL_SECONDS" default:"60"`
	// RefreshIntervalSeconds is the period of the background refresh. Zero disables it.
	RefreshIntervalSeconds int `mapstructure:"REFRESH_INTERVAL_SECONDS" default:"300"`
}

// ReadTimeout returns the server read timeout as a duration.
func (c *AppConfig) ReadTimeout() time.Duration {
	return time.Duration(c.ReadTimeoutSeconds) * time.Second
}

// WriteTimeout returns the server write timeout as a duration.
func (c *AppConfig) WriteTimeout() time.Duration {
	return time.Duration(c.WriteTimeoutSeconds) * time.Second
}

// Timeout returns the request timeout as a duration.
func (c SheetsConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// TTL returns the snapshot cache TTL as a duration.
func (c SnapshotConfig) TTL() time.Duration {
	return time.Duration(c.TTLSeconds) * time.Second
}

// RefreshInterval returns the background refresh period as a duration.
func (c SnapshotConfig) RefreshInterval() time.Duration {
	return time.Duration(c.RefreshIntervalSeconds) * time.Second
}

// Location resolves Timezone, falling back to the local zone when it is unknown.
func (c *AppConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}

// Load loads configuration from .env files and environment variables.
func Load(path string) (*AppConfig, error) {
	v := viper.New()

	v.AutomaticEnv()

	v.AddConfigPath(path)
	v.SetConfigName(".env")
	v.SetConfigType("env")

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config AppConfig

	if err := processTags(v, &config); err != nil {
		return nil, err
	}

	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}

	if err := validateRequired(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// processTags iterates over the struct fields, binds them to the environment
// and sets default values in Viper.
func processTags(v *viper.Viper, config interface{}) error {
	val := reflect.ValueOf(config)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	t := val.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		if field.Type.Kind() == reflect.Struct {
			if err := processTags(v, val.Field(i).Addr().Interface()); err != nil {
				return err
			}
			continue
		}

		key := field.Tag.Get("mapstructure")
		defaultValue := field.Tag.Get("default")

		if key != "" {
			if err := v.BindEnv(key); err != nil {
				return fmt.Errorf("failed to bind %s: %w", key, err)
			}
		}

		if key != "" && defaultValue != "" {
			v.SetDefault(key, defaultValue)
		}
	}
	return nil
}

// validateRequired checks if fields marked as required have non-zero values.
func validateRequired(config interface{}) error {
	val := reflect.ValueOf(config)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	t := val.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		if field.Type.Kind() == reflect.Struct {
			if err := validateRequired(val.Field(i).Addr().Interface()); err != nil {
				return err
			}
			continue
		}

		if field.Tag.Get("required") == "true" && isZero(val.Field(i)) {
			return fmt.Errorf("missing required configuration: %s", field.Tag.Get("mapstructure"))
		}
	}
	return nil
}

// isZero checks if a reflect.Value is the zero value for its type.
func isZero(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.String:
		return v.String() == ""
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() == 0
	case reflect.Slice, reflect.Map:
		return v.Len() == 0
	default:
		return v.IsZero()
	}
}
