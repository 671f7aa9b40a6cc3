package config

import (
	"errors"
	"fmt"
	"io/fs"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Catalog        CatalogConfig        `mapstructure:"catalog"`
	Cache          CacheConfig          `mapstructure:"cache"`
	Recommendation RecommendationConfig `mapstructure:"recommendation"`
	Log            LogConfig            `mapstructure:"log"`
}

// CatalogConfig points at the dataset the catalog is loaded from
type CatalogConfig struct {
	Path   string `mapstructure:"path" validate:"required"`
	Format string `mapstructure:"format" validate:"oneof=json csv"`
}

// CacheConfig holds cache-related configuration
type CacheConfig struct {
	Type     string        `mapstructure:"type" validate:"oneof=memory redis"`
	RedisURL string        `mapstructure:"redis_url" validate:"required_if=Type redis"`
	TTL      time.Duration `mapstructure:"ttl" validate:"gte=0"`
}

// RecommendationConfig tunes the quiz recommendation engine
type RecommendationConfig struct {
	Limit           int  `mapstructure:"limit" validate:"gte=1,lte=100"`
	RankByRelevance bool `mapstructure:"rank_by_relevance"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string `mapstructure:"level" validate:"oneof=trace debug info warn error"`
	Format string `mapstructure:"format" validate:"oneof=console json"`
}

// Load loads configuration from environment variables (including a local
// .env file) and an optional scentlens.yaml. Environment wins over the file.
func Load() (*Config, error) {
	if err := loadEnvFile(); err != nil {
		return nil, err
	}

	v := viper.New()

	v.SetConfigName("scentlens")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/scentlens/")

	// SCENTLENS_CACHE_REDIS_URL -> cache.redis_url
	v.SetEnvPrefix("SCENTLENS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	config.Catalog.Format = strings.ToLower(config.Catalog.Format)
	config.Cache.Type = strings.ToLower(config.Cache.Type)
	config.Log.Level = strings.ToLower(config.Log.Level)
	config.Log.Format = strings.ToLower(config.Log.Format)

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// loadEnvFile reads .env into the process environment. Variables that are
// already set keep their value.
func loadEnvFile() error {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("error loading .env: %w", err)
	}
	return nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("catalog.path", "data/fragrances.json")
	v.SetDefault("catalog.format", "json")

	v.SetDefault("cache.type", "memory")
	v.SetDefault("cache.redis_url", "")
	v.SetDefault("cache.ttl", "24h")

	v.SetDefault("recommendation.limit", 5)
	v.SetDefault("recommendation.rank_by_relevance", false)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
}

var structValidator = newValidator()

// newValidator reports fields by their config key instead of the Go name
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		if name := fld.Tag.Get("mapstructure"); name != "" {
			return name
		}
		return fld.Name
	})
	return v
}

// validate checks the struct tags and reports the first failing field
func validate(config *Config) error {
	err := structValidator.Struct(config)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	fe := fieldErrs[0]
	switch fe.Tag() {
	case "required", "required_if":
		return fmt.Errorf("%s is required", fieldKey(fe))
	case "oneof":
		return fmt.Errorf("%s must be one of [%s], got: %v", fieldKey(fe), fe.Param(), fe.Value())
	default:
		return fmt.Errorf("%s failed %s=%s, got: %v", fieldKey(fe), fe.Tag(), fe.Param(), fe.Value())
	}
}

// fieldKey drops the root type from the namespace: "Config.cache.redis_url" -> "cache.redis_url"
func fieldKey(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		ns = ns[i+1:]
	}
	return ns
}
