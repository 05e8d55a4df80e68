package internal

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	RunAddress  = "run_address"
	DatabaseURI = "database_uri"
	AuthSecret  = "auth_secret"
	Debug       = "debug"

	ShippingProvider       = "shipping.provider"
	ShippingURL            = "shipping.url"
	ShippingKey            = "shipping.key"
	ShippingClientID       = "shipping.client_id"
	ShippingTimeout        = "shipping.timeout"
	ShippingCreateEndpoint = "shipping.endpoints.create"
	ShippingStatusEndpoint = "shipping.endpoints.status"
	ShippingCancelEndpoint = "shipping.endpoints.cancel"
	ShippingCancelMethod   = "shipping.cancel_method"

	EventsAMQPURL = "events.amqp_url"
	EventsQueue   = "events.queue"

	TracingJaegerEndpoint = "tracing.jaeger_endpoint"
	TracingServiceName    = "tracing.service_name"
)

const (
	ProviderLeajlak = "leajlak"
	ProviderShadda  = "shadda"
)

const (
	defaultRunAddress      = "localhost:8080"
	defaultDatabaseURI     = "host=localhost port=5432 user=postgres password=12345 dbname=advfood sslmode=disable"
	defaultShippingTimeout = 30 * time.Second
	defaultEventsQueue     = "shipping-events"
	defaultServiceName     = "advfood"
)

type Config struct {
	RunAddress  string
	DatabaseURI string
	AuthSecret  string
	Debug       bool

	Shipping ShippingConfig
	Events   EventsConfig
	Tracing  TracingConfig
}

type ShippingConfig struct {
	Provider     string
	URL          string
	Key          string
	ClientID     string
	Timeout      time.Duration
	Endpoints    ShippingEndpoints
	CancelMethod string
}

// ShippingEndpoints are paths relative to the provider URL; "{id}" is replaced by the dispatch id.
type ShippingEndpoints struct {
	Create string
	Status string
	Cancel string
}

type EventsConfig struct {
	AMQPURL string
	Queue   string
}

type TracingConfig struct {
	JaegerEndpoint string
	ServiceName    string
}

// Validate reports a missing URL or credential before any provider call is attempted.
func (c ShippingConfig) Validate() error {
	var missing []string
	if c.URL == "" {
		missing = append(missing, "url")
	}
	if c.Key == "" {
		missing = append(missing, "key")
	}
	if strings.EqualFold(c.Provider, ProviderShadda) && c.ClientID == "" {
		missing = append(missing, "client_id")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing %s", ErrShippingNotConfigured, strings.Join(missing, ", "))
	}
	return nil
}

// LoadConfig reads .env, an optional config.yaml and the environment, in increasing priority.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("/etc/advfood")
	v.AddConfigPath(".")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault(RunAddress, defaultRunAddress)
	v.SetDefault(DatabaseURI, defaultDatabaseURI)
	v.SetDefault(ShippingProvider, ProviderLeajlak)
	v.SetDefault(ShippingTimeout, defaultShippingTimeout)
	v.SetDefault(ShippingCancelMethod, "delete")
	v.SetDefault(EventsQueue, defaultEventsQueue)
	v.SetDefault(TracingServiceName, defaultServiceName)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	return &Config{
		RunAddress:  v.GetString(RunAddress),
		DatabaseURI: v.GetString(DatabaseURI),
		AuthSecret:  v.GetString(AuthSecret),
		Debug:       v.GetBool(Debug),
		Shipping: ShippingConfig{
			Provider: strings.ToLower(v.GetString(ShippingProvider)),
			URL:      strings.TrimRight(v.GetString(ShippingURL), "/"),
			Key:      v.GetString(ShippingKey),
			ClientID: v.GetString(ShippingClientID),
			Timeout:  v.GetDuration(ShippingTimeout),
			Endpoints: ShippingEndpoints{
				Create: v.GetString(ShippingCreateEndpoint),
				Status: v.GetString(ShippingStatusEndpoint),
				Cancel: v.GetString(ShippingCancelEndpoint),
			},
			CancelMethod: strings.ToLower(v.GetString(ShippingCancelMethod)),
		},
		Events: EventsConfig{
			AMQPURL: v.GetString(EventsAMQPURL),
			Queue:   v.GetString(EventsQueue),
		},
		Tracing: TracingConfig{
			JaegerEndpoint: v.GetString(TracingJaegerEndpoint),
			ServiceName:    v.GetString(TracingServiceName),
		},
	}, nil
}

// NewConfig is LoadConfig with the server's command line flags on top. The server refuses
// to start without an auth secret.
func NewConfig() (*Config, error) {
	c, err := LoadConfig()
	if err != nil {
		return nil, err
	}

	flag.StringVar(&c.RunAddress, "a", c.RunAddress, "host to listen on")
	flag.StringVar(&c.DatabaseURI, "d", c.DatabaseURI, "postgres connection path")
	flag.StringVar(&c.Shipping.URL, "s", c.Shipping.URL, "shipping provider base url")
	flag.BoolVar(&c.Debug, "debug", c.Debug, "development logging")

	flag.Parse()

	if c.AuthSecret == "" {
		return nil, fmt.Errorf("%w: set AUTH_SECRET", ErrAuthSecretMissing)
	}
	return c, nil
}
