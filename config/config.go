package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"
	defaultFreeDeviceLimit    = 1
	defaultDeviceIDHeader     = "X-Device-Id"
	defaultDeviceInfoHeader   = "X-Device-Info"
	defaultStatusCacheTTL     = 30 * time.Second
	defaultHookSecretHeader   = "X-Hook-Secret"
)

// Ownership conflict policies for a device id already registered to another account.
const (
	OwnershipConflictReject   = "reject"
	OwnershipConflictTransfer = "transfer"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		HookPort           int    `json:"hookPort" yaml:"hookPort"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	SecretKey struct {
		Access string `json:"access" yaml:"access"`
	} `json:"secretKey" yaml:"secretKey"`

	// Device configures the device registry policy and its request headers
	Device *DeviceConfig `json:"device" yaml:"device"`

	// Subscription configures which snapshot statuses count as subscribed
	Subscription *SubscriptionConfig `json:"subscription" yaml:"subscription"`

	// Hook configures the identity provider pre-authentication hook endpoint
	Hook *HookConfig `json:"hook" yaml:"hook"`

	// Redis is optional; without it subscription status is read from the store on every request
	Redis *RedisConfig `json:"redis" yaml:"redis"`

	// PubSub configuration for device events
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// DeviceConfig defines the free-tier device limit and how devices are identified on requests
type DeviceConfig struct {
	FreeLimit         int    `json:"freeLimit" yaml:"freeLimit"`
	OwnershipConflict string `json:"ownershipConflict" yaml:"ownershipConflict"`
	IDHeader          string `json:"idHeader" yaml:"idHeader"`
	InfoHeader        string `json:"infoHeader" yaml:"infoHeader"`
}

// SubscriptionConfig defines the statuses each enforcement point treats as a paid tier
type SubscriptionConfig struct {
	GateStatuses []string      `json:"gateStatuses" yaml:"gateStatuses"`
	HookStatuses []string      `json:"hookStatuses" yaml:"hookStatuses"`
	CacheTTL     time.Duration `json:"cacheTTL" yaml:"cacheTTL"`
}

// HookConfig defines the pre-authentication hook settings
type HookConfig struct {
	Secret       string `json:"secret" yaml:"secret"`
	SecretHeader string `json:"secretHeader" yaml:"secretHeader"`
	RateLimit    struct {
		Requests int           `json:"requests" yaml:"requests"`
		Window   time.Duration `json:"window" yaml:"window"`
		Burst    int           `json:"burst" yaml:"burst"`
		TTL      time.Duration `json:"ttl" yaml:"ttl"`
	} `json:"rateLimit" yaml:"rateLimit"`
}

// RedisConfig defines the connection used for the subscription status cache
type RedisConfig struct {
	Addr     string `json:"addr" yaml:"addr"`
	Password string `json:"password" yaml:"password"`
	DB       int    `json:"db" yaml:"db"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			searchPaths = append(searchPaths, filepath.Join(pwd, path))
		}
	}

	var configFile string
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate

			break
		}
	}

	if configFile == "" {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// HOOK_RATELIMIT_BURST -> hook.rateLimit.burst
			return canonicalizeEnvKey(k, existingConfigMap), v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

// ApplyDefaults fills every optional section so callers never nil-check them.
func (cfg *Config) ApplyDefaults() {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}
	if cfg.HTTP.HookPort == 0 {
		cfg.HTTP.HookPort = cfg.HTTP.Port + 1
	}

	if cfg.Device == nil {
		cfg.Device = &DeviceConfig{}
	}
	if cfg.Device.FreeLimit <= 0 {
		cfg.Device.FreeLimit = defaultFreeDeviceLimit
	}
	if cfg.Device.OwnershipConflict == "" {
		cfg.Device.OwnershipConflict = OwnershipConflictReject
	}
	if cfg.Device.IDHeader == "" {
		cfg.Device.IDHeader = defaultDeviceIDHeader
	}
	if cfg.Device.InfoHeader == "" {
		cfg.Device.InfoHeader = defaultDeviceInfoHeader
	}

	if cfg.Subscription == nil {
		cfg.Subscription = &SubscriptionConfig{}
	}
	if len(cfg.Subscription.GateStatuses) == 0 {
		cfg.Subscription.GateStatuses = []string{"active"}
	}
	if len(cfg.Subscription.HookStatuses) == 0 {
		cfg.Subscription.HookStatuses = []string{"active", "trialing"}
	}
	if cfg.Subscription.CacheTTL <= 0 {
		cfg.Subscription.CacheTTL = defaultStatusCacheTTL
	}

	if cfg.Hook == nil {
		cfg.Hook = &HookConfig{}
	}
	if cfg.Hook.SecretHeader == "" {
		cfg.Hook.SecretHeader = defaultHookSecretHeader
	}
}

// Validate rejects configurations the access gate cannot run with.
func (cfg *Config) Validate() error {
	switch cfg.Device.OwnershipConflict {
	case OwnershipConflictReject, OwnershipConflictTransfer:
	default:
		return errors.Errorf("unknown device ownership conflict policy: %s", cfg.Device.OwnershipConflict)
	}

	if cfg.SecretKey.Access == "" {
		return errors.New("secretKey.access must be provided")
	}

	return nil
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Format: POSTGRES_REPLICAS_{index}_{HOST|PORT|USERNAME|PASSWORD}
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			break
		}

		replicas = append(replicas, postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		})
	}

	return replicas
}
