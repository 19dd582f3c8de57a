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
	defaultStoreTimeout       = 5 * time.Second
	defaultTokenTTL           = 15 * time.Minute
	defaultDynamoTable        = "unifeast-users"
	defaultLockTTL            = 10 * time.Second
	defaultLockWait           = 3 * time.Second
)

// Store names accepted by profile.writeStore.
const (
	StorePrimary   = "primary"
	StoreSecondary = "secondary"
)

// Event publishers accepted by pubsub.provider; an empty provider disables publishing.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Auth providers accepted by auth.provider.
const (
	AuthProviderJWT      = "jwt"
	AuthProviderFirebase = "firebase"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`

		// AutoMigrate creates the profiles table on startup
		AutoMigrate bool `json:"autoMigrate" yaml:"autoMigrate"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	// Postgres backs the primary profile store
	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	// DynamoDB backs the secondary profile store
	DynamoDB *DynamoDBConfig `json:"dynamodb" yaml:"dynamodb"`

	// Profile holds the store resolution policy
	Profile *ProfileConfig `json:"profile" yaml:"profile"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	// Firebase is used when auth.provider is "firebase"
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	// Redis backs the onboarding lock; optional
	Redis *RedisConfig `json:"redis" yaml:"redis"`

	// Catalog locates the menu catalog document
	Catalog *CatalogConfig `json:"catalog" yaml:"catalog"`

	// PubSub configuration for profile event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`
}

// DynamoDBConfig defines the secondary key-value store
type DynamoDBConfig struct {
	Region    string `json:"region" yaml:"region"`
	TableName string `json:"tableName" yaml:"tableName"`

	// Endpoint overrides the service endpoint, e.g. for DynamoDB Local
	Endpoint string `json:"endpoint" yaml:"endpoint"`

	// Static credentials; when empty the default AWS credential chain is used
	AccessKeyID     string `json:"accessKeyId" yaml:"accessKeyId"`
	SecretAccessKey string `json:"secretAccessKey" yaml:"secretAccessKey"`
	SessionToken    string `json:"sessionToken" yaml:"sessionToken"`
}

// ProfileConfig defines how the two profile stores are combined
type ProfileConfig struct {
	// WriteStore is the authoritative store for creates and updates: "primary" or "secondary"
	WriteStore string `json:"writeStore" yaml:"writeStore"`

	// FallbackOnPrimaryError consults the other store when the write store fails with a backend error
	FallbackOnPrimaryError bool `json:"fallbackOnPrimaryError" yaml:"fallbackOnPrimaryError"`

	// StoreTimeout bounds every single store call
	StoreTimeout time.Duration `json:"storeTimeout" yaml:"storeTimeout"`
}

// AuthConfig defines authentication-related configuration
type AuthConfig struct {
	// Provider is "jwt" or "firebase"
	Provider  string        `json:"provider" yaml:"provider"`
	JWTSecret string        `json:"jwtSecret" yaml:"jwtSecret"`
	Issuer    string        `json:"issuer" yaml:"issuer"`
	TokenTTL  time.Duration `json:"tokenTtl" yaml:"tokenTtl"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// FirebaseConfig defines Firebase configuration for ID token verification
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
}

// RedisConfig defines the Redis connection used for onboarding locks
type RedisConfig struct {
	Addr     string `json:"addr" yaml:"addr"`
	Password string `json:"password" yaml:"password"`
	DB       int    `json:"db" yaml:"db"`

	// LockTTL is how long a lock survives a crashed holder
	LockTTL time.Duration `json:"lockTtl" yaml:"lockTtl"`

	// LockWait is how long Acquire keeps retrying before giving up
	LockWait time.Duration `json:"lockWait" yaml:"lockWait"`
}

// CatalogConfig defines where the menu catalog is read from
type CatalogConfig struct {
	// BucketURL is a gocloud.dev blob URL, e.g. file:///srv/catalog or s3://bucket?region=eu-west-2
	BucketURL string `json:"bucketUrl" yaml:"bucketUrl"`

	// Key is the object holding the catalog (.yaml, .yml or .json)
	Key string `json:"key" yaml:"key"`
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

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: POSTGRES_SSLMODE -> postgres.sslMode (not postgres.sslmode)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
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

	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	applyDefaults(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyDefaults fills optional sections so the rest of the code never sees nil.
func applyDefaults(cfg *Config) {
	if cfg.Profile == nil {
		cfg.Profile = &ProfileConfig{}
	}
	if cfg.Profile.WriteStore == "" {
		cfg.Profile.WriteStore = StorePrimary
	}
	if cfg.Profile.StoreTimeout <= 0 {
		cfg.Profile.StoreTimeout = defaultStoreTimeout
	}

	if cfg.Auth == nil {
		cfg.Auth = &AuthConfig{}
	}
	if cfg.Auth.Provider == "" {
		cfg.Auth.Provider = AuthProviderJWT
	}
	if cfg.Auth.TokenTTL <= 0 {
		cfg.Auth.TokenTTL = defaultTokenTTL
	}

	if cfg.DynamoDB != nil && cfg.DynamoDB.TableName == "" {
		cfg.DynamoDB.TableName = defaultDynamoTable
	}

	if cfg.Redis != nil {
		if cfg.Redis.LockTTL <= 0 {
			cfg.Redis.LockTTL = defaultLockTTL
		}
		if cfg.Redis.LockWait <= 0 {
			cfg.Redis.LockWait = defaultLockWait
		}
	}
}

// Validate checks the cross-field rules that koanf cannot express.
func (c *Config) Validate() error {
	if c.Profile != nil {
		switch c.Profile.WriteStore {
		case StorePrimary, StoreSecondary:
		default:
			return errors.Errorf("profile.writeStore must be %q or %q, got %q", StorePrimary, StoreSecondary, c.Profile.WriteStore)
		}
	}

	if c.Auth != nil {
		switch c.Auth.Provider {
		case AuthProviderJWT:
			if c.Auth.JWTSecret == "" {
				return errors.New("auth.jwtSecret must be provided for the jwt provider")
			}
		case AuthProviderFirebase:
			if c.Firebase == nil || c.Firebase.CredentialsPath == "" {
				return errors.New("firebase.credentialsPath must be provided for the firebase provider")
			}
		default:
			return errors.Errorf("unknown auth provider: %s", c.Auth.Provider)
		}
	}

	if c.DynamoDB == nil || c.DynamoDB.Region == "" {
		return errors.New("dynamodb.region must be provided")
	}
	if c.Postgres == nil {
		return errors.New("postgres configuration must be provided")
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
// Environment variable format: POSTGRES_REPLICAS_{index}_{field}
// Example: POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, POSTGRES_REPLICAS_0_USERNAME, POSTGRES_REPLICAS_0_PASSWORD
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			// No more replicas or incomplete configuration.
			break
		}

		replica := postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		}

		replicas = append(replicas, replica)
	}

	return replicas
}
