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
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "10MB"
	defaultLandingPath        = "/folder.html"
	defaultStateTTL           = 15 * time.Minute
	defaultDatabaseDriver     = DatabaseDriverPostgres
)

const (
	DatabaseDriverPostgres = "postgres"
	DatabaseDriverSQLite   = "sqlite"
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
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		// StaticDir serves the dashboard assets for every non-API path when set.
		StaticDir string `json:"staticDir" yaml:"staticDir"`
		Timeouts  struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	App AppConfig `json:"app" yaml:"app"`

	Tenancy TenancyConfig `json:"tenancy" yaml:"tenancy"`

	Database DatabaseConfig `json:"database" yaml:"database"`

	Postgres *PostgresConfig `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	State StateConfig `json:"state" yaml:"state"`

	Secrets SecretsConfig `json:"secrets" yaml:"secrets"`

	Providers ProvidersConfig `json:"providers" yaml:"providers"`

	Generative *GenerativeConfig `json:"generative" yaml:"generative"`

	// PubSub configuration for link event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// AppConfig describes where the browser comes from and where it goes back to.
type AppConfig struct {
	// PublicBaseURL is the externally reachable origin, used for OAuth callback URLs.
	PublicBaseURL string `json:"publicBaseUrl" yaml:"publicBaseUrl"`
	// LandingPath is the page the browser lands on after a successful link.
	LandingPath string `json:"landingPath" yaml:"landingPath"`
}

// TenancyConfig switches between single-tenant (global) and per-owner workspaces.
type TenancyConfig struct {
	MultiTenant bool `json:"multiTenant" yaml:"multiTenant"`
}

type DatabaseConfig struct {
	// Driver is "postgres" or "sqlite".
	Driver string `json:"driver" yaml:"driver"`
	// SQLitePath is the DSN used by the sqlite driver.
	SQLitePath  string `json:"sqlitePath" yaml:"sqlitePath"`
	AutoMigrate bool   `json:"autoMigrate" yaml:"autoMigrate"`
}

// PostgresConfig is the primary/replica connection layout.
type PostgresConfig struct {
	Master          ConnectionConfig   `json:"master" yaml:"master"`
	Replicas        []ConnectionConfig `json:"replicas" yaml:"replicas"`
	Database        string             `json:"database" yaml:"database"`
	SSLMode         string             `json:"sslMode" yaml:"sslMode"`
	TimeZone        string             `json:"timeZone" yaml:"timeZone"`
	MaxIdleConns    int                `json:"maxIdleConns" yaml:"maxIdleConns"`
	MaxOpenConns    int                `json:"maxOpenConns" yaml:"maxOpenConns"`
	ConnMaxLifetime time.Duration      `json:"connMaxLifetime" yaml:"connMaxLifetime"`
}

type ConnectionConfig struct {
	Host     string `json:"host" yaml:"host"`
	Port     string `json:"port" yaml:"port"`
	UserName string `json:"userName" yaml:"userName"`
	Password string `json:"password" yaml:"password"`
}

// StateConfig controls the signed OAuth state token.
type StateConfig struct {
	SigningKey string        `json:"signingKey" yaml:"signingKey"`
	TTL        time.Duration `json:"ttl" yaml:"ttl"`
}

// SecretsConfig selects the keeper used to encrypt stored credentials.
// An empty KeeperURL stores credentials as plaintext.
type SecretsConfig struct {
	KeeperURL string `json:"keeperUrl" yaml:"keeperUrl"`
}

type ProvidersConfig struct {
	YouTube  *YouTubeConfig  `json:"youtube" yaml:"youtube"`
	TikTok   *TikTokConfig   `json:"tiktok" yaml:"tiktok"`
	Facebook *FacebookConfig `json:"facebook" yaml:"facebook"`
}

type YouTubeConfig struct {
	ClientID     string `json:"clientId" yaml:"clientId"`
	ClientSecret string `json:"clientSecret" yaml:"clientSecret"`
	// APIEndpoint overrides the YouTube Data API base path.
	APIEndpoint string `json:"apiEndpoint" yaml:"apiEndpoint"`
	// AuthURL and TokenURL override the Google OAuth endpoints.
	AuthURL  string `json:"authUrl" yaml:"authUrl"`
	TokenURL string `json:"tokenUrl" yaml:"tokenUrl"`
}

type TikTokConfig struct {
	ClientKey    string `json:"clientKey" yaml:"clientKey"`
	ClientSecret string `json:"clientSecret" yaml:"clientSecret"`
	AuthURL      string `json:"authUrl" yaml:"authUrl"`
	APIBaseURL   string `json:"apiBaseUrl" yaml:"apiBaseUrl"`
}

type FacebookConfig struct {
	AppID        string `json:"appId" yaml:"appId"`
	AppSecret    string `json:"appSecret" yaml:"appSecret"`
	GraphVersion string `json:"graphVersion" yaml:"graphVersion"`
	DialogURL    string `json:"dialogUrl" yaml:"dialogUrl"`
	GraphBaseURL string `json:"graphBaseUrl" yaml:"graphBaseUrl"`
}

// GenerativeConfig defines the text model used for SEO suggestions.
type GenerativeConfig struct {
	APIKey   string `json:"apiKey" yaml:"apiKey"`
	Model    string `json:"model" yaml:"model"`
	Endpoint string `json:"endpoint" yaml:"endpoint"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "noop", "local" for local HTTP or "google" for Google Pub/Sub
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
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

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

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// PROVIDERS_YOUTUBE_CLIENTID -> providers.youtube.clientId
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
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

	applyDefaults(cfg)

	if cfg.Postgres != nil {
		if replicas := buildReplicasFromEnv(); len(replicas) > 0 {
			cfg.Postgres.Replicas = replicas
		}
	}

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}
	if strings.TrimSpace(cfg.App.LandingPath) == "" {
		cfg.App.LandingPath = defaultLandingPath
	}
	cfg.App.PublicBaseURL = strings.TrimRight(cfg.App.PublicBaseURL, "/")
	if cfg.State.TTL <= 0 {
		cfg.State.TTL = defaultStateTTL
	}
	if strings.TrimSpace(cfg.Database.Driver) == "" {
		cfg.Database.Driver = defaultDatabaseDriver
	}
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
func buildReplicasFromEnv() []ConnectionConfig {
	var replicas []ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			break
		}

		replicas = append(replicas, ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		})
	}

	return replicas
}
