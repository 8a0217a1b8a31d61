package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const (
	// EnvPrefix scopes environment overrides, e.g. CPA_AI_APIKEY -> ai.apiKey.
	EnvPrefix = "CPA_"
	// DefaultSessionSecret is the publicly known placeholder shipped in config.yaml.
	DefaultSessionSecret = "default-secret-key-change-in-production"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port     int `json:"port" yaml:"port"`
		Timeouts struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Session SessionConfig `json:"session" yaml:"session"`
	Auth    AuthConfig    `json:"auth" yaml:"auth"`
	AI      AIConfig      `json:"ai" yaml:"ai"`

	Database struct {
		URL string `json:"url" yaml:"url"`
	} `json:"database" yaml:"database"`

	Uploads struct {
		Dir string `json:"dir" yaml:"dir"`
	} `json:"uploads" yaml:"uploads"`

	Home struct {
		SlideInterval time.Duration `json:"slideInterval" yaml:"slideInterval"`
	} `json:"home" yaml:"home"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// SessionConfig configures the signed cookie holding the signed-in user.
type SessionConfig struct {
	Secret string `json:"secret" yaml:"secret"`
	MaxAge int    `json:"maxAge" yaml:"maxAge"`
	Secure bool   `json:"secure" yaml:"secure"`
}

// AuthConfig defines the login policy.
type AuthConfig struct {
	// AdminPassword is hashed at startup when AdminPasswordHash is empty.
	AdminPassword     string `json:"adminPassword" yaml:"adminPassword"`
	AdminPasswordHash string `json:"adminPasswordHash" yaml:"adminPasswordHash"`
	DonorPasswordless bool   `json:"donorPasswordless" yaml:"donorPasswordless"`
}

// AIConfig defines the generative text service used for report assessments.
type AIConfig struct {
	APIKey   string        `json:"apiKey" yaml:"apiKey"`
	Model    string        `json:"model" yaml:"model"`
	Endpoint string        `json:"endpoint" yaml:"endpoint"`
	Timeout  time.Duration `json:"timeout" yaml:"timeout"`
}

// Load reads <name>.yaml from the first of dirs that has it, then applies CPA_*
// environment overrides.
func Load(name string, dirs ...string) (*Config, error) {
	path, err := findFile(name+".yaml", dirs)
	if err != nil {
		return nil, err
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}

	known := k.Raw()
	if err := k.Load(env.Provider(".", env.Opt{
		Prefix: EnvPrefix,
		TransformFunc: func(key, v string) (string, any) {
			// CPA_SESSION_MAXAGE -> session.maxAge
			return envKey(strings.TrimPrefix(key, EnvPrefix), known), v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env overrides")
	}

	cfg := new(Config)
	if err := k.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
			MatchName:        strings.EqualFold,
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "decode %s", path)
	}

	return cfg, nil
}

// New loads config/config.yaml and fills the defaults the portal cannot run without.
func New() (*Config, error) {
	cfg, err := Load("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	applyFallbacks(cfg)

	return cfg, nil
}

// InsecureSessionSecret reports whether session cookies are signed with the shipped secret.
func (c *Config) InsecureSessionSecret() bool {
	return c.Session.Secret == DefaultSessionSecret
}

func findFile(name string, dirs []string) (string, error) {
	for _, dir := range dirs {
		candidate := filepath.Join(dir, name)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}
	return "", errors.Errorf("config file %s not found in %v", name, dirs)
}

// legacyEnv copies an unprefixed variable into target unless its CPA_ form is set.
// Precedence is CPA_<current>, then <legacy>, then the yaml value.
func legacyEnv(target *string, legacy, current string) {
	if os.Getenv(EnvPrefix+current) != "" {
		return
	}
	if v := os.Getenv(legacy); v != "" {
		*target = v
	}
}

// applyFallbacks honours the plain variable names used by earlier deployments.
func applyFallbacks(cfg *Config) {
	legacyEnv(&cfg.AI.APIKey, "GEMINI_API_KEY", "AI_APIKEY")
	legacyEnv(&cfg.Session.Secret, "SESSION_SECRET", "SESSION_SECRET")
	legacyEnv(&cfg.Database.URL, "DATABASE_URL", "DATABASE_URL")

	if cfg.HTTP.Port == 0 {
		cfg.HTTP.Port = 5000
	}
	if cfg.Session.Secret == "" {
		cfg.Session.Secret = DefaultSessionSecret
	}
	if cfg.Session.MaxAge == 0 {
		cfg.Session.MaxAge = 86400 * 7
	}
	if cfg.AI.Model == "" {
		cfg.AI.Model = "gemini-2.5-flash"
	}
	if cfg.AI.Endpoint == "" {
		cfg.AI.Endpoint = "https://generativelanguage.googleapis.com/v1beta"
	}
	if cfg.AI.Timeout == 0 {
		cfg.AI.Timeout = 30 * time.Second
	}
	if cfg.Uploads.Dir == "" {
		cfg.Uploads.Dir = "uploads"
	}
	if cfg.Home.SlideInterval == 0 {
		cfg.Home.SlideInterval = 6 * time.Second
	}
}

// envKey maps an underscore separated variable name onto the dotted yaml path,
// restoring the yaml key's casing where the segment is already known.
func envKey(raw string, known map[string]any) string {
	parts := strings.Split(strings.ToLower(raw), "_")
	path := make([]string, 0, len(parts))

	for _, part := range parts {
		if part == "" {
			continue
		}

		key := part
		var next map[string]any
		for k, v := range known {
			if strings.EqualFold(k, part) {
				key = k
				next, _ = v.(map[string]any)
				break
			}
		}

		path = append(path, key)
		known = next
	}

	return strings.Join(path, ".")
}
