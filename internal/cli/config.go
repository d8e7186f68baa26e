package cli

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"

	"github.com/jasonlovesdoggo/gitsocial/pkg/card"
	errs "github.com/jasonlovesdoggo/gitsocial/pkg/errors"
	"github.com/jasonlovesdoggo/gitsocial/pkg/palette"
)

// Cache backends accepted in [cache] backend.
const (
	backendFile  = "file"
	backendRedis = "redis"
	backendNone  = "none"
)

// Config is the on-disk configuration. Flags override every field.
type Config struct {
	Theme     string       `toml:"theme" validate:"omitempty,theme"`
	Styles    []string     `toml:"styles" validate:"omitempty,dive,style"`
	Width     int          `toml:"width" validate:"gte=0,lte=8192"`
	Height    int          `toml:"height" validate:"gte=0,lte=8192"`
	OutputDir string       `toml:"output_dir"`
	Cache     CacheConfig  `toml:"cache"`
	GitHub    GitHubConfig `toml:"github"`
	Render    RenderConfig `toml:"render"`
}

// CacheConfig selects and configures the HTTP and avatar cache.
type CacheConfig struct {
	Backend  string   `toml:"backend" validate:"omitempty,oneof=file redis none"`
	Dir      string   `toml:"dir"`
	RedisURL string   `toml:"redis_url" validate:"omitempty,url"`
	TTL      duration `toml:"ttl"`
}

// GitHubConfig configures the GitHub client.
type GitHubConfig struct {
	// TokenEnv names the environment variable holding the API token.
	TokenEnv string `toml:"token_env"`
	APIURL   string `toml:"api_url" validate:"omitempty,url"`
}

// RenderConfig configures drawing.
type RenderConfig struct {
	FontFile      string   `toml:"font_file"`
	AvatarTimeout duration `toml:"avatar_timeout"`
}

// duration decodes TOML strings such as "90s" or "24h".
type duration struct {
	time.Duration
}

func (d *duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	if v < 0 {
		return errors.New("duration must not be negative")
	}
	d.Duration = v
	return nil
}

func (d duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// defaultConfigPath returns ~/.config/gitsocial/config.toml (or the
// platform equivalent).
func defaultConfigPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, appName, "config.toml"), nil
}

// loadConfig reads and validates the config at path. An empty path reads the
// default location, where a missing file yields the zero Config. An
// explicitly named file must exist.
func loadConfig(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		p, err := defaultConfigPath()
		if err != nil {
			return &Config{}, nil
		}
		path = p
	}

	var cfg Config
	md, err := toml.DecodeFile(path, &cfg)
	if errors.Is(err, fs.ErrNotExist) {
		if explicit {
			return nil, errs.Wrap(errs.ErrCodeFileNotFound, err, "config file %s", path)
		}
		return &Config{}, nil
	}
	if err != nil {
		return nil, errs.Wrap(errs.ErrCodeInvalidFormat, err, "parse config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, errs.New(errs.ErrCodeInvalidInput, "config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if err := validateConfig(&cfg); err != nil {
		return nil, errs.Wrap(errs.GetCode(err), err, "config %s", path)
	}
	return &cfg, nil
}

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("theme", func(fl validator.FieldLevel) bool {
			_, err := palette.ParseTheme(fl.Field().String())
			return err == nil
		})

		_ = v.RegisterValidation("style", func(fl validator.FieldLevel) bool {
			_, err := card.ParseStyle(fl.Field().String())
			return err == nil
		})

		validateInst = v
	})
	return validateInst
}

// validateConfig performs schema and cross-field validation.
func validateConfig(cfg *Config) error {
	if err := validatorInstance().Struct(cfg); err != nil {
		return convertValidationError(err)
	}
	if cfg.Cache.Backend == backendRedis && cfg.Cache.RedisURL == "" {
		return errs.New(errs.ErrCodeInvalidInput, "cache.redis_url is required when cache.backend is redis")
	}
	return nil
}

func convertValidationError(err error) error {
	var ves validator.ValidationErrors
	if errors.As(err, &ves) {
		ve := ves[0]
		field := tomlishFieldName(ve)
		switch ve.Tag() {
		case "theme":
			return errs.New(errs.ErrCodeUnknownTheme, "%s: unknown theme %q", field, ve.Value())
		case "style":
			return errs.New(errs.ErrCodeUnknownStyle, "%s: unknown style %q", field, ve.Value())
		}
		return errs.New(errs.ErrCodeInvalidInput, "%s failed validation for tag '%s'", field, ve.Tag())
	}
	return errs.Wrap(errs.ErrCodeInvalidInput, err, "validate config")
}

// tomlishFieldName turns "Config.Cache.RedisURL" into "cache.redisurl".
func tomlishFieldName(fe validator.FieldError) string {
	parts := strings.Split(fe.StructNamespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	for i, p := range parts {
		parts[i] = strings.ToLower(p)
	}
	return strings.Join(parts, ".")
}

// githubToken returns the API token from the configured variable, falling
// back to GITHUB_TOKEN.
func (cfg *Config) githubToken() string {
	if cfg.GitHub.TokenEnv != "" {
		if t := os.Getenv(cfg.GitHub.TokenEnv); t != "" {
			return t
		}
	}
	return os.Getenv("GITHUB_TOKEN")
}
