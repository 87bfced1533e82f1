// Package config loads service settings: built-in defaults, then an optional
// YAML file, then environment variables.
package config

import (
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Server  Server  `yaml:"server"`
	Storage Storage `yaml:"storage"`
	AI      AI      `yaml:"ai"`
	Editor  Editor  `yaml:"editor"`
	Log     Log     `yaml:"log"`
}

type Server struct {
	Port string `yaml:"port"`
	// RemoteURL points sessions at another résumé service instead of the
	// in-process one.
	RemoteURL string `yaml:"remoteURL"`
}

type Storage struct {
	Backend       string        `yaml:"backend"` // file, postgres
	DataDir       string        `yaml:"dataDir"`
	PostgresDsn   string        `yaml:"postgresDsn"`
	RedisAddr     string        `yaml:"redisAddr"`
	RedisPassword string        `yaml:"redisPassword"`
	RedisDB       int           `yaml:"redisDB"`
	CacheTTL      time.Duration `yaml:"cacheTTL"`
}

type AI struct {
	ServiceURL  string `yaml:"serviceURL"`
	Language    string `yaml:"language"`
	GitHubToken string `yaml:"githubToken"`
}

type Editor struct {
	SessionTTL     time.Duration `yaml:"sessionTTL"`
	RemoveDelay    time.Duration `yaml:"removeDelay"`
	OutputDir      string        `yaml:"outputDir"`
	DefaultVariant string        `yaml:"defaultVariant"`
	ChromePath     string        `yaml:"chromePath"`
}

type Log struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // json, text
}

const (
	BackendFile     = "file"
	BackendPostgres = "postgres"
)

func Default() Config {
	return Config{
		Server: Server{Port: "3000"},
		Storage: Storage{
			Backend:  BackendFile,
			DataDir:  "resume-data",
			CacheTTL: 10 * time.Minute,
		},
		AI: AI{
			ServiceURL: "http://ai-service:8000",
			Language:   "en",
		},
		Editor: Editor{
			SessionTTL:     30 * time.Minute,
			RemoveDelay:    300 * time.Millisecond,
			OutputDir:      "resume-data",
			DefaultVariant: "classic",
		},
		Log: Log{Level: "info", Format: "json"},
	}
}

// Load reads path over the defaults and applies environment overrides. An
// empty path skips the file.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		file, err := os.Open(path)
		if err != nil {
			return Config{}, err
		}
		defer file.Close()
		if err := yaml.NewDecoder(file).Decode(&cfg); err != nil && err != io.EOF {
			return Config{}, errors.Wrapf(err, "decode %s", path)
		}
	}
	if err := cfg.applyEnv(os.Getenv); err != nil {
		return Config{}, err
	}
	return cfg, cfg.Validate()
}

func (c *Config) applyEnv(getenv func(string) string) error {
	str := func(key string, dst *string) {
		if v := getenv(key); v != "" {
			*dst = v
		}
	}
	str("PORT", &c.Server.Port)
	str("RESUME_SERVICE_URL", &c.Server.RemoteURL)
	str("STORAGE_BACKEND", &c.Storage.Backend)
	str("DATA_DIR", &c.Storage.DataDir)
	str("JOBS_DATABASE_URL", &c.Storage.PostgresDsn)
	str("REDIS_ADDR", &c.Storage.RedisAddr)
	str("REDIS_PASSWORD", &c.Storage.RedisPassword)
	str("AI_SERVICE_URL", &c.AI.ServiceURL)
	str("AI_LANGUAGE", &c.AI.Language)
	str("GITHUB_TOKEN", &c.AI.GitHubToken)
	str("OUTPUT_DIR", &c.Editor.OutputDir)
	str("DEFAULT_VARIANT", &c.Editor.DefaultVariant)
	str("CHROME_PATH", &c.Editor.ChromePath)
	str("LOG_LEVEL", &c.Log.Level)
	str("LOG_FORMAT", &c.Log.Format)

	if v := getenv("REDIS_DB"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return errors.Wrap(err, "REDIS_DB")
		}
		c.Storage.RedisDB = n
	}
	if v := getenv("SESSION_TTL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return errors.Wrap(err, "SESSION_TTL")
		}
		c.Editor.SessionTTL = d
	}
	if v := getenv("REMOVE_DELAY"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return errors.Wrap(err, "REMOVE_DELAY")
		}
		c.Editor.RemoveDelay = d
	}
	return nil
}

func (c Config) Validate() error {
	switch c.Storage.Backend {
	case BackendFile, BackendPostgres:
	default:
		return errors.Errorf("unknown storage backend %q", c.Storage.Backend)
	}
	if c.Editor.SessionTTL <= 0 {
		return errors.New("session TTL must be positive")
	}
	if c.Editor.RemoveDelay < 0 {
		return errors.New("remove delay must not be negative")
	}
	return nil
}

// Logger builds the process logger from the log settings.
func (c Config) Logger(w io.Writer) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}
	if strings.EqualFold(c.Log.Format, "text") {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}
