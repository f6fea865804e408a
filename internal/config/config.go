package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Env       string          `yaml:"env"`
	Server    ServerConfig    `yaml:"server"`
	Log       LogConfig       `yaml:"log"`
	Storage   StorageConfig   `yaml:"storage"`
	Auth      AuthConfig      `yaml:"auth"`
	Annotator AnnotatorConfig `yaml:"annotator"`
}

type ServerConfig struct {
	Port int `yaml:"port"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

type StorageConfig struct {
	Backend     string `yaml:"backend"` // file | postgres
	PostgresDSN string `yaml:"postgres_dsn"`
	RecordsFile string `yaml:"records_file"`
	UsersFile   string `yaml:"users_file"`
	CohortFile  string `yaml:"cohort_file"`
}

type AuthConfig struct {
	Mode      string `yaml:"mode"` // local | remote
	Secret    string `yaml:"secret"`
	RemoteURL string `yaml:"remote_url"`
}

type AnnotatorConfig struct {
	URL            string `yaml:"url"` // empty disables the remote annotator
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

// Load reads the optional YAML config file, then applies env overrides.
func Load(path string) (*Config, error) {
	c := &Config{
		Env:       "development",
		Server:    ServerConfig{Port: 8088},
		Log:       LogConfig{Level: "info"},
		Storage:   StorageConfig{Backend: "file", RecordsFile: "data/sleep_records.json", UsersFile: "data/users.json", CohortFile: "data/cohort.json"},
		Auth:      AuthConfig{Mode: "local", Secret: "sleep-planet-dev-secret"},
		Annotator: AnnotatorConfig{TimeoutSeconds: 10},
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, c); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	} else if data, err := os.ReadFile("etc/config.yaml"); err == nil {
		if err := yaml.Unmarshal(data, c); err != nil {
			return nil, fmt.Errorf("parse config etc/config.yaml: %w", err)
		}
	}

	envOverride(&c.Env, "APP_ENV")
	envOverride(&c.Log.Level, "LOG_LEVEL")
	envOverride(&c.Storage.Backend, "STORAGE_BACKEND")
	envOverride(&c.Storage.PostgresDSN, "POSTGRES_DSN")
	envOverride(&c.Auth.Mode, "AUTH_MODE")
	envOverride(&c.Auth.Secret, "AUTH_SECRET")
	envOverride(&c.Auth.RemoteURL, "AUTH_REMOTE_URL")
	envOverride(&c.Annotator.URL, "ANNOTATOR_URL")
	if v := os.Getenv("PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.Server.Port = port
		}
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Config) Validate() error {
	if c.Env != "development" && c.Env != "staging" && c.Env != "production" {
		return errors.New("env must be one of: development, staging, production")
	}
	switch c.Storage.Backend {
	case "postgres":
		if c.Storage.PostgresDSN == "" {
			return errors.New("postgres_dsn is required when storage backend is postgres")
		}
	case "file":
		if c.Storage.RecordsFile == "" || c.Storage.UsersFile == "" || c.Storage.CohortFile == "" {
			return errors.New("file storage requires records_file, users_file and cohort_file")
		}
	default:
		return fmt.Errorf("unknown storage backend %q", c.Storage.Backend)
	}
	switch c.Auth.Mode {
	case "local":
		if c.Auth.Secret == "" {
			return errors.New("auth secret is required in local mode")
		}
	case "remote":
		if c.Auth.RemoteURL == "" {
			return errors.New("auth remote_url is required in remote mode")
		}
	default:
		return fmt.Errorf("unknown auth mode %q", c.Auth.Mode)
	}
	return nil
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}

func envOverride(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}
