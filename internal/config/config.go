package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server struct {
		Addr     string `yaml:"addr"`
		GraphiQL bool   `yaml:"graphiql"`
	} `yaml:"server"`

	Mongo struct {
		URI      string `yaml:"uri" env:"MONGO_URI,required"`
		Database string `yaml:"database" env:"MONGO_DATABASE,required"`
	} `yaml:"mongo"`

	Auth struct {
		Secret string `yaml:"secret" env:"JWT_SECRET,required"`
	} `yaml:"auth"`
}

const defaultAddr = ":4000"

// Load reads config.yaml if it exists, falling back to environment
// variables otherwise. The token-signing secret is required either way;
// running without one would mean issuing unverifiable sessions.
func Load() (*Config, error) {
	return LoadFile("config.yaml")
}

// LoadFile loads configuration from the given yaml file, substituting
// ${VAR} placeholders from the environment. A missing file is not an
// error; configuration then comes from the environment alone.
func LoadFile(path string) (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	if err == nil {
		// Replace environment variables in the YAML content
		content := string(data)
		for _, env := range os.Environ() {
			pair := strings.SplitN(env, "=", 2)
			if len(pair) != 2 {
				continue
			}
			placeholder := "${" + pair[0] + "}"
			content = strings.ReplaceAll(content, placeholder, pair[1])
		}

		if err := yaml.Unmarshal([]byte(content), &cfg); err != nil {
			return nil, fmt.Errorf("error parsing config: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	// Environment variables win over file values when set.
	if v := os.Getenv("ADDR"); v != "" {
		cfg.Server.Addr = v
	}
	if v := os.Getenv("MONGO_URI"); v != "" {
		cfg.Mongo.URI = v
	}
	if v := os.Getenv("MONGO_DATABASE"); v != "" {
		cfg.Mongo.Database = v
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		cfg.Auth.Secret = v
	}

	if cfg.Server.Addr == "" {
		cfg.Server.Addr = defaultAddr
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Mongo.URI == "" {
		return errors.New("mongo uri is required (MONGO_URI)")
	}
	if c.Mongo.Database == "" {
		return errors.New("mongo database is required (MONGO_DATABASE)")
	}
	if c.Auth.Secret == "" {
		return errors.New("token signing secret is required (JWT_SECRET)")
	}
	return nil
}
