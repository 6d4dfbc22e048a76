// Package config loads the portfolio server and client settings from YAML.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// EnvAddr overrides Server.Addr when set.
const EnvAddr = "PORTFOLIO_ADDR"

type Config struct {
	Server  Server  `yaml:"server"`
	Contact Contact `yaml:"contact"`
	Client  Client  `yaml:"client"`
	Profile Profile `yaml:"profile"`
	Log     Log     `yaml:"log"`
}

type Server struct {
	Addr          string        `yaml:"addr"`
	ShutdownGrace time.Duration `yaml:"shutdown_grace"`
}

type Contact struct {
	RoutePath    string `yaml:"route_path"`
	MaxBodyBytes int64  `yaml:"max_body_bytes"`
}

// Client configures the terminal contact form.
type Client struct {
	Endpoint     string        `yaml:"endpoint"`
	Timeout      time.Duration `yaml:"timeout"`
	DismissAfter time.Duration `yaml:"dismiss_after"`
}

// Profile is the owner information shown next to the contact form.
type Profile struct {
	Name     string `yaml:"name"`
	Title    string `yaml:"title"`
	Email    string `yaml:"email"`
	Phone    string `yaml:"phone"`
	Location string `yaml:"location"`
	Links    []Link `yaml:"links"`
}

type Link struct {
	Name string `yaml:"name"`
	URL  string `yaml:"url"`
}

type Log struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
}

// Default returns the configuration used when no file is supplied.
func Default() Config {
	return Config{
		Server: Server{
			Addr:          ":8080",
			ShutdownGrace: 10 * time.Second,
		},
		Contact: Contact{
			RoutePath:    "/api/contact",
			MaxBodyBytes: 64 << 10,
		},
		Client: Client{
			Endpoint:     "http://localhost:8080/api/contact",
			Timeout:      30 * time.Second,
			DismissAfter: 5 * time.Second,
		},
		Profile: Profile{
			Name:  "Portfolio Owner",
			Title: "Software Engineer",
		},
		Log: Log{
			Level: "info",
		},
	}
}

// Load reads path over the defaults. An empty path returns the defaults with
// environment overrides applied.
func Load(path string) (Config, error) {
	cfg := Default()

	path = strings.TrimSpace(path)
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}

	if addr := strings.TrimSpace(os.Getenv(EnvAddr)); addr != "" {
		cfg.Server.Addr = addr
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports every invalid setting, joined.
func (c Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.Server.Addr) == "" {
		errs = append(errs, errors.New("config: server.addr is required"))
	}
	if c.Server.ShutdownGrace <= 0 {
		errs = append(errs, errors.New("config: server.shutdown_grace must be positive"))
	}
	if strings.TrimSpace(c.Contact.RoutePath) == "" {
		errs = append(errs, errors.New("config: contact.route_path is required"))
	}
	if c.Contact.MaxBodyBytes <= 0 {
		errs = append(errs, errors.New("config: contact.max_body_bytes must be positive"))
	}
	if c.Client.Timeout < 0 {
		errs = append(errs, errors.New("config: client.timeout must not be negative"))
	}
	if c.Client.DismissAfter <= 0 {
		errs = append(errs, errors.New("config: client.dismiss_after must be positive"))
	}
	return errors.Join(errs...)
}
