package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/attendlink/zkgate/utils"
	"gopkg.in/yaml.v3"
)

// Config is built once at startup and holds everything the gateway
// needs: where to listen and how to reach a terminal. There is no other
// process-wide state.
type Config struct {
	Bind           string `yaml:"bind"`
	DevicePort     int    `yaml:"device_port"`
	DeviceIP       string `yaml:"device_ip"`
	TimeoutSeconds int    `yaml:"device_timeout_seconds"`
	Timezone       string `yaml:"timezone"`
}

func Default() *Config {
	return &Config{
		Bind:           "0.0.0.0:4000",
		DevicePort:     4370,
		TimeoutSeconds: 5,
		Timezone:       "Asia/Manila",
	}
}

// Load layers an optional YAML file (path in ZKGATE_CONFIG) and
// environment variables over the defaults. Environment wins.
func Load() (*Config, error) {
	cfg := Default()

	if path := os.Getenv("ZKGATE_CONFIG"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config file: %w", err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("ZKGATE_BIND"); v != "" {
		c.Bind = v
	}
	if v := os.Getenv("DEVICE_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("DEVICE_PORT: %w", err)
		}
		c.DevicePort = port
	}
	if v := os.Getenv("DEVICE_IP"); v != "" {
		c.DeviceIP = v
	}
	if v := os.Getenv("DEVICE_TIMEOUT"); v != "" {
		secs, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("DEVICE_TIMEOUT: %w", err)
		}
		c.TimeoutSeconds = secs
	}
	if v := os.Getenv("ZKGATE_TZ"); v != "" {
		c.Timezone = v
	}
	return nil
}

func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// Location resolves the configured timezone. Terminals report naive
// local timestamps, so date filters have to be interpreted in the same
// zone the device lives in.
func (c *Config) Location() *time.Location {
	if loc, err := time.LoadLocation(c.Timezone); err == nil {
		return loc
	}
	return utils.ManilaTZ
}
