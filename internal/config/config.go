// Package config resolves the server configuration from, in increasing
// precedence: built-in defaults, an optional YAML file, and environment
// variables (with an optional .env file loaded first).
package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Metrics MetricsConfig `yaml:"metrics"`
}

type ServerConfig struct {
	// ListenAddress and Port form the TCP endpoint; UnixSocket, when set,
	// replaces TCP entirely.
	ListenAddress string `yaml:"listen_address"`
	Port          string `yaml:"port"`
	UnixSocket    string `yaml:"unix_socket"`
}

type MetricsConfig struct {
	// Addr is the /metrics listen address; empty disables the listener.
	Addr string `yaml:"addr"`
}

var logger = log.New(log.Writer(), "[CONFIG] ", log.LstdFlags)

// Load resolves the effective configuration. yamlPath may be empty.
func Load(yamlPath string) (*Config, error) {
	if err := godotenv.Load(); err == nil {
		logger.Println("loaded .env")
	}

	cfg := &Config{
		Server: ServerConfig{
			ListenAddress: "127.0.0.1",
			Port:          "8080",
		},
	}

	if yamlPath != "" {
		raw, err := os.ReadFile(yamlPath)
		if err != nil {
			return nil, err
		}
		if err := yaml.Unmarshal(raw, cfg); err != nil {
			return nil, err
		}
	}

	if v := os.Getenv("GRPC_LISTEN_ADDRESS"); v != "" {
		cfg.Server.ListenAddress = v
	}
	if v := os.Getenv("GRPC_PORT"); v != "" {
		cfg.Server.Port = v
	}
	if v := os.Getenv("GRPC_UNIX_SOCKET"); v != "" {
		cfg.Server.UnixSocket = v
	}
	if v := os.Getenv("METRICS_ADDR"); v != "" {
		cfg.Metrics.Addr = v
	}
	return cfg, nil
}

// TCPAddr joins host and port for net.Listen.
func (c *Config) TCPAddr() string {
	return c.Server.ListenAddress + ":" + c.Server.Port
}
