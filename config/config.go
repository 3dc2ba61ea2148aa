package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server struct {
		Port           string   `yaml:"port"`
		BaseURL        string   `yaml:"base_url"`
		AllowedOrigins []string `yaml:"allowed_origins"`
	} `yaml:"server"`
	Admin struct {
		Secret string `yaml:"secret"`
	} `yaml:"admin"`
	Storage struct {
		DataDir  string `yaml:"data_dir"`
		DataFile string `yaml:"data_file"`
	} `yaml:"storage"`
}

func LoadConfig(path string) (*Config, error) {
	config := &Config{}
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	err = yaml.Unmarshal(file, config)
	if err != nil {
		return nil, err
	}
	config.applyDefaults()
	config.applyEnvOverrides()
	return config, nil
}

// DefaultConfig builds a config from defaults and environment variables
// alone, for deployments without a config file.
func DefaultConfig() *Config {
	config := &Config{}
	config.applyDefaults()
	config.applyEnvOverrides()
	return config
}

func (c *Config) applyDefaults() {
	if c.Server.Port == "" {
		c.Server.Port = "5000"
	}
	if c.Server.BaseURL == "" {
		c.Server.BaseURL = "http://localhost:" + c.Server.Port
	}
	if len(c.Server.AllowedOrigins) == 0 {
		c.Server.AllowedOrigins = []string{"http://localhost:3000"}
	}
	if c.Storage.DataDir == "" {
		c.Storage.DataDir = "data"
	}
	if c.Storage.DataFile == "" {
		c.Storage.DataFile = "bookings.json"
	}
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("PORT"); v != "" {
		c.Server.Port = v
	}
	if v := os.Getenv("ADMIN_SECRET"); v != "" {
		c.Admin.Secret = v
	}
	if v := os.Getenv("DATA_DIR"); v != "" {
		c.Storage.DataDir = v
	}
}
