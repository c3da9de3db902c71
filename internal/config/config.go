package config

import (
	"os"

	"github.com/go-yaml/yaml"
)

type Config struct {
	Site   Site   `yaml:"site"`
	Server Server `yaml:"server"`
}

type Site struct {
	Name      string `yaml:"name"`
	PublicURL string `yaml:"publicURL"`
}

type Server struct {
	Listen            string `yaml:"listen"`
	PostgresDsn       string `yaml:"postgresDsn"`
	RedisAddr         string `yaml:"redisAddr"`
	RedisDB           int    `yaml:"redisDB"`
	MemcachedAddr     string `yaml:"memcachedAddr"`
	SessionTTLMinutes int    `yaml:"sessionTTLMinutes"`
	EnableTrace       bool   `yaml:"enableTrace"`
	TraceEndpoint     string `yaml:"traceEndpoint"`
}

func Load(path string) (Config, error) {

	file, err := os.Open(path)
	if err != nil {
		return Config{}, err
	}
	defer file.Close()

	var config Config
	err = yaml.NewDecoder(file).Decode(&config)
	if err != nil {
		return Config{}, err
	}

	if config.Server.Listen == "" {
		config.Server.Listen = ":8000"
	}
	if config.Site.PublicURL == "" {
		config.Site.PublicURL = "http://localhost:8000"
	}
	if config.Server.SessionTTLMinutes <= 0 {
		config.Server.SessionTTLMinutes = 120
	}

	return config, nil
}
