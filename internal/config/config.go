package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	StorageMemory = "memory"
	StorageRedis  = "redis"
)

type Config struct {
	LogLevel string  `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	HTTPPort string  `yaml:"http-port" env:"HTTP_PORT" env-default:"9090"`
	HTTP     HTTP    `yaml:"http"`
	Storage  Storage `yaml:"storage"`
	Redis    Redis   `yaml:"redis"`
}

type HTTP struct {
	ReadTimeout  time.Duration `yaml:"read-timeout" env:"HTTP_READ_TIMEOUT" env-default:"10s"`
	WriteTimeout time.Duration `yaml:"write-timeout" env:"HTTP_WRITE_TIMEOUT" env-default:"10s"`
	IdleTimeout  time.Duration `yaml:"idle-timeout" env:"HTTP_IDLE_TIMEOUT" env-default:"30s"`
}

type Storage struct {
	Driver     string        `yaml:"driver" env:"STORAGE_DRIVER" env-default:"memory"`
	SessionTTL time.Duration `yaml:"session-ttl" env:"SESSION_TTL" env-default:"24h"`
}

type Redis struct {
	Host string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

// Load - reads the yaml file at path, environment variables override it.
func Load(path string) (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	if config.Storage.Driver != StorageMemory && config.Storage.Driver != StorageRedis {
		return nil, fmt.Errorf("unknown storage driver %q", config.Storage.Driver)
	}

	return config, nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
