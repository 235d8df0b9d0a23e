package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
)

const (
	StorageMemory = "memory"
	StorageRedis  = "redis"
)

type Config struct {
	LogLevel string  `yaml:"log-level" env:"GRIDGAMES_LOG_LEVEL" env-default:"info" validate:"oneof=debug info warn error"`
	Game     string  `yaml:"game" env:"GRIDGAMES_GAME" env-default:"tictactoe" validate:"oneof=tictactoe connectfour"`
	NoColor  bool    `yaml:"no-color" env:"GRIDGAMES_NO_COLOR"`
	Storage  Storage `yaml:"storage"`
}

type Storage struct {
	Driver string `yaml:"driver" env:"GRIDGAMES_STORAGE_DRIVER" env-default:"memory" validate:"oneof=memory redis"`
	Redis  Redis  `yaml:"redis"`
}

type Redis struct {
	Host string `yaml:"host" env:"GRIDGAMES_REDIS_HOST" env-default:"localhost" validate:"required"`
	Port string `yaml:"port" env:"GRIDGAMES_REDIS_PORT" env-default:"6379" validate:"required,numeric"`
}

// Load reads the config file at path and the environment. A missing file
// falls back to environment variables and defaults.
func Load(path string) (*Config, error) {
	config := &Config{}

	_, err := os.Stat(path)
	switch {
	case err == nil:
		err = cleanenv.ReadConfig(path, config)
	case errors.Is(err, fs.ErrNotExist):
		err = cleanenv.ReadEnv(config)
	}

	if err != nil {
		return nil, fmt.Errorf("unable to load config: %w", err)
	}

	if err = validator.New(validator.WithRequiredStructEnabled()).Struct(config); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return config, nil
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
