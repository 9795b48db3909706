package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	DriverFile   = "file"
	DriverRedis  = "redis"
	DriverMemory = "memory"
)

type Config struct {
	LogLevel      string        `yaml:"log-level" env:"TICTACTOE_LOG_LEVEL" env-default:"info"`
	Mode          string        `yaml:"mode" env:"TICTACTOE_MODE" env-default:"pvp"`
	ComputerDelay time.Duration `yaml:"computer-delay" env:"TICTACTOE_COMPUTER_DELAY" env-default:"300ms"`
	Storage       Storage       `yaml:"storage"`
	Redis         Redis         `yaml:"redis"`
}

type Storage struct {
	Driver string `yaml:"driver" env:"TICTACTOE_STORAGE_DRIVER" env-default:"file"`
	Key    string `yaml:"key" env:"TICTACTOE_STORAGE_KEY" env-default:"xo_scores"`
	// File defaults to the XDG data directory when empty.
	File string `yaml:"file" env:"TICTACTOE_STORAGE_FILE"`
}

type Redis struct {
	Host string `yaml:"host" env:"TICTACTOE_REDIS_HOST" env-default:"localhost"`
	Port string `yaml:"port" env:"TICTACTOE_REDIS_PORT" env-default:"6379"`
}

// Load - reads the YAML file at path, then applies environment overrides.
// A missing file is not an error; defaults and the environment are used instead.
func Load(path string) (*Config, error) {
	config := &Config{}

	if path != "" {
		_, err := os.Stat(path)
		switch {
		case err == nil:
			if err = cleanenv.ReadConfig(path, config); err != nil {
				return nil, fmt.Errorf("unable to load config file: %w", err)
			}
			return config, nil
		case !errors.Is(err, fs.ErrNotExist):
			return nil, fmt.Errorf("unable to stat config file: %w", err)
		}
	}

	if err := cleanenv.ReadEnv(config); err != nil {
		return nil, fmt.Errorf("unable to load config from env: %w", err)
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
	if that.Host == "" || that.Port == "" {
		return ""
	}
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
