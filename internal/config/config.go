package config

import (
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env        string  `yaml:"env" env:"ENV" env-default:"local"`
	Booking    Booking `yaml:"booking"`
	Admin      Admin   `yaml:"admin"`
	HTTPServer `yaml:"http_server"`
}

type Booking struct {
	ReservationTTL time.Duration `yaml:"reservation_ttl" env:"RESERVATION_TTL" env-default:"60s"`
	SweepInterval  time.Duration `yaml:"sweep_interval" env:"SWEEP_INTERVAL" env-default:"10s"`
}

type Admin struct {
	Username string `yaml:"username" env:"ADMIN_USERNAME" env-default:"admin"`
	Password string `yaml:"password" env:"ADMIN_PASSWORD" env-default:"admin"`
}

type HTTPServer struct {
	Address     string        `yaml:"address" env:"HTTP_ADDRESS" env-default:"localhost:3001"`
	Timeout     time.Duration `yaml:"timeout" env-default:"4s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env-default:"60s"`
}

func MustLoad() *Config {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "./config/local.yaml"
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Fatalf("config file does not exist: %s", configPath)
	}

	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("cannot read config: %s", err)
	}

	return &cfg
}
