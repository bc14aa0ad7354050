package config

import (
	"flag"
	"fmt"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	Address     string `env:"RUN_ADDRESS"`
	DatabaseURI string `env:"DATABASE_URI"`
	Secret      string `env:"SECRET"`
	TokenName   string `env:"TOKEN_NAME"`
}

func NewConfig() *Config {
	// .env is optional, the system environment wins
	_ = godotenv.Load()

	config := &Config{}

	flag.StringVar(&config.Address, "a", "localhost:7000", "Address and port to run the service")
	flag.StringVar(&config.DatabaseURI, "d", "user=postgres password=postgres host=localhost database=earnbit sslmode=disable", "Database connection string")
	flag.StringVar(&config.Secret, "s", "supersecretkey", "Secret for JWT")
	flag.StringVar(&config.TokenName, "t", "token", "Enter token name Or use TOKEN_NAME env")

	if err := env.Parse(config); err != nil {
		fmt.Printf("%+v\n", err)
	}

	return config
}
