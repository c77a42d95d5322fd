package config

import (
	"errors"
	"flag"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	RunAddress          string        `env:"RUN_ADDRESS"`
	JWTSecret           string        `env:"JWT_SECRET"`
	FundRefreshInterval time.Duration `env:"FUND_REFRESH_INTERVAL"`
}

func LoadConfig() (*Config, error) {
	// .env is a development convenience; absence is not an error.
	_ = godotenv.Load()

	var flagsConfig, envConfig Config

	if envParseErr := env.Parse(&envConfig); envParseErr != nil {
		return nil, fmt.Errorf("parse env config: %s", envParseErr.Error())
	}

	loadFlags(&flagsConfig)

	conf := mergeConfig(&envConfig, &flagsConfig)
	if conf.JWTSecret == "" {
		return nil, errors.New("JWT secret is not set")
	}
	return conf, nil
}

func MustLoadConfig() *Config {
	config, err := LoadConfig()
	if err != nil {
		panic(err)
	}
	return config
}

func loadFlags(flagConfig *Config) {
	flag.StringVar(&flagConfig.RunAddress, "a", "localhost:8080", "Run address in format host:port")
	flag.DurationVar(&flagConfig.FundRefreshInterval, "i", time.Minute, "Fund snapshot refresh interval")

	flag.Parse()
}

func mergeConfig(envConfig, flagsConfig *Config) *Config {
	interval := envConfig.FundRefreshInterval
	if interval == 0 {
		interval = flagsConfig.FundRefreshInterval
	}
	return &Config{
		RunAddress:          defaultIfBlank(envConfig.RunAddress, flagsConfig.RunAddress),
		JWTSecret:           envConfig.JWTSecret,
		FundRefreshInterval: interval,
	}
}

func defaultIfBlank(value string, defaultValue string) string {
	if value == "" {
		return defaultValue
	}
	return value
}
