package config

import (
	"errors"
	"flag"
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

type Config struct {
	RunAddress    string `env:"RUN_ADDRESS"`
	DatabaseDSN   string `env:"DATABASE_URI"`
	MigrationsDir string `env:"MIGRATIONS_DIR"`
	JWTUserSecret string `env:"JWT_USER_SECRET"`
	MaxNFTPrice   string `env:"MAX_NFT_PRICE"`
	SignupBonus   string `env:"SIGNUP_BONUS"`
	RewardAmount  string `env:"REWARD_AMOUNT"`
}

func LoadConfig() (*Config, error) {
	// .env опционален, в проде переменные приходят из окружения.
	_ = godotenv.Load()

	var flagsConfig, envConfig Config

	if envParseErr := env.Parse(&envConfig); envParseErr != nil {
		return nil, fmt.Errorf("parse env config: %s", envParseErr.Error())
	}

	loadFlags(&flagsConfig)

	conf := mergeConfig(&envConfig, &flagsConfig)
	if conf.DatabaseDSN == "" {
		return nil, errors.New("database DSN is not set")
	}
	if conf.JWTUserSecret == "" {
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

// Amounts парсит денежные настройки. Значения заданы строками, т.к. приходят
// одинаково из env и из флагов.
func (c *Config) Amounts() (maxNFTPrice, signupBonus, rewardAmount decimal.Decimal, err error) {
	maxNFTPrice, err = decimal.NewFromString(c.MaxNFTPrice)
	if err != nil {
		return maxNFTPrice, signupBonus, rewardAmount, fmt.Errorf("parse max NFT price: %s", err.Error())
	}
	signupBonus, err = decimal.NewFromString(c.SignupBonus)
	if err != nil {
		return maxNFTPrice, signupBonus, rewardAmount, fmt.Errorf("parse signup bonus: %s", err.Error())
	}
	rewardAmount, err = decimal.NewFromString(c.RewardAmount)
	if err != nil {
		return maxNFTPrice, signupBonus, rewardAmount, fmt.Errorf("parse reward amount: %s", err.Error())
	}
	return maxNFTPrice, signupBonus, rewardAmount, nil
}

func loadFlags(flagConfig *Config) {
	flag.StringVar(&flagConfig.RunAddress, "a", "localhost:8080", "Run address in format host:port")
	flag.StringVar(&flagConfig.DatabaseDSN, "d", "", "Database DSN")
	flag.StringVar(&flagConfig.MigrationsDir, "m", "internal/db/migrations", "Database migrations directory")
	flag.StringVar(&flagConfig.JWTUserSecret, "s", "", "JWT secret key")
	flag.StringVar(&flagConfig.MaxNFTPrice, "max-price", "10000", "Maximum NFT price")
	flag.StringVar(&flagConfig.SignupBonus, "signup-bonus", "5", "Balance granted on registration")
	flag.StringVar(&flagConfig.RewardAmount, "reward", "0.25", "Daily reward amount")

	flag.Parse()
}

func mergeConfig(envConfig, flagsConfig *Config) *Config {
	return &Config{
		RunAddress:    defaultIfBlank(envConfig.RunAddress, flagsConfig.RunAddress),
		DatabaseDSN:   defaultIfBlank(envConfig.DatabaseDSN, flagsConfig.DatabaseDSN),
		MigrationsDir: defaultIfBlank(envConfig.MigrationsDir, flagsConfig.MigrationsDir),
		JWTUserSecret: defaultIfBlank(envConfig.JWTUserSecret, flagsConfig.JWTUserSecret),
		MaxNFTPrice:   defaultIfBlank(envConfig.MaxNFTPrice, flagsConfig.MaxNFTPrice),
		SignupBonus:   defaultIfBlank(envConfig.SignupBonus, flagsConfig.SignupBonus),
		RewardAmount:  defaultIfBlank(envConfig.RewardAmount, flagsConfig.RewardAmount),
	}
}

func defaultIfBlank(value string, defaultValue string) string {
	if value == "" {
		return defaultValue
	}
	return value
}
