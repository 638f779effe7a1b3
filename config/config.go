package config

import (
	"github.com/spf13/viper"
)

type Config struct {
	DBHost       string `mapstructure:"DB_HOST"`
	DBPort       string `mapstructure:"DB_PORT"`
	DBUser       string `mapstructure:"DB_USER"`
	DBPassword   string `mapstructure:"DB_PASSWORD"`
	DBName       string `mapstructure:"DB_NAME"`
	RedisAddr    string `mapstructure:"REDIS_ADDR"`
	HTTPPort     string `mapstructure:"HTTP_PORT"`
	AccessSecret string `mapstructure:"ACCESS_SECRET"`
	EventSecret  string `mapstructure:"EVENT_SECRET"`
	PoppyAPIURL  string `mapstructure:"POPPY_API_URL"`
	PoppyAPIKey  string `mapstructure:"POPPY_API_KEY"`
	FrontendURL  string `mapstructure:"FRONTEND_URL"`
}

func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("app")
	viper.SetConfigType("env")

	viper.AutomaticEnv()

	// Explicit binds so viper sees the variables without a config file.
	viper.BindEnv("DB_HOST")
	viper.BindEnv("DB_PORT")
	viper.BindEnv("DB_USER")
	viper.BindEnv("DB_PASSWORD")
	viper.BindEnv("DB_NAME")
	viper.BindEnv("REDIS_ADDR")
	viper.BindEnv("HTTP_PORT")
	viper.BindEnv("ACCESS_SECRET")
	viper.BindEnv("EVENT_SECRET")
	viper.BindEnv("POPPY_API_URL")
	viper.BindEnv("POPPY_API_KEY")
	viper.BindEnv("FRONTEND_URL")

	err = viper.ReadInConfig()
	if err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return
		}
		// No file is fine, env is enough.
		err = nil
	}

	err = viper.Unmarshal(&config)
	return
}
