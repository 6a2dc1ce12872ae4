package config

import (
	"fmt"
	"log"
	"sync"

	"github.com/ilyakaznacheev/cleanenv"
)

type Listen struct {
	BindIp string `yaml:"bind_ip" env-default:"0.0.0.0"`
	Port   string `yaml:"port" env-default:"8080"`
}

type IlevaConfig struct {
	BaseURL     string `yaml:"base_url" env:"ILEVA_BASE_URL" env-default:"https://api-integracao.ileva.com.br"`
	AccessToken string `yaml:"access_token" env:"ILEVA_ACCESS_TOKEN" env-default:""`
	PageSize    int    `yaml:"page_size" env-default:"2"`
}

type TelegramConfig struct {
	Enabled bool   `yaml:"enabled" env-default:"false"`
	Token   string `yaml:"token" env:"TELEGRAM_TOKEN" env-default:""`
	ChatId  int64  `yaml:"chat_id" env-default:"0"`
}

type Config struct {
	Ileva    IlevaConfig    `yaml:"ileva"`
	Telegram TelegramConfig `yaml:"telegram"`
	Listen   Listen         `yaml:"listen"`
	Env      string         `yaml:"env" env-default:"local"`
}

var instance *Config
var once sync.Once

func Load(path string) (*Config, error) {
	conf := &Config{}
	if err := cleanenv.ReadConfig(path, conf); err != nil {
		desc, _ := cleanenv.GetDescription(conf, nil)
		return nil, fmt.Errorf("config: %s; %s", err, desc)
	}
	return conf, nil
}

func MustLoad(path string) *Config {
	once.Do(func() {
		var err error
		if instance, err = Load(path); err != nil {
			log.Fatal(err)
		}
	})
	return instance
}
