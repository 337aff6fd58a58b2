package config

import (
	"os"

	"goshopops_api/config/values"

	"gopkg.in/yaml.v3"
)

type Config interface {
}

type StorefrontConfig struct {
	ShopURL     string             `yaml:"shop_url"`
	AccessToken string             `yaml:"access_token"`
	ApiVersion  string             `yaml:"api_version"`
	Labels      values.LabelValues `yaml:"labels"`
}

type AppConfig struct {
	Storefront StorefrontConfig        `yaml:"storefront"`
	Postgres   PostgresConfig          `yaml:"postgres"`
	Defaults   values.OperatorDefaults `yaml:"defaults"`
}

func LoadConfig(filename string) (*AppConfig, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	config := &AppConfig{}
	if err := decoder.Decode(config); err != nil {
		return nil, err
	}
	return config, nil
}
