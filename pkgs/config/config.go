package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type Server struct {
	Address string
	Port    uint16
}

type Configuration struct {
	Server Server

	// TimeoutSeconds is the per-exchange read window
	TimeoutSeconds uint16
}

func NewConfig() (*Configuration, error) {
	config := Configuration{}

	// application configuration
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetConfigName(".xcp")
	v.AddConfigPath("$HOME/")
	v.AddConfigPath(".")
	_ = v.SafeWriteConfig()

	v.SetDefault("server.address", "127.0.0.1")
	v.SetDefault("server.port", 5555)
	v.SetDefault("timeoutseconds", 1)

	if err := v.ReadInConfig(); err != nil {
		return &Configuration{}, fmt.Errorf("cannot parse config: %s", err.Error())
	}
	if err := v.Unmarshal(&config); err != nil {
		return &config, fmt.Errorf("cannot parse config: %s", err.Error())
	}

	return &config, nil
}
