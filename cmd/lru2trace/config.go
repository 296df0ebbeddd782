package main

import (
	"errors"
	"fmt"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	keyHistoryCapacity = "history_capacity"
	keyCacheCapacity   = "cache_capacity"
	keyIndex           = "index"
	keyMetrics         = "metrics"
	keyDebug           = "debug"

	envPrefix = "LRU2"
)

// Config controls a trace run.
//
// Capacities that are not configured through flags,
// the environment or a config file are read from
// the head of the input stream instead.
type Config struct {
	HistoryCapacity int  `mapstructure:"history_capacity"`
	CacheCapacity   int  `mapstructure:"cache_capacity"`
	Index           bool `mapstructure:"index"`
	Metrics         bool `mapstructure:"metrics"`
	Debug           bool `mapstructure:"debug"`

	historyConfigured, cacheConfigured bool
}

func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	return errors.Join(
		v.BindPFlag(keyHistoryCapacity, flags.Lookup("history")),
		v.BindPFlag(keyCacheCapacity, flags.Lookup("cache")),
		v.BindPFlag(keyIndex, flags.Lookup("index")),
		v.BindPFlag(keyMetrics, flags.Lookup("metrics")),
		v.BindPFlag(keyDebug, flags.Lookup("debug")),
	)
}

// loadConfig merges flags, LRU2_* environment variables,
// and the optional config file, in descending precedence.
func loadConfig(v *viper.Viper, configPath string) (*Config, error) {
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}
	config := &Config{}
	if err := v.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	config.historyConfigured = v.IsSet(keyHistoryCapacity)
	config.cacheConfigured = v.IsSet(keyCacheCapacity)
	return config, nil
}
