package config

import (
	"errors"
	"log"
	"sync"

	"github.com/spf13/viper"
)

type SchedulerConfig struct {
	Port                  int
	RoundRobinTimeQuantum int64
}

var once sync.Once
var config *SchedulerConfig

// Get reads config.yaml from the working directory once and caches the
// result. Missing file is fine; missing keys fall back to the defaults
// (port 9095, round robin quantum 2).
func Get() *SchedulerConfig {
	once.Do(func() {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath("./")
		viper.SetDefault("port", 9095)
		viper.SetDefault("scheduler.round_robin.time_quantum", 2)
		if err := viper.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				log.Fatalln(err)
			}
		}
		config = &SchedulerConfig{
			Port:                  viper.GetInt("port"),
			RoundRobinTimeQuantum: viper.GetInt64("scheduler.round_robin.time_quantum"),
		}
	})

	return config
}
