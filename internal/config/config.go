package config

import (
	"flag"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/pkg/errors"
)

type Config struct {
	RunAddress   string `env:"RUN_ADDRESS"`
	KafkaBrokers string `env:"KAFKA_BROKERS"`
	NotifyTopic  string `env:"NOTIFY_TOPIC"`
}

func LoadConfig() (*Config, error) {
	var flagsConfig, envConfig Config

	if envParseErr := env.Parse(&envConfig); envParseErr != nil {
		return nil, errors.Wrap(envParseErr, "parse env config")
	}

	loadFlags(&flagsConfig)

	return mergeConfig(&envConfig, &flagsConfig), nil
}

func MustLoadConfig() *Config {
	config, err := LoadConfig()
	if err != nil {
		panic(err)
	}
	return config
}

// Brokers возвращает список брокеров из CSV строки.
// Пустой список означает, что уведомления пишутся в лог.
func (c *Config) Brokers() []string {
	parts := strings.Split(c.KafkaBrokers, ",")
	brokers := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			brokers = append(brokers, t)
		}
	}
	return brokers
}

func loadFlags(flagConfig *Config) {
	flag.StringVar(&flagConfig.RunAddress, "a", "localhost:8080", "Run address in format host:port")
	flag.StringVar(&flagConfig.KafkaBrokers, "k", "", "Kafka brokers CSV for notifications (optional)")
	flag.StringVar(&flagConfig.NotifyTopic, "t", "delivery.notifications", "Notifications topic")

	flag.Parse()
}

func mergeConfig(envConfig, flagsConfig *Config) *Config {
	return &Config{
		RunAddress:   defaultIfBlank(envConfig.RunAddress, flagsConfig.RunAddress),
		KafkaBrokers: defaultIfBlank(envConfig.KafkaBrokers, flagsConfig.KafkaBrokers),
		NotifyTopic:  defaultIfBlank(envConfig.NotifyTopic, flagsConfig.NotifyTopic),
	}
}

func defaultIfBlank(value string, defaultValue string) string {
	if value == "" {
		return defaultValue
	}
	return value
}
