package models

import (
	"fmt"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

type Config struct {
	Seed       int64         `mapstructure:"seed"`
	Days       int           `mapstructure:"days"`
	TickRate   time.Duration `mapstructure:"tick_rate"`
	TavernName string        `mapstructure:"tavern_name"`

	InitialGold     int `mapstructure:"initial_gold"`
	InitialFame     int `mapstructure:"initial_fame"`
	InitialCapacity int `mapstructure:"initial_capacity"`
	InitialStock    int `mapstructure:"initial_stock"`

	// Output sinks for the event stream, mutually exclusive in priority
	// order: Kafka, file, console.
	KafkaEnabled    bool   `mapstructure:"kafka_enabled"`
	KafkaBrokerList string `mapstructure:"kafka_broker_list"`
	OutputFile      string `mapstructure:"output_file_path"`
	OutputFolder    string `mapstructure:"output_folder"`

	// Daily parquet reports; uploaded to S3 when a bucket is set,
	// written under ReportsFolder otherwise.
	ReportsFolder string `mapstructure:"reports_folder"`
	S3Bucket      string `mapstructure:"s3_bucket"`
	S3Region      string `mapstructure:"s3_region"`

	// Optional catalog source; built-in defaults are used when empty.
	PostgresDSN string `mapstructure:"postgres_dsn"`

	// Keeper (autoplay) knobs.
	RestockTarget  int     `mapstructure:"restock_target"`  // per-resource stock bought up to each morning
	UpgradeReserve float64 `mapstructure:"upgrade_reserve"` // fraction of gold the keeper keeps uninvested
}

// LoadConfig initializes and reads the configuration using Viper
func LoadConfig(cfgFile string) (*Config, error) {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath("examples")
		viper.SetConfigName("config")
		viper.SetConfigType("json")
	}

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	decoderConfigOption := viper.DecoderConfigOption(func(config *mapstructure.DecoderConfig) {
		config.DecodeHook = mapstructure.ComposeDecodeHookFunc(
			config.DecodeHook,
			mapstructure.StringToTimeDurationHookFunc(),
		)
	})
	if err := viper.Unmarshal(&config, decoderConfigOption); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %w", err)
	}

	config.applyDefaults()
	return &config, nil
}

func (cfg *Config) applyDefaults() {
	if cfg.Days <= 0 {
		cfg.Days = 7
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 100 * time.Millisecond
	}
	if cfg.InitialGold <= 0 {
		cfg.InitialGold = InitialGold
	}
	if cfg.InitialFame <= 0 {
		cfg.InitialFame = InitialFame
	}
	if cfg.InitialCapacity <= 0 {
		cfg.InitialCapacity = InitialCapacity
	}
	if cfg.InitialStock <= 0 {
		cfg.InitialStock = InitialStock
	}
	if cfg.RestockTarget <= 0 {
		cfg.RestockTarget = 10
	}
	if cfg.UpgradeReserve <= 0 {
		cfg.UpgradeReserve = 0.25
	}
}
