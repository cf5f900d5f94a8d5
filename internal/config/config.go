package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	LogLevel  string
	OpenAI    OpenAIConfig
	Reference ReferenceConfig
	Batch     BatchConfig
}

// OpenAIConfig drives the field-extraction calls. BaseURL is optional and
// points at an Azure OpenAI deployment when set.
type OpenAIConfig struct {
	APIKey      string
	BaseURL     string
	Model       string
	Temperature float32
	MaxRetries  int
	Timeout     time.Duration
}

// ReferenceConfig holds the paths of the five reference tables.
type ReferenceConfig struct {
	MappingPath      string
	NetReceiptsPath  string
	SnowflakePath    string
	TippsPath        string
	EventMappingPath string
}

type BatchConfig struct {
	Concurrency int
}

// Load reads configuration from the given .env file (if present) and the
// environment, with defaults matching the expected docs/ layout.
func Load(path string) *Config {
	viper.SetConfigFile(path)
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: config file not found, using environment variables: %v", err)
	}

	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("OPENAI_MODEL", "gpt-4o")
	viper.SetDefault("OPENAI_BASE_URL", "")
	viper.SetDefault("OPENAI_TEMPERATURE", 0.0)
	viper.SetDefault("EXTRACTION_MAX_RETRIES", 3)
	viper.SetDefault("EXTRACTION_TIMEOUT_SECONDS", 60)
	viper.SetDefault("REBATE_MAPPING_PATH", "docs/rebates/mapping.xlsx")
	viper.SetDefault("NET_RECEIPTS_PATH", "docs/rebates/net_receipts.xlsx")
	viper.SetDefault("SNOWFLAKE_PATH", "docs/events/snowflake.xlsx")
	viper.SetDefault("TIPPS_PATH", "docs/events/tipps.xlsx")
	viper.SetDefault("EVENT_MAPPING_PATH", "docs/events/mapping_events.xlsx")
	viper.SetDefault("BATCH_CONCURRENCY", 4)

	return &Config{
		LogLevel: viper.GetString("LOG_LEVEL"),
		OpenAI: OpenAIConfig{
			APIKey:      viper.GetString("OPENAI_API_KEY"),
			BaseURL:     viper.GetString("OPENAI_BASE_URL"),
			Model:       viper.GetString("OPENAI_MODEL"),
			Temperature: float32(viper.GetFloat64("OPENAI_TEMPERATURE")),
			MaxRetries:  viper.GetInt("EXTRACTION_MAX_RETRIES"),
			Timeout:     time.Duration(viper.GetInt("EXTRACTION_TIMEOUT_SECONDS")) * time.Second,
		},
		Reference: ReferenceConfig{
			MappingPath:      viper.GetString("REBATE_MAPPING_PATH"),
			NetReceiptsPath:  viper.GetString("NET_RECEIPTS_PATH"),
			SnowflakePath:    viper.GetString("SNOWFLAKE_PATH"),
			TippsPath:        viper.GetString("TIPPS_PATH"),
			EventMappingPath: viper.GetString("EVENT_MAPPING_PATH"),
		},
		Batch: BatchConfig{
			Concurrency: viper.GetInt("BATCH_CONCURRENCY"),
		},
	}
}
