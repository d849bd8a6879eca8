package config

import (
	"bytes"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

// DefaultValues is the default configuration
const DefaultValues = `
[AnyBlock]
APIKey = ""

[Workshop]
NFTContract = "0x1e988ba4692e52Bc50b375bcC8585b95c48AaD77" # Bufficorn Buidl Brigade
POAPContract = "0x22C1f6050E56d2876009903609a2cC3fEf83B415"

[Log]
Environment = "development" # "production" or "development"
Level = "info"
Outputs = ["stderr"]
`

// Default parses the default configuration values.
func Default() (*Config, error) {
	var cfg Config
	viper.SetConfigType("toml")

	err := viper.ReadConfig(bytes.NewBuffer([]byte(DefaultValues)))
	if err != nil {
		return nil, err
	}
	err = viper.Unmarshal(&cfg, viper.DecodeHook(mapstructure.TextUnmarshallerHookFunc()))
	if err != nil {
		return nil, err
	}

	return &cfg, nil
}
