package config

import (
	"path/filepath"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
	"github.com/urfave/cli/v2"

	"github.com/CaronSch/ethdenver-bufficornanalytics/log"
)

const (
	// FlagCfg flag used for config aka cfg
	FlagCfg = "cfg"
)

// Config represents the full configuration of the analytics toolkit
type Config struct {
	AnyBlock AnyBlockConfig `mapstructure:"AnyBlock"`
	Workshop WorkshopConfig `mapstructure:"Workshop"`
	Log      log.Config     `mapstructure:"Log"`
}

// AnyBlockConfig carries the credential for the hosted analytics API.
type AnyBlockConfig struct {
	// APIKey authorizes access to the hosted Elasticsearch endpoints.
	APIKey string `mapstructure:"APIKey"`
}

// WorkshopConfig points at the contracts the workshop material revolves
// around.
type WorkshopConfig struct {
	NFTContract  common.Address `mapstructure:"NFTContract"`
	POAPContract common.Address `mapstructure:"POAPContract"`
}

// Load loads the configuration based on the cli context
func Load(ctx *cli.Context) (*Config, error) {
	cfg, err := Default()
	if err != nil {
		return nil, err
	}

	configFilePath := ctx.String(FlagCfg)
	if configFilePath != "" {
		dirName, fileName := filepath.Split(configFilePath)

		fileExtension := strings.TrimPrefix(filepath.Ext(fileName), ".")
		fileNameWithoutExtension := strings.TrimSuffix(fileName, "."+fileExtension)

		viper.AddConfigPath(dirName)
		viper.SetConfigName(fileNameWithoutExtension)
		viper.SetConfigType(fileExtension)
	}
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.SetEnvPrefix("BUFFICORN")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Infof("config file not found")
		} else {
			log.Infof("error reading config file: %s", err)
			return nil, err
		}
	}

	decodeHooks := []viper.DecoderConfigOption{
		// this allows arrays to be decoded from env var separated by ",", example: MY_VAR="value1,value2,value3"
		viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(mapstructure.TextUnmarshallerHookFunc(), mapstructure.StringToSliceHookFunc(","))),
	}
	err = viper.Unmarshal(&cfg, decodeHooks...)

	return cfg, err
}
