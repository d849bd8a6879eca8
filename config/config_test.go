package config

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"

	"github.com/CaronSch/ethdenver-bufficornanalytics/log"
)

func TestDefault(t *testing.T) {
	cfg, err := Default()
	require.NoError(t, err)

	assert.Empty(t, cfg.AnyBlock.APIKey)
	assert.Equal(t, common.HexToAddress("0x1e988ba4692e52Bc50b375bcC8585b95c48AaD77"), cfg.Workshop.NFTContract)
	assert.Equal(t, common.HexToAddress("0x22C1f6050E56d2876009903609a2cC3fEf83B415"), cfg.Workshop.POAPContract)
	assert.Equal(t, log.EnvironmentDevelopment, cfg.Log.Environment)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, []string{"stderr"}, cfg.Log.Outputs)
}

func TestLoad(t *testing.T) {
	ctx := cli.NewContext(nil, nil, nil)
	_ = ctx.Set(FlagCfg, "/path/to/config.yaml")

	cfg, err := Load(ctx)
	assert.NoError(t, err)
	assert.NotNil(t, cfg)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("BUFFICORN_ANYBLOCK_APIKEY", "from-env")

	ctx := cli.NewContext(nil, nil, nil)
	cfg, err := Load(ctx)
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.AnyBlock.APIKey)
}
