package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// configName is the manifest file name without extension.
const configName = "gatediff"

// configType is the manifest file format.
const configType = "toml"

// envPrefix is the environment variable prefix for gatediff settings.
const envPrefix = "GATEDIFF"

// envKeySeparator is the nested key separator in environment variable names.
const envKeySeparator = "_"

// Load reads configuration from the manifest, env vars, and defaults.
// If manifestPath is non-empty, it is used as the explicit manifest path;
// otherwise gatediff.toml is searched in the working directory. A missing
// manifest is not an error; defaults are used.
func Load(manifestPath string) (*Config, error) {
	viperCfg := viper.New()

	applyDefaults(viperCfg)

	viperCfg.SetConfigType(configType)
	viperCfg.SetEnvPrefix(envPrefix)
	viperCfg.SetEnvKeyReplacer(strings.NewReplacer(".", envKeySeparator))
	viperCfg.AutomaticEnv()

	if manifestPath != "" {
		viperCfg.SetConfigFile(manifestPath)
	} else {
		viperCfg.SetConfigName(configName)
		viperCfg.AddConfigPath(".")
	}

	readErr := viperCfg.ReadInConfig()
	if readErr != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(readErr, &notFound) {
			return nil, fmt.Errorf("read manifest: %w", readErr)
		}
	}

	var cfg Config

	unmarshalErr := viperCfg.Unmarshal(&cfg)
	if unmarshalErr != nil {
		return nil, fmt.Errorf("unmarshal manifest: %w", unmarshalErr)
	}

	validateErr := cfg.Validate()
	if validateErr != nil {
		return nil, fmt.Errorf("validate manifest: %w", validateErr)
	}

	return &cfg, nil
}

func applyDefaults(viperCfg *viper.Viper) {
	viperCfg.SetDefault("units", []string{})

	viperCfg.SetDefault("compare.threshold", DefaultCompareThreshold)
	viperCfg.SetDefault("compare.results_dir", DefaultCompareResultsDir)
	viperCfg.SetDefault("compare.output", DefaultCompareOutput)
	viperCfg.SetDefault("compare.fail_on_regression", DefaultCompareFailOnRegression)

	viperCfg.SetDefault("harness.targets_dir", DefaultHarnessTargetsDir)
}
