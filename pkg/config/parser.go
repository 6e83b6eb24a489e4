package config

import (
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/vhive-serverless/sortbench/pkg/common"
)

const EnvPrefix = "SORTBENCH"

// flag name -> configuration key
var flagKeys = map[string]string{
	"seed":      "Seed",
	"trials":    "Trials",
	"isolation": "InputIsolation",
	"plot":      "PlotPath",
	"sizes":     "InputSizes",
}

func newViper() *viper.Viper {
	v := viper.New()

	v.SetDefault("Seed", 0)
	v.SetDefault("InputSizes", common.DefaultInputSizes)
	v.SetDefault("Trials", common.DefaultTrials)
	v.SetDefault("MinValue", common.DefaultMinValue)
	v.SetDefault("MaxValue", common.DefaultMaxValue)
	v.SetDefault("Algorithms", common.DefaultAlgorithms)
	v.SetDefault("InputIsolation", string(common.IsolationCopy))
	v.SetDefault("VerifyOutput", true)
	v.SetDefault("PlotPath", common.DefaultPlotPath)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

// DefaultConfiguration returns the compiled-in defaults, with environment
// overrides applied.
func DefaultConfiguration() (*BenchmarkConfiguration, error) {
	return LoadConfiguration("", nil)
}

// ReadConfigurationFile reads the configuration at path on top of the defaults.
func ReadConfigurationFile(path string) (*BenchmarkConfiguration, error) {
	return LoadConfiguration(path, nil)
}

// LoadConfiguration layers defaults, the configuration file at path (if any),
// SORTBENCH_* environment variables and the flags that were explicitly set.
// The resulting configuration is validated.
func LoadConfiguration(path string, flags *pflag.FlagSet) (*BenchmarkConfiguration, error) {
	v := newViper()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading configuration file %s: %w", path, err)
		}
		log.Debugf("Using configuration file %s", v.ConfigFileUsed())
	}

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, err
				}
			}
		}
	}

	var cfg BenchmarkConfiguration
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}
