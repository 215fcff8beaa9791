package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/vbp1/fixturegen/internal/fixture"
	"github.com/vbp1/fixturegen/internal/progress"
)

const (
	EnvPrefix         = "FIXTUREGEN"
	DefaultConfigName = "fixturegen"
)

// Config holds the effective settings after defaults, config file, environment and flags are merged.
type Config struct {
	Root             string             `mapstructure:"root"`
	Preset           string             `mapstructure:"preset"`
	Scenarios        []fixture.Scenario `mapstructure:"scenarios"`
	Progress         string             `mapstructure:"progress"`
	ProgressInterval int                `mapstructure:"progress-interval"`
	Verbose          bool               `mapstructure:"verbose"`
	Debug            bool               `mapstructure:"debug"`
	SkipSpaceCheck   bool               `mapstructure:"skip-space-check"`

	// ConfigFile is the file that was read, empty if none.
	ConfigFile string `mapstructure:"-"`
}

// flagKeys are bound to viper keys of the same name when present in the flag set.
var flagKeys = []string{"root", "preset", "progress", "progress-interval", "verbose", "debug", "skip-space-check"}

func setDefaults(v *viper.Viper) {
	v.SetDefault("root", fixture.DefaultRoot)
	v.SetDefault("preset", fixture.PresetComprehensive)
	v.SetDefault("progress", string(progress.ModeAuto))
	v.SetDefault("progress-interval", 1)
	v.SetDefault("verbose", false)
	v.SetDefault("debug", false)
	v.SetDefault("skip-space-check", false)
}

// Load merges settings. cfgFile, when set, must exist; otherwise fixturegen.yaml
// in the working directory is used if present. flags may be nil.
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName(DefaultConfigName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}
	cfg := &Config{}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) || cfgFile != "" {
			return nil, fmt.Errorf("read config %s: %w", cfgFile, err)
		}
	} else {
		cfg.ConfigFile = v.ConfigFileUsed()
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for _, key := range flagKeys {
			if f := flags.Lookup(key); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("bind flag --%s: %w", key, err)
				}
			}
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.resolve(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// resolve fills the manifest from the preset and validates everything.
func (c *Config) resolve() error {
	if c.Root == "" {
		return fmt.Errorf("root must not be empty")
	}
	if _, err := progress.ParseMode(c.Progress); err != nil {
		return err
	}
	if len(c.Scenarios) == 0 {
		s, err := fixture.Preset(c.Preset)
		if err != nil {
			return err
		}
		c.Scenarios = s
	} else {
		c.Preset = ""
	}
	return fixture.Validate(c.Scenarios)
}
