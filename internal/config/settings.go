package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable the CLI reads.
const EnvPrefix = "METAFRONT"

// NewViper returns a viper instance reading METAFRONT_* variables and, when
// present, a .metafront.yaml file. An explicit configFile must exist; the
// default locations are optional.
func NewViper(configFile string) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
		v.AddConfigPath(".")
		v.SetConfigType("yaml")
		v.SetConfigName(".metafront")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile == "" && errors.As(err, &notFound) {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	return v, nil
}

// BindFlags copies settings from v into every flag the user did not set on
// the command line. Explicit flags always win.
func BindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	var bindErr error
	flags.VisitAll(func(f *pflag.Flag) {
		if bindErr != nil || f.Changed {
			return
		}

		// Config files may spell keys with or without hyphens.
		name := f.Name
		if !v.IsSet(name) {
			name = strings.ReplaceAll(f.Name, "-", "")
			if !v.IsSet(name) {
				return
			}
		}

		if err := flags.Set(f.Name, fmt.Sprintf("%v", v.Get(name))); err != nil {
			bindErr = fmt.Errorf("flag --%s: %w", f.Name, err)
		}
	})
	return bindErr
}
