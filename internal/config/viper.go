package config

import (
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

// loadWithViper loads the configs using Viper.
//
// It reads configs.yaml from the conventional locations and allows every key
// to be overridden through OSUAUTH_* environment variables.
func loadWithViper() Config {
	viper.SetConfigName("configs")
	viper.SetConfigType("yaml")

	viper.AddConfigPath(".")
	viper.AddConfigPath("./configs")
	viper.AddConfigPath("/etc/osuauth")

	viper.SetEnvPrefix("OSUAUTH")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		panic("error in viper.ReadInConfig call: " + err.Error())
	}

	var conf Config
	// The config struct uses yaml tags, so the decoder must match on them.
	decodeOpt := func(dc *mapstructure.DecoderConfig) { dc.TagName = "yaml" }
	if err := viper.Unmarshal(&conf, decodeOpt); err != nil {
		panic("error in viper.Unmarshal call: " + err.Error())
	}

	return conf
}
