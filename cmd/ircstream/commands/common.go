package commands

import (
	"github.com/boreq/ircstream/config"
)

// GetConfig loads the config file and applies the command line overrides.
func GetConfig() (*config.Config, error) {
	path := configPath
	if path == "" {
		path = config.GetConfigPath()
	}
	conf, err := config.Get(path)
	if err != nil {
		return nil, err
	}
	if encoding != "" {
		conf.Encoding = encoding
	}
	return conf, nil
}
