package config

import (
	"io"
	"os"
	"os/user"
	"path"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/boreq/ircstream/encode"
	"github.com/boreq/ircstream/transport/line"
	"github.com/boreq/ircstream/utils"
	"github.com/boreq/ircstream/utils/size"
	"github.com/pkg/errors"
)

// The name of the environment variable which specifies the location of the
// config directory.
const ConfigEnvVar = "IRCSTREAMPATH"

const configFileName = "config.toml"

// This part of the config structure is saved in the config file in TOML
// format.
type savedConfig struct {
	// Encoding is the name of the charset used on the wire.
	Encoding string `toml:"encoding"`

	// MaxLineLength is the number of bytes after which a line which
	// wasn't terminated is split.
	MaxLineLength size.Size `toml:"max_line_length"`
}

// Full config struct.
type Config struct {
	savedConfig
}

// Load reads the config file. A missing file is not an error, the current
// values are left unchanged in that case.
func (conf *Config) Load(filePath string) error {
	content, err := os.ReadFile(filePath)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}
	_, err = toml.Decode(string(content), &conf.savedConfig)
	return err
}

// Save writes the config file creating its directory if needed.
func (conf *Config) Save(filePath string) error {
	if err := utils.EnsureDirExists(filepath.Dir(filePath), false); err != nil {
		return errors.Wrap(err, "could not create the config directory")
	}
	f, err := os.OpenFile(filePath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}
	if err := conf.Write(f); err != nil {
		f.Close()
		return errors.Wrap(err, "could not write the config")
	}
	return errors.Wrap(f.Close(), "could not close the config file")
}

// Write encodes the config in TOML format.
func (conf *Config) Write(w io.Writer) error {
	return toml.NewEncoder(w).Encode(conf.savedConfig)
}

// Charset returns the configured charset.
func (conf *Config) Charset() (*encode.Charset, error) {
	return encode.Lookup(conf.Encoding)
}

// FramerOptions returns the options configuring a line framer according to
// this config.
func (conf *Config) FramerOptions() ([]line.Option, error) {
	cs, err := conf.Charset()
	if err != nil {
		return nil, err
	}
	if conf.MaxLineLength <= 0 {
		return nil, errors.Errorf("max line length must be positive, got %d", conf.MaxLineLength)
	}
	return []line.Option{
		line.WithCharset(cs),
		line.WithMaxLineLength(conf.MaxLineLength),
	}, nil
}

// Get returns already loaded ready-to-use config.
func Get(filePath string) (*Config, error) {
	conf := Default()
	if err := conf.Load(filePath); err != nil {
		return nil, errors.Wrap(err, "unable to load config")
	}
	return conf, nil
}

// GetConfigDirPath returns the directory in which the config is saved.
func GetConfigDirPath() string {
	// Overriden by env variable
	if envDir := os.Getenv(ConfigEnvVar); envDir != "" {
		return envDir
	}

	// Default directory in $HOME
	user, err := user.Current()
	if err != nil {
		return ".ircstream"
	}
	return path.Join(user.HomeDir, ".ircstream")
}

// GetConfigPath returns the path to the config file.
func GetConfigPath() string {
	return path.Join(GetConfigDirPath(), configFileName)
}

// Returns a config filled with default values.
func Default() *Config {
	conf := &Config{
		savedConfig{
			Encoding:      encode.DefaultCharset,
			MaxLineLength: line.DefaultMaxLineLength,
		},
	}
	return conf
}
