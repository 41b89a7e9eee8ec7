package store

import (
	"errors"
	"os"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config locates the snapshot store.
type Config interface {
	BasePath() string
}

// Settings are the user-tunable knobs read from .daylist.yaml or the
// DAYLIST_* environment.
type Settings struct {
	Path  string `json:"path"`
	Theme string `json:"theme"`
	Sweep bool   `json:"sweep"`
}

// BasePath implements Config.
func (s *Settings) BasePath() string {
	return s.Path
}

// LoadConfig reads settings using a fresh viper instance. A missing config
// file is fine; a malformed one is an error.
func LoadConfig() (*Settings, error) {
	v := viper.New()
	v.SetDefault("path", "~/.daylist.db")
	v.SetDefault("theme", "light")
	v.SetDefault("sweep", true)
	v.SetConfigName(".daylist") // .yaml is implicit
	v.SetEnvPrefix("DAYLIST")
	v.AutomaticEnv()

	if override := os.Getenv("DAYLIST_CONFIG_PATH"); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath("./")
	if home, err := homedir.Dir(); err == nil {
		v.AddConfigPath(home)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	path, err := homedir.Expand(strings.TrimSpace(v.GetString("path")))
	if err != nil {
		return nil, err
	}
	return &Settings{
		Path:  path,
		Theme: v.GetString("theme"),
		Sweep: v.GetBool("sweep"),
	}, nil
}
