package cmd

import (
	"os"

	"github.com/BurntSushi/toml"
)

// Config is difftool's on-disk configuration, loaded from (in order of
// preference) --config, ./difftool.toml, or $HOME/.config/difftool.toml.
// Any or all of these may be absent; defaults apply.
type Config struct {
	LogLevel string `toml:"log_level"`

	Defaults struct {
		IgnoreCase    bool `toml:"ignore_case"`
		IgnoreSpace   bool `toml:"ignore_space"`
		IgnoreNumbers bool `toml:"ignore_numbers"`
		Noempty       bool `toml:"noempty"`
		Pivot         int  `toml:"pivot"`
	} `toml:"defaults"`
}

func defaultConfig() Config {
	c := Config{LogLevel: "info"}
	c.Defaults.Pivot = 100
	return c
}

// LoadConfig reads path if given, else probes the conventional locations.
// A missing file is not an error; a malformed one is.
func LoadConfig(path string) (Config, error) {
	cfg := defaultConfig()

	candidates := []string{path}
	if path == "" {
		candidates = []string{"difftool.toml"}
		if home, err := os.UserHomeDir(); err == nil {
			candidates = append(candidates, home+"/.config/difftool.toml")
		}
	}

	for _, candidate := range candidates {
		if candidate == "" {
			continue
		}
		data, err := os.ReadFile(candidate)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return cfg, err
		}
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			return cfg, err
		}
		return cfg, nil
	}
	return cfg, nil
}
