package virtual

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/obscurehobo/hobosite/site"
)

const (
	configFile      = "site.cfg"
	dataFile        = "data.toml"
	defaultArticles = "articles"
)

// Config contains configuration data from the site.cfg file.
type Config struct {
	Site          site.Defaults     `toml:"site"`          // Site-wide page defaults
	Articles      string            `toml:"articles"`      // Folder holding articles, default "articles"
	Canonical     bool              `toml:"canonical"`     // Redirect requests to Site.Host
	Expires       Duration          `toml:"expires"`       // Expiry of rendered pages
	StaticExpires Duration          `toml:"staticexpires"` // Expiry of everything else
	Headers       map[string]string `toml:"headers"`       // Extra response headers
}

// Config returns the configuration read from the site.cfg file when the
// FS was created. Defaults are filled in when the file does not exist.
func (vfs *FS) Config() *Config {
	return vfs.cfg
}

// Data returns the links and talks read from the data.toml file.
func (vfs *FS) Data() *site.Data {
	return vfs.data
}

// readConfig reads site.cfg. It is not an error if the file does not exist.
func readConfig(fsys fs.FS) (*Config, error) {
	var cfg Config
	b, err := fs.ReadFile(fsys, configFile)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("Cannot read config file: %w", err)
	}
	if err == nil {
		err = toml.Unmarshal(b, &cfg)
		if err != nil {
			return nil, fmt.Errorf("Cannot parse config file: %w", err)
		}
	}
	cfg.Articles = strings.Trim(cfg.Articles, "/")
	if cfg.Articles == "" {
		cfg.Articles = defaultArticles
	}
	return &cfg, nil
}

// readData reads data.toml. It is not an error if the file does not exist.
func readData(fsys fs.FS) (*site.Data, error) {
	b, err := fs.ReadFile(fsys, dataFile)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("Cannot read data file: %w", err)
	}
	d, err := site.ParseData(b)
	if err != nil {
		return nil, fmt.Errorf("Cannot parse data file: %w", err)
	}
	return d, nil
}
