// Package config loads project configuration for cardlayout.
//
// A project file overrides the space budget, extends the kind catalog and
// selects a cache backend. Both TOML and YAML are accepted; the format is
// chosen by file extension:
//
//	# cardlayout.toml
//	[budget]
//	row_units = 7
//	side_units = 3
//	card_rows = 4
//
//	[cache]
//	backend = "sqlite"
//	sqlite_path = ".cardlayout/cache.db"
//
//	[[kinds]]
//	kind = "data"
//	icon = "resources/data"
//	class = "card-resource"
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/cardlayout/pkg/cache"
	"github.com/matzehuels/cardlayout/pkg/catalog"
	apperr "github.com/matzehuels/cardlayout/pkg/errors"
	"github.com/matzehuels/cardlayout/pkg/layout"
	"github.com/matzehuels/cardlayout/pkg/pipeline"
)

// Supported formats.
const (
	FormatTOML = "toml"
	FormatYAML = "yaml"
)

// FileNames are the names Find looks for, in order.
var FileNames = []string{"cardlayout.toml", "cardlayout.yaml", "cardlayout.yml"}

// Config is the content of a project file.
type Config struct {
	Budget layout.Budget        `toml:"budget" yaml:"budget"`
	Cache  CacheConfig          `toml:"cache" yaml:"cache"`
	Kinds  []catalog.Descriptor `toml:"kinds" yaml:"kinds"`
}

// CacheConfig selects the plan cache backend.
type CacheConfig struct {
	Backend    string `toml:"backend" yaml:"backend"`
	Dir        string `toml:"dir" yaml:"dir"`
	SQLitePath string `toml:"sqlite_path" yaml:"sqlite_path"`
	RedisURL   string `toml:"redis_url" yaml:"redis_url"`
	MongoURI   string `toml:"mongo_uri" yaml:"mongo_uri"`
}

// Default returns the configuration used without a project file.
func Default() *Config {
	return &Config{Budget: layout.DefaultBudget()}
}

// Load reads and validates the file at path.
func Load(path string) (*Config, error) {
	format, err := formatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, apperr.Wrap(apperr.ErrCodeFileNotFound, err, "config file %s not found", path)
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg, err := Parse(data, format)
	if err != nil {
		return nil, apperr.Wrap(apperr.ErrCodeInvalidConfig, err, "load %s", path)
	}
	return cfg, nil
}

// Parse decodes and validates configuration data in the given format.
func Parse(data []byte, format string) (*Config, error) {
	var cfg Config
	switch format {
	case FormatTOML:
		md, err := toml.Decode(string(data), &cfg)
		if err != nil {
			return nil, err
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("unknown key %q", undecoded[0].String())
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}
	default:
		return nil, apperr.New(apperr.ErrCodeUnsupported, "unsupported config format %q", format)
	}

	cfg.Budget = cfg.Budget.WithDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the budget and every kind override.
func (c *Config) Validate() error {
	if err := c.Budget.Validate(); err != nil {
		return err
	}
	seen := make(map[string]bool, len(c.Kinds))
	for i, d := range c.Kinds {
		if err := apperr.ValidateKind(d.Kind); err != nil {
			return apperr.Wrap(apperr.ErrCodeInvalidConfig, err, "kinds[%d]", i)
		}
		if seen[d.Kind] {
			return apperr.New(apperr.ErrCodeInvalidConfig, "kinds[%d]: duplicate kind %q", i, d.Kind)
		}
		seen[d.Kind] = true
		if d.Class != "" && !catalog.ValidClasses[d.Class] {
			return apperr.New(apperr.ErrCodeInvalidConfig, "kinds[%d]: unknown class %q", i, d.Class)
		}
	}
	return nil
}

// Catalog returns base extended with the configured kinds.
// A nil base means the default catalog.
func (c *Config) Catalog(base *catalog.Catalog) *catalog.Catalog {
	if base == nil {
		base = catalog.Default()
	}
	if len(c.Kinds) == 0 {
		return base
	}
	return base.With(c.Kinds...)
}

// PipelineOptions returns planning options for this configuration.
func (c *Config) PipelineOptions() pipeline.Options {
	return pipeline.Options{Budget: c.Budget, Catalog: c.Catalog(nil)}
}

// CacheSettings returns the cache settings with relative paths resolved
// against dir.
func (c *Config) CacheSettings(dir string) cache.Config {
	cc := cache.Config{
		Backend:    c.Cache.Backend,
		Dir:        c.Cache.Dir,
		SQLitePath: c.Cache.SQLitePath,
		RedisURL:   c.Cache.RedisURL,
		MongoURI:   c.Cache.MongoURI,
	}
	if cc.Dir != "" && !filepath.IsAbs(cc.Dir) {
		cc.Dir = filepath.Join(dir, cc.Dir)
	}
	if cc.SQLitePath != "" && cc.SQLitePath != ":memory:" && !filepath.IsAbs(cc.SQLitePath) {
		cc.SQLitePath = filepath.Join(dir, cc.SQLitePath)
	}
	return cc
}

// Find returns the first project file found in dir.
func Find(dir string) (string, bool) {
	for _, name := range FileNames {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, true
		}
	}
	return "", false
}

// LoadOrDefault loads the project file in dir, or returns Default when
// there is none.
func LoadOrDefault(dir string) (*Config, string, error) {
	path, ok := Find(dir)
	if !ok {
		return Default(), "", nil
	}
	cfg, err := Load(path)
	return cfg, path, err
}

func formatOf(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", apperr.New(apperr.ErrCodeUnsupported,
			"unsupported config extension %q (use .toml, .yaml or .yml)", filepath.Ext(path))
	}
}
