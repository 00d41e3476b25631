package config

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/stowd/stowd/pkg/errors"
	"github.com/stowd/stowd/pkg/logging"
	"gopkg.in/ini.v1"
	"gopkg.in/yaml.v3"
)

// Load discovers and parses the configuration file
func Load(explicitPath, dotfilesDir string) (*Config, error) {
	path, err := Discover(explicitPath, dotfilesDir)
	if err != nil {
		return nil, err
	}
	return LoadFile(path)
}

// LoadFile parses the file at path. The format follows the extension:
// .yaml/.yml and .toml are supported, anything else is INI.
func LoadFile(path string) (*Config, error) {
	log := logging.GetLogger("config.loader")

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to read config file %s", path)
	}

	var cfg *Config
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		cfg, err = parseYAML(data)
	case ".toml":
		cfg, err = parseTOML(data)
	default:
		cfg, err = parseINI(data)
	}
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to parse config file %s", path)
	}
	cfg.Path = path

	log.Debug().
		Str("path", path).
		Strs("sections", cfg.Sections()).
		Msg("Config loaded")

	return cfg, nil
}

func parseINI(data []byte) (*Config, error) {
	f, err := ini.LoadSources(ini.LoadOptions{
		IgnoreInlineComment: true,
	}, data)
	if err != nil {
		return nil, err
	}

	cfg := &Config{}
	for _, s := range f.Sections() {
		keys := s.Keys()
		if s.Name() == ini.DefaultSection && len(keys) == 0 {
			continue
		}
		cfg.addSection(s.Name())
		for _, key := range keys {
			cfg.set(s.Name(), key.Name(), key.Value())
		}
	}
	return cfg, nil
}

// parseYAML walks the node tree so section and key order survive
func parseYAML(data []byte) (*Config, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(bytes.NewReader(data)).Decode(&doc); err != nil {
		if err == io.EOF {
			return &Config{}, nil
		}
		return nil, err
	}

	cfg := &Config{}
	if len(doc.Content) == 0 {
		return cfg, nil
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: top level must be a mapping of sections", root.Line)
	}

	for i := 0; i+1 < len(root.Content); i += 2 {
		name, body := root.Content[i].Value, root.Content[i+1]
		cfg.addSection(name)

		if body.Kind == yaml.ScalarNode && body.Tag == "!!null" {
			continue
		}
		if body.Kind != yaml.MappingNode {
			return nil, fmt.Errorf("line %d: section %q must be a mapping", body.Line, name)
		}

		for j := 0; j+1 < len(body.Content); j += 2 {
			key, val := body.Content[j], body.Content[j+1]
			if val.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("line %d: value of %s.%s must be a scalar", val.Line, name, key.Value)
			}
			cfg.set(name, key.Value, val.Value)
		}
	}
	return cfg, nil
}

// parseTOML reads tables as sections. TOML tables carry no order, so
// sections and keys are sorted by name.
func parseTOML(data []byte) (*Config, error) {
	var raw map[string]interface{}
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	names := make([]string, 0, len(raw))
	for name := range raw {
		names = append(names, name)
	}
	sort.Strings(names)

	cfg := &Config{}
	for _, name := range names {
		table, ok := raw[name].(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("top-level key %q must be a table", name)
		}
		cfg.addSection(name)

		keys := make([]string, 0, len(table))
		for key := range table {
			keys = append(keys, key)
		}
		sort.Strings(keys)

		for _, key := range keys {
			switch v := table[key].(type) {
			case string, bool, int64, float64:
				cfg.set(name, key, fmt.Sprint(v))
			default:
				return nil, fmt.Errorf("value of %s.%s must be a scalar", name, key)
			}
		}
	}
	return cfg, nil
}
