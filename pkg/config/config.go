package config

import (
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/v2"
	"github.com/stowd/stowd/pkg/logging"
	"github.com/stowd/stowd/pkg/platform"
)

// Section suffixes recognized in stowd.cfg
const (
	SectionSettings = "settings"
	SectionHome     = "home"
	SectionRoot     = "root"
)

// keyDelim is the koanf path delimiter. App names may contain dots, never slashes.
const keyDelim = "/"

// Entry is a single key = value line of a section
type Entry struct {
	Key   string
	Value string
}

type section struct {
	name    string
	entries []Entry
}

// Config is a parsed configuration file: an ordered list of named sections,
// each an ordered list of entries. It is read-only once loaded.
type Config struct {
	// Path is the file the configuration was read from
	Path string

	sections []section
}

// set adds or replaces key in the named section; the last value wins and
// the key keeps the position of its first appearance.
func (c *Config) set(name, key, value string) {
	s := c.section(name)
	if s == nil {
		c.sections = append(c.sections, section{name: name})
		s = &c.sections[len(c.sections)-1]
	}
	for i := range s.entries {
		if s.entries[i].Key == key {
			s.entries[i].Value = value
			return
		}
	}
	s.entries = append(s.entries, Entry{Key: key, Value: value})
}

func (c *Config) addSection(name string) {
	if c.section(name) == nil {
		c.sections = append(c.sections, section{name: name})
	}
}

func (c *Config) section(name string) *section {
	for i := range c.sections {
		if c.sections[i].name == name {
			return &c.sections[i]
		}
	}
	return nil
}

// HasSection reports whether a section with the given name exists
func (c *Config) HasSection(name string) bool {
	return c.section(name) != nil
}

// Sections returns the section names in file order
func (c *Config) Sections() []string {
	names := make([]string, 0, len(c.sections))
	for _, s := range c.sections {
		names = append(names, s.name)
	}
	return names
}

// Section returns a copy of the named section's entries, nil if absent
func (c *Config) Section(name string) []Entry {
	s := c.section(name)
	if s == nil {
		return nil
	}
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Get returns the value of key in section, or def when either is missing
func (c *Config) Get(sectionName, key, def string) string {
	s := c.section(sectionName)
	if s == nil {
		return def
	}
	for _, e := range s.entries {
		if e.Key == key {
			return e.Value
		}
	}
	return def
}

// LayerNames returns the section names merged for suffix, lowest priority first
func LayerNames(suffix string, host platform.Host) []string {
	names := []string{suffix}
	if host.Platform != "" {
		names = append(names, host.Platform+"-"+suffix)
	}
	if host.Hostname != "" {
		names = append(names, host.Hostname+"-"+suffix)
	}
	return names
}

// Merged layers the <suffix>, <platform>-<suffix> and <hostname>-<suffix>
// sections, later layers overriding earlier ones key by key. Entries come
// back in order of each key's first appearance across the layers.
func (c *Config) Merged(suffix string, host platform.Host) []Entry {
	log := logging.GetLogger("config.merge")

	k := koanf.New(keyDelim)
	var order []string
	seen := make(map[string]bool)

	for _, name := range LayerNames(suffix, host) {
		s := c.section(name)
		if s == nil {
			continue
		}

		layer := make(map[string]interface{}, len(s.entries))
		for _, e := range s.entries {
			layer[e.Key] = e.Value
			if !seen[e.Key] {
				seen[e.Key] = true
				order = append(order, e.Key)
			}
		}

		if err := k.Load(confmap.Provider(layer, ""), nil); err != nil {
			log.Warn().Err(err).Str("section", name).Msg("Failed to merge section")
			continue
		}
		log.Debug().Str("section", name).Int("keys", len(layer)).Msg("Merged section")
	}

	merged := make([]Entry, 0, len(order))
	for _, key := range order {
		merged = append(merged, Entry{Key: key, Value: k.String(key)})
	}
	return merged
}
