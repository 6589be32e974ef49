package config

import (
	"fmt"

	"github.com/randalmurphal/textparser/pkg/textparser"
)

// Document keys read by Parser.
const (
	KeyText    = "text"
	KeyValues  = "values"
	KeyTags    = "tags"
	KeyExclude = "exclude"
	KeyAliases = "aliases"
)

// Config wraps a map[string]any for type-safe value extraction.
// All accessor methods return default values if the key is missing
// or the value cannot be converted to the requested type.
type Config struct {
	data map[string]any
}

// New creates a Config from the given map.
// If data is nil, an empty Config is returned.
func New(data map[string]any) Config {
	if data == nil {
		data = make(map[string]any)
	}
	return Config{data: data}
}

// String returns the string value for key, or defaultVal if missing or not a string.
func (c Config) String(key, defaultVal string) string {
	v, ok := c.data[key]
	if !ok {
		return defaultVal
	}
	if s, ok := v.(string); ok {
		return s
	}
	return defaultVal
}

// StringSlice returns the string slice for key, or defaultVal if missing or not convertible.
//
// Accepts:
//   - []string: used directly
//   - []any: each element must be a string
func (c Config) StringSlice(key string, defaultVal []string) []string {
	v, ok := c.data[key]
	if !ok {
		return defaultVal
	}
	switch val := v.(type) {
	case []string:
		return val
	case []any:
		result := make([]string, 0, len(val))
		for _, item := range val {
			s, ok := item.(string)
			if !ok {
				return defaultVal
			}
			result = append(result, s)
		}
		return result
	}
	return defaultVal
}

// StringMap returns the string-to-string map for key, or defaultVal if missing or not convertible.
//
// Accepts:
//   - map[string]string: used directly
//   - map[string]any: each value must be a string
func (c Config) StringMap(key string, defaultVal map[string]string) map[string]string {
	v, ok := c.data[key]
	if !ok {
		return defaultVal
	}
	switch val := v.(type) {
	case map[string]string:
		return val
	case map[string]any:
		result := make(map[string]string, len(val))
		for k, item := range val {
			s, ok := item.(string)
			if !ok {
				return defaultVal
			}
			result[k] = s
		}
		return result
	}
	return defaultVal
}

// Map returns the nested map for key, or defaultVal if missing or not a map[string]any.
func (c Config) Map(key string, defaultVal map[string]any) map[string]any {
	v, ok := c.data[key]
	if !ok {
		return defaultVal
	}
	if m, ok := v.(map[string]any); ok {
		return m
	}
	return defaultVal
}

// Has returns true if the key exists in the config.
func (c Config) Has(key string) bool {
	_, ok := c.data[key]
	return ok
}

// Raw returns the underlying map.
// The returned map should not be modified.
func (c Config) Raw() map[string]any {
	return c.data
}

// Parser returns a resolver configured from the document keys.
//
// Tags are only set when the document has a tags key. List entries
// that are not strings are formatted with fmt.Sprint, so the tag count
// reported by Parse matches the document. A single string is one tag.
func (c Config) Parser(opts ...textparser.Option) *textparser.Parser {
	p := textparser.Text(c.String(KeyText, ""), opts...).
		Values(c.Map(KeyValues, nil)).
		Exclude(c.StringSlice(KeyExclude, nil)...).
		Aliases(c.StringMap(KeyAliases, nil))
	if c.Has(KeyTags) {
		p.Tags(c.tagList()...)
	}
	return p
}

func (c Config) tagList() []string {
	switch val := c.data[KeyTags].(type) {
	case []string:
		return val
	case string:
		return []string{val}
	case []any:
		tags := make([]string, len(val))
		for i, item := range val {
			if item != nil {
				tags[i] = fmt.Sprint(item)
			}
		}
		return tags
	}
	return nil
}
