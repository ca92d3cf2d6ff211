// config_keys.go provides string-keyed access to configuration settings for
// the config command and the MCP server, e.g. "search.threads".
//
// Optional fields are pointers so "not set" (nil) differs from "set to
// zero/false"; defaults apply only to unset values.

package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jpl-au/ffind/internal/glob"
)

// ValidKeys returns all valid configuration keys.
func ValidKeys() []string {
	return []string{
		"search.ignore_case", "search.regex",
		"search.extensions", "search.exclude",
		"search.threads",
		"limits.max_line_length",
	}
}

// Get returns the value of a configuration key as a string.
func (c *Config) Get(key string) (string, error) {
	switch key {
	case "search.ignore_case":
		return strconv.FormatBool(c.IgnoreCase()), nil
	case "search.regex":
		return strconv.FormatBool(c.Regex()), nil
	case "search.extensions":
		return c.Extensions(), nil
	case "search.exclude":
		return strings.Join(c.Excludes(), ","), nil
	case "search.threads":
		return strconv.Itoa(c.Threads()), nil
	case "limits.max_line_length":
		return strconv.Itoa(c.MaxLineLength()), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
}

// Set sets the value of a configuration key.
func (c *Config) Set(key, value string) error {
	switch key {
	case "search.ignore_case":
		b, err := parseBool(key, value)
		if err != nil {
			return err
		}
		c.Search.IgnoreCase = &b
	case "search.regex":
		b, err := parseBool(key, value)
		if err != nil {
			return err
		}
		c.Search.Regex = &b
	case "search.extensions":
		v := strings.TrimSpace(value)
		c.Search.Extensions = &v
	case "search.exclude":
		patterns := splitList(value)
		if err := glob.Validate(patterns); err != nil {
			return fmt.Errorf("%w: search.exclude: %w", ErrInvalidValue, err)
		}
		c.Search.Exclude = &patterns
	case "search.threads":
		n, err := strconv.Atoi(value)
		if err != nil || n < MinThreads || n > MaxThreads {
			return fmt.Errorf("%w: search.threads must be between %d and %d", ErrInvalidValue, MinThreads, MaxThreads)
		}
		c.Search.Threads = &n
	case "limits.max_line_length":
		n, err := strconv.Atoi(value)
		if err != nil || n <= 0 {
			return fmt.Errorf("%w: limits.max_line_length must be a positive integer", ErrInvalidValue)
		}
		c.Limits.MaxLineLength = &n
	default:
		return fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
	return nil
}

// Unset clears a key so its default applies again.
func (c *Config) Unset(key string) error {
	switch key {
	case "search.ignore_case":
		c.Search.IgnoreCase = nil
	case "search.regex":
		c.Search.Regex = nil
	case "search.extensions":
		c.Search.Extensions = nil
	case "search.exclude":
		c.Search.Exclude = nil
	case "search.threads":
		c.Search.Threads = nil
	case "limits.max_line_length":
		c.Limits.MaxLineLength = nil
	default:
		return fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
	return nil
}

// All returns all configuration values as a map.
func (c *Config) All() map[string]string {
	all := make(map[string]string, len(ValidKeys()))
	for _, key := range ValidKeys() {
		v, _ := c.Get(key)
		all[key] = v
	}
	return all
}

// IsSet returns true if the key has an explicit value (not just defaults).
func (c *Config) IsSet(key string) bool {
	switch key {
	case "search.ignore_case":
		return c.Search.IgnoreCase != nil
	case "search.regex":
		return c.Search.Regex != nil
	case "search.extensions":
		return c.Search.Extensions != nil
	case "search.exclude":
		return c.Search.Exclude != nil
	case "search.threads":
		return c.Search.Threads != nil
	case "limits.max_line_length":
		return c.Limits.MaxLineLength != nil
	default:
		return false
	}
}

func parseBool(key, value string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "true":
		return true, nil
	case "false":
		return false, nil
	}
	return false, fmt.Errorf("%w: %s must be true or false", ErrInvalidValue, key)
}

// splitList splits a comma-separated list, dropping blanks.
func splitList(s string) []string {
	out := []string{}
	for part := range strings.SplitSeq(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
