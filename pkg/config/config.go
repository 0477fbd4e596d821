package config

import (
	"fmt"
	"io/fs"
	"strconv"
	"unicode/utf8"
)

// Config is the effective csvexport configuration.
type Config struct {
	Table  TableConfig  `koanf:"table" toml:"table"`
	Output OutputConfig `koanf:"output" toml:"output"`
	Run    RunConfig    `koanf:"run" toml:"run"`
	UI     UIConfig     `koanf:"ui" toml:"ui"`
}

// TableConfig controls source decoding.
type TableConfig struct {
	Delimiter string `koanf:"delimiter" toml:"delimiter"`
	Sheet     string `koanf:"sheet" toml:"sheet"`
}

// OutputConfig controls generated files.
type OutputConfig struct {
	Dir       string `koanf:"dir" toml:"dir"`
	Extension string `koanf:"extension" toml:"extension"`
	DirMode   string `koanf:"dir_mode" toml:"dir_mode"`
	FileMode  string `koanf:"file_mode" toml:"file_mode"`
	Indent    int    `koanf:"indent" toml:"indent"`
}

// RunConfig holds behaviour switches of an export run.
type RunConfig struct {
	Substitute bool `koanf:"substitute" toml:"substitute"`
	Strict     bool `koanf:"strict" toml:"strict"`
}

// UIConfig controls the diagnostic stream.
type UIConfig struct {
	Format  string `koanf:"format" toml:"format"`
	NoColor bool   `koanf:"no_color" toml:"no_color"`
}

// Formats accepted by ui.format
var Formats = []string{"auto", "terminal", "text", "json"}

// DelimiterRune returns the configured delimiter as a rune.
func (t TableConfig) DelimiterRune() rune {
	r, _ := utf8.DecodeRuneInString(t.Delimiter)
	return r
}

// DirPerm returns the folder permissions.
func (o OutputConfig) DirPerm() fs.FileMode {
	m, _ := parseMode(o.DirMode)
	return m
}

// FilePerm returns the file permissions.
func (o OutputConfig) FilePerm() fs.FileMode {
	m, _ := parseMode(o.FileMode)
	return m
}

func parseMode(s string) (fs.FileMode, error) {
	v, err := strconv.ParseUint(s, 8, 32)
	if err != nil {
		return 0, err
	}
	return fs.FileMode(v).Perm(), nil
}

// Validate checks values that cannot be expressed by types alone.
func (c *Config) Validate() error {
	if utf8.RuneCountInString(c.Table.Delimiter) != 1 {
		return fmt.Errorf("table.delimiter must be a single character, got %q", c.Table.Delimiter)
	}
	switch c.Table.DelimiterRune() {
	case '"', '\r', '\n', utf8.RuneError:
		return fmt.Errorf("table.delimiter %q is not allowed", c.Table.Delimiter)
	}
	if _, err := parseMode(c.Output.DirMode); err != nil {
		return fmt.Errorf("output.dir_mode %q is not an octal mode", c.Output.DirMode)
	}
	if _, err := parseMode(c.Output.FileMode); err != nil {
		return fmt.Errorf("output.file_mode %q is not an octal mode", c.Output.FileMode)
	}
	if c.Output.Indent < 0 {
		return fmt.Errorf("output.indent must not be negative, got %d", c.Output.Indent)
	}
	for _, f := range Formats {
		if c.UI.Format == f {
			return nil
		}
	}
	return fmt.Errorf("ui.format must be one of %v, got %q", Formats, c.UI.Format)
}
