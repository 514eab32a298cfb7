/*
File    : lox/config/config.go
Package : config

Package config loads the REPL's cosmetic settings (banner, prompt,
version, author, license) from an optional YAML file, the way the
teacher's main package instead bakes these as package-level var
BANNER/VERSION/AUTHOR/LICENCE/PROMPT string literals. Lifting them
into a loaded file lets the previously-unused gopkg.in/yaml.v3
dependency actually do something: when no file is present or it fails
to parse, Load falls back to the same defaults the teacher hardcodes.

DiscoverPath implements the lookup order the REPL uses when no path is
given explicitly: a `.loxrc.yaml` in the current working directory,
then one in the user's home directory.
*/
package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// fileName is the config file basename DiscoverPath looks for.
const fileName = ".loxrc.yaml"

// REPL holds the cosmetic settings a REPL session displays at
// startup and uses as its prompt.
type REPL struct {
	Banner  string `yaml:"banner"`
	Version string `yaml:"version"`
	Author  string `yaml:"author"`
	Line    string `yaml:"line"`
	License string `yaml:"license"`
	Prompt  string `yaml:"prompt"`
}

// Default mirrors the teacher's hardcoded BANNER/VERSION/AUTHOR/
// LICENCE/PROMPT constants, generalized to the lox language.
func Default() REPL {
	return REPL{
		Banner: `
  oooo            oooo
  8888            8888
.8888ooo.  .ooooo. 8888  oooo
'8888' 88 d88' '88b8888.8P'
 8888  88 8888   8888888.
 8888  88 88.  .8888 '88b.
o888o o8o '8888o8888  o888o
`,
		Version: "v0.1.0",
		Author:  "lox contributors",
		Line:    "--------------------------------------------------------------",
		License: "MIT",
		Prompt:  "lox >>> ",
	}
}

// DiscoverPath looks for a config file in the working directory, then
// in the user's home directory, returning the first one that exists.
// It returns "" when neither is present, which Load treats as "use
// Default()".
func DiscoverPath() string {
	if _, err := os.Stat(fileName); err == nil {
		return fileName
	}
	if home, err := os.UserHomeDir(); err == nil {
		candidate := filepath.Join(home, fileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	return ""
}

// Load reads REPL settings from path. A missing file, or one that
// fails to parse, yields Default() rather than an error — the REPL's
// appearance is cosmetic, never load-bearing for a program's
// execution.
func Load(path string) REPL {
	cfg := Default()
	if path == "" {
		return cfg
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg
	}
	var loaded REPL
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return cfg
	}
	if loaded.Banner != "" {
		cfg.Banner = loaded.Banner
	}
	if loaded.Version != "" {
		cfg.Version = loaded.Version
	}
	if loaded.Author != "" {
		cfg.Author = loaded.Author
	}
	if loaded.Line != "" {
		cfg.Line = loaded.Line
	}
	if loaded.License != "" {
		cfg.License = loaded.License
	}
	if loaded.Prompt != "" {
		cfg.Prompt = loaded.Prompt
	}
	return cfg
}
