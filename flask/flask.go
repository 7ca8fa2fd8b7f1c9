package flask

import (
	"fmt"
	"io/ioutil"
	"path/filepath"
	"strconv"
	"strings"
)

// Config holds the arguments read from a Flask configuration file. Flask
// configs are line-oriented, one "KEY: VALUE" pair per line, with '#'
// starting a comment. Keys are matched exactly: the value of a key is
// everything after the first ':' on its line, trimmed of whitespace and
// trailing comments.
type Config struct {
	path string
	args map[string]string
}

// ReadFile parses the Flask configuration file at path. Lines without a ':'
// are ignored, as are comments and blank lines. If a key appears more than
// once, the first occurrence wins.
func ReadFile(path string) (*Config, error) {
	bs, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := &Config{path: path, args: map[string]string{}}
	for _, line := range strings.Split(string(bs), "\n") {
		if comment := strings.Index(line, "#"); comment != -1 {
			line = line[:comment]
		}

		colon := strings.Index(line, ":")
		if colon == -1 {
			continue
		}

		key := strings.TrimSpace(line[:colon])
		val := strings.TrimSpace(line[colon+1:])
		if key == "" {
			continue
		}
		if _, ok := cfg.args[key]; !ok {
			cfg.args[key] = val
		}
	}

	return cfg, nil
}

// Arg returns the value of the given key. ok is false if the key is missing,
// has an empty value, or has a value starting with '0', which is Flask's
// convention for a parameter that was switched off.
func (cfg *Config) Arg(key string) (val string, ok bool) {
	val, ok = cfg.args[key]
	if !ok || val == "" || val[0] == '0' {
		return "", false
	}
	return val, true
}

// Dir returns the directory containing the configuration file.
func (cfg *Config) Dir() string {
	return filepath.Dir(cfg.path)
}

// Path returns the value of key resolved to a usable path. Values starting
// with '/' are taken as absolute, anything else is relative to the
// configuration file's directory.
func (cfg *Config) Path(key string) (string, bool) {
	val, ok := cfg.Arg(key)
	if !ok {
		return "", false
	}
	if val[0] == '/' {
		return val, true
	}
	return filepath.Join(cfg.Dir(), val), true
}

// NSide returns the NSIDE resolution parameter of the simulation.
func (cfg *Config) NSide() (int, error) {
	val, ok := cfg.Arg("NSIDE")
	if !ok {
		return 0, fmt.Errorf("NSIDE not set in the config file %s", cfg.path)
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("NSIDE value '%s' is not an integer", val)
	}
	return n, nil
}

// ApplyPixWin reports whether the simulation was run with the HEALPix pixel
// window function applied to its maps.
func (cfg *Config) ApplyPixWin() bool {
	val, _ := cfg.Arg("APPLY_PIXWIN")
	return val == "1"
}
