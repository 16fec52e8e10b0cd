// Package rconfig loads the compiler's resource-config file (`<name>.rc`),
// a small permissive-JSON document supplying search paths and option
// defaults (§6.2). It never fails a compile: a missing or malformed file
// falls back to internal defaults and reports through diagnostics rather
// than an error return.
package rconfig

import (
	"os"
	"path/filepath"

	"github.com/tidwall/gjson"

	"github.com/go-as2js/as2js/internal/diag"
	"github.com/go-as2js/as2js/internal/position"
)

// EnvVar names the environment variable holding a project-specific path to
// the resource config file, first in the lookup order (§6.2).
const EnvVar = "AS2JS_RC"

// FileName is the config's base name, looked for in the current directory,
// as the dotfile ".as2js.rc" in the user's home directory, and in /etc.
const FileName = "as2js.rc"

// Config holds the three keys the resource-config file recognizes.
type Config struct {
	// Scripts is the search path for imported scripts.
	Scripts []string
	// DB is the path to the symbol database file.
	DB string
	// TemporaryVariableName is the configured prefix for synthetic
	// variables. The compiler pass loads it but introduces no synthetic
	// variables.
	TemporaryVariableName string
}

// Default returns the built-in configuration used when no `.rc` file is
// found anywhere in the lookup chain.
func Default() Config {
	return Config{
		DB:                    "as2js.db",
		TemporaryVariableName: "_as2js_tmp_",
	}
}

// knownKeys is the recognized top-level key set; anything else is ignored
// with an UNKNOWN_CONFIG_KEY diagnostic (§6.2).
var knownKeys = map[string]bool{
	"scripts":                 true,
	"db":                      true,
	"temporary_variable_name": true,
}

// Load searches, in order, the AS2JS_RC environment variable, the current
// directory, the user's home directory, and /etc, and parses the first
// `.rc` file it finds. diags may be nil.
func Load(diags *diag.Context) Config {
	for _, path := range searchPaths() {
		raw, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		return parse(path, raw, diags)
	}
	return Default()
}

func searchPaths() []string {
	var paths []string
	if p := os.Getenv(EnvVar); p != "" {
		paths = append(paths, p)
	}
	if cwd, err := os.Getwd(); err == nil {
		paths = append(paths, filepath.Join(cwd, FileName))
	}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, "."+FileName))
	}
	paths = append(paths, filepath.Join(string(filepath.Separator), "etc", FileName))
	return paths
}

// parse decodes raw as permissive JSON and fills in a Config, falling back
// to Default()'s values for any key that is absent, invalid, or the whole
// document fails to parse.
func parse(path string, raw []byte, diags *diag.Context) Config {
	cfg := Default()
	cleaned := string(unsingleQuote(stripComments(raw)))
	if !gjson.Valid(cleaned) {
		emit(diags, path, "resource config is not valid JSON after preprocessing, using defaults")
		return cfg
	}
	root := gjson.Parse(cleaned)
	if !root.IsObject() {
		emit(diags, path, "resource config must be a JSON object, using defaults")
		return cfg
	}

	if scripts := root.Get("scripts"); scripts.Exists() {
		if scripts.IsArray() {
			for _, e := range scripts.Array() {
				cfg.Scripts = append(cfg.Scripts, e.String())
			}
		} else {
			cfg.Scripts = []string{scripts.String()}
		}
	}
	if db := root.Get("db"); db.Exists() {
		cfg.DB = db.String()
	}
	if tmp := root.Get("temporary_variable_name"); tmp.Exists() {
		cfg.TemporaryVariableName = tmp.String()
	}

	root.ForEach(func(key, _ gjson.Result) bool {
		if !knownKeys[key.String()] {
			emit(diags, path, "unknown resource-config key %q", key.String())
		}
		return true
	})
	return cfg
}

func emit(diags *diag.Context, path string, format string, args ...any) {
	if diags == nil {
		return
	}
	diags.Emitf(diag.Warning, diag.UnknownConfigKey, position.Position{Filename: path}, format, args...)
}
