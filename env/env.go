package env

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joeshaw/envdecode"
	"github.com/joho/godotenv"
)

var (
	// ErrMissing is returned by Must for unset (or null) variables.
	ErrMissing = errors.New("env: variable not set")
	// ErrDecode wraps struct decoding failures.
	ErrDecode = errors.New("env: decode failed")
)

// Lookup returns the interpreted value of key. Null literals report
// ok == false, "empty" literals return "" with ok == true.
func Lookup(key string) (string, bool) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return "", false
	}
	return Interpret(raw)
}

// Interpret applies the literal rules to a raw value.
func Interpret(raw string) (string, bool) {
	v := strings.TrimSpace(raw)
	switch strings.ToLower(v) {
	case "null", "(null)":
		return "", false
	case "empty", "(empty)":
		return "", true
	case "true", "(true)":
		return "true", true
	case "false", "(false)":
		return "false", true
	}
	if len(v) >= 2 && (v[0] == '"' && v[len(v)-1] == '"' || v[0] == '\'' && v[len(v)-1] == '\'') {
		return v[1 : len(v)-1], true
	}
	return v, true
}

// Get returns the value of key, or def when it is unset or null.
func Get(key, def string) string {
	if v, ok := Lookup(key); ok {
		return v
	}
	return def
}

// Must returns the value of key or ErrMissing.
func Must(key string) (string, error) {
	v, ok := Lookup(key)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrMissing, key)
	}
	return v, nil
}

// Bool parses 1/0, true/false, yes/no and on/off (any case). Unset,
// null or unparseable values return def.
func Bool(key string, def bool) bool {
	v, ok := Lookup(key)
	if !ok {
		return def
	}
	switch strings.ToLower(v) {
	case "1", "true", "yes", "on", "y":
		return true
	case "0", "false", "no", "off", "n", "":
		return false
	default:
		return def
	}
}

// Int parses a base-10 integer, returning def on failure.
func Int(key string, def int) int {
	v, ok := Lookup(key)
	if !ok {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

// Float parses a float, returning def on failure.
func Float(key string, def float64) float64 {
	v, ok := Lookup(key)
	if !ok {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return def
	}
	return f
}

// Duration accepts Go durations ("1m30s") or a bare number of seconds.
func Duration(key string, def time.Duration) time.Duration {
	v, ok := Lookup(key)
	if !ok {
		return def
	}
	if d, err := time.ParseDuration(v); err == nil {
		return d
	}
	if n, err := strconv.ParseFloat(v, 64); err == nil {
		return time.Duration(n * float64(time.Second))
	}
	return def
}

// List splits the value on sep, trimming items and dropping empty ones.
func List(key, sep string) []string {
	v, ok := Lookup(key)
	if !ok || v == "" {
		return nil
	}
	parts := strings.Split(v, sep)
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Load reads .env files (".env" when none are given). Variables already
// present in the environment win. Missing files are an error.
func Load(files ...string) error {
	return godotenv.Load(files...)
}

// LoadIfExists is Load that skips missing files.
func LoadIfExists(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	var present []string
	for _, f := range files {
		if _, err := os.Stat(f); err == nil {
			present = append(present, f)
		}
	}
	if len(present) == 0 {
		return nil
	}
	return godotenv.Load(present...)
}

// Overload is Load that replaces existing variables.
func Overload(files ...string) error {
	return godotenv.Overload(files...)
}

// Read parses .env files into a map without touching the environment.
func Read(files ...string) (map[string]string, error) {
	return godotenv.Read(files...)
}

// Decode fills target, a pointer to a struct with `env:"NAME"` tags.
// A struct where no variable matched is not an error; missing
// `required` variables are.
func Decode(target any) error {
	err := envdecode.Decode(target)
	if err == nil || errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return nil
	}
	return fmt.Errorf("%w: %v", ErrDecode, err)
}
