package config

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Environment variables that override Config fields.
const (
	EnvWidth      = "DEMO_WIDTH"
	EnvHeight     = "DEMO_HEIGHT"
	EnvFullscreen = "DEMO_FULLSCREEN"
	EnvDebug      = "DEMO_DEBUG"
	EnvLayout     = "DEMO_LAYOUT"
)

// LoadEnvFile reads the given file (e.g. ".env") and sets environment variables for each
// line of the form KEY=VALUE. Empty lines and lines starting with # are skipped.
// The file may be missing; that is not an error. Variables already set are kept.
func LoadEnvFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	defer f.Close()
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		key, value, ok := parseEnvLine(scanner.Text())
		if !ok {
			continue
		}
		if _, set := os.LookupEnv(key); set {
			continue
		}
		_ = os.Setenv(key, value)
	}
	return scanner.Err()
}

func parseEnvLine(line string) (key, value string, ok bool) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return "", "", false
	}
	i := strings.Index(line, "=")
	if i <= 0 {
		return "", "", false
	}
	key = strings.TrimSpace(line[:i])
	value = strings.TrimSpace(line[i+1:])
	if key == "" {
		return "", "", false
	}
	// Remove surrounding quotes if present
	if len(value) >= 2 && (value[0] == '"' && value[len(value)-1] == '"' || value[0] == '\'' && value[len(value)-1] == '\'') {
		value = value[1 : len(value)-1]
	}
	return key, value, true
}

// ApplyEnv returns c with DEMO_* environment overrides applied. A malformed
// value is reported and leaves that field unchanged.
func ApplyEnv(c Config) (Config, error) {
	var errs []string
	if v, ok := os.LookupEnv(EnvWidth); ok {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.Width = n
		} else {
			errs = append(errs, EnvWidth+"="+v)
		}
	}
	if v, ok := os.LookupEnv(EnvHeight); ok {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.Height = n
		} else {
			errs = append(errs, EnvHeight+"="+v)
		}
	}
	if v, ok := os.LookupEnv(EnvFullscreen); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Fullscreen = b
		} else {
			errs = append(errs, EnvFullscreen+"="+v)
		}
	}
	if v, ok := os.LookupEnv(EnvDebug); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Debug = b
		} else {
			errs = append(errs, EnvDebug+"="+v)
		}
	}
	if v, ok := os.LookupEnv(EnvLayout); ok && v != "" {
		c.Layout = v
	}
	if len(errs) > 0 {
		return c, fmt.Errorf("config: invalid environment: %s", strings.Join(errs, ", "))
	}
	return c, nil
}
