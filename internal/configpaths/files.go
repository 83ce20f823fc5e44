// Package configpaths locates vrinput configuration files.
package configpaths

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
)

const appName = "vrinput"

// configBases are the file base names probed in every config directory.
var configBases = []string{appName, "config", "replay"}

// DefaultConfigDir returns the platform-specific configuration directory.
func DefaultConfigDir() (string, error) {
	switch runtime.GOOS {
	case "windows":
		if appdata := os.Getenv("AppData"); appdata != "" {
			return filepath.Join(appdata, appName), nil
		}
		return "", errors.New("AppData not set")
	default:
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, appName), nil
		}
		if home := os.Getenv("HOME"); home != "" {
			return filepath.Join(home, ".config", appName), nil
		}
		return "", errors.New("HOME not set")
	}
}

// DefaultNamedConfigPath returns the default config file path for a base
// name and format.
func DefaultNamedConfigPath(baseName, format string) (string, error) {
	dir, err := DefaultConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, baseName+"."+Ext(format)), nil
}

// Ext returns the canonical file extension for a config format.
func Ext(format string) string {
	switch format {
	case "yaml", "yml":
		return "yaml"
	case "toml":
		return "toml"
	default:
		return "json"
	}
}

// EnsureDir ensures the directory for a given file path exists.
func EnsureDir(filePath string) error {
	return os.MkdirAll(filepath.Dir(filePath), 0o755)
}

// Candidates holds config file candidates per loader, highest priority first.
type Candidates struct {
	JSON, YAML, TOML []string
}

func (c *Candidates) addDir(dir string) {
	for _, base := range configBases {
		c.JSON = append(c.JSON, filepath.Join(dir, base+".json"))
		c.YAML = append(c.YAML, filepath.Join(dir, base+".yaml"), filepath.Join(dir, base+".yml"))
		c.TOML = append(c.TOML, filepath.Join(dir, base+".toml"))
	}
}

// ConfigCandidatePaths builds candidate paths for config files per format.
// If userPath is provided, it is prioritized and routed to the matching
// loader by extension.
func ConfigCandidatePaths(userPath string) Candidates {
	var c Candidates

	if userPath != "" {
		switch filepath.Ext(userPath) {
		case ".yaml", ".yml":
			c.YAML = append(c.YAML, userPath)
		case ".toml":
			c.TOML = append(c.TOML, userPath)
		default:
			c.JSON = append(c.JSON, userPath)
		}
	}

	if wd, err := os.Getwd(); err == nil {
		c.addDir(wd)
	}
	if dir, err := DefaultConfigDir(); err == nil {
		c.addDir(dir)
	}
	if runtime.GOOS != "windows" {
		c.addDir(filepath.Join("/etc", appName))
	}
	return c
}
