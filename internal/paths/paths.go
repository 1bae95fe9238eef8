package paths

import (
	"os"
	"path/filepath"
)

// EnvHome overrides the selectkit directory when set.
const EnvHome = "SELECTKIT_HOME"

func home() string {
	h, _ := os.UserHomeDir()
	return h
}

// Dir returns ~/.selectkit, or $SELECTKIT_HOME when set.
func Dir() string {
	if d := os.Getenv(EnvHome); d != "" {
		return d
	}
	return filepath.Join(home(), ".selectkit")
}

// ConfigFile returns ~/.selectkit/config.yaml.
func ConfigFile() string {
	return filepath.Join(Dir(), "config.yaml")
}

// LogFile returns ~/.selectkit/selectkit.log.
func LogFile() string {
	return filepath.Join(Dir(), "selectkit.log")
}
