package paths

import (
	"os"
	"path/filepath"
)

const envHome = "TIMETELLER_HOME_DIR"

// Home returns the base directory for timeteller configuration.
// Defaults to ~/.timeteller, can be overridden via TIMETELLER_HOME_DIR.
func Home() string {
	if v := os.Getenv(envHome); v != "" {
		return v
	}
	hd, err := os.UserHomeDir()
	if err != nil || hd == "" {
		return ".timeteller"
	}
	return filepath.Join(hd, ".timeteller")
}

func EnsureHome() (string, error) {
	h := Home()
	if err := os.MkdirAll(h, 0o755); err != nil {
		return "", err
	}
	return h, nil
}
