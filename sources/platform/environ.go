package platform

import (
	"os"
)

// Get reads a process-level knob that has to resolve before the yaml
// configuration is available, like the configuration path itself.
func Get(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
