// Package source acquires the raw log buffer. Every source hands the rest
// of the program a plain []byte; failures here are I/O errors, which stay
// distinct from the codec's malformed-input errors.
package source

import (
	"fmt"
	"os"
)

// ReadFile reads the whole log file. Errors keep the os sentinel chain
// (os.IsNotExist etc.) intact for the CLI's error messages.
func ReadFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return data, nil
}
