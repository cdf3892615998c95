package input

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
)

// Stdin is the path that names standard input
const Stdin = "-"

// Read reads the whole file at path, or stdin when path is empty or Stdin.
// Errors are phrased for display to the user.
func Read(stdin io.Reader, path string) (string, error) {
	if path == "" || path == Stdin {
		return ReadFrom(stdin)
	}
	return ReadFile(path)
}

// ReadFrom reads r until EOF
func ReadFrom(r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("couldn't read input: %w", err)
	}
	return string(data), nil
}

// ReadFile reads the whole file at path
func ReadFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		return string(data), nil
	case errors.Is(err, fs.ErrNotExist):
		return "", fmt.Errorf("file '%s' not found", path)
	case errors.Is(err, fs.ErrPermission):
		return "", fmt.Errorf("couldn't read '%s' - permission denied", path)
	default:
		return "", fmt.Errorf("couldn't read '%s': %w", path, err)
	}
}
