package loader

import (
	"context"
	"errors"
	"os"
	"path/filepath"
)

func loadFile(ctx context.Context, path string) (string, error) {
	if path == "" {
		return "", errors.New("loader: file path is required")
	}
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	default:
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	data, err := os.ReadFile(abs)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
