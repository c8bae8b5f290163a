package loader

import (
	"context"
	"errors"
	"io/fs"
)

func loadFromFS(ctx context.Context, filesystem fs.FS, name string) (string, error) {
	if filesystem == nil {
		return "", errors.New("loader: filesystem is not configured")
	}
	if name == "" {
		return "", errors.New("loader: fs path is required")
	}
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	default:
	}

	data, err := fs.ReadFile(filesystem, name)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
