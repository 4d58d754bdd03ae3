package domain

import (
	"context"
)

// HTTPAdapter defines the interface for HTTP operations.
type HTTPAdapter interface {
	// Download fetches url and returns the body. Non-2xx responses are errors.
	Download(ctx context.Context, url string) ([]byte, error)
}
