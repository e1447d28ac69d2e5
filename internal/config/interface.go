package config

import "context"

// Loader is the interface for a format-specific message loader.
type Loader interface {
	// Load reads message overrides from path and applies them on top of base.
	// Messages absent from the source keep the value from base.
	Load(ctx context.Context, path string, base *Messages) (*Messages, error)
}
