package ports

import "context"

// CatalogWatcher reports catalog file changes until ctx is done.
type CatalogWatcher interface {
	Watch(ctx context.Context, paths []string, onChange func(path string)) error
}
