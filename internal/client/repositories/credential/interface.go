// Package credential persists the session credential in a local key/value
// table, the console's counterpart of the browser's localStorage. An absent
// key reads back as the empty string.
package credential

import "context"

type Repository interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
