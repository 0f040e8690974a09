// Package contracts holds the small interfaces cmd binaries wire together.
package contracts

import (
	"context"

	"github.com/julienschmidt/httprouter"
)

// Handler mounts a group of API routes.
type Handler interface {
	RegisterRoutes(*httprouter.Router)
}

// Worker is a long running background loop, such as a bus consumer.
type Worker interface {
	Start(ctx context.Context) error
	Close() error
}
