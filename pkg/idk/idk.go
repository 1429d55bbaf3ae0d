//go:generate mockgen -source ${GOFILE} -destination mock/${GOFILE} -package mock -mock_names "Storage=Storage"
package idk

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrAlreadyInserted = errors.New("idempotency key already inserted")

type Storage interface {
	// Insert returns ErrAlreadyInserted when the (key, extraKey) pair is already stored
	Insert(ctx context.Context, key uuid.UUID, extraKey string) error
	Delete(ctx context.Context, createdAtBefore time.Time) error
}

var namespace = uuid.MustParse("5b0f3c8e-54a4-4b8e-9a55-3f1b1f4a2d7e")

// KeyFromContent derives a stable key from arbitrary payload bytes
func KeyFromContent(content []byte) uuid.UUID {
	return uuid.NewSHA1(namespace, content)
}
