//go:generate mockgen -source ${GOFILE} -destination mock/${GOFILE} -package mock -mock_names "Transaction=Transaction"
package persistence

import "context"

type Transaction interface {
	// Execute runs fn inside a transaction bound to the returned ctx, nested calls join the outer transaction.
	// The named locks are held until the transaction completes
	Execute(ctx context.Context, fn func(ctx context.Context) error, lockNames ...string) error
}
