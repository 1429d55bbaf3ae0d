package sql

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/klwxsrx/docscan-portal/pkg/persistence"
)

type (
	instanceID string

	txData struct {
		ClientTx
		instanceID instanceID
	}

	transaction struct {
		id     instanceID
		client TxClient
	}

	// transactionalClient runs queries within the transaction found in ctx, falling back to the plain client
	transactionalClient struct {
		id     instanceID
		client Client
	}
)

// NewTransaction and NewClient built with the same instanceName share the transaction put into the context
func NewTransaction(client TxClient, instanceName string) persistence.Transaction {
	return &transaction{id: instanceID(instanceName), client: client}
}

func NewClient(client Client, instanceName string) Client {
	return &transactionalClient{id: instanceID(instanceName), client: client}
}

func (t *transaction) Execute(
	ctx context.Context,
	fn func(ctx context.Context) error,
	lockNames ...string,
) (err error) {
	storedTx, ok := ctx.Value(dbTransactionContextKey).(txData)
	hasParentTx := ok && storedTx.instanceID == t.id
	if !hasParentTx {
		var tx ClientTx
		tx, err = t.client.Begin(ctx)
		if err != nil {
			return fmt.Errorf("start db transaction: %w", err)
		}
		defer func() {
			if err != nil {
				_ = tx.Rollback()
			}
		}()

		storedTx = txData{ClientTx: tx, instanceID: t.id}
		ctx = context.WithValue(ctx, dbTransactionContextKey, storedTx)
	}

	for _, lockName := range lockNames {
		err = withTransactionLevelLock(ctx, lockName, storedTx.ClientTx)
		if err != nil {
			return err
		}
	}

	err = fn(ctx)
	if err != nil || hasParentTx {
		return err
	}

	err = storedTx.Commit()
	if err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	return nil
}

func (c *transactionalClient) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return c.current(ctx).ExecContext(ctx, query, args...)
}

func (c *transactionalClient) GetContext(ctx context.Context, dest any, query string, args ...any) error {
	return c.current(ctx).GetContext(ctx, dest, query, args...)
}

func (c *transactionalClient) SelectContext(ctx context.Context, dest any, query string, args ...any) error {
	return c.current(ctx).SelectContext(ctx, dest, query, args...)
}

func (c *transactionalClient) current(ctx context.Context) Client {
	tx, ok := ctx.Value(dbTransactionContextKey).(txData)
	if ok && tx.instanceID == c.id {
		return tx.ClientTx
	}
	return c.client
}
