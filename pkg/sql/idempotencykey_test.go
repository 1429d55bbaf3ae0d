package sql_test

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/klwxsrx/docscan-portal/pkg/idk"
	pkgsql "github.com/klwxsrx/docscan-portal/pkg/sql"
)

func TestIdempotencyKeyStorage_Insert(t *testing.T) {
	tests := []struct {
		name         string
		rowsAffected int64
		expectedErr  error
	}{
		{
			name:         "new_key",
			rowsAffected: 1,
			expectedErr:  nil,
		},
		{
			name:         "duplicate_key",
			rowsAffected: 0,
			expectedErr:  idk.ErrAlreadyInserted,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDatabase(t)
			storage := pkgsql.NewIdempotencyKeyStorage(db)
			key := uuid.New()

			mock.ExpectExec(regexp.QuoteMeta("INSERT INTO idempotency_key (key,extra_key) VALUES ($1,$2) on conflict do nothing")).
				WithArgs(key, "subscription_created").
				WillReturnResult(sqlmock.NewResult(0, tt.rowsAffected))

			err := storage.Insert(context.Background(), key, "subscription_created")
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				require.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
