package repositories

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// missingTableErr mimics the server error raised for a query against a
// table that does not exist yet
func missingTableErr() error {
	return &mysql.MySQLError{Number: mysqlErrNoSuchTable, Message: "Table 'cms.settings' doesn't exist"}
}

// expectContentSchema registers the three CREATE TABLE statements in order
func expectContentSchema(mock sqlmock.Sqlmock) {
	for _, table := range []string{"settings", "content_sections", "media_assets"} {
		mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE IF NOT EXISTS " + table)).
			WillReturnResult(sqlmock.NewResult(0, 0))
	}
}

func TestEnsureContentSchema(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	expectContentSchema(mock)

	err = EnsureContentSchema(context.Background(), db)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEnsureContentSchema_ExecError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE IF NOT EXISTS settings")).
		WillReturnError(errors.New("access denied"))

	err = EnsureContentSchema(context.Background(), db)

	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIsMissingTable(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{
			name:     "missing table error",
			err:      missingTableErr(),
			expected: true,
		},
		{
			name:     "wrapped missing table error",
			err:      errors.Join(errors.New("query failed"), missingTableErr()),
			expected: true,
		},
		{
			name:     "other mysql error",
			err:      &mysql.MySQLError{Number: 1062},
			expected: false,
		},
		{
			name:     "plain error",
			err:      errors.New("boom"),
			expected: false,
		},
		{
			name:     "nil error",
			err:      nil,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, isMissingTable(tt.err))
		})
	}
}

func TestSchemaBootstrap_Run(t *testing.T) {
	t.Run("success on first attempt skips schema creation", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		b := schemaBootstrap{db: db}
		calls := 0

		err = b.run(context.Background(), func() error {
			calls++
			return nil
		})

		assert.NoError(t, err)
		assert.Equal(t, 1, calls)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing table creates schema and retries once", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		expectContentSchema(mock)

		b := schemaBootstrap{db: db}
		calls := 0

		err = b.run(context.Background(), func() error {
			calls++
			if calls == 1 {
				return missingTableErr()
			}
			return nil
		})

		assert.NoError(t, err)
		assert.Equal(t, 2, calls)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("second missing table failure is surfaced without another retry", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		expectContentSchema(mock)

		b := schemaBootstrap{db: db}
		calls := 0

		err = b.run(context.Background(), func() error {
			calls++
			return missingTableErr()
		})

		assert.Error(t, err)
		assert.True(t, isMissingTable(err))
		assert.Equal(t, 2, calls)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("non-schema error is returned as-is", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		b := schemaBootstrap{db: db}
		opErr := errors.New("deadlock")

		err = b.run(context.Background(), func() error { return opErr })

		assert.ErrorIs(t, err, opErr)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("schema creation failure wraps the bootstrap error", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE IF NOT EXISTS settings")).
			WillReturnError(errors.New("read-only transaction"))

		b := schemaBootstrap{db: db}
		calls := 0

		err = b.run(context.Background(), func() error {
			calls++
			return missingTableErr()
		})

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "schema bootstrap failed")
		assert.Equal(t, 1, calls)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
