package pg

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/GlebRadaev/aitools/internal/pg/pgtest"
)

func startPostgres(t *testing.T) *pgxpool.Pool {
	pool := pgtest.Start(t)
	require.NoError(t, RunMigrations(pool))
	return pool
}

func TestIntegration_TXManagerAndConstraints(t *testing.T) {
	pool := startPostgres(t)
	ctx := context.Background()
	conn := New(pool)
	tx := NewTXManager(pool)

	userID := uuid.NewString()
	_, err := conn.Exec(ctx, `INSERT INTO users (id, login, password_hash) VALUES ($1, $2, $3)`, userID, "alice@example.com", "hash")
	require.NoError(t, err)

	insertTool := `INSERT INTO tools (id, slug, name, description, website_url, pricing_type, submitted_by) VALUES ($1, $2, $3, $4, $5, $6, $7)`

	t.Run("rollback discards writes", func(t *testing.T) {
		errBoom := errors.New("boom")
		err := tx.Begin(ctx, func(ctx context.Context) error {
			if _, err := conn.Exec(ctx, insertTool, uuid.NewString(), "rolled-back", "Rolled Back", "d", "https://x", "free", userID); err != nil {
				return err
			}
			return errBoom
		})
		require.ErrorIs(t, err, errBoom)

		var count int
		require.NoError(t, conn.QueryRow(ctx, `SELECT COUNT(*) FROM tools WHERE slug = $1`, "rolled-back").Scan(&count))
		require.Zero(t, count)
	})

	t.Run("duplicate slug is a unique violation", func(t *testing.T) {
		_, err := conn.Exec(ctx, insertTool, uuid.NewString(), "foo", "Foo", "d", "https://x", "free", userID)
		require.NoError(t, err)

		err = tx.Begin(ctx, func(ctx context.Context) error {
			_, err := conn.Exec(ctx, insertTool, uuid.NewString(), "foo", "Foo", "d", "https://x", "free", userID)
			return err
		})
		require.True(t, IsUniqueViolation(err, "tools_slug_key"))
	})
}
