package profilerepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"

	"github.com/GlebRadaev/aitools/internal/domain"
)

var profileColumns = []string{"id", "role", "display_name", "avatar_url", "created_at"}

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	t.Cleanup(mockDB.Close)
	return New(mockDB), mockDB
}

func TestRepository_FindByID(t *testing.T) {
	repo, mock := NewMock(t)
	created := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	name := "Ada"
	query := regexp.QuoteMeta("SELECT id, role, display_name, avatar_url, created_at FROM profiles WHERE id = $1")

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    *domain.Profile
	}{
		{
			name: "Profile found",
			mockSetup: func() {
				rows := pgxmock.NewRows(profileColumns).AddRow("u-1", "admin", &name, (*string)(nil), created)
				mock.ExpectQuery(query).WithArgs("u-1").WillReturnRows(rows)
			},
			result: &domain.Profile{ID: "u-1", Role: "admin", DisplayName: &name, CreatedAt: created},
		},
		{
			name: "Profile not found",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs("u-1").WillReturnError(pgx.ErrNoRows)
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs("u-1").WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByID(context.Background(), "u-1")
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, result)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_Ensure(t *testing.T) {
	repo, mock := NewMock(t)
	created := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	query := regexp.QuoteMeta("INSERT INTO profiles (id, role) VALUES ($1, 'user') ON CONFLICT (id) DO UPDATE SET id = EXCLUDED.id")

	rows := pgxmock.NewRows(profileColumns).AddRow("u-1", "user", (*string)(nil), (*string)(nil), created)
	mock.ExpectQuery(query).WithArgs("u-1").WillReturnRows(rows)

	result, err := repo.Ensure(context.Background(), "u-1")
	assert.NoError(t, err)
	assert.Equal(t, &domain.Profile{ID: "u-1", Role: domain.RoleUser, CreatedAt: created}, result)

	mock.ExpectQuery(query).WithArgs("u-2").WillReturnError(errors.New("database error"))
	result, err = repo.Ensure(context.Background(), "u-2")
	assert.Error(t, err)
	assert.Nil(t, result)

	assert.NoError(t, mock.ExpectationsWereMet())
}
