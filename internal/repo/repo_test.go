package repo

import (
	"testing"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	paymentrepo "github.com/GlebRadaev/aitools/internal/repo/payment-repo"
	profilerepo "github.com/GlebRadaev/aitools/internal/repo/profile-repo"
	settingsrepo "github.com/GlebRadaev/aitools/internal/repo/settings-repo"
	submissionrepo "github.com/GlebRadaev/aitools/internal/repo/submission-repo"
	toolrepo "github.com/GlebRadaev/aitools/internal/repo/tool-repo"
	userrepo "github.com/GlebRadaev/aitools/internal/repo/user-repo"
)

func TestNew(t *testing.T) {
	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mockDB.Close()

	repo := New(mockDB)

	assert.IsType(t, &userrepo.Repository{}, repo.UserRepo)
	assert.IsType(t, &profilerepo.Repository{}, repo.ProfileRepo)
	assert.NotNil(t, repo.PaymentRepo)
	assert.IsType(t, &paymentrepo.Repository{}, repo.PaymentRepo)
	assert.IsType(t, &toolrepo.Repository{}, repo.ToolRepo)
	assert.IsType(t, &submissionrepo.Repository{}, repo.SubmissionRepo)
	assert.IsType(t, &settingsrepo.Repository{}, repo.SettingsRepo)

	assert.NoError(t, mockDB.ExpectationsWereMet())
}
