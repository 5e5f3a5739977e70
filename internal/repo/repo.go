package repo

import (
	"github.com/GlebRadaev/aitools/internal/pg"
	paymentrepo "github.com/GlebRadaev/aitools/internal/repo/payment-repo"
	profilerepo "github.com/GlebRadaev/aitools/internal/repo/profile-repo"
	settingsrepo "github.com/GlebRadaev/aitools/internal/repo/settings-repo"
	submissionrepo "github.com/GlebRadaev/aitools/internal/repo/submission-repo"
	toolrepo "github.com/GlebRadaev/aitools/internal/repo/tool-repo"
	userrepo "github.com/GlebRadaev/aitools/internal/repo/user-repo"
	"github.com/GlebRadaev/aitools/internal/service/authservice"
	"github.com/GlebRadaev/aitools/internal/service/settingsservice"
	"github.com/GlebRadaev/aitools/internal/service/toolservice"
)

type Repositories struct {
	UserRepo       authservice.Repo
	ProfileRepo    authservice.ProfileRepo
	PaymentRepo    *paymentrepo.Repository
	ToolRepo       toolservice.ToolRepo
	SubmissionRepo toolservice.SubmissionRepo
	SettingsRepo   settingsservice.Repo
}

func New(conn pg.Database) *Repositories {
	return &Repositories{
		UserRepo:       userrepo.New(conn),
		ProfileRepo:    profilerepo.New(conn),
		PaymentRepo:    paymentrepo.New(conn),
		ToolRepo:       toolrepo.New(conn),
		SubmissionRepo: submissionrepo.New(conn),
		SettingsRepo:   settingsrepo.New(conn),
	}
}
