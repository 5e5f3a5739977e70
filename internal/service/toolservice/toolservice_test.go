package toolservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/aitools/internal/domain"
	"github.com/GlebRadaev/aitools/internal/events"
	"github.com/GlebRadaev/aitools/internal/pg"
	"github.com/GlebRadaev/aitools/internal/worker"
)

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

type mocks struct {
	tools       *MockToolRepo
	payments    *MockPaymentRepo
	submissions *MockSubmissionRepo
	tx          *pg.MockTXManager
	pool        *MockPool
	publisher   *events.MockPublisher
}

func newTestService(t *testing.T) (*Service, mocks) {
	ctrl := gomock.NewController(t)
	m := mocks{
		tools:       NewMockToolRepo(ctrl),
		payments:    NewMockPaymentRepo(ctrl),
		submissions: NewMockSubmissionRepo(ctrl),
		tx:          pg.NewMockTXManager(ctrl),
		pool:        NewMockPool(ctrl),
		publisher:   events.NewMockPublisher(ctrl),
	}
	s := New(m.tools, m.payments, m.submissions, m.tx, m.pool, m.publisher)
	s.now = func() time.Time { return fixedNow }
	return s, m
}

func runTx(m mocks) {
	m.tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
		return fn(ctx)
	})
}

func runInline(m mocks) {
	m.pool.EXPECT().AddTask(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, task worker.Task) error {
		return task()
	}).Times(4)
}

func created(t *domain.Tool) *domain.Tool {
	out := *t
	out.ID = "tool-1"
	out.CreatedAt = fixedNow
	return &out
}

func strPtr(s string) *string { return &s }

func TestSubmit(t *testing.T) {
	free := Input{
		Name:        "Foo",
		Description: "d",
		WebsiteURL:  "https://x",
		PricingType: "free",
		CategoryIDs: []string{"c-1"},
		TagIDs:      []string{"t-1", "t-2"},
	}
	paid := Input{
		Name:        "Foo",
		Description: "d",
		WebsiteURL:  "https://x",
		PricingType: "paid",
		ListingType: domain.ListingTypePaid,
		PaymentID:   "pay_123",
	}
	completed := &domain.Payment{ID: "p-1", UserID: "user-1", Status: domain.PaymentStatusCompleted, RazorpayOrderID: "order_abc"}

	tests := []struct {
		name        string
		input       Input
		prepareMock func(m mocks)
		wantErr     error
		wantErrText string
		check       func(t *testing.T, tool *domain.Tool)
	}{
		{
			name:        "Missing required fields",
			input:       Input{Name: "Foo", Description: "d"},
			prepareMock: func(m mocks) {},
			wantErr:     ErrMissingFields,
		},
		{
			name:        "Name without letters or digits",
			input:       Input{Name: "日本語ツール", Description: "d", WebsiteURL: "https://x", PricingType: "free"},
			prepareMock: func(m mocks) {},
			wantErr:     ErrInvalidName,
		},
		{
			name:  "Accented name folded into slug",
			input: Input{Name: "Écrit ⚡", Description: "d", WebsiteURL: "https://x", PricingType: "free"},
			prepareMock: func(m mocks) {
				m.tools.EXPECT().ExistsBySlug(gomock.Any(), "ecrit").Return(false, nil)
				runTx(m)
				m.tools.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, t *domain.Tool) (*domain.Tool, error) {
					return created(t), nil
				})
				runInline(m)
				m.tools.EXPECT().AddCategories(gomock.Any(), "tool-1", nil).Return(nil)
				m.tools.EXPECT().AddTags(gomock.Any(), "tool-1", nil).Return(nil)
				m.submissions.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
				m.publisher.EXPECT().Publish(gomock.Any(), events.ToolSubmitted, gomock.Any()).Return(nil)
			},
			check: func(t *testing.T, tool *domain.Tool) {
				assert.Equal(t, "ecrit", tool.Slug)
				assert.Equal(t, "Écrit ⚡", tool.Name)
			},
		},
		{
			name:        "Paid listing without payment",
			input:       Input{Name: "Foo", Description: "d", WebsiteURL: "https://x", PricingType: "paid", ListingType: domain.ListingTypePaid},
			prepareMock: func(m mocks) {},
			wantErr:     ErrPaymentRequired,
		},
		{
			name:  "Payment not found",
			input: paid,
			prepareMock: func(m mocks) {
				m.payments.EXPECT().FindByProviderPaymentID(gomock.Any(), "pay_123").Return(nil, nil)
			},
			wantErr: ErrPaymentNotFound,
		},
		{
			name:  "Payment owned by another user",
			input: paid,
			prepareMock: func(m mocks) {
				m.payments.EXPECT().FindByProviderPaymentID(gomock.Any(), "pay_123").
					Return(&domain.Payment{ID: "p-1", UserID: "user-2", Status: domain.PaymentStatusCompleted}, nil)
			},
			wantErr: ErrPaymentForbidden,
		},
		{
			name:  "Payment still pending",
			input: paid,
			prepareMock: func(m mocks) {
				m.payments.EXPECT().FindByProviderPaymentID(gomock.Any(), "pay_123").
					Return(&domain.Payment{ID: "p-1", UserID: "user-1", Status: domain.PaymentStatusPending}, nil)
			},
			wantErr: ErrPaymentNotCompleted,
		},
		{
			name:  "Payment already consumed names the tool",
			input: paid,
			prepareMock: func(m mocks) {
				m.payments.EXPECT().FindByProviderPaymentID(gomock.Any(), "pay_123").
					Return(&domain.Payment{ID: "p-1", UserID: "user-1", Status: domain.PaymentStatusCompleted, ToolID: strPtr("tool-0")}, nil)
				m.tools.EXPECT().FindByID(gomock.Any(), "tool-0").Return(&domain.Tool{ID: "tool-0", Name: "Old Tool"}, nil)
			},
			wantErr:     ErrPaymentAlreadyUsed,
			wantErrText: `"Old Tool"`,
		},
		{
			name:  "Duplicate slug rejected before insert",
			input: free,
			prepareMock: func(m mocks) {
				m.tools.EXPECT().ExistsBySlug(gomock.Any(), "foo").Return(true, nil)
			},
			wantErr: ErrDuplicateSlug,
		},
		{
			name:  "Slug taken between check and insert",
			input: free,
			prepareMock: func(m mocks) {
				m.tools.EXPECT().ExistsBySlug(gomock.Any(), "foo").Return(false, nil)
				runTx(m)
				m.tools.EXPECT().Create(gomock.Any(), gomock.Any()).
					Return(nil, &pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "tools_slug_key"})
			},
			wantErr: ErrDuplicateSlug,
		},
		{
			name:  "Concurrent link loses",
			input: paid,
			prepareMock: func(m mocks) {
				m.payments.EXPECT().FindByProviderPaymentID(gomock.Any(), "pay_123").Return(completed, nil)
				m.tools.EXPECT().ExistsBySlug(gomock.Any(), "foo").Return(false, nil)
				runTx(m)
				m.tools.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, t *domain.Tool) (*domain.Tool, error) {
					return created(t), nil
				})
				m.payments.EXPECT().LinkTool(gomock.Any(), "p-1", "tool-1").Return(false, nil)
			},
			wantErr: ErrPaymentAlreadyUsed,
		},
		{
			name:  "Database failure on insert",
			input: free,
			prepareMock: func(m mocks) {
				m.tools.EXPECT().ExistsBySlug(gomock.Any(), "foo").Return(false, nil)
				runTx(m)
				m.tools.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, errors.New("db error"))
			},
			wantErrText: "db error",
		},
		{
			name:  "Free tool created with secondary writes",
			input: free,
			prepareMock: func(m mocks) {
				m.tools.EXPECT().ExistsBySlug(gomock.Any(), "foo").Return(false, nil)
				runTx(m)
				m.tools.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, t *domain.Tool) (*domain.Tool, error) {
					return created(t), nil
				})
				runInline(m)
				m.tools.EXPECT().AddCategories(gomock.Any(), "tool-1", []string{"c-1"}).Return(nil)
				m.tools.EXPECT().AddTags(gomock.Any(), "tool-1", []string{"t-1", "t-2"}).Return(nil)
				m.submissions.EXPECT().Create(gomock.Any(), &domain.Submission{
					ToolID: "tool-1",
					UserID: "user-1",
					Status: domain.ToolStatusPending,
				}).Return(nil)
				m.publisher.EXPECT().Publish(gomock.Any(), events.ToolSubmitted, events.ToolEvent{
					ToolID:      "tool-1",
					Slug:        "foo",
					SubmittedBy: "user-1",
					ListingType: domain.ListingTypeFree,
					OccurredAt:  fixedNow,
				}).Return(nil)
			},
			check: func(t *testing.T, tool *domain.Tool) {
				assert.Equal(t, "tool-1", tool.ID)
				assert.Equal(t, domain.ToolStatusPending, tool.Status)
				assert.Equal(t, domain.ListingTypeFree, tool.ListingType)
				assert.Nil(t, tool.PaymentID)
			},
		},
		{
			name:  "Paid tool linked to its payment",
			input: paid,
			prepareMock: func(m mocks) {
				m.payments.EXPECT().FindByProviderPaymentID(gomock.Any(), "pay_123").Return(completed, nil)
				m.tools.EXPECT().ExistsBySlug(gomock.Any(), "foo").Return(false, nil)
				runTx(m)
				m.tools.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, t *domain.Tool) (*domain.Tool, error) {
					return created(t), nil
				})
				m.payments.EXPECT().LinkTool(gomock.Any(), "p-1", "tool-1").Return(true, nil)
				runInline(m)
				m.tools.EXPECT().AddCategories(gomock.Any(), "tool-1", nil).Return(nil)
				m.tools.EXPECT().AddTags(gomock.Any(), "tool-1", nil).Return(nil)
				m.submissions.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
				m.publisher.EXPECT().Publish(gomock.Any(), events.ToolSubmitted, gomock.Any()).Return(nil)
			},
			check: func(t *testing.T, tool *domain.Tool) {
				assert.Equal(t, domain.ListingTypePaid, tool.ListingType)
				require.NotNil(t, tool.PaymentID)
				assert.Equal(t, "p-1", *tool.PaymentID)
			},
		},
		{
			name:  "Secondary write failures do not fail the submission",
			input: free,
			prepareMock: func(m mocks) {
				m.tools.EXPECT().ExistsBySlug(gomock.Any(), "foo").Return(false, nil)
				runTx(m)
				m.tools.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, t *domain.Tool) (*domain.Tool, error) {
					return created(t), nil
				})
				runInline(m)
				m.tools.EXPECT().AddCategories(gomock.Any(), "tool-1", gomock.Any()).Return(errors.New("fk violation"))
				m.tools.EXPECT().AddTags(gomock.Any(), "tool-1", gomock.Any()).Return(errors.New("fk violation"))
				m.submissions.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("db error"))
				m.publisher.EXPECT().Publish(gomock.Any(), events.ToolSubmitted, gomock.Any()).Return(errors.New("closed"))
			},
			check: func(t *testing.T, tool *domain.Tool) {
				assert.Equal(t, "tool-1", tool.ID)
			},
		},
		{
			name:  "Closed pool does not fail the submission",
			input: free,
			prepareMock: func(m mocks) {
				m.tools.EXPECT().ExistsBySlug(gomock.Any(), "foo").Return(false, nil)
				runTx(m)
				m.tools.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, t *domain.Tool) (*domain.Tool, error) {
					return created(t), nil
				})
				m.pool.EXPECT().AddTask(gomock.Any(), gomock.Any()).Return(worker.ErrPoolClosed).Times(4)
			},
			check: func(t *testing.T, tool *domain.Tool) {
				assert.Equal(t, "tool-1", tool.ID)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, m := newTestService(t)
			tt.prepareMock(m)

			tool, err := s.Submit(context.Background(), "user-1", tt.input)
			if tt.wantErr != nil || tt.wantErrText != "" {
				require.Error(t, err)
				if tt.wantErr != nil {
					assert.ErrorIs(t, err, tt.wantErr)
				}
				if tt.wantErrText != "" {
					assert.Contains(t, err.Error(), tt.wantErrText)
				}
				assert.Nil(t, tool)
				return
			}
			require.NoError(t, err)
			tt.check(t, tool)
		})
	}
}

func TestSubmitWithWorkerPool(t *testing.T) {
	s, m := newTestService(t)
	pool := worker.NewWorkerPool(2)
	s.pool = pool

	m.tools.EXPECT().ExistsBySlug(gomock.Any(), "foo").Return(false, nil)
	runTx(m)
	m.tools.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, t *domain.Tool) (*domain.Tool, error) {
		return created(t), nil
	})
	m.tools.EXPECT().AddCategories(gomock.Any(), "tool-1", gomock.Any()).Return(nil)
	m.tools.EXPECT().AddTags(gomock.Any(), "tool-1", gomock.Any()).Return(nil)
	m.submissions.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	m.publisher.EXPECT().Publish(gomock.Any(), events.ToolSubmitted, gomock.Any()).Return(nil)

	ctx, cancel := context.WithCancel(context.Background())
	tool, err := s.Submit(ctx, "user-1", Input{Name: "Foo", Description: "d", WebsiteURL: "https://x", PricingType: "free"})
	cancel()
	require.NoError(t, err)
	assert.Equal(t, "tool-1", tool.ID)

	// Close drains queued tasks, so every expectation has run by now.
	pool.Close()
}
