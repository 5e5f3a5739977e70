package reconcile

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/aitools/internal/domain"
	"github.com/GlebRadaev/aitools/internal/events"
	"github.com/GlebRadaev/aitools/internal/gateway/razorpay"
	"github.com/GlebRadaev/aitools/internal/worker"
)

var (
	fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	creds    = domain.GatewayCredentials{KeyID: "rzp_test_key", KeySecret: "secret"}
)

type mocks struct {
	repo      *MockRepo
	gateway   *MockGateway
	creds     *MockCredentialsProvider
	pool      *MockPool
	publisher *events.MockPublisher
	slept     []time.Duration
}

func NewMock(t *testing.T) (*Service, *mocks) {
	ctrl := gomock.NewController(t)
	m := &mocks{
		repo:      NewMockRepo(ctrl),
		gateway:   NewMockGateway(ctrl),
		creds:     NewMockCredentialsProvider(ctrl),
		pool:      NewMockPool(ctrl),
		publisher: events.NewMockPublisher(ctrl),
	}
	s := New(m.repo, m.gateway, m.creds, m.pool, m.publisher, 10*time.Millisecond, 24*time.Hour)
	s.now = func() time.Time { return fixedNow }
	s.sleep = func(_ context.Context, d time.Duration) error {
		m.slept = append(m.slept, d)
		return nil
	}
	return s, m
}

func inline(m *mocks) {
	m.pool.EXPECT().AddTask(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, task worker.Task) error {
		go task()
		return nil
	}).AnyTimes()
}

func order(id, userID string) razorpay.Order {
	notes := razorpay.Notes{}
	if userID != "" {
		notes["user_id"] = userID
		notes["purpose"] = "tool_submission"
	}
	return razorpay.Order{ID: id, Amount: 9900, Currency: "INR", Receipt: "rcpt_1", Notes: notes, CreatedAt: fixedNow.Add(-time.Hour).Unix()}
}

func TestService_RunOnce(t *testing.T) {
	rateLimited := &razorpay.Error{StatusCode: http.StatusTooManyRequests, Description: "Too many requests", RetryAfter: 2 * time.Second}

	tests := []struct {
		name        string
		prepareMock func(m *mocks)
		want        int
		wantErr     bool
		wantSlept   []time.Duration
	}{
		{
			name: "Gateway not configured",
			prepareMock: func(m *mocks) {
				m.creds.EXPECT().Credentials(gomock.Any()).Return(domain.GatewayCredentials{}, errors.New("not configured"))
			},
			wantErr: true,
		},
		{
			name: "Gateway listing fails",
			prepareMock: func(m *mocks) {
				m.creds.EXPECT().Credentials(gomock.Any()).Return(creds, nil)
				m.gateway.EXPECT().ListOrders(gomock.Any(), creds, fixedNow.Add(-24*time.Hour), razorpay.MaxListCount).
					Return(nil, &razorpay.Error{StatusCode: http.StatusUnauthorized, Description: "Authentication failed"})
			},
			wantErr: true,
		},
		{
			name: "Rate limit honours Retry-After",
			prepareMock: func(m *mocks) {
				m.creds.EXPECT().Credentials(gomock.Any()).Return(creds, nil)
				gomock.InOrder(
					m.gateway.EXPECT().ListOrders(gomock.Any(), creds, gomock.Any(), gomock.Any()).Return(nil, rateLimited),
					m.gateway.EXPECT().ListOrders(gomock.Any(), creds, gomock.Any(), gomock.Any()).Return(nil, nil),
				)
			},
			wantSlept: []time.Duration{2 * time.Second},
		},
		{
			name: "Rate limit exhausts retries",
			prepareMock: func(m *mocks) {
				m.creds.EXPECT().Credentials(gomock.Any()).Return(creds, nil)
				m.gateway.EXPECT().ListOrders(gomock.Any(), creds, gomock.Any(), gomock.Any()).
					Return(nil, &razorpay.Error{StatusCode: http.StatusTooManyRequests}).Times(maxRetries)
			},
			wantErr:   true,
			wantSlept: []time.Duration{retryInterval, 2 * retryInterval},
		},
		{
			name: "Only orders missing locally are restored",
			prepareMock: func(m *mocks) {
				m.creds.EXPECT().Credentials(gomock.Any()).Return(creds, nil)
				m.gateway.EXPECT().ListOrders(gomock.Any(), creds, gomock.Any(), gomock.Any()).Return([]razorpay.Order{
					order("order_foreign", ""),
					order("order_known", "user-1"),
					order("order_lost", "user-2"),
				}, nil)
				inline(m)
				m.repo.EXPECT().FindByOrderID(gomock.Any(), "order_known").Return(&domain.Payment{ID: "p-1"}, nil)
				m.repo.EXPECT().FindByOrderID(gomock.Any(), "order_lost").Return(nil, nil)
				m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p *domain.Payment) error {
					assert.NotEmpty(t, p.ID)
					assert.Equal(t, "user-2", p.UserID)
					assert.Equal(t, "order_lost", p.RazorpayOrderID)
					assert.Equal(t, domain.PaymentStatusPending, p.Status)
					assert.Equal(t, int64(9900), p.Amount)
					assert.Equal(t, true, p.Metadata["reconciled"])
					assert.True(t, p.CreatedAt.Equal(fixedNow.Add(-time.Hour)))
					return nil
				})
				m.publisher.EXPECT().Publish(gomock.Any(), events.PaymentReconciled, gomock.Any()).Return(nil)
			},
			want: 1,
		},
		{
			name: "Concurrent insert is not counted",
			prepareMock: func(m *mocks) {
				m.creds.EXPECT().Credentials(gomock.Any()).Return(creds, nil)
				m.gateway.EXPECT().ListOrders(gomock.Any(), creds, gomock.Any(), gomock.Any()).Return([]razorpay.Order{order("order_lost", "user-2")}, nil)
				inline(m)
				m.repo.EXPECT().FindByOrderID(gomock.Any(), "order_lost").Return(nil, nil)
				m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(&pgconn.PgError{Code: pgerrcode.UniqueViolation})
			},
		},
		{
			name: "Insert failure reported",
			prepareMock: func(m *mocks) {
				m.creds.EXPECT().Credentials(gomock.Any()).Return(creds, nil)
				m.gateway.EXPECT().ListOrders(gomock.Any(), creds, gomock.Any(), gomock.Any()).Return([]razorpay.Order{order("order_lost", "user-2")}, nil)
				inline(m)
				m.repo.EXPECT().FindByOrderID(gomock.Any(), "order_lost").Return(nil, nil)
				m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("db error"))
			},
			wantErr: true,
		},
		{
			name: "Closed pool reported",
			prepareMock: func(m *mocks) {
				m.creds.EXPECT().Credentials(gomock.Any()).Return(creds, nil)
				m.gateway.EXPECT().ListOrders(gomock.Any(), creds, gomock.Any(), gomock.Any()).Return([]razorpay.Order{order("order_lost", "user-2")}, nil)
				m.pool.EXPECT().AddTask(gomock.Any(), gomock.Any()).Return(worker.ErrPoolClosed)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, m := NewMock(t)
			tt.prepareMock(m)

			got, err := s.RunOnce(context.Background())
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantSlept, m.slept)

			_, busy := s.inFlight.Load("order_lost")
			assert.False(t, busy)
		})
	}
}

func TestService_RunOnceWithWorkerPool(t *testing.T) {
	s, m := NewMock(t)
	pool := worker.NewWorkerPool(2)
	defer pool.Close()
	s.pool = pool

	m.creds.EXPECT().Credentials(gomock.Any()).Return(creds, nil)
	m.gateway.EXPECT().ListOrders(gomock.Any(), creds, gomock.Any(), gomock.Any()).Return([]razorpay.Order{
		order("order_a", "user-1"),
		order("order_b", "user-2"),
	}, nil)
	m.repo.EXPECT().FindByOrderID(gomock.Any(), gomock.Any()).Return(nil, nil).Times(2)
	m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil).Times(2)
	m.publisher.EXPECT().Publish(gomock.Any(), events.PaymentReconciled, gomock.Any()).Return(errors.New("closed")).Times(2)

	got, err := s.RunOnce(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, got)
}

func TestService_Run(t *testing.T) {
	s, m := NewMock(t)
	m.creds.EXPECT().Credentials(gomock.Any()).Return(domain.GatewayCredentials{}, errors.New("not configured")).MinTimes(1)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		s.Run(ctx)
	}()
	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestSleepCtx(t *testing.T) {
	require.NoError(t, sleepCtx(context.Background(), time.Millisecond))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, sleepCtx(ctx, time.Minute), context.Canceled)
}
