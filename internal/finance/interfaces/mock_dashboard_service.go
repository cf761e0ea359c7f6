package interfaces

import (
	"context"
	"time"

	"github.com/iremkabaoglu/FinManager/internal/finance/application"
)

type MockDashboardService struct {
	Summary *application.DashboardSummary
	Err     error

	// LastToday records the window anchor the handler asked for.
	LastToday time.Time
}

func (m *MockDashboardService) Summarize(_ context.Context, _ string, today time.Time) (*application.DashboardSummary, error) {
	m.LastToday = today
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Summary, nil
}
