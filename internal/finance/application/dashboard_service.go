package application

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iremkabaoglu/FinManager/internal/finance/domain"
)

// DashboardWindowDays is the size of the rolling window, today included.
const DashboardWindowDays = 30

type DailyPoint struct {
	Date  time.Time       `json:"date"`
	Label string          `json:"label"`
	Total decimal.Decimal `json:"total"`
}

type CategoryTotal struct {
	Name  string          `json:"name"`
	Total decimal.Decimal `json:"total"`
}

type DashboardSummary struct {
	Income     decimal.Decimal `json:"income"`
	Expense    decimal.Decimal `json:"expense"`
	Net        decimal.Decimal `json:"net"`
	Daily      []DailyPoint    `json:"daily"`
	Categories []CategoryTotal `json:"categories"`
}

type DashboardService struct {
	repo domain.TransactionRepository
}

func NewDashboardService(repo domain.TransactionRepository) *DashboardService {
	return &DashboardService{repo: repo}
}

// Summarize aggregates the caller's transactions over the 30 calendar days
// ending at today, inclusive.
//
// The daily series is a cumulative net position within the window, seeded
// at zero before the first day; it is not an account balance. It always has
// exactly DashboardWindowDays points, zero-activity days included, and its
// last point equals income minus expense for the whole window.
//
// Transactions whose category no longer resolves (deleted after the write)
// are unclassifiable and excluded from the totals, the series, and the
// breakdown.
func (s *DashboardService) Summarize(ctx context.Context, callerID string, today time.Time) (*DashboardSummary, error) {
	if err := requireCaller(callerID); err != nil {
		return nil, err
	}

	year, month, day := today.Date()
	windowEnd := time.Date(year, month, day, 0, 0, 0, 0, today.Location())
	windowStart := windowEnd.AddDate(0, 0, -(DashboardWindowDays - 1))

	transactions, err := s.repo.FindByOwnerInDateRange(ctx, callerID, windowStart, windowEnd.AddDate(0, 0, 1))
	if err != nil {
		return nil, err
	}

	summary := &DashboardSummary{
		Daily:      make([]DailyPoint, 0, DashboardWindowDays),
		Categories: []CategoryTotal{},
	}

	netByDay := make(map[string]decimal.Decimal)
	expenseByCategory := make(map[string]decimal.Decimal)
	for _, transaction := range transactions {
		if transaction.Category == nil {
			continue
		}

		dayKey := transaction.Date.In(windowEnd.Location()).Format("2006-01-02")
		switch transaction.Category.Type {
		case domain.CategoryTypeIncome:
			summary.Income = summary.Income.Add(transaction.Amount)
			netByDay[dayKey] = netByDay[dayKey].Add(transaction.Amount)
		case domain.CategoryTypeExpense:
			summary.Expense = summary.Expense.Add(transaction.Amount)
			netByDay[dayKey] = netByDay[dayKey].Sub(transaction.Amount)
			name := transaction.Category.Name
			expenseByCategory[name] = expenseByCategory[name].Add(transaction.Amount)
		}
	}
	summary.Net = summary.Income.Sub(summary.Expense)

	running := decimal.Zero
	for i := 0; i < DashboardWindowDays; i++ {
		d := windowStart.AddDate(0, 0, i)
		running = running.Add(netByDay[d.Format("2006-01-02")])
		summary.Daily = append(summary.Daily, DailyPoint{
			Date:  d,
			Label: d.Format("02.01"),
			Total: running,
		})
	}

	for name, total := range expenseByCategory {
		summary.Categories = append(summary.Categories, CategoryTotal{Name: name, Total: total})
	}
	sort.Slice(summary.Categories, func(i, j int) bool {
		if !summary.Categories[i].Total.Equal(summary.Categories[j].Total) {
			return summary.Categories[i].Total.GreaterThan(summary.Categories[j].Total)
		}
		return summary.Categories[i].Name < summary.Categories[j].Name
	})

	return summary, nil
}
