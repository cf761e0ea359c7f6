package application

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/iremkabaoglu/FinManager/internal/finance/domain"
	financeErrors "github.com/iremkabaoglu/FinManager/internal/finance/errors"
	"github.com/iremkabaoglu/FinManager/internal/finance/infrastructure"
)

var (
	groceries = &domain.Category{ID: "c1", Name: "Groceries", Type: domain.CategoryTypeExpense, OwnerID: "u1"}
	salary    = &domain.Category{ID: "c2", Name: "Salary", Type: domain.CategoryTypeIncome, OwnerID: "u1"}
)

func TestSummarize_EmptyWindow(t *testing.T) {
	service := NewDashboardService(&infrastructure.MockTransactionRepository{})
	today := time.Date(2024, time.June, 30, 0, 0, 0, 0, time.UTC)

	summary, err := service.Summarize(context.Background(), "u1", today)
	assert.NoError(t, err)
	assert.True(t, summary.Income.IsZero())
	assert.True(t, summary.Expense.IsZero())
	assert.True(t, summary.Net.IsZero())
	assert.Len(t, summary.Daily, DashboardWindowDays)
	for _, point := range summary.Daily {
		assert.True(t, point.Total.IsZero())
	}
	assert.Empty(t, summary.Categories)
	assert.NotNil(t, summary.Categories)
}

func TestSummarize_ExampleScenario(t *testing.T) {
	today := time.Date(2024, time.June, 30, 0, 0, 0, 0, time.UTC)
	repo := &infrastructure.MockTransactionRepository{
		Transactions: []domain.Transaction{
			{ID: "t1", AccountID: "a1", CategoryID: groceries.ID, Amount: decimal.NewFromInt(50), Date: today, OwnerID: "u1", Category: groceries},
			{ID: "t2", AccountID: "a1", CategoryID: salary.ID, Amount: decimal.NewFromInt(1000), Date: today.AddDate(0, 0, -5), OwnerID: "u1", Category: salary},
		},
	}
	service := NewDashboardService(repo)

	summary, err := service.Summarize(context.Background(), "u1", today)
	assert.NoError(t, err)
	assert.True(t, summary.Income.Equal(decimal.NewFromInt(1000)))
	assert.True(t, summary.Expense.Equal(decimal.NewFromInt(50)))
	assert.True(t, summary.Net.Equal(decimal.NewFromInt(950)))

	assert.Len(t, summary.Categories, 1)
	assert.Equal(t, "Groceries", summary.Categories[0].Name)
	assert.True(t, summary.Categories[0].Total.Equal(decimal.NewFromInt(50)))

	assert.Len(t, summary.Daily, DashboardWindowDays)
	for i, point := range summary.Daily {
		switch {
		case i < DashboardWindowDays-6:
			assert.True(t, point.Total.IsZero(), "day %d should be zero", i)
		case i < DashboardWindowDays-1:
			assert.True(t, point.Total.Equal(decimal.NewFromInt(1000)), "day %d should hold the salary", i)
		default:
			assert.True(t, point.Total.Equal(decimal.NewFromInt(950)), "last day nets out the expense")
		}
	}
}

func TestSummarize_SeriesShape(t *testing.T) {
	today := time.Date(2024, time.February, 14, 0, 0, 0, 0, time.UTC)
	repo := &infrastructure.MockTransactionRepository{
		Transactions: []domain.Transaction{
			{ID: "t1", AccountID: "a1", CategoryID: salary.ID, Amount: decimal.NewFromInt(300), Date: today.AddDate(0, 0, -20), OwnerID: "u1", Category: salary},
			{ID: "t2", AccountID: "a1", CategoryID: groceries.ID, Amount: decimal.NewFromInt(120), Date: today.AddDate(0, 0, -7), OwnerID: "u1", Category: groceries},
		},
	}
	service := NewDashboardService(repo)

	summary, err := service.Summarize(context.Background(), "u1", today)
	assert.NoError(t, err)

	assert.Len(t, summary.Daily, DashboardWindowDays)
	for i := 1; i < len(summary.Daily); i++ {
		assert.True(t, summary.Daily[i].Date.After(summary.Daily[i-1].Date), "dates must be strictly ascending")
	}
	last := summary.Daily[len(summary.Daily)-1]
	assert.True(t, last.Total.Equal(summary.Net), "last point equals income minus expense")
	assert.Equal(t, today, last.Date)
	assert.Equal(t, today.AddDate(0, 0, -(DashboardWindowDays-1)), summary.Daily[0].Date)
}

func TestSummarize_WindowExcludesOlderTransactions(t *testing.T) {
	today := time.Date(2024, time.June, 30, 0, 0, 0, 0, time.UTC)
	repo := &infrastructure.MockTransactionRepository{
		Transactions: []domain.Transaction{
			{ID: "t1", AccountID: "a1", CategoryID: salary.ID, Amount: decimal.NewFromInt(999), Date: today.AddDate(0, 0, -30), OwnerID: "u1", Category: salary},
			{ID: "t2", AccountID: "a1", CategoryID: salary.ID, Amount: decimal.NewFromInt(10), Date: today.AddDate(0, 0, -29), OwnerID: "u1", Category: salary},
		},
	}
	service := NewDashboardService(repo)

	summary, err := service.Summarize(context.Background(), "u1", today)
	assert.NoError(t, err)
	assert.True(t, summary.Income.Equal(decimal.NewFromInt(10)), "day -30 is outside the 30-day window")
}

func TestSummarize_DanglingCategoryExcluded(t *testing.T) {
	today := time.Date(2024, time.June, 30, 0, 0, 0, 0, time.UTC)
	repo := &infrastructure.MockTransactionRepository{
		Transactions: []domain.Transaction{
			{ID: "t1", AccountID: "a1", CategoryID: groceries.ID, Amount: decimal.NewFromInt(50), Date: today, OwnerID: "u1", Category: groceries},
			// category deleted after the write: unclassifiable
			{ID: "t2", AccountID: "a1", CategoryID: "gone", Amount: decimal.NewFromInt(500), Date: today, OwnerID: "u1", Category: nil},
		},
	}
	service := NewDashboardService(repo)

	summary, err := service.Summarize(context.Background(), "u1", today)
	assert.NoError(t, err)
	assert.True(t, summary.Expense.Equal(decimal.NewFromInt(50)))
	assert.Len(t, summary.Categories, 1)

	breakdownTotal := decimal.Zero
	for _, categoryTotal := range summary.Categories {
		breakdownTotal = breakdownTotal.Add(categoryTotal.Total)
	}
	assert.True(t, breakdownTotal.Equal(summary.Expense))
}

func TestSummarize_BreakdownOrderedByTotalDescending(t *testing.T) {
	rent := &domain.Category{ID: "c3", Name: "Rent", Type: domain.CategoryTypeExpense, OwnerID: "u1"}
	today := time.Date(2024, time.June, 30, 0, 0, 0, 0, time.UTC)
	repo := &infrastructure.MockTransactionRepository{
		Transactions: []domain.Transaction{
			{ID: "t1", AccountID: "a1", CategoryID: groceries.ID, Amount: decimal.NewFromInt(80), Date: today, OwnerID: "u1", Category: groceries},
			{ID: "t2", AccountID: "a1", CategoryID: rent.ID, Amount: decimal.NewFromInt(900), Date: today.AddDate(0, 0, -1), OwnerID: "u1", Category: rent},
			{ID: "t3", AccountID: "a1", CategoryID: groceries.ID, Amount: decimal.NewFromInt(40), Date: today.AddDate(0, 0, -2), OwnerID: "u1", Category: groceries},
		},
	}
	service := NewDashboardService(repo)

	summary, err := service.Summarize(context.Background(), "u1", today)
	assert.NoError(t, err)
	assert.Len(t, summary.Categories, 2)
	assert.Equal(t, "Rent", summary.Categories[0].Name)
	assert.True(t, summary.Categories[0].Total.Equal(decimal.NewFromInt(900)))
	assert.Equal(t, "Groceries", summary.Categories[1].Name)
	assert.True(t, summary.Categories[1].Total.Equal(decimal.NewFromInt(120)))
}

func TestSummarize_IgnoresOtherOwners(t *testing.T) {
	today := time.Date(2024, time.June, 30, 0, 0, 0, 0, time.UTC)
	repo := &infrastructure.MockTransactionRepository{
		Transactions: []domain.Transaction{
			{ID: "t1", AccountID: "a9", CategoryID: salary.ID, Amount: decimal.NewFromInt(5000), Date: today, OwnerID: "u2", Category: salary},
		},
	}
	service := NewDashboardService(repo)

	summary, err := service.Summarize(context.Background(), "u1", today)
	assert.NoError(t, err)
	assert.True(t, summary.Income.IsZero())
}

func TestSummarize_RequiresCaller(t *testing.T) {
	service := NewDashboardService(&infrastructure.MockTransactionRepository{})

	summary, err := service.Summarize(context.Background(), "", time.Now())
	assert.Nil(t, summary)
	assert.ErrorIs(t, err, financeErrors.ErrUnauthenticated)
}
