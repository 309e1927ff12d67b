package service

import (
	"context"
	"testing"
	"time"

	"spendtrack/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func expense(amount int64, category, date string, description ...string) models.Expense {
	d, err := models.ParseDate(date)
	if err != nil {
		panic(err)
	}
	e := models.Expense{
		ID:       uuid.New(),
		Amount:   decimal.NewFromInt(amount),
		Category: category,
		Date:     d,
	}
	if len(description) > 0 {
		e.Description = description[0]
	}
	return e
}

func TestFilterExpenses_Search(t *testing.T) {
	expenses := []models.Expense{
		expense(100, "Food & Dining", "2024-03-01", "Lunch with team"),
		expense(200, "Transportation", "2024-03-02", "Taxi"),
		expense(300, "Shopping", "2024-03-03"),
	}
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

	got := FilterExpenses(expenses, FilterOptions{Search: "lunch"}, now)
	require.Len(t, got, 1)
	assert.Equal(t, "Lunch with team", got[0].Description)

	// search also matches the category name
	got = FilterExpenses(expenses, FilterOptions{Search: "SHOP"}, now)
	require.Len(t, got, 1)
	assert.Equal(t, "Shopping", got[0].Category)

	got = FilterExpenses(expenses, FilterOptions{Search: "nothing"}, now)
	assert.Empty(t, got)
}

func TestFilterExpenses_Category(t *testing.T) {
	expenses := []models.Expense{
		expense(100, "Food & Dining", "2024-03-01"),
		expense(200, "Transportation", "2024-03-02"),
	}
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

	got := FilterExpenses(expenses, FilterOptions{Category: "Transportation"}, now)
	require.Len(t, got, 1)
	assert.Equal(t, "Transportation", got[0].Category)

	// "all" is the no-filter sentinel the UI sends
	got = FilterExpenses(expenses, FilterOptions{Category: "all"}, now)
	assert.Len(t, got, 2)
}

func TestFilterExpenses_DateRanges(t *testing.T) {
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	expenses := []models.Expense{
		expense(1, "a", "2024-03-15"),
		expense(2, "a", "2024-03-10"),
		expense(3, "a", "2024-03-01"),
		expense(4, "a", "2024-02-28"),
	}

	tests := []struct {
		r    DateRange
		want int
	}{
		{RangeAll, 4},
		{RangeToday, 1},
		{RangeWeek, 2},  // 03-15 and 03-10 are within the trailing 7 days
		{RangeMonth, 3}, // march only
		{DateRange(""), 4},
	}
	for _, tt := range tests {
		t.Run(string(tt.r), func(t *testing.T) {
			assert.Len(t, FilterExpenses(expenses, FilterOptions{Range: tt.r}, now), tt.want)
		})
	}
}

func TestFilterExpenses_PredicatesAreANDed(t *testing.T) {
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	expenses := []models.Expense{
		expense(1, "Food & Dining", "2024-03-15", "coffee"),
		expense(2, "Food & Dining", "2024-02-01", "coffee"),
		expense(3, "Shopping", "2024-03-15", "coffee mug"),
	}

	got := FilterExpenses(expenses, FilterOptions{
		Search:   "coffee",
		Category: "Food & Dining",
		Range:    RangeToday,
	}, now)
	require.Len(t, got, 1)
	assert.Equal(t, "coffee", got[0].Description)
}

func TestFilterByMonth(t *testing.T) {
	expenses := []models.Expense{
		expense(1, "a", "2024-03-01"),
		expense(2, "a", "2024-03-31"),
		expense(3, "a", "2024-02-29"),
		expense(4, "a", "2023-03-15"),
	}

	got := FilterByMonth(expenses, 2024, time.March)
	assert.Len(t, got, 2)
}

func TestAggregateByCategory(t *testing.T) {
	categories := []models.Category{
		{Name: "Food & Dining", Icon: "🍔"},
		{Name: "Transportation", Icon: "🚗"},
		{Name: "Shopping"},
	}
	expenses := []models.Expense{
		expense(50000, "Food & Dining", "2024-03-01"),
		expense(30000, "Food & Dining", "2024-03-02"),
		expense(12000, "Shopping", "2024-03-03"),
		expense(999, "Deleted Category", "2024-03-04"),
	}

	got := AggregateByCategory(expenses, categories)
	require.Len(t, got, 2, "zero-total and unknown categories are excluded")

	assert.Equal(t, "Food & Dining", got[0].Name)
	assert.Equal(t, "🍔", got[0].Icon)
	assert.True(t, got[0].Total.Equal(decimal.NewFromInt(80000)))

	assert.Equal(t, "Shopping", got[1].Name)
	assert.Equal(t, models.DefaultCategoryIcon, got[1].Icon)
	assert.True(t, got[1].Total.Equal(decimal.NewFromInt(12000)))
}

func TestAggregateByCategory_OrderFollowsCategories(t *testing.T) {
	categories := []models.Category{
		{Name: "B"},
		{Name: "A"},
	}
	expenses := []models.Expense{
		expense(1, "A", "2024-03-01"),
		expense(2, "B", "2024-03-01"),
	}

	got := AggregateByCategory(expenses, categories)
	require.Len(t, got, 2)
	assert.Equal(t, "B", got[0].Name)
	assert.Equal(t, "A", got[1].Name)
}

func TestAggregateByDay(t *testing.T) {
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)
	expenses := []models.Expense{
		expense(100, "a", "2024-03-01"),
		expense(200, "a", "2024-03-01"),
		expense(50, "a", "2024-03-15"),
	}

	got := AggregateByDay(expenses, start, end)
	require.Len(t, got, 2, "days without spending are excluded")

	assert.Equal(t, "2024-03-01", models.FormatDate(got[0].Day))
	assert.True(t, got[0].Total.Equal(decimal.NewFromInt(300)))
	assert.Equal(t, "2024-03-15", models.FormatDate(got[1].Day))
	assert.True(t, got[1].Total.Equal(decimal.NewFromInt(50)))
}

func TestSummarize(t *testing.T) {
	expenses := []models.Expense{
		expense(50000, "Food & Dining", "2024-03-01"),
		expense(30000, "Food & Dining", "2024-03-02"),
	}

	s := Summarize(expenses)
	assert.True(t, s.Total.Equal(decimal.NewFromInt(80000)))
	assert.Equal(t, 2, s.Count)
	assert.True(t, s.Average.Equal(decimal.NewFromInt(40000)))
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil)
	assert.True(t, s.Total.IsZero())
	assert.Zero(t, s.Count)
	assert.True(t, s.Average.IsZero())
}

func TestSummarize_ExactDecimalAccumulation(t *testing.T) {
	// 0.1 added 100 times must come out to exactly 10.
	tenth := decimal.RequireFromString("0.1")
	var expenses []models.Expense
	for i := 0; i < 100; i++ {
		expenses = append(expenses, models.Expense{Amount: tenth})
	}

	s := Summarize(expenses)
	assert.Equal(t, "10", s.Total.String())
}

func TestDashboard(t *testing.T) {
	catRepo := newFakeCategoryRepo()
	expRepo := newFakeExpenseRepo()
	categories := NewCategoryService(catRepo, testLogger())
	expenses := NewExpenseService(expRepo, testLogger())
	svc := NewDashboardService(expenses, categories, testLogger())
	userID := uuid.New()

	catRepo.items[userID] = []models.Category{
		{ID: uuid.New(), Name: "Food & Dining", Icon: "🍔", UserID: userID},
	}
	for _, e := range []models.Expense{
		expense(50000, "Food & Dining", "2024-03-01"),
		expense(30000, "Food & Dining", "2024-03-02"),
		expense(70000, "Food & Dining", "2024-04-01"), // outside the month
	} {
		e.UserID = userID
		expRepo.items[userID] = append(expRepo.items[userID], e)
	}

	data, err := svc.Dashboard(context.Background(), userID, 2024, time.March)
	require.NoError(t, err)

	assert.Equal(t, 2024, data.Year)
	assert.Equal(t, 3, data.Month)
	assert.True(t, data.Summary.Total.Equal(decimal.NewFromInt(80000)))
	assert.Equal(t, 2, data.Summary.Count)
	assert.True(t, data.Summary.Average.Equal(decimal.NewFromInt(40000)))

	require.Len(t, data.ByCategory, 1)
	assert.Equal(t, "Food & Dining", data.ByCategory[0].Name)
	assert.True(t, data.ByCategory[0].Total.Equal(decimal.NewFromInt(80000)))

	require.Len(t, data.ByDay, 2)
}
