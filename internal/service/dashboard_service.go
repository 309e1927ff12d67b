package service

import (
	"context"
	"strings"
	"time"

	"spendtrack/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type DateRange string

const (
	RangeAll   DateRange = "all"
	RangeToday DateRange = "today"
	RangeWeek  DateRange = "week"
	RangeMonth DateRange = "month"
)

// FilterOptions are the list-view predicates; zero values mean "no filter".
// All populated predicates must match.
type FilterOptions struct {
	Search   string
	Category string
	Range    DateRange
}

type CategoryTotal struct {
	Name  string
	Icon  string
	Total decimal.Decimal
}

type DayTotal struct {
	Day   time.Time
	Total decimal.Decimal
}

type Summary struct {
	Total   decimal.Decimal
	Count   int
	Average decimal.Decimal
}

type DashboardData struct {
	Year       int
	Month      int
	Summary    Summary
	ByCategory []CategoryTotal
	ByDay      []DayTotal
}

// FilterExpenses applies search, category, and date-range predicates.
// Search matches case-insensitive substrings of description or category.
// "week" means within the trailing seven days of now, "today" and "month"
// compare calendar fields.
func FilterExpenses(expenses []models.Expense, opts FilterOptions, now time.Time) []models.Expense {
	search := strings.ToLower(opts.Search)

	var out []models.Expense
	for _, e := range expenses {
		if search != "" &&
			!strings.Contains(strings.ToLower(e.Description), search) &&
			!strings.Contains(strings.ToLower(e.Category), search) {
			continue
		}
		if opts.Category != "" && opts.Category != "all" && e.Category != opts.Category {
			continue
		}
		if !matchesRange(e.Date, opts.Range, now) {
			continue
		}
		out = append(out, e)
	}
	return out
}

func matchesRange(date time.Time, r DateRange, now time.Time) bool {
	switch r {
	case RangeToday:
		y1, m1, d1 := date.Date()
		y2, m2, d2 := now.Date()
		return y1 == y2 && m1 == m2 && d1 == d2
	case RangeWeek:
		return !date.Before(now.AddDate(0, 0, -7))
	case RangeMonth:
		return date.Month() == now.Month() && date.Year() == now.Year()
	default:
		return true
	}
}

// FilterByMonth keeps expenses dated in the exact calendar month.
func FilterByMonth(expenses []models.Expense, year int, month time.Month) []models.Expense {
	var out []models.Expense
	for _, e := range expenses {
		if e.Date.Year() == year && e.Date.Month() == month {
			out = append(out, e)
		}
	}
	return out
}

// AggregateByCategory sums amounts per category name, in the category
// collection's order. Categories with a zero total are dropped. Expenses
// referencing a deleted category are not reported here.
func AggregateByCategory(expenses []models.Expense, categories []models.Category) []CategoryTotal {
	totals := make(map[string]decimal.Decimal, len(categories))
	for _, e := range expenses {
		totals[e.Category] = totals[e.Category].Add(e.Amount)
	}

	var out []CategoryTotal
	for _, c := range categories {
		total := totals[c.Name]
		if total.IsZero() {
			continue
		}
		out = append(out, CategoryTotal{
			Name:  c.Name,
			Icon:  c.DisplayIcon(),
			Total: total,
		})
	}
	return out
}

// AggregateByDay sums amounts per calendar day over the inclusive range.
// Days with no spending are dropped.
func AggregateByDay(expenses []models.Expense, start, end time.Time) []DayTotal {
	totals := make(map[string]decimal.Decimal)
	for _, e := range expenses {
		totals[models.FormatDate(e.Date)] = totals[models.FormatDate(e.Date)].Add(e.Amount)
	}

	var out []DayTotal
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		total := totals[models.FormatDate(day)]
		if total.IsZero() {
			continue
		}
		out = append(out, DayTotal{Day: day, Total: total})
	}
	return out
}

// Summarize computes total, count, and per-expense average. An empty input
// yields all zeros rather than a division by zero.
func Summarize(expenses []models.Expense) Summary {
	var total decimal.Decimal
	for _, e := range expenses {
		total = total.Add(e.Amount)
	}

	summary := Summary{Total: total, Count: len(expenses)}
	if summary.Count > 0 {
		summary.Average = total.Div(decimal.NewFromInt(int64(summary.Count)))
	}
	return summary
}

// DashboardService derives the month dashboard from the cached collections.
type DashboardService struct {
	expenses   *ExpenseService
	categories *CategoryService
	logger     *zap.Logger
}

func NewDashboardService(expenses *ExpenseService, categories *CategoryService, logger *zap.Logger) *DashboardService {
	return &DashboardService{
		expenses:   expenses,
		categories: categories,
		logger:     logger,
	}
}

// Dashboard aggregates one calendar month of the user's spending.
func (s *DashboardService) Dashboard(ctx context.Context, userID uuid.UUID, year int, month time.Month) (*DashboardData, error) {
	expenses, err := s.expenses.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	categories, err := s.categories.List(ctx, userID)
	if err != nil {
		return nil, err
	}

	monthly := FilterByMonth(expenses, year, month)
	monthStart := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, -1)

	return &DashboardData{
		Year:       year,
		Month:      int(month),
		Summary:    Summarize(monthly),
		ByCategory: AggregateByCategory(monthly, categories),
		ByDay:      AggregateByDay(monthly, monthStart, monthEnd),
	}, nil
}
