package service

import (
	"context"
	"time"

	"spendtrack/internal/apperr"
	"spendtrack/internal/cache"
	"spendtrack/internal/dto"
	"spendtrack/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type ExpenseService struct {
	repo   ExpenseRepo
	cache  *cache.Store[models.Expense]
	logger *zap.Logger
}

func NewExpenseService(repo ExpenseRepo, logger *zap.Logger) *ExpenseService {
	return &ExpenseService{
		repo:   repo,
		cache:  cache.NewStore[models.Expense](),
		logger: logger,
	}
}

// List returns the user's expenses, newest date first, reading through the
// collection cache.
func (s *ExpenseService) List(ctx context.Context, userID uuid.UUID) ([]models.Expense, error) {
	if items, ok := s.cache.Get(userID); ok {
		return items, nil
	}

	items, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	s.cache.Put(userID, items)
	return items, nil
}

// ListFiltered applies the search/category/date-range predicates to the
// user's expenses.
func (s *ExpenseService) ListFiltered(ctx context.Context, userID uuid.UUID, opts FilterOptions) ([]models.Expense, error) {
	expenses, err := s.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	return FilterExpenses(expenses, opts, time.Now().UTC()), nil
}

func (s *ExpenseService) Create(ctx context.Context, userID uuid.UUID, req *dto.ExpenseRequest) (*models.Expense, error) {
	expense, err := s.fromRequest(userID, req)
	if err != nil {
		return nil, err
	}
	expense.ID = uuid.New()
	expense.CreatedAt = time.Now()

	if err := s.repo.Create(ctx, expense); err != nil {
		return nil, err
	}
	s.cache.Invalidate(userID)

	s.logger.Info("Expense created",
		zap.String("user_id", userID.String()),
		zap.String("category", expense.Category),
		zap.String("amount", expense.Amount.String()),
	)
	return expense, nil
}

func (s *ExpenseService) Update(ctx context.Context, userID, id uuid.UUID, req *dto.ExpenseRequest) (*models.Expense, error) {
	expense, err := s.fromRequest(userID, req)
	if err != nil {
		return nil, err
	}
	expense.ID = id

	updated, err := s.repo.Update(ctx, expense)
	if err != nil {
		return nil, err
	}
	s.cache.Invalidate(userID)

	return updated, nil
}

func (s *ExpenseService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id, userID); err != nil {
		return err
	}
	s.cache.Invalidate(userID)
	return nil
}

// fromRequest parses and validates the request fields. Category existence
// against the live category set is deliberately not checked here.
func (s *ExpenseService) fromRequest(userID uuid.UUID, req *dto.ExpenseRequest) (*models.Expense, error) {
	amount, err := decimal.NewFromString(req.Amount.String())
	if err != nil {
		return nil, apperr.FieldError("amount", "must be a number")
	}

	date, err := models.ParseDate(req.Date)
	if err != nil {
		return nil, apperr.FieldError("date", "must be a valid YYYY-MM-DD date")
	}

	expense := &models.Expense{
		UserID:      userID,
		Amount:      amount,
		Description: req.Description,
		Category:    req.Category,
		Date:        date,
	}
	if err := expense.Validate(); err != nil {
		return nil, apperr.Wrap(apperr.ValidationFailed, err)
	}
	return expense, nil
}
