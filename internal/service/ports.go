package service

import (
	"context"

	"spendtrack/internal/models"

	"github.com/google/uuid"
)

// Repository ports the services depend on. The pgx implementations live in
// internal/repository; tests substitute in-memory fakes.

type UserRepo interface {
	Create(ctx context.Context, user *models.User) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
}

type CategoryRepo interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Category, error)
	Create(ctx context.Context, category *models.Category) error
	CreateBatch(ctx context.Context, categories []*models.Category) error
	Update(ctx context.Context, category *models.Category) (*models.Category, error)
	Delete(ctx context.Context, id, userID uuid.UUID) error
}

type ExpenseRepo interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Expense, error)
	Create(ctx context.Context, expense *models.Expense) error
	Update(ctx context.Context, expense *models.Expense) (*models.Expense, error)
	Delete(ctx context.Context, id, userID uuid.UUID) error
}
