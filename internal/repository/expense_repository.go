package repository

import (
	"context"

	"spendtrack/internal/apperr"
	"spendtrack/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type ExpenseRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewExpenseRepository(db *pgxpool.Pool, logger *zap.Logger) *ExpenseRepository {
	return &ExpenseRepository{
		db:     db,
		logger: logger,
	}
}

// ListByUser returns all of the user's expenses, newest date first.
func (r *ExpenseRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Expense, error) {
	query := squirrel.Select("id", "user_id", "amount", "description", "category", "date", "created_at").
		From("expenses").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("date DESC").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, apperr.Classify(err)
	}
	defer rows.Close()

	var expenses []models.Expense
	for rows.Next() {
		var e models.Expense
		if err := rows.Scan(&e.ID, &e.UserID, &e.Amount, &e.Description, &e.Category, &e.Date, &e.CreatedAt); err != nil {
			return nil, apperr.Classify(err)
		}
		expenses = append(expenses, e)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Classify(err)
	}

	return expenses, nil
}

func (r *ExpenseRepository) Create(ctx context.Context, expense *models.Expense) error {
	query := squirrel.Insert("expenses").
		Columns("id", "user_id", "amount", "description", "category", "date", "created_at").
		Values(expense.ID, expense.UserID, expense.Amount, expense.Description, expense.Category, expense.Date, expense.CreatedAt).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		return apperr.Classify(err)
	}
	return nil
}

// Update mutates the expense fields, scoped to the owning user. A miss on
// (id, user_id) is reported as NotFound.
func (r *ExpenseRepository) Update(ctx context.Context, expense *models.Expense) (*models.Expense, error) {
	query := squirrel.Update("expenses").
		Set("amount", expense.Amount).
		Set("description", expense.Description).
		Set("category", expense.Category).
		Set("date", expense.Date).
		Where(squirrel.Eq{"id": expense.ID, "user_id": expense.UserID}).
		Suffix("RETURNING id, user_id, amount, description, category, date, created_at").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var updated models.Expense
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&updated.ID, &updated.UserID, &updated.Amount, &updated.Description, &updated.Category, &updated.Date, &updated.CreatedAt,
	)
	if err != nil {
		return nil, apperr.Classify(err)
	}

	return &updated, nil
}

// Delete removes the user's expense. Deleting a nonexistent id succeeds.
func (r *ExpenseRepository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	query := squirrel.Delete("expenses").
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		return apperr.Classify(err)
	}
	return nil
}
