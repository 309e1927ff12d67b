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

type CategoryRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewCategoryRepository(db *pgxpool.Pool, logger *zap.Logger) *CategoryRepository {
	return &CategoryRepository{
		db:     db,
		logger: logger,
	}
}

// ListByUser returns all of the user's categories ordered by name.
func (r *CategoryRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Category, error) {
	query := squirrel.Select("id", "name", "icon", "user_id", "created_at").
		From("categories").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("name ASC").
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

	var categories []models.Category
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Icon, &c.UserID, &c.CreatedAt); err != nil {
			return nil, apperr.Classify(err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Classify(err)
	}

	return categories, nil
}

func (r *CategoryRepository) Create(ctx context.Context, category *models.Category) error {
	query := squirrel.Insert("categories").
		Columns("id", "name", "icon", "user_id", "created_at").
		Values(category.ID, category.Name, category.Icon, category.UserID, category.CreatedAt).
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

// CreateBatch inserts categories in a single multi-row statement. The
// statement either applies as a whole or fails as a whole; no retry.
func (r *CategoryRepository) CreateBatch(ctx context.Context, categories []*models.Category) error {
	if len(categories) == 0 {
		return nil
	}

	builder := squirrel.Insert("categories").
		Columns("id", "name", "icon", "user_id", "created_at").
		PlaceholderFormat(squirrel.Dollar)

	for _, c := range categories {
		builder = builder.Values(c.ID, c.Name, c.Icon, c.UserID, c.CreatedAt)
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return err
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		return apperr.Classify(err)
	}
	return nil
}

// Update mutates name and icon, scoped to the owning user. A miss on
// (id, user_id) is reported as NotFound.
func (r *CategoryRepository) Update(ctx context.Context, category *models.Category) (*models.Category, error) {
	query := squirrel.Update("categories").
		Set("name", category.Name).
		Set("icon", category.Icon).
		Where(squirrel.Eq{"id": category.ID, "user_id": category.UserID}).
		Suffix("RETURNING id, name, icon, user_id, created_at").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var updated models.Category
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&updated.ID, &updated.Name, &updated.Icon, &updated.UserID, &updated.CreatedAt,
	)
	if err != nil {
		return nil, apperr.Classify(err)
	}

	return &updated, nil
}

// Delete removes the user's category. Deleting an id that does not exist
// (or belongs to someone else) is indistinguishable from success.
func (r *CategoryRepository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	query := squirrel.Delete("categories").
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
