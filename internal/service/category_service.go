package service

import (
	"context"
	"strings"
	"time"

	"spendtrack/internal/apperr"
	"spendtrack/internal/cache"
	"spendtrack/internal/dto"
	"spendtrack/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CategoryService struct {
	repo   CategoryRepo
	cache  *cache.Store[models.Category]
	logger *zap.Logger
}

func NewCategoryService(repo CategoryRepo, logger *zap.Logger) *CategoryService {
	return &CategoryService{
		repo:   repo,
		cache:  cache.NewStore[models.Category](),
		logger: logger,
	}
}

// List returns the user's categories, name ascending, reading through the
// collection cache.
func (s *CategoryService) List(ctx context.Context, userID uuid.UUID) ([]models.Category, error) {
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

func (s *CategoryService) Create(ctx context.Context, userID uuid.UUID, req *dto.CategoryRequest) (*models.Category, error) {
	category := &models.Category{
		ID:        uuid.New(),
		Name:      strings.TrimSpace(req.Name),
		Icon:      req.Icon,
		UserID:    userID,
		CreatedAt: time.Now(),
	}
	if err := category.Validate(); err != nil {
		return nil, apperr.Wrap(apperr.ValidationFailed, err)
	}

	existing, err := s.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	if HasDuplicateName(category.Name, existing, uuid.Nil) {
		return nil, apperr.New(apperr.DuplicateName, "a category with this name already exists")
	}

	if err := s.repo.Create(ctx, category); err != nil {
		return nil, err
	}
	s.cache.Invalidate(userID)

	s.logger.Info("Category created",
		zap.String("user_id", userID.String()),
		zap.String("name", category.Name),
	)
	return category, nil
}

func (s *CategoryService) Update(ctx context.Context, userID, id uuid.UUID, req *dto.CategoryRequest) (*models.Category, error) {
	category := &models.Category{
		ID:     id,
		Name:   strings.TrimSpace(req.Name),
		Icon:   req.Icon,
		UserID: userID,
	}
	if err := category.Validate(); err != nil {
		return nil, apperr.Wrap(apperr.ValidationFailed, err)
	}

	existing, err := s.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	if HasDuplicateName(category.Name, existing, id) {
		return nil, apperr.New(apperr.DuplicateName, "a category with this name already exists")
	}

	updated, err := s.repo.Update(ctx, category)
	if err != nil {
		return nil, err
	}
	s.cache.Invalidate(userID)

	return updated, nil
}

// Delete removes a category. Expenses referencing it by name are left
// untouched; the UI renders their category as unknown.
func (s *CategoryService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id, userID); err != nil {
		return err
	}
	s.cache.Invalidate(userID)
	return nil
}

// HasDuplicateName reports whether name collides case-insensitively with an
// existing category other than excludeID (the record being edited).
func HasDuplicateName(name string, existing []models.Category, excludeID uuid.UUID) bool {
	for _, c := range existing {
		if c.ID == excludeID {
			continue
		}
		if strings.EqualFold(c.Name, name) {
			return true
		}
	}
	return false
}
