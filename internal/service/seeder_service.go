package service

import (
	"context"
	"time"

	"spendtrack/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultCategory is one entry of the default set installed for new users.
type DefaultCategory struct {
	Name string
	Icon string
}

// DefaultCategories is inserted for every fresh owner, in this order.
var DefaultCategories = []DefaultCategory{
	{Name: "Food & Dining", Icon: "🍔"},
	{Name: "Transportation", Icon: "🚗"},
	{Name: "Shopping", Icon: "🛍️"},
	{Name: "Entertainment", Icon: "🎬"},
	{Name: "Bills & Utilities", Icon: "💡"},
	{Name: "Healthcare", Icon: "💊"},
	{Name: "Education", Icon: "📚"},
	{Name: "Travel", Icon: "✈️"},
	{Name: "Groceries", Icon: "🛒"},
	{Name: "Housing", Icon: "🏠"},
	{Name: "Insurance", Icon: "🛡️"},
	{Name: "Personal Care", Icon: "💅"},
	{Name: "Subscriptions", Icon: "📱"},
	{Name: "Gifts & Donations", Icon: "🎁"},
	{Name: "Business", Icon: "💼"},
	{Name: "Other", Icon: "📊"},
}

type SeederService struct {
	categories *CategoryService
	logger     *zap.Logger
}

func NewSeederService(categories *CategoryService, logger *zap.Logger) *SeederService {
	return &SeederService{
		categories: categories,
		logger:     logger,
	}
}

// Seed installs the default categories the user does not already have and
// returns how many were added. Already-present names are matched exactly
// (case-sensitive), so re-running never duplicates a name but a user-renamed
// "travel" will not block the default "Travel". The batch insert is a single
// statement; on failure nothing of the batch is retried.
func (s *SeederService) Seed(ctx context.Context, userID uuid.UUID) (int, error) {
	existing, err := s.categories.List(ctx, userID)
	if err != nil {
		return 0, err
	}

	existingNames := make(map[string]struct{}, len(existing))
	for _, c := range existing {
		existingNames[c.Name] = struct{}{}
	}

	now := time.Now()
	var toInsert []*models.Category
	for _, def := range DefaultCategories {
		if _, ok := existingNames[def.Name]; ok {
			continue
		}
		toInsert = append(toInsert, &models.Category{
			ID:        uuid.New(),
			Name:      def.Name,
			Icon:      def.Icon,
			UserID:    userID,
			CreatedAt: now,
		})
	}

	if len(toInsert) == 0 {
		s.logger.Info("All default categories already exist",
			zap.String("user_id", userID.String()))
		return 0, nil
	}

	if err := s.categories.repo.CreateBatch(ctx, toInsert); err != nil {
		return 0, err
	}
	s.categories.cache.Invalidate(userID)

	s.logger.Info("Default categories seeded",
		zap.String("user_id", userID.String()),
		zap.Int("added", len(toInsert)),
	)
	return len(toInsert), nil
}
