package service

import (
	"context"
	"testing"
	"time"

	"spendtrack/internal/apperr"
	"spendtrack/internal/dto"
	"spendtrack/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHasDuplicateName(t *testing.T) {
	idA := uuid.New()
	idB := uuid.New()
	existing := []models.Category{
		{ID: idA, Name: "Travel"},
		{ID: idB, Name: "Groceries"},
	}

	tests := []struct {
		name      string
		candidate string
		exclude   uuid.UUID
		want      bool
	}{
		{"exact match", "Travel", uuid.Nil, true},
		{"case-insensitive match", "travel", uuid.Nil, true},
		{"mixed case match", "TRAVEL", uuid.Nil, true},
		{"no match", "Dining", uuid.Nil, false},
		{"editing the matching record itself", "travel", idA, false},
		{"editing a different record", "travel", idB, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HasDuplicateName(tt.candidate, existing, tt.exclude))
		})
	}
}

func TestCategoryCreate_DuplicateRejectedBeforeStore(t *testing.T) {
	repo := newFakeCategoryRepo()
	svc := NewCategoryService(repo, testLogger())
	userID := uuid.New()

	repo.items[userID] = []models.Category{
		{ID: uuid.New(), Name: "Travel", UserID: userID, CreatedAt: time.Now()},
	}

	_, err := svc.Create(context.Background(), userID, &dto.CategoryRequest{Name: "travel"})
	require.Error(t, err)
	assert.Equal(t, apperr.DuplicateName, apperr.KindOf(err))
	assert.Zero(t, repo.createCalls, "duplicate must be caught before any store call")
}

func TestCategoryCreate_EmptyNameRejected(t *testing.T) {
	repo := newFakeCategoryRepo()
	svc := NewCategoryService(repo, testLogger())

	for _, name := range []string{"", "   "} {
		_, err := svc.Create(context.Background(), uuid.New(), &dto.CategoryRequest{Name: name})
		require.Error(t, err)
		assert.Equal(t, apperr.ValidationFailed, apperr.KindOf(err))
	}
}

func TestCategoryCreate_TrimsName(t *testing.T) {
	repo := newFakeCategoryRepo()
	svc := NewCategoryService(repo, testLogger())
	userID := uuid.New()

	category, err := svc.Create(context.Background(), userID, &dto.CategoryRequest{Name: "  Dining  ", Icon: "🍔"})
	require.NoError(t, err)
	assert.Equal(t, "Dining", category.Name)
	assert.Equal(t, userID, category.UserID)
}

func TestCategoryUpdate_AllowsRecasingItself(t *testing.T) {
	repo := newFakeCategoryRepo()
	svc := NewCategoryService(repo, testLogger())
	userID := uuid.New()
	id := uuid.New()

	repo.items[userID] = []models.Category{
		{ID: id, Name: "Travel", UserID: userID, CreatedAt: time.Now()},
	}

	updated, err := svc.Update(context.Background(), userID, id, &dto.CategoryRequest{Name: "TRAVEL"})
	require.NoError(t, err)
	assert.Equal(t, "TRAVEL", updated.Name)
}

func TestCategoryUpdate_DuplicateAgainstOtherRecord(t *testing.T) {
	repo := newFakeCategoryRepo()
	svc := NewCategoryService(repo, testLogger())
	userID := uuid.New()
	id := uuid.New()

	repo.items[userID] = []models.Category{
		{ID: id, Name: "Travel", UserID: userID, CreatedAt: time.Now()},
		{ID: uuid.New(), Name: "Groceries", UserID: userID, CreatedAt: time.Now()},
	}

	_, err := svc.Update(context.Background(), userID, id, &dto.CategoryRequest{Name: "groceries"})
	require.Error(t, err)
	assert.Equal(t, apperr.DuplicateName, apperr.KindOf(err))
}

func TestCategoryUpdate_NotFound(t *testing.T) {
	repo := newFakeCategoryRepo()
	svc := NewCategoryService(repo, testLogger())

	_, err := svc.Update(context.Background(), uuid.New(), uuid.New(), &dto.CategoryRequest{Name: "Dining"})
	require.Error(t, err)
	assert.Equal(t, apperr.NotFound, apperr.KindOf(err))
}

func TestCategoryList_ReadsThroughCache(t *testing.T) {
	repo := newFakeCategoryRepo()
	svc := NewCategoryService(repo, testLogger())
	userID := uuid.New()

	_, err := svc.List(context.Background(), userID)
	require.NoError(t, err)
	_, err = svc.List(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, 1, repo.listCalls, "second List must be served from cache")
}

func TestCategoryMutationsInvalidateCache(t *testing.T) {
	repo := newFakeCategoryRepo()
	svc := NewCategoryService(repo, testLogger())
	userID := uuid.New()
	ctx := context.Background()

	category, err := svc.Create(ctx, userID, &dto.CategoryRequest{Name: "Dining"})
	require.NoError(t, err)

	list, err := svc.List(ctx, userID)
	require.NoError(t, err)
	require.Len(t, list, 1)

	require.NoError(t, svc.Delete(ctx, userID, category.ID))

	list, err = svc.List(ctx, userID)
	require.NoError(t, err)
	assert.Empty(t, list, "List after Delete must not serve the stale collection")
}

func TestCategoryDelete_MissingIDSucceeds(t *testing.T) {
	repo := newFakeCategoryRepo()
	svc := NewCategoryService(repo, testLogger())

	assert.NoError(t, svc.Delete(context.Background(), uuid.New(), uuid.New()))
}
