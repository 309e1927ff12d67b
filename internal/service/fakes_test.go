package service

import (
	"context"
	"sort"
	"sync"

	"spendtrack/internal/apperr"
	"spendtrack/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// In-memory implementations of the repository ports.

type fakeCategoryRepo struct {
	mu          sync.Mutex
	items       map[uuid.UUID][]models.Category
	listCalls   int
	createCalls int
	failCreate  error
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{items: make(map[uuid.UUID][]models.Category)}
}

// hasExactName mirrors the unique index on (user_id, name): exact match only,
// case variants are distinct rows.
func (r *fakeCategoryRepo) hasExactName(userID uuid.UUID, name string) bool {
	for _, c := range r.items[userID] {
		if c.Name == name {
			return true
		}
	}
	return false
}

func (r *fakeCategoryRepo) ListByUser(_ context.Context, userID uuid.UUID) ([]models.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.listCalls++
	out := append([]models.Category(nil), r.items[userID]...)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *fakeCategoryRepo) Create(_ context.Context, category *models.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.createCalls++
	if r.failCreate != nil {
		return r.failCreate
	}
	if r.hasExactName(category.UserID, category.Name) {
		return apperr.New(apperr.DuplicateName, "duplicate category name")
	}
	r.items[category.UserID] = append(r.items[category.UserID], *category)
	return nil
}

func (r *fakeCategoryRepo) CreateBatch(_ context.Context, categories []*models.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.createCalls++
	if r.failCreate != nil {
		return r.failCreate
	}
	// single statement semantics: any collision fails the whole batch
	seen := make(map[string]struct{}, len(categories))
	for _, c := range categories {
		if _, ok := seen[c.Name]; ok {
			return apperr.New(apperr.DuplicateName, "duplicate category name")
		}
		if r.hasExactName(c.UserID, c.Name) {
			return apperr.New(apperr.DuplicateName, "duplicate category name")
		}
		seen[c.Name] = struct{}{}
	}
	for _, c := range categories {
		r.items[c.UserID] = append(r.items[c.UserID], *c)
	}
	return nil
}

func (r *fakeCategoryRepo) Update(_ context.Context, category *models.Category) (*models.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	list := r.items[category.UserID]
	for i := range list {
		if list[i].ID == category.ID {
			list[i].Name = category.Name
			list[i].Icon = category.Icon
			updated := list[i]
			return &updated, nil
		}
	}
	return nil, apperr.New(apperr.NotFound, "category not found")
}

func (r *fakeCategoryRepo) Delete(_ context.Context, id, userID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	list := r.items[userID]
	for i := range list {
		if list[i].ID == id {
			r.items[userID] = append(list[:i], list[i+1:]...)
			return nil
		}
	}
	// deleting a missing id is success
	return nil
}

type fakeExpenseRepo struct {
	mu        sync.Mutex
	items     map[uuid.UUID][]models.Expense
	listCalls int
}

func newFakeExpenseRepo() *fakeExpenseRepo {
	return &fakeExpenseRepo{items: make(map[uuid.UUID][]models.Expense)}
}

func (r *fakeExpenseRepo) ListByUser(_ context.Context, userID uuid.UUID) ([]models.Expense, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.listCalls++
	out := append([]models.Expense(nil), r.items[userID]...)
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

func (r *fakeExpenseRepo) Create(_ context.Context, expense *models.Expense) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[expense.UserID] = append(r.items[expense.UserID], *expense)
	return nil
}

func (r *fakeExpenseRepo) Update(_ context.Context, expense *models.Expense) (*models.Expense, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	list := r.items[expense.UserID]
	for i := range list {
		if list[i].ID == expense.ID {
			created := list[i].CreatedAt
			list[i] = *expense
			list[i].CreatedAt = created
			updated := list[i]
			return &updated, nil
		}
	}
	return nil, apperr.New(apperr.NotFound, "expense not found")
}

func (r *fakeExpenseRepo) Delete(_ context.Context, id, userID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	list := r.items[userID]
	for i := range list {
		if list[i].ID == id {
			r.items[userID] = append(list[:i], list[i+1:]...)
			return nil
		}
	}
	return nil
}

func testLogger() *zap.Logger {
	return zap.NewNop()
}
