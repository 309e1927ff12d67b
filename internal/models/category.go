package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DefaultCategoryIcon is used when a category has no icon and when an
// expense references a category that no longer exists.
const DefaultCategoryIcon = "📊"

var ErrEmptyCategoryName = errors.New("category name cannot be empty")

type Category struct {
	ID        uuid.UUID `db:"id"`
	Name      string    `db:"name"`
	Icon      string    `db:"icon"`
	UserID    uuid.UUID `db:"user_id"`
	CreatedAt time.Time `db:"created_at"`
}

func (c *Category) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return ErrEmptyCategoryName
	}
	return nil
}

func (c *Category) DisplayIcon() string {
	if c.Icon == "" {
		return DefaultCategoryIcon
	}
	return c.Icon
}
