package domain

import (
	"errors"
	"time"
)

// Recipe is a published recipe. It is owned exclusively by the user that
// created it; only the owner may update or delete it.
type Recipe struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Title       string    `json:"title"`
	ImageURL    *string   `json:"image_url"`
	Ingredients []string  `json:"ingredients"`
	Steps       []string  `json:"steps"`
	Category    string    `json:"category"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewRecipe carries the fields accepted on create.
type NewRecipe struct {
	UserID      string
	Title       string
	ImageURL    *string
	Ingredients []string
	Steps       []string
	Category    string
}

// RecipeUpdate is a partial update; nil fields are left unchanged.
type RecipeUpdate struct {
	Title       *string
	ImageURL    *string
	Ingredients *[]string
	Steps       *[]string
	Category    *string
}

// Empty reports whether the update would change nothing.
func (u RecipeUpdate) Empty() bool {
	return u.Title == nil && u.ImageURL == nil && u.Ingredients == nil &&
		u.Steps == nil && u.Category == nil
}

var (
	ErrNotFound = errors.New("recipe not found")
)

// DefaultCategory is applied when a recipe is created without a category.
const DefaultCategory = "Umum"
