package domain

import (
	"errors"
	"time"

	recipes "github.com/resepkita/go-resep-backend/internal/recipes/domain"
)

// Bookmark is a (user, recipe) pair created on explicit save. The pair is
// unique; the database constraint is the single source of that guarantee.
type Bookmark struct {
	ID       string    `json:"id"`
	UserID   string    `json:"user_id"`
	RecipeID string    `json:"recipe_id"`
	SavedAt  time.Time `json:"saved_at"`
}

// SavedRecipe is a bookmark joined with its full recipe row, as returned
// by list.
type SavedRecipe struct {
	ID       string         `json:"id"`
	SavedAt  time.Time      `json:"saved_at"`
	RecipeID string         `json:"recipe_id"`
	Recipe   recipes.Recipe `json:"recipe"`
}

var (
	ErrRecipeNotFound    = errors.New("recipe not found")
	ErrAlreadyBookmarked = errors.New("recipe already bookmarked")
)
