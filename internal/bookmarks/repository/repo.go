package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"github.com/resepkita/go-resep-backend/internal/bookmarks/domain"
)

// BookmarkRepository provides persistence operations for saved recipes.
type BookmarkRepository struct {
	db *sql.DB
}

func New(db *sql.DB) *BookmarkRepository {
	return &BookmarkRepository{db: db}
}

// List returns the user's bookmarks joined with full recipe data,
// newest save first.
func (r *BookmarkRepository) List(ctx context.Context, userID string) ([]domain.SavedRecipe, error) {
	const q = `
SELECT b.id, b.saved_at, b.recipe_id,
       r.id, r.user_id, r.title, r.image_url, r.ingredients, r.steps, r.category, r.created_at
FROM saved_recipes b
JOIN recipes r ON r.id = b.recipe_id
WHERE b.user_id = $1
ORDER BY b.saved_at DESC;
`
	rows, err := r.db.QueryContext(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.SavedRecipe, 0, 16)
	for rows.Next() {
		var s domain.SavedRecipe
		var imageURL sql.NullString
		var ingredients, steps pq.StringArray

		err := rows.Scan(&s.ID, &s.SavedAt, &s.RecipeID,
			&s.Recipe.ID, &s.Recipe.UserID, &s.Recipe.Title, &imageURL,
			&ingredients, &steps, &s.Recipe.Category, &s.Recipe.CreatedAt)
		if err != nil {
			return nil, err
		}

		if imageURL.Valid {
			s.Recipe.ImageURL = &imageURL.String
		}
		s.Recipe.Ingredients = []string(ingredients)
		if s.Recipe.Ingredients == nil {
			s.Recipe.Ingredients = []string{}
		}
		s.Recipe.Steps = []string(steps)
		if s.Recipe.Steps == nil {
			s.Recipe.Steps = []string{}
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Create saves a (user, recipe) pair. The target recipe must exist.
// Only a true unique violation maps to ErrAlreadyBookmarked; any other
// insert failure is surfaced as-is.
func (r *BookmarkRepository) Create(ctx context.Context, userID, recipeID string) (*domain.Bookmark, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		"SELECT EXISTS (SELECT 1 FROM recipes WHERE id = $1)", recipeID).Scan(&exists)
	if err != nil {
		if isInvalidID(err) {
			return nil, domain.ErrRecipeNotFound
		}
		return nil, err
	}
	if !exists {
		return nil, domain.ErrRecipeNotFound
	}

	const q = `
INSERT INTO saved_recipes (user_id, recipe_id)
VALUES ($1, $2)
RETURNING id, user_id, recipe_id, saved_at;
`
	var b domain.Bookmark
	err = r.db.QueryRowContext(ctx, q, userID, recipeID).
		Scan(&b.ID, &b.UserID, &b.RecipeID, &b.SavedAt)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505": // unique_violation on (user_id, recipe_id)
				return nil, domain.ErrAlreadyBookmarked
			case "23503": // recipe deleted between the existence check and the insert
				return nil, domain.ErrRecipeNotFound
			}
		}
		return nil, err
	}
	return &b, nil
}

// Delete removes the (user, recipe) pair. Absence of a matching row is
// not an error.
func (r *BookmarkRepository) Delete(ctx context.Context, userID, recipeID string) error {
	_, err := r.db.ExecContext(ctx,
		"DELETE FROM saved_recipes WHERE user_id = $1 AND recipe_id = $2", userID, recipeID)
	if err != nil && isInvalidID(err) {
		// a malformed recipe id cannot match anything; still idempotent
		return nil
	}
	return err
}

func isInvalidID(err error) bool {
	var pgErr *pq.Error
	return errors.As(err, &pgErr) && pgErr.Code == "22P02"
}
