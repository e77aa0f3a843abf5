package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"

	"github.com/resepkita/go-resep-backend/internal/recipes/domain"
)

const recipeColumns = "id, user_id, title, image_url, ingredients, steps, category, created_at"

// RecipeRepository provides persistence operations for recipes.
type RecipeRepository struct {
	db *sql.DB
}

func New(db *sql.DB) *RecipeRepository {
	return &RecipeRepository{db: db}
}

// List returns recipes newest first, optionally filtered by a
// case-insensitive title substring and an exact category.
func (r *RecipeRepository) List(ctx context.Context, search, category string) ([]domain.Recipe, error) {
	q := "SELECT " + recipeColumns + " FROM recipes"

	var conds []string
	var args []interface{}
	if search != "" {
		args = append(args, "%"+search+"%")
		conds = append(conds, fmt.Sprintf("title ILIKE $%d", len(args)))
	}
	if category != "" {
		args = append(args, category)
		conds = append(conds, fmt.Sprintf("category = $%d", len(args)))
	}
	if len(conds) > 0 {
		q += " WHERE " + strings.Join(conds, " AND ")
	}
	q += " ORDER BY created_at DESC"

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.Recipe, 0, 16)
	for rows.Next() {
		rec, err := scanRecipe(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Get returns the recipe with the given id, or domain.ErrNotFound.
func (r *RecipeRepository) Get(ctx context.Context, id string) (*domain.Recipe, error) {
	const q = "SELECT " + recipeColumns + " FROM recipes WHERE id = $1"
	rec, err := scanRecipe(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		if isNotFound(err) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return rec, nil
}

// Create inserts a new recipe owned by n.UserID.
func (r *RecipeRepository) Create(ctx context.Context, n domain.NewRecipe) (*domain.Recipe, error) {
	const q = `
INSERT INTO recipes (user_id, title, image_url, ingredients, steps, category)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING ` + recipeColumns + ";"

	rec, err := scanRecipe(r.db.QueryRowContext(ctx, q,
		n.UserID, n.Title, n.ImageURL,
		pq.Array(n.Ingredients), pq.Array(n.Steps), n.Category))
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// GetOwner returns the owning user id for a recipe, or domain.ErrNotFound.
func (r *RecipeRepository) GetOwner(ctx context.Context, id string) (string, error) {
	const q = "SELECT user_id FROM recipes WHERE id = $1"
	var owner string
	if err := r.db.QueryRowContext(ctx, q, id).Scan(&owner); err != nil {
		if isNotFound(err) {
			return "", domain.ErrNotFound
		}
		return "", err
	}
	return owner, nil
}

// Update applies the non-nil fields of upd and returns the resulting row.
// An update with no fields set returns the stored record unchanged.
func (r *RecipeRepository) Update(ctx context.Context, id string, upd domain.RecipeUpdate) (*domain.Recipe, error) {
	if upd.Empty() {
		return r.Get(ctx, id)
	}

	var sets []string
	var args []interface{}
	add := func(col string, val interface{}) {
		args = append(args, val)
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
	}
	if upd.Title != nil {
		add("title", *upd.Title)
	}
	if upd.ImageURL != nil {
		add("image_url", *upd.ImageURL)
	}
	if upd.Ingredients != nil {
		add("ingredients", pq.Array(*upd.Ingredients))
	}
	if upd.Steps != nil {
		add("steps", pq.Array(*upd.Steps))
	}
	if upd.Category != nil {
		add("category", *upd.Category)
	}

	args = append(args, id)
	q := fmt.Sprintf("UPDATE recipes SET %s WHERE id = $%d RETURNING %s",
		strings.Join(sets, ", "), len(args), recipeColumns)

	rec, err := scanRecipe(r.db.QueryRowContext(ctx, q, args...))
	if err != nil {
		if isNotFound(err) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return rec, nil
}

// Delete removes the recipe. The ownership check happens before this call;
// a row that vanished in between is reported as not found.
func (r *RecipeRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM recipes WHERE id = $1", id)
	if err != nil {
		if isNotFound(err) {
			return domain.ErrNotFound
		}
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanRecipe(row rowScanner) (*domain.Recipe, error) {
	var rec domain.Recipe
	var imageURL sql.NullString
	var ingredients, steps pq.StringArray

	err := row.Scan(&rec.ID, &rec.UserID, &rec.Title, &imageURL,
		&ingredients, &steps, &rec.Category, &rec.CreatedAt)
	if err != nil {
		return nil, err
	}

	if imageURL.Valid {
		rec.ImageURL = &imageURL.String
	}
	rec.Ingredients = []string(ingredients)
	if rec.Ingredients == nil {
		rec.Ingredients = []string{}
	}
	rec.Steps = []string(steps)
	if rec.Steps == nil {
		rec.Steps = []string{}
	}
	return &rec, nil
}

// isNotFound treats a malformed uuid literal (22P02) the same as an absent
// row: the referenced recipe does not exist.
func isNotFound(err error) bool {
	if errors.Is(err, sql.ErrNoRows) {
		return true
	}
	var pgErr *pq.Error
	return errors.As(err, &pgErr) && pgErr.Code == "22P02"
}
