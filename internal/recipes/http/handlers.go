package http

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/resepkita/go-resep-backend/internal/auth"
	"github.com/resepkita/go-resep-backend/internal/recipes/domain"
	"github.com/resepkita/go-resep-backend/pkg/logger"
)

// RecipeStore is the persistence gateway the handlers talk to.
type RecipeStore interface {
	List(ctx context.Context, search, category string) ([]domain.Recipe, error)
	Get(ctx context.Context, id string) (*domain.Recipe, error)
	Create(ctx context.Context, n domain.NewRecipe) (*domain.Recipe, error)
	GetOwner(ctx context.Context, id string) (string, error)
	Update(ctx context.Context, id string, upd domain.RecipeUpdate) (*domain.Recipe, error)
	Delete(ctx context.Context, id string) error
}

// ObjectStore uploads recipe images and resolves their public URLs.
type ObjectStore interface {
	Upload(ctx context.Context, path, contentType string, data []byte) error
	PublicURL(path string) string
}

type Handler struct {
	store   RecipeStore
	objects ObjectStore
}

func NewHandler(store RecipeStore, objects ObjectStore) *Handler {
	return &Handler{store: store, objects: objects}
}

func (h *Handler) list(c *gin.Context) {
	items, err := h.store.List(c.Request.Context(), c.Query("search"), c.Query("category"))
	if err != nil {
		logger.Sugar.Errorf("list recipes: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list recipes"})
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *Handler) get(c *gin.Context) {
	rec, err := h.store.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
			return
		}
		logger.Sugar.Errorf("get recipe: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get recipe"})
		return
	}
	c.JSON(http.StatusOK, rec)
}

func (h *Handler) create(c *gin.Context) {
	var req createRecipeReq
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Title) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title is required"})
		return
	}

	n := domain.NewRecipe{
		UserID:      auth.UserID(c),
		Title:       req.Title,
		ImageURL:    req.ImageURL,
		Ingredients: req.Ingredients,
		Steps:       req.Steps,
		Category:    req.Category,
	}
	if n.Ingredients == nil {
		n.Ingredients = []string{}
	}
	if n.Steps == nil {
		n.Steps = []string{}
	}
	if n.Category == "" {
		n.Category = domain.DefaultCategory
	}

	rec, err := h.store.Create(c.Request.Context(), n)
	if err != nil {
		logger.Sugar.Errorf("create recipe: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create recipe"})
		return
	}
	c.JSON(http.StatusCreated, rec)
}

func (h *Handler) update(c *gin.Context) {
	id := c.Param("id")

	var req updateRecipeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	// Ownership is checked before the mutation; an absent recipe reports
	// not-found even for non-owners.
	if !h.requireOwner(c, id) {
		return
	}

	rec, err := h.store.Update(c.Request.Context(), id, domain.RecipeUpdate{
		Title:       req.Title,
		ImageURL:    req.ImageURL,
		Ingredients: req.Ingredients,
		Steps:       req.Steps,
		Category:    req.Category,
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
			return
		}
		logger.Sugar.Errorf("update recipe %s: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update recipe"})
		return
	}
	c.JSON(http.StatusOK, rec)
}

func (h *Handler) delete(c *gin.Context) {
	id := c.Param("id")

	if !h.requireOwner(c, id) {
		return
	}

	if err := h.store.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
			return
		}
		logger.Sugar.Errorf("delete recipe %s: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete recipe"})
		return
	}
	c.Status(http.StatusNoContent)
}

// requireOwner loads the recipe owner and short-circuits with 404 or 403.
// Reports true when the caller owns the recipe.
func (h *Handler) requireOwner(c *gin.Context, id string) bool {
	owner, err := h.store.GetOwner(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
			return false
		}
		logger.Sugar.Errorf("load recipe owner %s: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load recipe"})
		return false
	}
	if owner != auth.UserID(c) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not authorized to modify this recipe"})
		return false
	}
	return true
}

func (h *Handler) uploadImage(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unable to read file"})
		return
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unable to read file"})
		return
	}

	ext := "jpg"
	if i := strings.LastIndex(fileHeader.Filename, "."); i >= 0 && i+1 < len(fileHeader.Filename) {
		ext = fileHeader.Filename[i+1:]
	}
	path := auth.UserID(c) + "/" + uuid.New().String() + "." + ext

	contentType := fileHeader.Header.Get("Content-Type")
	if err := h.objects.Upload(c.Request.Context(), path, contentType, data); err != nil {
		logger.Sugar.Errorf("upload image %s: %v", path, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Image upload failed: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": h.objects.PublicURL(path)})
}
