package http

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/resepkita/go-resep-backend/internal/auth"
	"github.com/resepkita/go-resep-backend/internal/bookmarks/domain"
	"github.com/resepkita/go-resep-backend/pkg/logger"
)

// BookmarkStore is the persistence gateway the handlers talk to.
type BookmarkStore interface {
	List(ctx context.Context, userID string) ([]domain.SavedRecipe, error)
	Create(ctx context.Context, userID, recipeID string) (*domain.Bookmark, error)
	Delete(ctx context.Context, userID, recipeID string) error
}

type Handler struct {
	store BookmarkStore
}

func NewHandler(store BookmarkStore) *Handler {
	return &Handler{store: store}
}

type createBookmarkReq struct {
	RecipeID string `json:"recipe_id"`
}

func (h *Handler) list(c *gin.Context) {
	items, err := h.store.List(c.Request.Context(), auth.UserID(c))
	if err != nil {
		logger.Sugar.Errorf("list bookmarks: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list bookmarks"})
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *Handler) create(c *gin.Context) {
	var req createBookmarkReq
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.RecipeID) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "recipe_id is required"})
		return
	}

	b, err := h.store.Create(c.Request.Context(), auth.UserID(c), req.RecipeID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecipeNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
		case errors.Is(err, domain.ErrAlreadyBookmarked):
			c.JSON(http.StatusConflict, gin.H{"error": "Recipe already bookmarked"})
		default:
			logger.Sugar.Errorf("create bookmark: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save bookmark"})
		}
		return
	}
	c.JSON(http.StatusCreated, b)
}

func (h *Handler) delete(c *gin.Context) {
	if err := h.store.Delete(c.Request.Context(), auth.UserID(c), c.Param("recipe_id")); err != nil {
		logger.Sugar.Errorf("delete bookmark: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to remove bookmark"})
		return
	}
	c.Status(http.StatusNoContent)
}
