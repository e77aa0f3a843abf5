package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/resepkita/go-resep-backend/internal/auth"
	"github.com/resepkita/go-resep-backend/internal/bookmarks/domain"
	"github.com/resepkita/go-resep-backend/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.Init()
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

type fakeStore struct {
	createErr error
	deleted   [][2]string
}

func (f *fakeStore) List(_ context.Context, userID string) ([]domain.SavedRecipe, error) {
	return []domain.SavedRecipe{
		{ID: "b1", RecipeID: "r1", SavedAt: time.Now()},
	}, nil
}

func (f *fakeStore) Create(_ context.Context, userID, recipeID string) (*domain.Bookmark, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	return &domain.Bookmark{ID: "b1", UserID: userID, RecipeID: recipeID, SavedAt: time.Now()}, nil
}

func (f *fakeStore) Delete(_ context.Context, userID, recipeID string) error {
	f.deleted = append(f.deleted, [2]string{userID, recipeID})
	return nil
}

func asUser(userID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(auth.CtxUserID, userID)
		c.Next()
	}
}

func newRouter(store *fakeStore) *gin.Engine {
	r := gin.New()
	NewHandler(store).Register(r.Group("/api/bookmarks"), asUser("u1"))
	return r
}

func postBookmark(r *gin.Engine, recipeID string) *httptest.ResponseRecorder {
	body, _ := json.Marshal(map[string]string{"recipe_id": recipeID})
	req := httptest.NewRequest("POST", "/api/bookmarks", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func TestList(t *testing.T) {
	rr := httptest.NewRecorder()
	newRouter(&fakeStore{}).ServeHTTP(rr, httptest.NewRequest("GET", "/api/bookmarks", nil))

	require.Equal(t, http.StatusOK, rr.Code)

	var items []domain.SavedRecipe
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &items))
	require.Len(t, items, 1)
	assert.Equal(t, "r1", items[0].RecipeID)
}

func TestCreate(t *testing.T) {
	rr := postBookmark(newRouter(&fakeStore{}), "r1")

	require.Equal(t, http.StatusCreated, rr.Code)

	var b domain.Bookmark
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &b))
	assert.Equal(t, "u1", b.UserID)
	assert.Equal(t, "r1", b.RecipeID)
}

func TestCreate_RecipeMissing(t *testing.T) {
	rr := postBookmark(newRouter(&fakeStore{createErr: domain.ErrRecipeNotFound}), "gone")
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestCreate_Duplicate(t *testing.T) {
	rr := postBookmark(newRouter(&fakeStore{createErr: domain.ErrAlreadyBookmarked}), "r1")
	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Contains(t, rr.Body.String(), "already bookmarked")
}

func TestCreate_GenericFailureIsNotConflict(t *testing.T) {
	rr := postBookmark(newRouter(&fakeStore{createErr: errors.New("connection reset")}), "r1")
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestCreate_MissingRecipeID(t *testing.T) {
	rr := postBookmark(newRouter(&fakeStore{}), "")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestDelete(t *testing.T) {
	store := &fakeStore{}
	r := newRouter(store)

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest("DELETE", "/api/bookmarks/r1", nil))

	assert.Equal(t, http.StatusNoContent, rr.Code)
	require.Len(t, store.deleted, 1)
	assert.Equal(t, [2]string{"u1", "r1"}, store.deleted[0])
}
