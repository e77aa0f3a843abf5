package bootstrap

import (
	"database/sql"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/resepkita/go-resep-backend/config"
	httpapi "github.com/resepkita/go-resep-backend/internal/api/http"
	"github.com/resepkita/go-resep-backend/internal/auth"
	"github.com/resepkita/go-resep-backend/internal/auth/middleware"
	bookmarksrepo "github.com/resepkita/go-resep-backend/internal/bookmarks/repository"
	chathttp "github.com/resepkita/go-resep-backend/internal/chat/http"
	"github.com/resepkita/go-resep-backend/internal/chat/llm"
	chatservice "github.com/resepkita/go-resep-backend/internal/chat/service"
	recipesrepo "github.com/resepkita/go-resep-backend/internal/recipes/repository"
	"github.com/resepkita/go-resep-backend/internal/storage/supabase"

	bookmarkshttp "github.com/resepkita/go-resep-backend/internal/bookmarks/http"
	recipeshttp "github.com/resepkita/go-resep-backend/internal/recipes/http"
)

type RouterDeps struct {
	ServiceName string
	Cfg         *config.Config
	DB          *sql.DB
}

func SetGinMode(env string) {
	if env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     dep.Cfg.Server.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Cfg.App.Version, dep.DB)
	healthHandler.RegisterRoutes(r)

	authClient := auth.NewClient(dep.Cfg.Supabase.URL, dep.Cfg.Supabase.ServiceRoleKey)
	requireUser := middleware.RequireUser(authClient)

	objects := supabase.NewClient(dep.Cfg.Supabase.URL, dep.Cfg.Supabase.ServiceRoleKey, dep.Cfg.Supabase.StorageBucket)
	groq := llm.NewGroq(dep.Cfg.Groq.BaseURL, dep.Cfg.Groq.APIKey, dep.Cfg.Groq.Model)

	api := r.Group("/api")

	recipesHandler := recipeshttp.NewHandler(recipesrepo.New(dep.DB), objects)
	recipesHandler.Register(api.Group("/recipes"), requireUser)

	bookmarksHandler := bookmarkshttp.NewHandler(bookmarksrepo.New(dep.DB))
	bookmarksHandler.Register(api.Group("/bookmarks"), requireUser)

	chatHandler := chathttp.NewHandler(chatservice.New(groq))
	chatHandler.Register(api.Group("/chat"))

	return r
}
