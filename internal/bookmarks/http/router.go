package http

import "github.com/gin-gonic/gin"

// Register attaches bookmark routes to the given router group.
// Every route requires a resolved identity.
func (h *Handler) Register(rg *gin.RouterGroup, requireUser gin.HandlerFunc) {
	rg.GET("", requireUser, h.list)
	rg.POST("", requireUser, h.create)
	rg.DELETE("/:recipe_id", requireUser, h.delete)
}
