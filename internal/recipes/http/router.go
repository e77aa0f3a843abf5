package http

import "github.com/gin-gonic/gin"

// Register attaches recipe routes to the given router group. Listing and
// fetching are public; everything else requires a resolved identity.
func (h *Handler) Register(rg *gin.RouterGroup, requireUser gin.HandlerFunc) {
	rg.GET("", h.list)
	rg.GET("/:id", h.get)
	rg.POST("", requireUser, h.create)
	rg.PUT("/:id", requireUser, h.update)
	rg.DELETE("/:id", requireUser, h.delete)
	rg.POST("/upload-image", requireUser, h.uploadImage)
}
