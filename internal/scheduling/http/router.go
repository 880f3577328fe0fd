package http

import "github.com/gin-gonic/gin"

func (h *Handler) Register(r gin.IRouter) {
	r.POST("/scheduling/convert", h.Convert)
}
