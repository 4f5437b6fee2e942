package controller

import (
	"net/http"

	"blogapi/config"
	"blogapi/logger"

	"github.com/gin-gonic/gin"
)

type ServerController struct{}

// NewServerController registers operational endpoints: a liveness probe and
// an admin-only view of the recent log buffer.
func NewServerController(g *gin.RouterGroup, adminGuard ...gin.HandlerFunc) *ServerController {
	ctrl := &ServerController{}

	g.GET("/healthz", ctrl.healthz)

	admin := g.Group("/admin", adminGuard...)
	{
		admin.GET("/logs", ctrl.logs)
	}
	return ctrl
}

func (ctrl *ServerController) healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"name":    config.GetName(),
		"version": config.GetVersion(),
	})
}

func (ctrl *ServerController) logs(c *gin.Context) {
	count := queryInt(c, "count", 50)
	level := c.DefaultQuery("level", "info")
	c.JSON(http.StatusOK, logger.GetLogs(count, level))
}
