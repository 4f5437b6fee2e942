package controller

import (
	"net/http"

	"blogapi/web/entity"
	"blogapi/web/service"

	"github.com/gin-gonic/gin"
)

type CategoryController struct {
	svc *service.CategoryService
}

// NewCategoryController registers the category routes. Mutations sit behind
// the admin guard; reads are open.
func NewCategoryController(g *gin.RouterGroup, svc *service.CategoryService, adminGuard ...gin.HandlerFunc) *CategoryController {
	ctrl := &CategoryController{svc: svc}

	categories := g.Group("/categories")
	{
		categories.GET("", ctrl.list)
		categories.GET("/:id", ctrl.get)
	}

	admin := g.Group("/categories", adminGuard...)
	{
		admin.POST("", ctrl.create)
		admin.PUT("/:id", ctrl.update)
		admin.DELETE("/:id", ctrl.delete)
	}
	return ctrl
}

func (ctrl *CategoryController) create(c *gin.Context) {
	var dto entity.CategoryDto
	if !bindJSON(c, &dto) {
		return
	}
	created, err := ctrl.svc.Create(dto)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (ctrl *CategoryController) get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	dto, err := ctrl.svc.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto)
}

func (ctrl *CategoryController) list(c *gin.Context) {
	dtos, err := ctrl.svc.GetAll()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dtos)
}

func (ctrl *CategoryController) update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var dto entity.CategoryDto
	if !bindJSON(c, &dto) {
		return
	}
	updated, err := ctrl.svc.Update(id, dto)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (ctrl *CategoryController) delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := ctrl.svc.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
