package controller

import (
	"net/http"

	"blogapi/web/entity"
	"blogapi/web/service"

	"github.com/gin-gonic/gin"
)

type PostController struct {
	svc *service.PostService
}

// NewPostController registers the post routes. Mutations sit behind the
// admin guard; listing and reads are open.
func NewPostController(g *gin.RouterGroup, svc *service.PostService, adminGuard ...gin.HandlerFunc) *PostController {
	ctrl := &PostController{svc: svc}

	posts := g.Group("/posts")
	{
		posts.GET("", ctrl.list)
		posts.GET("/:id", ctrl.get)
		posts.GET("/category/:id", ctrl.listByCategory)
	}

	admin := g.Group("/posts", adminGuard...)
	{
		admin.POST("", ctrl.create)
		admin.PUT("/:id", ctrl.update)
		admin.DELETE("/:id", ctrl.delete)
	}
	return ctrl
}

func (ctrl *PostController) create(c *gin.Context) {
	var dto entity.PostDto
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

func (ctrl *PostController) list(c *gin.Context) {
	req := service.PageRequest{
		Page:    queryInt(c, "page", 0),
		Size:    queryInt(c, "size", service.DefaultPageSize),
		SortBy:  c.DefaultQuery("sort-by", "id"),
		SortDir: c.DefaultQuery("sort-dir", "asc"),
	}
	resp, err := ctrl.svc.GetAll(req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (ctrl *PostController) get(c *gin.Context) {
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

func (ctrl *PostController) update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var dto entity.PostDto
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

func (ctrl *PostController) delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := ctrl.svc.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Post deleted successfully"})
}

func (ctrl *PostController) listByCategory(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	dtos, err := ctrl.svc.GetByCategory(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dtos)
}
