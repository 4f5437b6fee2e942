package controller

import (
	"net/http"

	"blogapi/web/entity"
	"blogapi/web/service"

	"github.com/gin-gonic/gin"
)

type CommentController struct {
	svc *service.CommentService
}

// NewCommentController registers the nested comment routes. Every route is
// addressed through the parent post; the service enforces that the comment
// actually belongs to it.
func NewCommentController(g *gin.RouterGroup, svc *service.CommentService) *CommentController {
	ctrl := &CommentController{svc: svc}

	comments := g.Group("/post/:postId/comments")
	{
		comments.POST("", ctrl.create)
		comments.GET("", ctrl.list)
		comments.GET("/:commentId", ctrl.get)
		comments.PUT("/:commentId", ctrl.update)
		comments.DELETE("/:commentId", ctrl.delete)
	}
	return ctrl
}

func (ctrl *CommentController) create(c *gin.Context) {
	postId, ok := pathID(c, "postId")
	if !ok {
		return
	}
	var dto entity.CommentDto
	if !bindJSON(c, &dto) {
		return
	}
	created, err := ctrl.svc.Create(postId, dto)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (ctrl *CommentController) list(c *gin.Context) {
	postId, ok := pathID(c, "postId")
	if !ok {
		return
	}
	dtos, err := ctrl.svc.GetByPost(postId)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dtos)
}

func (ctrl *CommentController) get(c *gin.Context) {
	postId, ok := pathID(c, "postId")
	if !ok {
		return
	}
	commentId, ok := pathID(c, "commentId")
	if !ok {
		return
	}
	dto, err := ctrl.svc.Get(postId, commentId)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto)
}

func (ctrl *CommentController) update(c *gin.Context) {
	postId, ok := pathID(c, "postId")
	if !ok {
		return
	}
	commentId, ok := pathID(c, "commentId")
	if !ok {
		return
	}
	var dto entity.CommentDto
	if !bindJSON(c, &dto) {
		return
	}
	updated, err := ctrl.svc.Update(postId, commentId, dto)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (ctrl *CommentController) delete(c *gin.Context) {
	postId, ok := pathID(c, "postId")
	if !ok {
		return
	}
	commentId, ok := pathID(c, "commentId")
	if !ok {
		return
	}
	if err := ctrl.svc.Delete(postId, commentId); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Comment deleted successfully"})
}
