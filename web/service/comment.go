package service

import (
	"fmt"
	"net/http"

	"blogapi/database"
	"blogapi/database/model"
	"blogapi/web/entity"

	"gorm.io/gorm"
)

type CommentService struct {
	DB *gorm.DB
}

func NewCommentService() *CommentService {
	return &CommentService{DB: database.GetDB()}
}

func toCommentDto(c *model.Comment) entity.CommentDto {
	return entity.CommentDto{
		Id:    c.Id,
		Name:  c.Name,
		Email: c.Email,
		Body:  c.Body,
	}
}

// Create stores a comment under an existing post. Only the parent lookup is
// needed here; the ownership check applies to reads and mutations of an
// already-addressed comment.
func (s *CommentService) Create(postId int64, dto entity.CommentDto) (entity.CommentDto, error) {
	var post model.Post
	if err := s.DB.First(&post, postId).Error; err != nil {
		if database.IsNotFound(err) {
			return entity.CommentDto{}, newNotFound("Post", postId)
		}
		return entity.CommentDto{}, err
	}

	comment := model.Comment{
		Name:   dto.Name,
		Email:  dto.Email,
		Body:   dto.Body,
		PostId: post.Id,
	}
	if err := s.DB.Create(&comment).Error; err != nil {
		return entity.CommentDto{}, err
	}
	return toCommentDto(&comment), nil
}

func (s *CommentService) GetByPost(postId int64) ([]entity.CommentDto, error) {
	var post model.Post
	if err := s.DB.First(&post, postId).Error; err != nil {
		if database.IsNotFound(err) {
			return nil, newNotFound("Post", postId)
		}
		return nil, err
	}

	var comments []model.Comment
	if err := s.DB.Where("post_id = ?", postId).Order("id ASC").Find(&comments).Error; err != nil {
		return nil, err
	}
	out := make([]entity.CommentDto, 0, len(comments))
	for i := range comments {
		out = append(out, toCommentDto(&comments[i]))
	}
	return out, nil
}

func (s *CommentService) Get(postId, commentId int64) (entity.CommentDto, error) {
	var dto entity.CommentDto
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		comment, err := getComment(tx, postId, commentId)
		if err != nil {
			return err
		}
		dto = toCommentDto(comment)
		return nil
	})
	return dto, err
}

func (s *CommentService) Update(postId, commentId int64, dto entity.CommentDto) (entity.CommentDto, error) {
	var updated entity.CommentDto
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		comment, err := getComment(tx, postId, commentId)
		if err != nil {
			return err
		}
		comment.Name = dto.Name
		comment.Email = dto.Email
		comment.Body = dto.Body
		if err := tx.Save(comment).Error; err != nil {
			return err
		}
		updated = toCommentDto(comment)
		return nil
	})
	return updated, err
}

// Delete is an atomic check-and-delete: the ownership guard and the delete
// share one transaction, so a concurrent parent delete cannot slip between
// them.
func (s *CommentService) Delete(postId, commentId int64) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		comment, err := getComment(tx, postId, commentId)
		if err != nil {
			return err
		}
		return tx.Delete(comment).Error
	})
}

// getComment resolves a comment addressed through a post path. Three steps,
// always in order: parent fetch, child fetch, ownership comparison. A
// comment that exists under a different post is a mismatch, never a
// not-found.
func getComment(tx *gorm.DB, postId, commentId int64) (*model.Comment, error) {
	var post model.Post
	if err := tx.First(&post, postId).Error; err != nil {
		if database.IsNotFound(err) {
			return nil, newNotFound("Post", postId)
		}
		return nil, err
	}

	var comment model.Comment
	if err := tx.First(&comment, commentId).Error; err != nil {
		if database.IsNotFound(err) {
			return nil, newNotFound("Comment", commentId)
		}
		return nil, err
	}

	if comment.PostId != post.Id {
		return nil, &APIError{
			Status:  http.StatusBadRequest,
			Message: fmt.Sprintf("Comment with id %d does not belong to post with id %d", commentId, postId),
		}
	}
	return &comment, nil
}
