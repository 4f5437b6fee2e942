package service

import (
	"blogapi/database"
	"blogapi/database/model"
	"blogapi/web/entity"

	"gorm.io/gorm"
)

// postSortFields is the allow-list of sortable post attributes.
var postSortFields = map[string]bool{
	"id":          true,
	"title":       true,
	"description": true,
}

type PostService struct {
	DB *gorm.DB
}

func NewPostService() *PostService {
	return &PostService{DB: database.GetDB()}
}

func toPostDto(p *model.Post) entity.PostDto {
	dto := entity.PostDto{
		Id:          p.Id,
		Title:       p.Title,
		Description: p.Description,
		Content:     p.Content,
		CategoryId:  p.CategoryId,
	}
	for i := range p.Comments {
		dto.Comments = append(dto.Comments, toCommentDto(&p.Comments[i]))
	}
	return dto
}

// Create stores a new post under an existing category.
func (s *PostService) Create(dto entity.PostDto) (entity.PostDto, error) {
	var category model.Category
	if err := s.DB.First(&category, dto.CategoryId).Error; err != nil {
		if database.IsNotFound(err) {
			return entity.PostDto{}, newNotFound("Category", dto.CategoryId)
		}
		return entity.PostDto{}, err
	}

	post := model.Post{
		Title:       dto.Title,
		Description: dto.Description,
		Content:     dto.Content,
		CategoryId:  category.Id,
	}
	if err := s.DB.Create(&post).Error; err != nil {
		return entity.PostDto{}, err
	}
	return toPostDto(&post), nil
}

// GetAll returns one page of the sorted post collection. A page beyond the
// end yields empty content with accurate totals, not an error.
func (s *PostService) GetAll(req PageRequest) (entity.PostResponse, error) {
	req = req.Normalize(postSortFields)

	var total int64
	if err := s.DB.Model(&model.Post{}).Count(&total).Error; err != nil {
		return entity.PostResponse{}, err
	}

	var posts []model.Post
	err := s.DB.Order(req.Order()).Offset(req.Offset()).Limit(req.Size).Find(&posts).Error
	if err != nil {
		return entity.PostResponse{}, err
	}

	content := make([]entity.PostDto, 0, len(posts))
	for i := range posts {
		content = append(content, toPostDto(&posts[i]))
	}
	return entity.PostResponse{
		Content:       content,
		Page:          req.Page,
		Size:          req.Size,
		TotalElements: total,
		TotalPages:    totalPages(total, req.Size),
		Last:          isLastPage(req.Page, total, req.Size),
	}, nil
}

func (s *PostService) Get(id int64) (entity.PostDto, error) {
	var post model.Post
	if err := s.DB.Preload("Comments").First(&post, id).Error; err != nil {
		if database.IsNotFound(err) {
			return entity.PostDto{}, newNotFound("Post", id)
		}
		return entity.PostDto{}, err
	}
	return toPostDto(&post), nil
}

func (s *PostService) Update(id int64, dto entity.PostDto) (entity.PostDto, error) {
	var post model.Post
	if err := s.DB.First(&post, id).Error; err != nil {
		if database.IsNotFound(err) {
			return entity.PostDto{}, newNotFound("Post", id)
		}
		return entity.PostDto{}, err
	}
	var category model.Category
	if err := s.DB.First(&category, dto.CategoryId).Error; err != nil {
		if database.IsNotFound(err) {
			return entity.PostDto{}, newNotFound("Category", dto.CategoryId)
		}
		return entity.PostDto{}, err
	}

	post.Title = dto.Title
	post.Description = dto.Description
	post.Content = dto.Content
	post.CategoryId = category.Id
	if err := s.DB.Save(&post).Error; err != nil {
		return entity.PostDto{}, err
	}
	return toPostDto(&post), nil
}

func (s *PostService) Delete(id int64) error {
	var post model.Post
	if err := s.DB.First(&post, id).Error; err != nil {
		if database.IsNotFound(err) {
			return newNotFound("Post", id)
		}
		return err
	}
	return s.DB.Delete(&post).Error
}

// GetByCategory lists every post of an existing category, ordered by id.
func (s *PostService) GetByCategory(categoryId int64) ([]entity.PostDto, error) {
	var category model.Category
	if err := s.DB.First(&category, categoryId).Error; err != nil {
		if database.IsNotFound(err) {
			return nil, newNotFound("Category", categoryId)
		}
		return nil, err
	}

	var posts []model.Post
	if err := s.DB.Where("category_id = ?", categoryId).Order("id ASC").Find(&posts).Error; err != nil {
		return nil, err
	}
	out := make([]entity.PostDto, 0, len(posts))
	for i := range posts {
		out = append(out, toPostDto(&posts[i]))
	}
	return out, nil
}
