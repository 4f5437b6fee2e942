package service

import (
	"net/http"

	"blogapi/database"
	"blogapi/database/model"
	"blogapi/web/entity"

	"gorm.io/gorm"
)

type CategoryService struct {
	DB *gorm.DB
}

func NewCategoryService() *CategoryService {
	return &CategoryService{DB: database.GetDB()}
}

func toCategoryDto(c *model.Category) entity.CategoryDto {
	return entity.CategoryDto{
		Id:          c.Id,
		Name:        c.Name,
		Description: c.Description,
	}
}

func (s *CategoryService) Create(dto entity.CategoryDto) (entity.CategoryDto, error) {
	category := model.Category{
		Name:        dto.Name,
		Description: dto.Description,
	}
	if err := s.DB.Create(&category).Error; err != nil {
		return entity.CategoryDto{}, err
	}
	return toCategoryDto(&category), nil
}

func (s *CategoryService) Get(id int64) (entity.CategoryDto, error) {
	var category model.Category
	if err := s.DB.First(&category, id).Error; err != nil {
		if database.IsNotFound(err) {
			return entity.CategoryDto{}, newNotFound("Category", id)
		}
		return entity.CategoryDto{}, err
	}
	return toCategoryDto(&category), nil
}

func (s *CategoryService) GetAll() ([]entity.CategoryDto, error) {
	var categories []model.Category
	if err := s.DB.Order("id ASC").Find(&categories).Error; err != nil {
		return nil, err
	}
	out := make([]entity.CategoryDto, 0, len(categories))
	for i := range categories {
		out = append(out, toCategoryDto(&categories[i]))
	}
	return out, nil
}

func (s *CategoryService) Update(id int64, dto entity.CategoryDto) (entity.CategoryDto, error) {
	var category model.Category
	if err := s.DB.First(&category, id).Error; err != nil {
		if database.IsNotFound(err) {
			return entity.CategoryDto{}, newNotFound("Category", id)
		}
		return entity.CategoryDto{}, err
	}
	category.Name = dto.Name
	category.Description = dto.Description
	if err := s.DB.Save(&category).Error; err != nil {
		return entity.CategoryDto{}, err
	}
	return toCategoryDto(&category), nil
}

// Delete removes a category. A category that still owns posts is rejected;
// the check and the delete share one transaction.
func (s *CategoryService) Delete(id int64) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var category model.Category
		if err := tx.First(&category, id).Error; err != nil {
			if database.IsNotFound(err) {
				return newNotFound("Category", id)
			}
			return err
		}
		var posts int64
		if err := tx.Model(&model.Post{}).Where("category_id = ?", id).Count(&posts).Error; err != nil {
			return err
		}
		if posts > 0 {
			return &APIError{Status: http.StatusConflict, Message: "Category still has posts; delete or move them first"}
		}
		return tx.Delete(&category).Error
	})
}
