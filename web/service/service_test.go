package service

import (
	"testing"

	"blogapi/database/model"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         gormlogger.Discard,
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap test db: %v", err)
	}
	// A pool would hand each connection its own empty in-memory database.
	sqlDB.SetMaxOpenConns(1)

	models := []any{
		&model.User{},
		&model.Role{},
		&model.Category{},
		&model.Post{},
		&model.Comment{},
	}
	for _, m := range models {
		if err := db.AutoMigrate(m); err != nil {
			t.Fatalf("migrate %T: %v", m, err)
		}
	}
	return db
}

func seedRoles(t *testing.T, db *gorm.DB) {
	t.Helper()
	for _, name := range []string{model.RoleUser, model.RoleAdmin} {
		if err := db.Create(&model.Role{Name: name}).Error; err != nil {
			t.Fatalf("seed role %s: %v", name, err)
		}
	}
}

func seedCategory(t *testing.T, db *gorm.DB, name string) model.Category {
	t.Helper()
	category := model.Category{Name: name, Description: name + " description"}
	if err := db.Create(&category).Error; err != nil {
		t.Fatalf("seed category: %v", err)
	}
	return category
}

func seedPost(t *testing.T, db *gorm.DB, categoryId int64, title string) model.Post {
	t.Helper()
	post := model.Post{
		Title:       title,
		Description: title + " description",
		Content:     title + " content",
		CategoryId:  categoryId,
	}
	if err := db.Create(&post).Error; err != nil {
		t.Fatalf("seed post: %v", err)
	}
	return post
}

func seedComment(t *testing.T, db *gorm.DB, postId int64, body string) model.Comment {
	t.Helper()
	comment := model.Comment{
		Name:   "commenter",
		Email:  "commenter@example.com",
		Body:   body,
		PostId: postId,
	}
	if err := db.Create(&comment).Error; err != nil {
		t.Fatalf("seed comment: %v", err)
	}
	return comment
}
