package service

import (
	"errors"
	"net/http"
	"testing"

	"blogapi/web/entity"
)

func TestCategoryCRUD(t *testing.T) {
	db := newTestDB(t)
	svc := &CategoryService{DB: db}

	created, err := svc.Create(entity.CategoryDto{Name: "go", Description: "posts about go"})
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	if created.Id == 0 {
		t.Fatal("Create() did not assign an id")
	}

	got, err := svc.Get(created.Id)
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if got != created {
		t.Errorf("Get() = %+v, expected %+v", got, created)
	}

	updated, err := svc.Update(created.Id, entity.CategoryDto{Name: "golang", Description: "renamed"})
	if err != nil {
		t.Fatalf("Update() error: %v", err)
	}
	if updated.Name != "golang" || updated.Description != "renamed" {
		t.Errorf("Update() = %+v, expected renamed category", updated)
	}

	if err := svc.Delete(created.Id); err != nil {
		t.Fatalf("Delete() error: %v", err)
	}

	_, err = svc.Get(created.Id)
	var notFound *NotFoundError
	if !errors.As(err, &notFound) {
		t.Errorf("Get() after delete error = %v, expected NotFoundError", err)
	}
}

func TestCategoryNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := &CategoryService{DB: db}

	var notFound *NotFoundError

	if _, err := svc.Get(42); !errors.As(err, &notFound) {
		t.Errorf("Get() error = %v, expected NotFoundError", err)
	}
	if _, err := svc.Update(42, entity.CategoryDto{Name: "x"}); !errors.As(err, &notFound) {
		t.Errorf("Update() error = %v, expected NotFoundError", err)
	}
	if err := svc.Delete(42); !errors.As(err, &notFound) {
		t.Errorf("Delete() error = %v, expected NotFoundError", err)
	}
}

func TestCategoryListOrder(t *testing.T) {
	db := newTestDB(t)
	svc := &CategoryService{DB: db}

	first := seedCategory(t, db, "zeta")
	second := seedCategory(t, db, "alpha")

	dtos, err := svc.GetAll()
	if err != nil {
		t.Fatalf("GetAll() error: %v", err)
	}
	if len(dtos) != 2 || dtos[0].Id != first.Id || dtos[1].Id != second.Id {
		t.Errorf("GetAll() = %+v, expected insertion order by id", dtos)
	}
}

func TestCategoryDeleteWithPosts(t *testing.T) {
	db := newTestDB(t)
	svc := &CategoryService{DB: db}

	category := seedCategory(t, db, "go")
	post := seedPost(t, db, category.Id, "a post")

	err := svc.Delete(category.Id)
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("Delete() error = %v, expected *APIError", err)
	}
	if apiErr.Status != http.StatusConflict {
		t.Errorf("Delete() status = %d, expected %d", apiErr.Status, http.StatusConflict)
	}

	// Category survives the rejected delete.
	if _, err := svc.Get(category.Id); err != nil {
		t.Errorf("Get() after rejected delete error: %v", err)
	}

	// Once the post is gone the delete goes through.
	if err := db.Delete(&post).Error; err != nil {
		t.Fatalf("remove post: %v", err)
	}
	if err := svc.Delete(category.Id); err != nil {
		t.Errorf("Delete() after clearing posts error: %v", err)
	}
}
