package service

import (
	"errors"
	"fmt"
	"testing"

	"blogapi/web/entity"
)

func TestPostCreate(t *testing.T) {
	db := newTestDB(t)
	svc := &PostService{DB: db}

	category := seedCategory(t, db, "go")

	created, err := svc.Create(entity.PostDto{
		Title:       "hello world",
		Description: "a first post about nothing",
		Content:     "content",
		CategoryId:  category.Id,
	})
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	if created.Id == 0 || created.CategoryId != category.Id {
		t.Errorf("Create() = %+v, expected assigned id under category %d", created, category.Id)
	}

	_, err = svc.Create(entity.PostDto{
		Title:       "orphan",
		Description: "no category to hold this",
		Content:     "content",
		CategoryId:  9999,
	})
	var notFound *NotFoundError
	if !errors.As(err, &notFound) || notFound.Resource != "Category" {
		t.Errorf("Create() error = %v, expected Category NotFoundError", err)
	}
}

func TestPostGetIncludesComments(t *testing.T) {
	db := newTestDB(t)
	svc := &PostService{DB: db}

	category := seedCategory(t, db, "go")
	post := seedPost(t, db, category.Id, "commented post")
	seedComment(t, db, post.Id, "first comment body text here")
	seedComment(t, db, post.Id, "second comment body text here")

	dto, err := svc.Get(post.Id)
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if len(dto.Comments) != 2 {
		t.Errorf("Get() comments = %d, expected 2", len(dto.Comments))
	}

	_, err = svc.Get(9999)
	var notFound *NotFoundError
	if !errors.As(err, &notFound) || notFound.Resource != "Post" {
		t.Errorf("Get() error = %v, expected Post NotFoundError", err)
	}
}

func TestPostUpdate(t *testing.T) {
	db := newTestDB(t)
	svc := &PostService{DB: db}

	category := seedCategory(t, db, "go")
	moved := seedCategory(t, db, "news")
	post := seedPost(t, db, category.Id, "original title")

	updated, err := svc.Update(post.Id, entity.PostDto{
		Title:       "renamed title",
		Description: "renamed description text",
		Content:     "renamed content",
		CategoryId:  moved.Id,
	})
	if err != nil {
		t.Fatalf("Update() error: %v", err)
	}
	if updated.Title != "renamed title" || updated.CategoryId != moved.Id {
		t.Errorf("Update() = %+v, expected rename and move to category %d", updated, moved.Id)
	}

	_, err = svc.Update(post.Id, entity.PostDto{
		Title:       "x",
		Description: "target category is missing",
		Content:     "y",
		CategoryId:  9999,
	})
	var notFound *NotFoundError
	if !errors.As(err, &notFound) || notFound.Resource != "Category" {
		t.Errorf("Update() error = %v, expected Category NotFoundError", err)
	}
}

func TestPostDelete(t *testing.T) {
	db := newTestDB(t)
	svc := &PostService{DB: db}

	category := seedCategory(t, db, "go")
	post := seedPost(t, db, category.Id, "short lived")

	if err := svc.Delete(post.Id); err != nil {
		t.Fatalf("Delete() error: %v", err)
	}
	err := svc.Delete(post.Id)
	var notFound *NotFoundError
	if !errors.As(err, &notFound) {
		t.Errorf("second Delete() error = %v, expected NotFoundError", err)
	}
}

func TestPostListByCategory(t *testing.T) {
	db := newTestDB(t)
	svc := &PostService{DB: db}

	category := seedCategory(t, db, "go")
	other := seedCategory(t, db, "news")
	first := seedPost(t, db, category.Id, "one")
	second := seedPost(t, db, category.Id, "two")
	seedPost(t, db, other.Id, "elsewhere")

	dtos, err := svc.GetByCategory(category.Id)
	if err != nil {
		t.Fatalf("GetByCategory() error: %v", err)
	}
	if len(dtos) != 2 || dtos[0].Id != first.Id || dtos[1].Id != second.Id {
		t.Errorf("GetByCategory() = %+v, expected posts %d then %d", dtos, first.Id, second.Id)
	}

	_, err = svc.GetByCategory(9999)
	var notFound *NotFoundError
	if !errors.As(err, &notFound) || notFound.Resource != "Category" {
		t.Errorf("GetByCategory() error = %v, expected Category NotFoundError", err)
	}
}

func TestPostPaginationWalk(t *testing.T) {
	db := newTestDB(t)
	svc := &PostService{DB: db}

	category := seedCategory(t, db, "go")
	const total = 10
	for i := 0; i < total; i++ {
		seedPost(t, db, category.Id, fmt.Sprintf("post %02d", i))
	}

	// Concatenating all pages reproduces the collection exactly once.
	seen := make(map[int64]bool)
	for page := 0; ; page++ {
		resp, err := svc.GetAll(PageRequest{Page: page, Size: 3, SortBy: "id", SortDir: "asc"})
		if err != nil {
			t.Fatalf("GetAll(page %d) error: %v", page, err)
		}
		if resp.TotalElements != total {
			t.Errorf("page %d TotalElements = %d, expected %d", page, resp.TotalElements, total)
		}
		if resp.TotalPages != 4 {
			t.Errorf("page %d TotalPages = %d, expected 4", page, resp.TotalPages)
		}
		for _, dto := range resp.Content {
			if seen[dto.Id] {
				t.Errorf("post %d appeared on more than one page", dto.Id)
			}
			seen[dto.Id] = true
		}
		if resp.Last {
			if page != 3 {
				t.Errorf("Last reported on page %d, expected page 3", page)
			}
			break
		}
	}
	if len(seen) != total {
		t.Errorf("walk visited %d posts, expected %d", len(seen), total)
	}
}

func TestPostPaginationBeyondLastPage(t *testing.T) {
	db := newTestDB(t)
	svc := &PostService{DB: db}

	category := seedCategory(t, db, "go")
	for i := 0; i < 10; i++ {
		seedPost(t, db, category.Id, fmt.Sprintf("post %02d", i))
	}

	resp, err := svc.GetAll(PageRequest{Page: 5, Size: 5, SortBy: "id", SortDir: "asc"})
	if err != nil {
		t.Fatalf("GetAll() error: %v", err)
	}
	if len(resp.Content) != 0 {
		t.Errorf("Content = %d items, expected empty page", len(resp.Content))
	}
	if resp.TotalElements != 10 || resp.TotalPages != 2 || !resp.Last {
		t.Errorf("totals = {elements: %d, pages: %d, last: %v}, expected {10, 2, true}",
			resp.TotalElements, resp.TotalPages, resp.Last)
	}
}

func TestPostPaginationStableOrder(t *testing.T) {
	db := newTestDB(t)
	svc := &PostService{DB: db}

	category := seedCategory(t, db, "go")
	// All posts share a title so the secondary id order decides.
	for i := 0; i < 6; i++ {
		seedPost(t, db, category.Id, "same title")
	}

	var firstWalk []int64
	for page := 0; page < 3; page++ {
		resp, err := svc.GetAll(PageRequest{Page: page, Size: 2, SortBy: "title", SortDir: "desc"})
		if err != nil {
			t.Fatalf("GetAll(page %d) error: %v", page, err)
		}
		for _, dto := range resp.Content {
			firstWalk = append(firstWalk, dto.Id)
		}
	}

	for i := 1; i < len(firstWalk); i++ {
		if firstWalk[i] <= firstWalk[i-1] {
			t.Fatalf("equal-key walk not id-ordered: %v", firstWalk)
		}
	}

	// A repeated walk sees the identical sequence.
	var secondWalk []int64
	for page := 0; page < 3; page++ {
		resp, err := svc.GetAll(PageRequest{Page: page, Size: 2, SortBy: "title", SortDir: "desc"})
		if err != nil {
			t.Fatalf("repeat GetAll(page %d) error: %v", page, err)
		}
		for _, dto := range resp.Content {
			secondWalk = append(secondWalk, dto.Id)
		}
	}
	if len(firstWalk) != len(secondWalk) {
		t.Fatalf("walk lengths differ: %d vs %d", len(firstWalk), len(secondWalk))
	}
	for i := range firstWalk {
		if firstWalk[i] != secondWalk[i] {
			t.Fatalf("walks diverge at %d: %v vs %v", i, firstWalk, secondWalk)
		}
	}
}

func TestPostSortFieldAllowList(t *testing.T) {
	db := newTestDB(t)
	svc := &PostService{DB: db}

	category := seedCategory(t, db, "go")
	seedPost(t, db, category.Id, "b title")
	seedPost(t, db, category.Id, "a title")

	// An unknown sort field degrades to id order instead of erroring.
	resp, err := svc.GetAll(PageRequest{Page: 0, Size: 10, SortBy: "category_id; --", SortDir: "asc"})
	if err != nil {
		t.Fatalf("GetAll() error: %v", err)
	}
	if len(resp.Content) != 2 || resp.Content[0].Id >= resp.Content[1].Id {
		t.Errorf("fallback order wrong: %+v", resp.Content)
	}

	// A known field sorts by it.
	resp, err = svc.GetAll(PageRequest{Page: 0, Size: 10, SortBy: "title", SortDir: "asc"})
	if err != nil {
		t.Fatalf("GetAll() error: %v", err)
	}
	if resp.Content[0].Title != "a title" {
		t.Errorf("title sort order wrong: %+v", resp.Content)
	}
}
