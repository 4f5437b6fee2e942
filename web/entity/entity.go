// Package entity defines the request/response shapes of the blog API.
package entity

import (
	"time"
)

// ErrorDetails is the generic error body returned for domain errors.
type ErrorDetails struct {
	Timestamp time.Time `json:"timestamp"`
	Message   string    `json:"message"`
	Path      string    `json:"path"`
}

type LoginRequest struct {
	UsernameOrEmail string `json:"usernameOrEmail" binding:"required"`
	Password        string `json:"password" binding:"required"`
}

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type TokenResponse struct {
	AccessToken string `json:"accessToken"`
	TokenType   string `json:"tokenType"`
}

type CategoryDto struct {
	Id          int64  `json:"id"`
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

type PostDto struct {
	Id          int64        `json:"id"`
	Title       string       `json:"title" binding:"required,min=2"`
	Description string       `json:"description" binding:"required,min=10"`
	Content     string       `json:"content" binding:"required"`
	CategoryId  int64        `json:"categoryId" binding:"required"`
	Comments    []CommentDto `json:"comments,omitempty"`
}

type CommentDto struct {
	Id    int64  `json:"id"`
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
	Body  string `json:"body" binding:"required,min=10"`
}

// PostResponse is the paginated envelope for post listings.
type PostResponse struct {
	Content       []PostDto `json:"content"`
	Page          int       `json:"page"`
	Size          int       `json:"size"`
	TotalElements int64     `json:"totalElements"`
	TotalPages    int       `json:"totalPages"`
	Last          bool      `json:"last"`
}
