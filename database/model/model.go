package model

// Role names are reference data seeded at startup.
const (
	RoleUser  = "ROLE_USER"
	RoleAdmin = "ROLE_ADMIN"
)

type User struct {
	Id           int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	Name         string `json:"name"`
	Username     string `json:"username" gorm:"uniqueIndex;not null"`
	Email        string `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash string `json:"-" gorm:"column:password_hash;not null"`
	Roles        []Role `json:"roles" gorm:"many2many:user_roles"`
}

// Role is a named permission grant shared by reference across users.
type Role struct {
	Id   int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	Name string `json:"name" gorm:"uniqueIndex;not null"`
}

type Category struct {
	Id          int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	Name        string `json:"name" gorm:"not null"`
	Description string `json:"description"`
	Posts       []Post `json:"-" gorm:"foreignKey:CategoryId"`
}

type Post struct {
	Id          int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Title       string    `json:"title" gorm:"not null"`
	Description string    `json:"description"`
	Content     string    `json:"content"`
	CategoryId  int64     `json:"categoryId" gorm:"not null;index"`
	Comments    []Comment `json:"-" gorm:"foreignKey:PostId"`
}

type Comment struct {
	Id     int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	Name   string `json:"name" gorm:"not null"`
	Email  string `json:"email" gorm:"not null"`
	Body   string `json:"body" gorm:"not null"`
	PostId int64  `json:"postId" gorm:"not null;index"`
}
