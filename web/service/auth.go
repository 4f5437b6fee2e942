package service

import (
	"net/http"

	"blogapi/database"
	"blogapi/database/model"
	"blogapi/util/crypto"

	"gorm.io/gorm"
)

// AuthService verifies credentials against the user store and registers new
// accounts. Successful logins are turned into session tokens by the token
// service.
type AuthService struct {
	DB     *gorm.DB
	Tokens *TokenService
}

func NewAuthService(tokens *TokenService) *AuthService {
	return &AuthService{DB: database.GetDB(), Tokens: tokens}
}

// Login accepts a username or an email as the identifier. Any lookup miss
// or hash mismatch fails uniformly with ErrInvalidCredentials.
func (s *AuthService) Login(usernameOrEmail, password string) (string, error) {
	var u model.User
	err := s.DB.Where("username = ? OR email = ?", usernameOrEmail, usernameOrEmail).First(&u).Error
	if err != nil {
		if database.IsNotFound(err) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}
	if !crypto.CheckPasswordHash(u.PasswordHash, password) {
		return "", ErrInvalidCredentials
	}
	return s.Tokens.Issue(u.Username)
}

// Register creates a user with the default role. Username and email are
// checked independently so the caller learns which one is taken.
func (s *AuthService) Register(name, username, email, password string) error {
	taken, err := s.exists("username = ?", username)
	if err != nil {
		return err
	}
	if taken {
		return &APIError{Status: http.StatusBadRequest, Message: "Username is already taken"}
	}

	taken, err = s.exists("email = ?", email)
	if err != nil {
		return err
	}
	if taken {
		return &APIError{Status: http.StatusBadRequest, Message: "Email is already taken"}
	}

	hash, err := crypto.HashPasswordAsBcrypt(password)
	if err != nil {
		return err
	}

	var role model.Role
	if err := s.DB.Where("name = ?", model.RoleUser).First(&role).Error; err != nil {
		if database.IsNotFound(err) {
			return ErrDefaultRoleMissing
		}
		return err
	}

	user := &model.User{
		Name:         name,
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		Roles:        []model.Role{role},
	}
	if err := s.DB.Create(user).Error; err != nil {
		// Lost a race with a concurrent registration; the unique indexes
		// keep the store consistent.
		if database.IsDuplicate(err) {
			return &APIError{Status: http.StatusBadRequest, Message: "Username or email is already taken"}
		}
		return err
	}
	return nil
}

// GetPrincipal loads the user behind a verified token subject, roles
// included.
func (s *AuthService) GetPrincipal(username string) (*model.User, error) {
	var u model.User
	err := s.DB.Preload("Roles").Where("username = ?", username).First(&u).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *AuthService) exists(query string, arg any) (bool, error) {
	var count int64
	err := s.DB.Model(&model.User{}).Where(query, arg).Count(&count).Error
	return count > 0, err
}
