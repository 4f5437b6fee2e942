package controller

import (
	"net/http"

	"blogapi/web/entity"
	"blogapi/web/service"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	svc *service.AuthService
}

func NewAuthController(g *gin.RouterGroup, svc *service.AuthService) *AuthController {
	a := &AuthController{svc: svc}

	auth := g.Group("/auth")
	{
		auth.POST("/login", a.login)
		auth.POST("/register", a.register)
	}
	return a
}

func (a *AuthController) login(c *gin.Context) {
	var req entity.LoginRequest
	if !bindJSON(c, &req) {
		return
	}
	token, err := a.svc.Login(req.UsernameOrEmail, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entity.TokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
	})
}

func (a *AuthController) register(c *gin.Context) {
	var req entity.RegisterRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := a.svc.Register(req.Name, req.Username, req.Email, req.Password); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "User registered successfully"})
}
