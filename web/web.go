// Package web provides the HTTP server for the blog API: routing,
// middleware, controllers and background maintenance jobs.
package web

import (
	"context"
	"io"
	"net"
	"net/http"
	"strconv"

	"blogapi/config"
	"blogapi/database/model"
	"blogapi/logger"
	"blogapi/util/common"
	"blogapi/web/controller"
	"blogapi/web/job"
	"blogapi/web/middleware"
	"blogapi/web/service"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"
)

// Server owns the gin engine, the listener and the cron scheduler.
type Server struct {
	httpServer *http.Server
	listener   net.Listener

	auth       *controller.AuthController
	categories *controller.CategoryController
	posts      *controller.PostController
	comments   *controller.CommentController
	ops        *controller.ServerController

	tokenService *service.TokenService
	authService  *service.AuthService

	cron *cron.Cron

	ctx    context.Context
	cancel context.CancelFunc
}

func NewServer() *Server {
	ctx, cancel := context.WithCancel(context.Background())
	return &Server{ctx: ctx, cancel: cancel}
}

// initRouter configures gin, registers middleware and controllers and
// returns the engine. The signing key and token lifetime are loaded here
// once and never mutated afterwards.
func (s *Server) initRouter() (*gin.Engine, error) {
	if config.IsDebug() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.DefaultWriter = io.Discard
		gin.DefaultErrorWriter = io.Discard
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.Default()
	engine.Use(middleware.RequestID())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	s.tokenService = service.NewTokenService(config.GetJWTSecret(), config.GetTokenLifetime())
	s.authService = service.NewAuthService(s.tokenService)

	// Decision table for mutating endpoint classes: category and post
	// mutations require the administrative role. Reads and comment
	// creation stay open.
	adminGuard := []gin.HandlerFunc{
		middleware.AuthRequired(s.tokenService, s.authService),
		middleware.RequireRole(model.RoleAdmin),
	}

	api := engine.Group("/api")
	{
		s.auth = controller.NewAuthController(api, s.authService)
		s.categories = controller.NewCategoryController(api, service.NewCategoryService(), adminGuard...)
		s.posts = controller.NewPostController(api, service.NewPostService(), adminGuard...)
		s.comments = controller.NewCommentController(api, service.NewCommentService())
		s.ops = controller.NewServerController(api, adminGuard...)
	}

	engine.NoRoute(func(c *gin.Context) {
		c.AbortWithStatus(http.StatusNotFound)
	})

	return engine, nil
}

// startTask schedules background maintenance jobs.
func (s *Server) startTask() {
	s.cron.AddJob("@daily", job.NewCheckpointJob())
}

// Start initializes and starts the web server.
func (s *Server) Start() (err error) {
	defer func() {
		if err != nil {
			_ = s.Stop()
		}
	}()

	s.cron = cron.New()
	s.cron.Start()

	engine, err := s.initRouter()
	if err != nil {
		return err
	}

	listenAddr := net.JoinHostPort(config.GetListen(), strconv.Itoa(config.GetPort()))
	listener, err := net.Listen("tcp", listenAddr)
	if err != nil {
		return err
	}
	logger.Info("web server running HTTP on", listener.Addr())

	s.listener = listener
	s.httpServer = &http.Server{Handler: engine}

	go func() {
		defer common.Recover("web server serve loop")
		_ = s.httpServer.Serve(listener)
	}()

	s.startTask()

	return nil
}

// Stop gracefully shuts down the web server and the cron scheduler.
func (s *Server) Stop() error {
	s.cancel()
	if s.cron != nil {
		s.cron.Stop()
	}
	var err1, err2 error
	if s.httpServer != nil {
		err1 = s.httpServer.Shutdown(s.ctx)
	}
	if s.listener != nil {
		err2 = s.listener.Close()
	}
	return common.Combine(err1, err2)
}

// GetCtx returns the server's context.
func (s *Server) GetCtx() context.Context { return s.ctx }
