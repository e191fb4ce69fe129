// Package router builds the gin engine and its route table.
package router

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"portfolio_backend/internal/app/di"
	"portfolio_backend/internal/platform/apperror"
	"portfolio_backend/internal/platform/http/handler"
	"portfolio_backend/internal/platform/http/response"
)

// Options configures the cross-cutting middleware.
type Options struct {
	// FrontendURL is the origin allowed to make credentialed cross-origin requests.
	FrontendURL string
	// BodyLimit is the maximum request body size in bytes. Zero disables the limit.
	BodyLimit int64
}

// NewRouter mounts every endpoint. Reads are public; writes to portfolio content
// and user lookup pass through the authentication gate.
func NewRouter(opts Options, h *di.Handlers) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		response.Error(c, apperror.Internal(fmt.Errorf("panic: %v", recovered)))
	}))
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{opts.FrontendURL},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	if opts.BodyLimit > 0 {
		r.Use(bodyLimit(opts.BodyLimit))
	}

	r.NoRoute(func(c *gin.Context) {
		response.Error(c, apperror.ErrRouteNotFound)
	})

	api := r.Group("/api")
	requireAuth := h.Gate.Required()

	// liveness
	api.GET("/health", handler.Health)
	api.HEAD("/health", handler.Health)
	api.OPTIONS("/health", handler.Health)

	auth := api.Group("/auth")
	{
		auth.POST("/register", h.Auth.Register)
		auth.POST("/login", h.Auth.Login)
	}
	api.GET("/users/:user_id", requireAuth, h.Auth.GetUser)

	portfolio := api.Group("/portfolio")
	{
		portfolio.GET("", h.Projects.List)
		portfolio.GET("/:project_id", h.Projects.Get)
		portfolio.POST("", requireAuth, h.Projects.Create)
		portfolio.PATCH("/:project_id", requireAuth, h.Projects.Update)
		portfolio.DELETE("/:project_id", requireAuth, h.Projects.Delete)
	}

	testimonials := api.Group("/testimonials")
	{
		testimonials.GET("", h.Testimonials.List)
		testimonials.GET("/:testimonial_id", h.Testimonials.Get)
		testimonials.POST("", requireAuth, h.Testimonials.Create)
		testimonials.PATCH("/:testimonial_id", requireAuth, h.Testimonials.Update)
		testimonials.DELETE("/:testimonial_id", requireAuth, h.Testimonials.Delete)
	}

	services := api.Group("/services")
	{
		services.GET("", h.Services.List)
		services.GET("/:service_id", h.Services.Get)
		services.POST("", requireAuth, h.Services.Create)
		services.PATCH("/:service_id", requireAuth, h.Services.Update)
		services.DELETE("/:service_id", requireAuth, h.Services.Delete)
	}

	blog := api.Group("/blog")
	{
		blog.GET("", h.Blog.List)
		blog.GET("/:post_slug", h.Blog.Get)
		blog.POST("", requireAuth, h.Blog.Create)
		blog.PATCH("/:post_slug", requireAuth, h.Blog.Update)
		blog.DELETE("/:post_slug", requireAuth, h.Blog.Delete)
	}

	api.POST("/contact", h.Contact.Submit)

	return r
}

// bodyLimit rejects declared oversize bodies up front and caps the rest while they are read.
func bodyLimit(limit int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength > limit {
			response.Error(c, apperror.ErrPayloadTooLarge)
			return
		}
		if c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit)
		}
		c.Next()
	}
}
