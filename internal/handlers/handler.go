package handlers

import (
	"time"

	"todo_backend/internal/logger"
	"todo_backend/internal/metrics"
	"todo_backend/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
	metrics  *metrics.Metrics

	corsOrigins  []string
	protectTodos bool
}

type Option func(*Handler)

// WithMetrics enables request/auth metrics and exposes GET /metrics.
func WithMetrics(m *metrics.Metrics) Option {
	return func(h *Handler) { h.metrics = m }
}

// WithCORSOrigins enables CORS for the given origins. "*" allows any origin.
func WithCORSOrigins(origins []string) Option {
	return func(h *Handler) { h.corsOrigins = origins }
}

// WithProtectedTodos puts the todo routes behind the bearer gate.
func WithProtectedTodos(protect bool) Option {
	return func(h *Handler) { h.protectTodos = protect }
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, log *logger.Logger, opts ...Option) *Handler {
	h := &Handler{services: services, log: log}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), h.requestLogger)
	if len(h.corsOrigins) > 0 {
		router.Use(h.corsMiddleware())
	}

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/health", h.health)
	if h.metrics != nil {
		router.GET("/metrics", gin.WrapH(h.metrics.Handler()))
	}

	h.registerAuthRoutes(router)
	h.registerTodoRoutes(router)
	h.registerComputeRoutes(router)
	h.registerAPIRoutes(router)

	if h.protectTodos {
		router.GET("/ws/todos", h.RequireBearer, h.wsTodos)
	} else {
		router.GET("/ws/todos", h.wsTodos)
	}

	return router
}

func (h *Handler) corsMiddleware() gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{headerRequestID},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	for _, o := range h.corsOrigins {
		if o == "*" {
			cfg.AllowAllOrigins = true
			cfg.AllowCredentials = false
			return cors.New(cfg)
		}
	}
	cfg.AllowOrigins = h.corsOrigins
	return cors.New(cfg)
}

func (h *Handler) registerAuthRoutes(r *gin.Engine) {
	auth := r.Group("/auth")
	{
		auth.POST("/login", h.login)
		auth.GET("/me", h.RequireBearer, h.me)
	}
}

func (h *Handler) registerTodoRoutes(r *gin.Engine) {
	todos := r.Group("/todos")
	if h.protectTodos {
		todos.Use(h.RequireBearer)
	}
	{
		todos.POST("", h.createTodo)
		todos.GET("", h.listTodos)
		todos.GET("/:id", h.getTodo)
		todos.PUT("/:id", h.updateTodo)
		todos.DELETE("/:id", h.deleteTodo)
	}
}

func (h *Handler) registerComputeRoutes(r *gin.Engine) {
	r.POST("/linspace", h.linspace)
	r.POST("/exp_cos", h.series(service.SeriesExpCos))
	r.POST("/logistic", h.series(service.SeriesLogistic))
	r.POST("/multi_bump", h.series(service.SeriesMultiBump))
	r.POST("/double", h.double)
	r.POST("/half", h.half)
	r.POST("/repeat", h.repeat)
}

func (h *Handler) registerAPIRoutes(r *gin.Engine) {
	api := r.Group("/api/v1", h.RequireBearer)
	{
		api.GET("/activity", h.listActivity)
	}
}
