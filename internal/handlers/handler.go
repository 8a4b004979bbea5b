package handlers

import (
	"net/http"

	"kitaplik/internal/logger"
	"kitaplik/internal/service"
	"kitaplik/templates"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, log *logger.Logger) *Handler {
	return &Handler{services: services, log: log}
}

// InitRoutes builds and returns the Gin router with all routes registered.
// Only login, register, static assets, health and swagger are reachable
// without a session.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), h.requestLogMiddleware)
	router.SetHTMLTemplate(templates.Parse())

	router.Static("/static", "./static")
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health endpoint
	router.GET("/health", h.health)

	// Auth endpoints (allow-listed)
	h.registerAuthRoutes(router)

	// Session-gated pages
	h.registerPageRoutes(router)

	return router
}

func (h *Handler) registerAuthRoutes(r *gin.Engine) {
	r.GET("/login", h.loginForm)
	r.POST("/login", h.login)
	r.GET("/register", h.registerForm)
	r.POST("/register", h.register)
}

func (h *Handler) registerPageRoutes(r *gin.Engine) {
	pages := r.Group("/", h.sessionMiddleware)
	{
		pages.GET("/", h.home)
		pages.GET("/about", h.about)
		pages.GET("/logout", h.logout)

		pages.GET("/search", h.searchPage)
		pages.POST("/search", h.search)
		pages.GET("/ask", h.askPage)
		pages.POST("/ask", h.ask)

		pages.POST("/save", h.save)
		pages.GET("/library", h.library)
		pages.POST("/delete/:id", h.deleteEntry)

		// Live library feed over WebSocket (HTTP upgrade), same session gate.
		pages.GET("/ws", h.wsConnect)

		pages.GET("/_debug_users", h.debugUsers)
	}
}

const errInternal = "Sunucu hatası."

// internalError logs the underlying error and writes a plain 500 page.
func (h *Handler) internalError(c *gin.Context, logKey string, err error, kv ...interface{}) {
	if h.log != nil && err != nil {
		fields := append([]interface{}{"err", err}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	c.String(http.StatusInternalServerError, errInternal)
	c.Abort()
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}
