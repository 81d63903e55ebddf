package server

import (
	"net/http"

	"field-sales/internal/config"
	"field-sales/internal/handlers"
	"field-sales/internal/middleware"
	"field-sales/internal/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

func NewRouter(cfg *config.Config) *gin.Engine {
	r := gin.Default()

	r.LoadHTMLGlob("web/templates/*.html")

	store := cookie.NewStore([]byte(cfg.SessionSecret))
	r.Use(sessions.Sessions("field_sales_session", store))

	r.Use(middleware.InjectUser())

	// AUTH
	r.GET("/login", handlers.ShowLogin)
	r.POST("/login", handlers.Login)
	r.GET("/logout", handlers.Logout)

	auth := r.Group("/")
	auth.Use(middleware.RequireAuth())

	// DAILY REPORT
	auth.GET("/", handlers.ShowReport)
	auth.POST("/visits", handlers.SubmitVisit)

	// HISTORY
	auth.GET("/visits", handlers.ListVisits)

	// lead status changes are an admin action
	auth.POST("/visits/:id/status",
		middleware.RequireRole(models.RoleAdmin),
		handlers.UpdateLeadStatus,
	)

	// AUTO-FILL
	auth.GET("/api/stores", handlers.StoreNames)
	auth.GET("/api/stores/last", handlers.LastStoreVisit)

	// HEALTHCHECK
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	return r
}
