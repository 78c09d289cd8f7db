package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/quickpoll/internal/controller/admin"
	"github.com/lshigami/quickpoll/internal/controller/user"
	"github.com/lshigami/quickpoll/internal/controller/web"
	"github.com/lshigami/quickpoll/internal/dto"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// Controller owns the full route table.
type Controller struct {
	pages *web.PollPageController
	polls *user.PollController
	admin *admin.AdminPollController
	db    *gorm.DB
}

func NewController(pages *web.PollPageController, polls *user.PollController, adminCtrl *admin.AdminPollController, db *gorm.DB) *Controller {
	return &Controller{pages: pages, polls: polls, admin: adminCtrl, db: db}
}

func (ctrl *Controller) RegisterRoutes(router *gin.Engine) {
	router.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/polls")
	})
	router.GET("/healthz", ctrl.HealthHandler)

	// HTML pages
	ctrl.pages.RegisterRoutes(router)

	apiV1 := router.Group("/api/v1")
	{
		ctrl.polls.RegisterRoutes(apiV1)
		ctrl.admin.RegisterRoutes(apiV1.Group("/admin"))
	}

	// Swagger UI
	// URL: http://localhost:PORT/swagger/index.html
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.NoRoute(func(c *gin.Context) {
		web.RenderError(c, http.StatusNotFound)
	})
}

// HealthHandler reports whether the database answers a ping.
func (ctrl *Controller) HealthHandler(c *gin.Context) {
	sqlDB, err := ctrl.db.DB()
	if err == nil {
		err = sqlDB.PingContext(c.Request.Context())
	}
	if err != nil {
		log.Error().Err(err).Msg("Health check failed")
		c.JSON(http.StatusServiceUnavailable, dto.HealthResponse{Status: "unavailable"})
		return
	}
	c.JSON(http.StatusOK, dto.HealthResponse{Status: "ok"})
}
