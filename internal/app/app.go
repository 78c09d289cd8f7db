package app

import (
	"github.com/gin-gonic/gin"
	"github.com/jonboulle/clockwork"
	"github.com/lshigami/quickpoll/config"
	"github.com/lshigami/quickpoll/database"
	_ "github.com/lshigami/quickpoll/docs" // Swagger docs - generated by swag
	"github.com/lshigami/quickpoll/internal/controller"
	adminctrl "github.com/lshigami/quickpoll/internal/controller/admin"
	userctrl "github.com/lshigami/quickpoll/internal/controller/user"
	webctrl "github.com/lshigami/quickpoll/internal/controller/web"
	"github.com/lshigami/quickpoll/internal/logger"
	"github.com/lshigami/quickpoll/internal/repository"
	"github.com/lshigami/quickpoll/internal/server"
	"github.com/lshigami/quickpoll/internal/service"
	"go.uber.org/fx"
)

// Module wires the whole poll application.
var Module = fx.Options(
	// Core Application Components
	fx.Provide(
		config.NewConfig,
		database.NewDatabase,
		server.NewGinEngine,
		func() clockwork.Clock { return clockwork.NewRealClock() },
	),

	// Repositories Layer
	fx.Provide(
		repository.NewQuestionRepository,
		repository.NewChoiceRepository,
	),

	// Services Layer
	fx.Provide(
		service.NewPollService,
		service.NewAdminPollService,
	),

	// Controllers Layer
	fx.Provide(
		webctrl.NewPollPageController,
		userctrl.NewPollController,
		adminctrl.NewAdminPollController,
		controller.NewController,
	),

	// Invokers run in order: logging first, then schema, then routes and server.
	fx.Invoke(configureLogger),
	fx.Invoke(database.AutoMigrate),
	fx.Invoke(registerRoutes),
	fx.Invoke(server.RegisterLifecycle),
)

func configureLogger(cfg *config.Config) {
	logger.Configure(cfg.LogLevel, cfg.Server.Mode == gin.DebugMode)
}

func registerRoutes(router *gin.Engine, ctrl *controller.Controller) {
	ctrl.RegisterRoutes(router)
}
