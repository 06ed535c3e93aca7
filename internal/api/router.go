package api

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/orrn/labelhook/internal/api/handlers"
	"github.com/orrn/labelhook/internal/api/middleware"
	"github.com/orrn/labelhook/internal/core"
	"github.com/orrn/labelhook/internal/db"
)

type Deps struct {
	Auth      *core.Authenticator
	Store     db.Store
	Submitter *core.Submitter
	Logger    *zap.Logger
}

func NewRouter(deps Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestID(), middleware.Logger(deps.Logger))

	auth := middleware.NewAuthMiddleware(deps.Auth)
	labels := handlers.NewLabelHandler(deps.Submitter, deps.Logger)
	health := handlers.NewHealthHandler(deps.Store, deps.Logger)

	r.GET("/healthz", health.Health)

	gated := r.Group("/", auth.RequireSecret())
	gated.POST("/printLabel", labels.PrintLabel)
	gated.POST("/printBatch", labels.PrintBatch)

	return r
}
