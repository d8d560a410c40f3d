package router

import (
	"net/http"

	"classificador/config"
	"classificador/controllers"
	dbpkg "classificador/db"
	"classificador/middleware"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"
	"go.uber.org/zap"
)

// Initialize wires all routes and middlewares. database may be nil: classification
// keeps working, history routes answer 500.
func Initialize(r *gin.Engine, cfg config.Configuration, database *gorm.DB, log *zap.Logger) {
	maxBytes := cfg.Upload.MaxMB << 20
	r.MaxMultipartMemory = maxBytes

	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(dbpkg.SetDBtoContext(database))

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	r.POST("/classificar", Logger(log), middleware.BodyLimit(maxBytes), controllers.Classificar)

	api := r.Group("/api")
	api.GET("/classificacoes", Logger(log), controllers.GetClassificacoes)
	api.GET("/classificacoes/:id", Logger(log), controllers.GetClassificacaoByID)

	log.Info("routes initialized")
}
