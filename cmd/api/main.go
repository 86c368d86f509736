package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/autogleam/detailing-api/internal/cache"
	"github.com/autogleam/detailing-api/internal/config"
	dbpkg "github.com/autogleam/detailing-api/internal/db"
	"github.com/autogleam/detailing-api/internal/httperr"
	"github.com/autogleam/detailing-api/internal/logging"
	"github.com/autogleam/detailing-api/internal/middleware"
	"github.com/autogleam/detailing-api/internal/routes"
)

func main() {

	_ = godotenv.Load()

	cfg := config.Load()

	if err := logging.Init(cfg.Diagnostics); err != nil {
		panic(err)
	}
	defer logging.Sync()

	httperr.EnableDiagnostics(cfg.Diagnostics)

	db := dbpkg.NewDB(cfg)
	store := cache.New(cfg.RedisAddr)

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.RequestID())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg, store)

	logging.Log.Info("server starting", zap.String("addr", cfg.Addr()))
	if err := r.Run(cfg.Addr()); err != nil {
		logging.Log.Fatal("failed to start server", zap.Error(err))
	}
}
