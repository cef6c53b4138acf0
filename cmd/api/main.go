package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/matheusvf/barber-agenda/internal/config"
	dbpkg "github.com/matheusvf/barber-agenda/internal/db"
	"github.com/matheusvf/barber-agenda/internal/routes"
	"github.com/matheusvf/barber-agenda/internal/timezone"
)

func main() {

	cfg := config.Load()

	log := newLogger(cfg.Env)
	defer log.Sync()

	// The operating zone is fixed for the whole process; every wall-clock
	// conversion goes through this one configuration.
	timezone.Configure(cfg.TimezoneName, cfg.TimezoneOffsetMin)

	db := dbpkg.NewDB(cfg, log)

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg, log)

	log.Info("server running",
		zap.String("addr", cfg.Addr()),
		zap.String("timezone", timezone.String()),
		zap.Int("slot_granularity_min", cfg.SlotGranularityMin),
	)
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal("failed to start server", zap.Error(err))
	}
}

func newLogger(env string) *zap.Logger {
	var cfg zap.Config

	if env == "production" {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
	}

	cfg.OutputPaths = []string{"stdout"}

	logger, err := cfg.Build()
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}

	return logger
}
