package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const healthPingTimeout = 2 * time.Second

type HealthController struct {
	DB  *gorm.DB
	Log *zap.Logger
}

func NewHealthController(db *gorm.DB, log *zap.Logger) *HealthController {
	return &HealthController{DB: db, Log: log}
}

// Health (GET /health) always answers 200; "database" reports whether a ping succeeded.
func (hc *HealthController) Health(c *gin.Context) {
	database := "up"
	if err := hc.ping(c.Request.Context()); err != nil {
		hc.Log.Warn("health check: database ping failed", zap.Error(err))
		database = "down"
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "database": database})
}

func (hc *HealthController) ping(ctx context.Context) error {
	sqlDB, err := hc.DB.DB()
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, healthPingTimeout)
	defer cancel()
	return sqlDB.PingContext(ctx)
}
