package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// EventRecorder receives domain events worth counting
type EventRecorder interface {
	RestaurantPizzaCreated()
	RestaurantDeleted()
}

type noopRecorder struct{}

func (noopRecorder) RestaurantPizzaCreated() {}
func (noopRecorder) RestaurantDeleted()      {}

func recorderOrNoop(r EventRecorder) EventRecorder {
	if r == nil {
		return noopRecorder{}
	}
	return r
}

// parseID reads a positive numeric path parameter
func parseID(ctx *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param(name), 10, 0)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

func requestLogger(ctx *gin.Context) *log.Entry {
	return log.WithFields(log.Fields{
		"method": ctx.Request.Method,
		"path":   ctx.Request.URL.Path,
	})
}
