package handler

import (
	"context"
	"time"

	"main/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

var startTime = time.Now()

// HealthHandler reports process and database health.
func HealthHandler(c *gin.Context) {
	dbStatus := "up"
	ctx, cancel := context.WithTimeout(c, 2*time.Second)
	defer cancel()
	if err := utils.MongoClient.Ping(ctx, readpref.Primary()); err != nil {
		dbStatus = "down"
	}

	utils.Success(c, gin.H{
		"status":   "ok",
		"uptime":   time.Since(startTime).String(),
		"database": dbStatus,
		"system": gin.H{
			"cpu_percent":    utils.GetCPUUsage(),
			"memory_percent": utils.GetMemoryUsage(),
		},
	})
}
