package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Index returns the service banner for the root URL.
func Index(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"name":    "Account REST API Service",
		"version": "1.0",
		"paths": gin.H{
			"accounts": "/accounts",
		},
	})
}

// Health answers liveness probes.
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "OK"})
}
