package handlers

import (
	_ "embed"
	"net/http"

	"github.com/gin-gonic/gin"
)

//go:embed endpoints.json
var endpointsJSON []byte

// GetEndpoints serves the static endpoint catalog.
func GetEndpoints(c *gin.Context) {
	c.Data(http.StatusOK, "application/json; charset=utf-8", endpointsJSON)
}

func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}
