package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Home lists the gateway's routes.
func (ep *Endpoint) Home(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"routes": gin.H{
			"/ping-test?ip=DEVICE_IP":                            "Check device connection",
			"/logs?ip=DEVICE_IP&start=YYYY-MM-DD&end=YYYY-MM-DD": "Fetch attendance logs",
		},
	})
}
