package handlers

import (
	"net/http"

	"github.com/attendlink/zkgate/device"
	"github.com/attendlink/zkgate/web/common"
	"github.com/gin-gonic/gin"
)

// PingTest opens a session against the terminal and reports its
// identity. Connectivity check only, independent of log retrieval.
func (ep *Endpoint) PingTest(c *gin.Context) {
	ip, ok := ep.resolveIP(c)
	if !ok {
		return
	}

	info, err := ep.Device.Probe(c.Request.Context(), device.Address{Host: ip, Port: ep.Cfg.DevicePort})
	if err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, PingTestResponse{
		Success:    true,
		Message:    "Connected",
		DeviceInfo: info.Name,
	})
}
