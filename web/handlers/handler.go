package handlers

import (
	"github.com/attendlink/zkgate/config"
	"github.com/attendlink/zkgate/device"
	"github.com/gin-gonic/gin"
)

type Endpoint struct {
	Device device.Client
	Cfg    *config.Config
}

func Register(r *gin.Engine, dev device.Client, cfg *config.Config) {
	endpoint := &Endpoint{Device: dev, Cfg: cfg}
	r.GET("/", endpoint.Home)
	r.GET("/ping-test", endpoint.PingTest)
	r.GET("/logs", endpoint.Logs)
	r.GET("/logs/export", endpoint.ExportLogs)
}
