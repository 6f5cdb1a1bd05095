package main

import (
	"fmt"
	"log"

	"github.com/attendlink/zkgate/config"
	"github.com/attendlink/zkgate/device"
	"github.com/attendlink/zkgate/web/handlers"
	"github.com/attendlink/zkgate/web/middlewares"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// optional .env for local development
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("device port: %d, timeout: %s, timezone: %s\n", cfg.DevicePort, cfg.Timeout(), cfg.Timezone)

	r := gin.Default()
	r.Use(middlewares.RequestID())

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	dev := device.NewZKTeco(cfg.Timeout(), cfg.Timezone)
	handlers.Register(r, dev, cfg)

	r.Run(cfg.Bind)
}
