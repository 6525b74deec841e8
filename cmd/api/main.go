package main

import (
	"fmt"
	"os"

	"battery-sim/internal/api/handlers"
	"battery-sim/internal/api/middleware"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})
	if lvl, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL")); err == nil {
		log.SetLevel(lvl)
	}

	port := os.Getenv("API_PORT")
	if port == "" {
		port = "8080"
	}

	if os.Getenv("API_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	router.Use(middleware.Logger(log))
	router.Use(middleware.CORS())
	router.Use(middleware.ErrorHandler(log))

	simulateHandler := handlers.NewSimulateHandler(log)
	compareHandler := handlers.NewCompareHandler(log)
	strategyHandler := handlers.NewStrategyHandler()
	batteryHandler := handlers.NewBatteryHandler(log)
	pricesHandler := handlers.NewPricesHandler(log)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")
	{
		api.POST("/simulate", simulateHandler.Simulate)
		api.POST("/compare", compareHandler.Compare)

		api.GET("/strategies", strategyHandler.ListStrategies)
		api.GET("/batteries", batteryHandler.ListBatteries)

		api.GET("/prices", pricesHandler.GetPrices)
		api.GET("/zones", pricesHandler.ListZones)
	}

	addr := fmt.Sprintf(":%s", port)
	log.WithField("addr", addr).Info("starting API server")
	if err := router.Run(addr); err != nil {
		log.WithError(err).Fatal("server exited")
	}
}
