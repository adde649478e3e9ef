package main

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/RozoAI/rozo-app-backend-sub000/internal/interfaces/http/handlers"
	"github.com/RozoAI/rozo-app-backend-sub000/internal/interfaces/http/middleware"
)

type routeDeps struct {
	authHandler           *handlers.AuthHandler
	orderHandler          *handlers.RecordHandler
	depositHandler        *handlers.RecordHandler
	webhookHandler        *handlers.WebhookHandler
	authMiddleware        gin.HandlerFunc
	webhookAuthMiddleware gin.HandlerFunc
}

// registerOpsRoutes wires the operational surface: the sweep endpoints the
// scheduler calls, liveness and prometheus metrics.
func registerOpsRoutes(r *gin.Engine, sweeperHandler *handlers.SweeperHandler) {
	r.POST("/", sweeperHandler.RunSweep)
	r.POST("/trigger", sweeperHandler.RunSweep)
	r.GET("/health", sweeperHandler.Health)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

func registerAPIV1Routes(r *gin.Engine, d routeDeps) {
	v1 := r.Group("/api/v1")
	{
		// Auth routes (public)
		auth := v1.Group("/auth")
		{
			auth.POST("/register", d.authHandler.Register)
			auth.POST("/login", d.authHandler.Login)
		}

		// Processor callbacks (shared-secret auth)
		webhooks := v1.Group("/webhooks")
		webhooks.Use(d.webhookAuthMiddleware)
		{
			webhooks.POST("/payment", d.webhookHandler.HandlePaymentWebhook)
		}

		// Order routes (protected)
		orders := v1.Group("/orders")
		orders.Use(d.authMiddleware)
		{
			orders.POST("", middleware.IdempotencyMiddleware(), d.orderHandler.Create)
			orders.GET("", d.orderHandler.List)
			orders.GET("/:number", d.orderHandler.GetByNumber)
		}

		// Deposit routes (protected)
		deposits := v1.Group("/deposits")
		deposits.Use(d.authMiddleware)
		{
			deposits.POST("", middleware.IdempotencyMiddleware(), d.depositHandler.Create)
			deposits.GET("", d.depositHandler.List)
			deposits.GET("/:number", d.depositHandler.GetByNumber)
		}
	}
}
