package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/RozoAI/rozo-app-backend-sub000/internal/interfaces/http/handlers"
	"github.com/RozoAI/rozo-app-backend-sub000/internal/usecases"
)

func passThrough(c *gin.Context) {
	c.Next()
}

func TestRegisterAPIV1Routes_RegistersKeyRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	registerAPIV1Routes(r, routeDeps{
		authHandler:           &handlers.AuthHandler{},
		orderHandler:          &handlers.RecordHandler{},
		depositHandler:        &handlers.RecordHandler{},
		webhookHandler:        &handlers.WebhookHandler{},
		authMiddleware:        passThrough,
		webhookAuthMiddleware: passThrough,
	})

	expects := []struct {
		method string
		path   string
	}{
		{"POST", "/api/v1/auth/register"},
		{"POST", "/api/v1/auth/login"},
		{"POST", "/api/v1/webhooks/payment"},
		{"POST", "/api/v1/orders"},
		{"GET", "/api/v1/orders"},
		{"GET", "/api/v1/orders/:number"},
		{"POST", "/api/v1/deposits"},
		{"GET", "/api/v1/deposits/:number"},
	}

	routes := r.Routes()
	for _, exp := range expects {
		found := false
		for _, route := range routes {
			if route.Method == exp.method && route.Path == exp.path {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("route %s %s not registered", exp.method, exp.path)
		}
	}
}

func TestRegisterOpsRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	registerOpsRoutes(r, handlers.NewSweeperHandler(usecases.NewSweeperUsecase(nil, nil, nil, nil, 0)))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected health to respond 200, got %d", w.Code)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected metrics to respond 200, got %d", w.Code)
	}
}
