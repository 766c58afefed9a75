package handler_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"paragraph-byte/internal/handler"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

func TestHealthHandler(t *testing.T) {
	tests := []struct {
		name       string
		pinger     handler.Pinger
		wantStatus int
		wantBody   string
	}{
		{name: "without redis", pinger: nil, wantStatus: http.StatusOK, wantBody: `{"status":"ok"}`},
		{name: "redis up", pinger: pingFunc(func(context.Context) error { return nil }), wantStatus: http.StatusOK, wantBody: `{"status":"ok"}`},
		{name: "redis down", pinger: pingFunc(func(context.Context) error { return errors.New("down") }), wantStatus: http.StatusServiceUnavailable, wantBody: `{"status":"degraded"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/health", handler.NewHealthHandler(tt.pinger, nil).Health)

			status, body := doGet(t, app, "/health")

			assert.Equal(t, tt.wantStatus, status)
			assert.JSONEq(t, tt.wantBody, string(body))
		})
	}
}
