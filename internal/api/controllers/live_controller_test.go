package controllers

import (
	"net/http/httptest"
	"testing"

	"boystrip/internal/services"
	"boystrip/pkg/logger"

	"github.com/stretchr/testify/assert"
)

func TestLiveController_CheckOrigin(t *testing.T) {
	hub := services.NewLiveHub(logger.Nop())
	defer hub.Close()

	tests := []struct {
		name    string
		origins []string
		origin  string
		want    bool
	}{
		{"wildcard", []string{"*"}, "https://evil.example", true},
		{"no origins configured", nil, "https://any.example", true},
		{"listed", []string{"https://trip.example"}, "https://trip.example", true},
		{"not listed", []string{"https://trip.example"}, "https://evil.example", false},
		{"no origin header", []string{"https://trip.example"}, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lc := NewLiveController(hub, tt.origins)
			req := httptest.NewRequest("GET", "/ws", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			assert.Equal(t, tt.want, lc.upgrader.CheckOrigin(req))
		})
	}
}
