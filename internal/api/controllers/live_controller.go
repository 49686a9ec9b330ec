package controllers

import (
	"net/http"

	"boystrip/internal/services"
	"boystrip/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

type LiveController struct {
	hub      *services.LiveHub
	upgrader websocket.Upgrader
}

// NewLiveController accepts handshakes from the same origins CORS allows.
func NewLiveController(hub *services.LiveHub, origins []string) *LiveController {
	allowAll := len(origins) == 0
	allowed := make(map[string]struct{}, len(origins))
	for _, o := range origins {
		if o == "*" {
			allowAll = true
		}
		allowed[o] = struct{}{}
	}

	return &LiveController{
		hub: hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				if allowAll {
					return true
				}
				origin := r.Header.Get("Origin")
				if origin == "" {
					return true
				}
				_, ok := allowed[origin]
				return ok
			},
		},
	}
}

// Subscribe upgrades to a websocket that receives a message whenever
// itinerary, profiles, rooms or payments change.
func (l *LiveController) Subscribe(c *gin.Context) {
	conn, err := l.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade has already written the error response
		logger.FromContext(c.Request.Context()).Warn().Err(err).Msg("websocket upgrade failed")
		return
	}
	l.hub.Serve(conn)
}
