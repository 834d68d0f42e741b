package controllers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/adiashrafff-private/calorie-trackerv1/services"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

type RealtimeController struct {
	RT      *services.RealtimeHub
	Tracker *services.TrackerService
}

func NewRealtimeController(rt *services.RealtimeHub, t *services.TrackerService) *RealtimeController {
	return &RealtimeController{RT: rt, Tracker: t}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true }, // single-user local tool
}

// GET /ws — pushes the current state on connect, then a fresh snapshot after
// every mutation.
func (rc *RealtimeController) StateWS(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}

	snapshot, _ := json.Marshal(rc.Tracker.State())
	if err := conn.WriteMessage(websocket.TextMessage, snapshot); err != nil {
		_ = conn.Close()
		return
	}

	cl := &services.WSClient{Conn: conn}
	rc.RT.Register(cl)

	// ping to keep connections alive through proxies
	go func() {
		t := time.NewTicker(25 * time.Second)
		defer t.Stop()
		for range t.C {
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				rc.RT.Unregister(cl)
				return
			}
		}
	}()

	// read loop ends on client close/error → unregister
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			rc.RT.Unregister(cl)
			return
		}
	}
}
