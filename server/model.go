package server

import (
	"github.com/gorilla/websocket"
	"github.com/zucenko/seafloor/model"
)

type Server struct {
	Sessions        []*Session
	SessionRequests chan SessionRequest
	Finished        chan *Session
	Upgrader        *websocket.Upgrader
	Config          Config
	Metrics         *Metrics
	lastId          int
}

type SessionState int

const (
	SS_NEW SessionState = iota
	SS_PLAY
	SS_PAUSED
	SS_OVER
	SS_ERR
)

// Session replays one floor to one websocket client.
type Session struct {
	State    SessionState
	Id       int
	Floor    *model.Floor
	Step     int
	Conn     *websocket.Conn
	Commands chan model.ClientMessage
	Closed   chan struct{}

	config  Config
	metrics *Metrics

	DebugInMessages  int
	DebugOutMessages int
}
