package main

import (
	"github.com/matryer/way"
)

const URI_WS = "/play"
const URI_FLOOR = "/floor"
const URI_METRICS = "/metrics"

func (s *Server) routes() {
	s.router = way.NewRouter()
	s.router.HandleFunc("GET", URI_WS, s.Replay.HandleHttpCall())
	s.router.HandleFunc("GET", URI_FLOOR, s.Replay.HandleFloor())
	s.router.Handle("GET", URI_METRICS, s.Replay.Metrics.Handler())
}
