package server

import (
	"encoding/gob"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/zucenko/seafloor/model"
)

func NewServer(cfg Config) *Server {
	return &Server{
		Sessions:        make([]*Session, 0),
		SessionRequests: make(chan SessionRequest),
		Finished:        make(chan *Session),
		Upgrader:        &websocket.Upgrader{},
		Config:          cfg,
		Metrics:         NewMetrics(),
	}
}

func responseCode(err error) ResponseCode {
	if errors.Is(err, model.ErrMalformedInput) {
		return SIM_INVALID
	}
	return SIM_UNAVAILABLE
}

func (s *Server) HandleHttpCall() http.HandlerFunc {
	timeout := 200 * time.Millisecond
	return func(w http.ResponseWriter, r *http.Request) {
		log.Printf("HandleHttpCall - connection received")

		sas := make(chan SessionAwaiting, 1)
		select {
		case s.SessionRequests <- SessionRequest{SessionAwaiting: sas}:
			log.Debug("HandleHttpCall -> Server.SessionRequests")
		case <-time.After(timeout):
			log.Warn("SessionRequests TIMEOUTED")
			w.WriteHeader(HTTP_TIMEOUT)
			return
		}

		var sa SessionAwaiting
		select {
		case sa = <-sas:
			log.Debugf("HandleHttpCall SessionAwaiting <- code:%d", sa.ResponseCode)
			if sa.ResponseCode != SIM_READY {
				http.Error(w, sa.Err.Error(), sa.ResponseCode.ToHttp())
				return
			}
		case <-time.After(timeout):
			log.Warn("HandleHttpCall SessionAwaiting <- TIMEOUTED")
			// the loop may still answer, hand the session straight back
			go func() {
				if late := <-sas; late.Session != nil {
					s.Finished <- late.Session
				}
			}()
			w.WriteHeader(HTTP_TIMEOUT)
			return
		}

		con, err := s.Upgrader.Upgrade(w, r, nil)
		if err != nil {
			// Upgrade already replied to the client
			log.Printf("HandleHttpCall websocket upgrade err %v", err)
			s.Finished <- sa.Session
			return
		}
		defer con.Close()

		log.WithField("session", sa.Session.Id).Info("HandleHttpCall replay started")
		sa.Session.Run(con)
		log.WithFields(log.Fields{
			"session": sa.Session.Id,
			"state":   sa.Session.State.Name(),
			"steps":   sa.Session.Step,
		}).Info("HandleHttpCall replay ended")
		s.Finished <- sa.Session
	}
}

// HandleFloor answers with the configured floor before any step.
func (s *Server) HandleFloor() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f, err := s.Config.Load()
		if err != nil {
			http.Error(w, err.Error(), responseCode(err).ToHttp())
			return
		}
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		fmt.Fprintln(w, f.Render())
	}
}

// Loop owns the session list. It runs until the process ends.
func (s *Server) Loop() {
	log.Printf("Server.Loop starting")
	for {
		select {
		case req := <-s.SessionRequests:
			floor, err := s.Config.Load()
			if err != nil {
				req.SessionAwaiting <- SessionAwaiting{ResponseCode: responseCode(err), Err: err}
				continue
			}
			s.lastId++
			ss := newSession(s.lastId, floor, s.Config, s.Metrics)
			s.Sessions = append(s.Sessions, ss)
			s.Metrics.SessionsTotal.Inc()
			s.Metrics.SessionsActive.Inc()
			log.WithField("session", ss.Id).Info("create Session")
			req.SessionAwaiting <- SessionAwaiting{ResponseCode: SIM_READY, Session: ss}
		case ss := <-s.Finished:
			for i, known := range s.Sessions {
				if known == ss {
					s.Sessions = append(s.Sessions[:i], s.Sessions[i+1:]...)
					s.Metrics.SessionsActive.Dec()
					break
				}
			}
		}
	}
}

func newSession(id int, floor *model.Floor, cfg Config, metrics *Metrics) *Session {
	return &Session{
		State:    SS_NEW,
		Id:       id,
		Floor:    floor,
		Commands: make(chan model.ClientMessage, 10),
		Closed:   make(chan struct{}),
		config:   cfg,
		metrics:  metrics,
	}
}

// Run streams the replay over conn until the client leaves, the step limit
// is hit or writing fails.
func (ss *Session) Run(conn *websocket.Conn) {
	ss.Conn = conn
	ss.State = SS_PLAY
	go ss.LoopChannelRead()

	ticker := time.NewTicker(ss.config.StepDelay)
	defer ticker.Stop()

	if !ss.send(model.SetupMessage(ss.Floor)) {
		return
	}
	for {
		select {
		case <-ss.Closed:
			if ss.State != SS_OVER {
				ss.State = SS_ERR
			}
			return
		case cm := <-ss.Commands:
			if !ss.command(cm) {
				return
			}
		case <-ticker.C:
			if ss.State != SS_PLAY {
				continue
			}
			if !ss.advance() {
				return
			}
		}
	}
}

func (ss *Session) advance() bool {
	result := ss.Floor.Step()
	ss.Step++
	ss.metrics.StepsTotal.Inc()
	if !result.Moved() {
		ss.State = SS_OVER
		log.WithFields(log.Fields{"session": ss.Id, "steps": ss.Step}).Info("Session converged")
		return ss.send(model.ConvergedMessage(ss.Floor, ss.Step))
	}
	if !ss.send(model.FrameMessage(ss.Step, result)) {
		return false
	}
	if ss.config.MaxSteps > 0 && ss.Step >= ss.config.MaxSteps {
		log.WithField("session", ss.Id).Warnf("Session still moving after %d steps", ss.Step)
		ss.State = SS_OVER
		msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "step limit")
		if err := ss.Conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(time.Second)); err != nil {
			log.Warnf("Session close write %v", err)
		}
		return false
	}
	return true
}

func (ss *Session) command(cm model.ClientMessage) bool {
	switch cm.Command {
	case model.CMD_PAUSE:
		if ss.State == SS_PLAY {
			ss.State = SS_PAUSED
		}
	case model.CMD_RESUME:
		if ss.State == SS_PAUSED {
			ss.State = SS_PLAY
		}
	case model.CMD_RESTART:
		floor, err := ss.config.Load()
		if err != nil {
			ss.State = SS_ERR
			return false
		}
		ss.Floor = floor
		ss.Step = 0
		ss.State = SS_PLAY
		return ss.send(model.SetupMessage(ss.Floor))
	default:
		log.Warnf("Session %d unknown command %d", ss.Id, cm.Command)
	}
	log.Debugf("Session %d command %d -> %s", ss.Id, cm.Command, ss.State.Name())
	return true
}

func (ss *Session) LoopChannelRead() {
	log.Debug("LoopChannelRead STARTED")
	defer close(ss.Closed)
	for {
		_, r, err := ss.Conn.NextReader()
		if err != nil {
			log.Debugf("LoopChannelRead err reading message from Conn %v", err)
			break
		}
		cm := model.ClientMessage{}
		if err := gob.NewDecoder(r).Decode(&cm); err != nil {
			log.Warnf("LoopChannelRead cant decode %v", err)
			break
		}
		ss.DebugInMessages++
		select {
		case ss.Commands <- cm:
		default:
			log.Warn("Dropping command read from socket, Session.Commands FULL")
		}
	}
	log.Debugf("LoopChannelRead ENDED after %d messages", ss.DebugInMessages)
}

func (ss *Session) send(mes model.ServerMessage) bool {
	w, err := ss.Conn.NextWriter(websocket.BinaryMessage)
	if err != nil {
		log.Warnf("Session.send cant get writer %v", err)
		ss.State = SS_ERR
		return false
	}
	if err := gob.NewEncoder(w).Encode(mes); err != nil {
		log.Warnf("Session.send cant encode %v", err)
		ss.State = SS_ERR
		return false
	}
	if err := w.Close(); err != nil {
		log.Warnf("Session.send cant flush %v", err)
		ss.State = SS_ERR
		return false
	}
	ss.DebugOutMessages++
	ss.metrics.FramesSent.Inc()
	return true
}
