package main

import (
	"bytes"
	"encoding/gob"
	"flag"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"
	"github.com/zucenko/seafloor/model"
)

var addr = flag.String("addr", "ws://localhost:8080/play", "replay server websocket address")

// Link is the viewer side of a replay session.
type Link struct {
	conn     *websocket.Conn
	Messages chan model.ServerMessage
	Commands chan int
	Done     chan struct{}
}

func Connect(url string) (*Link, error) {
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		log.Printf("failed connecting %s: %s", url, err)
		return nil, err
	}
	l := &Link{
		conn:     conn,
		Messages: make(chan model.ServerMessage, 64),
		Commands: make(chan int, 4),
		Done:     make(chan struct{}),
	}
	go l.loopRead()
	go l.loopWrite()
	return l, nil
}

func (l *Link) loopRead() {
	defer close(l.Done)
	for {
		_, data, err := l.conn.ReadMessage()
		if err != nil {
			log.Infof("Link.loopRead ended: %v", err)
			return
		}
		mes := model.ServerMessage{}
		if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&mes); err != nil {
			log.Warnf("Link.loopRead cant decode %v", err)
			return
		}
		l.Messages <- mes
	}
}

func (l *Link) loopWrite() {
	for {
		select {
		case cmd := <-l.Commands:
			var buf bytes.Buffer
			if err := gob.NewEncoder(&buf).Encode(model.ClientMessage{Command: cmd}); err != nil {
				log.Warnf("Link.loopWrite cant encode %v", err)
				continue
			}
			if err := l.conn.WriteMessage(websocket.BinaryMessage, buf.Bytes()); err != nil {
				log.Warnf("Link.loopWrite %v", err)
				return
			}
		case <-l.Done:
			return
		}
	}
}

// Send queues a command, dropping it when the queue is full.
func (l *Link) Send(cmd int) {
	select {
	case l.Commands <- cmd:
	default:
		log.Warnf("dropping command %d", cmd)
	}
}
