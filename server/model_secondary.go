package server

import (
	"fmt"
)

const HTTP_SUCCESS = 200
const HTTP_BAD_REQUEST = 400
const HTTP_TIMEOUT = 408
const HTTP_SERVER_ERR = 503

type ResponseCode int

const (
	SIM_READY ResponseCode = iota
	SIM_INVALID
	SIM_UNAVAILABLE
)

func (h ResponseCode) ToHttp() int {
	switch h {
	case SIM_READY:
		return HTTP_SUCCESS
	case SIM_INVALID:
		return HTTP_BAD_REQUEST
	case SIM_UNAVAILABLE:
		return HTTP_SERVER_ERR
	default:
		panic(h)
	}
}

func (ss SessionState) Name() string {
	switch ss {
	case SS_NEW:
		return "SS_NEW"
	case SS_PLAY:
		return "SS_PLAY"
	case SS_PAUSED:
		return "SS_PAUSED"
	case SS_OVER:
		return "SS_OVER"
	case SS_ERR:
		return "SS_ERR"
	default:
		return fmt.Sprintf("n/a:%d", ss)
	}
}

type SessionAwaiting struct {
	ResponseCode ResponseCode
	Session      *Session
	Err          error
}

type SessionRequest struct {
	SessionAwaiting chan SessionAwaiting
}
