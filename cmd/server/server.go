package main

import (
	"net/http"

	"github.com/joho/godotenv"
	"github.com/matryer/way"
	log "github.com/sirupsen/logrus"
	"github.com/zucenko/seafloor/server"
)

type Server struct {
	router *way.Router
	Replay *server.Server
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Debugf("no .env loaded: %v", err)
	}
	cfg, err := server.ConfigFromEnv()
	if err != nil {
		log.Fatalf("bad configuration: %v", err)
	}
	log.SetLevel(cfg.LogLevel)

	// fail early on a broken input, every session reloads it anyway
	if _, err := cfg.Load(); err != nil {
		log.Fatalln(err)
	}

	Server := Server{
		Replay: server.NewServer(cfg),
	}
	go Server.Replay.Loop()
	Server.routes()
	log.WithFields(log.Fields{
		"port":  cfg.Port,
		"input": cfg.Input,
		"delay": cfg.StepDelay,
	}).Info("serving replays")
	log.Fatalln(http.ListenAndServe(":"+cfg.Port, Server.router))
}
