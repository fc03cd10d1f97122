package handler

import (
	"pingroom/internal/app/session"
	"pingroom/internal/configs"
	"pingroom/internal/gateway/groq"
)

type AppDeps struct {
	Store  *session.Store
	Relay  *groq.Client
	Config *configs.AppConfig
}
