package web

import (
	"sync/atomic"

	"internlink-gateway/internal/api"
	"internlink-gateway/internal/chat"
	"internlink-gateway/internal/config"
	"internlink-gateway/internal/events"
	"internlink-gateway/internal/session"
)

type Deps struct {
	API      *api.Client
	Sessions *session.Store
	Chat     *chat.Store
	Hub      *events.Hub

	// Atomic stores
	CfgVal *atomic.Value // stores config.Config

	// Config persistence
	UserCfgPath string
	LoadCfg     func() (config.Config, error)
}
