package main

import (
	"context"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"sync/atomic"
	"syscall"
	"time"

	"internlink-gateway/internal/api"
	"internlink-gateway/internal/chat"
	"internlink-gateway/internal/config"
	"internlink-gateway/internal/events"
	"internlink-gateway/internal/mailwatch"
	"internlink-gateway/internal/session"
	"internlink-gateway/internal/web"
)

func main() {
	// Data dir: env wins (the UI shell passes one), else local folder.
	dataDir := os.Getenv("INTERNLINK_DATA_DIR")
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		log.Fatal(err)
	}

	// One gateway per data dir; two would fight over the session db.
	lock, err := session.AcquireLock(dataDir)
	if err != nil {
		log.Fatalf("instance lock failed: %v", err)
	}
	defer func() { _ = lock.Unlock() }()

	defaultCfgPath := filepath.Join("config", "config.yml")
	userCfgPath, err := config.EnsureUserConfig(dataDir, defaultCfgPath)
	if err != nil {
		log.Fatalf("config bootstrap failed: %v", err)
	}

	// Load config and keep it reloadable
	var cfgVal atomic.Value // stores config.Config
	loadCfg := func() (config.Config, error) {
		cfg, err := config.Load(userCfgPath)
		if err != nil {
			return cfg, err
		}
		config.OverlayEnv(&cfg, filepath.Join(dataDir, ".env"))
		normalized, vr := config.NormalizeAndValidate(cfg)
		if !vr.OK() {
			log.Printf("level=error msg=\"config invalid\" errors=%q", vr.Errors)
		}
		for _, warn := range vr.Warnings {
			log.Printf("level=warn msg=\"config\" warning=%q", warn)
		}
		return normalized, nil
	}
	cfg, err := loadCfg()
	if err != nil {
		log.Fatalf("config load failed (%s): %v", userCfgPath, err)
	}
	cfgVal.Store(cfg)

	sessions, err := session.Open(filepath.Join(dataDir, "session.db"))
	if err != nil {
		log.Fatalf("session store: %v", err)
	}
	defer sessions.Close()

	chatStore, err := chat.Open(filepath.Join(dataDir, "chat.db"))
	if err != nil {
		log.Fatalf("chat store: %v", err)
	}
	defer chatStore.Close()

	hub := events.NewHub()

	client := api.New(api.Options{
		BaseURL:    cfg.Remote.BaseURL,
		Timeout:    time.Duration(cfg.Remote.TimeoutSeconds) * time.Second,
		RatePerSec: cfg.Remote.RatePerSec,
		RateBurst:  cfg.Remote.RateBurst,
		Token:      sessions.Token,
	})
	// A remote 401 is the single signal that the token died; drop the
	// session so the gate sends the user back to /login.
	client.OnUnauthorized = func() {
		if err := sessions.Clear(context.Background()); err != nil {
			log.Printf("level=error msg=\"session clear\" err=%v", err)
		}
		hub.Publish(events.MakeEvent("", events.TypeSessionChange, 1, nil))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	watcher := &mailwatch.Watcher{
		API: client,
		Hub: hub,
		Cfg: func() config.Config { return cfgVal.Load().(config.Config) },
	}
	go watcher.Run(ctx)

	mux := web.NewMux(web.Deps{
		API:         client,
		Sessions:    sessions,
		Chat:        chatStore,
		Hub:         hub,
		CfgVal:      &cfgVal,
		UserCfgPath: userCfgPath,
		LoadCfg:     loadCfg,
	})

	ln, err := net.Listen("tcp", cfg.App.Addr)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("level=info msg=\"gateway listening\" addr=%s remote=%s", cfg.App.Addr, cfg.Remote.BaseURL)

	srv := &http.Server{
		Handler:           web.Chain(mux, web.Recover, web.RequestID, web.AccessLog, web.Cors),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	if err := srv.Serve(ln); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
