package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os/signal"
	"syscall"

	auction "auction-spot/internal/auctionService"
	"auction-spot/internal/auth"
	bidding "auction-spot/internal/biddingService"
	catalog "auction-spot/internal/catalogService"
	"auction-spot/internal/config"
	"auction-spot/internal/livefeed"
	notification "auction-spot/internal/notificationService"
	"auction-spot/internal/repository"
	"auction-spot/internal/scheduler"
	"auction-spot/internal/seed"
	"auction-spot/internal/server"
	"auction-spot/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	flag.Parse()

	// .env is optional
	_ = godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		utils.Fatal("failed to load config", map[string]any{"error": err.Error()})
	}
	if err := utils.ConfigureLogger(cfg.Log.Level, cfg.Log.Format); err != nil {
		utils.Fatal("failed to configure logger", map[string]any{"error": err.Error()})
	}
	if cfg.App.Env == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	repo := repository.NewMemoryRepo()
	if cfg.Seed.Enabled {
		if err := seed.Populate(repo, cfg.Seed.Players, cfg.Seed.RandomSeed, cfg.Auction.DefaultRules); err != nil {
			utils.Fatal("failed to seed data", map[string]any{"error": err.Error()})
		}
	}

	hub := livefeed.NewHub(ctx)
	jwt := auth.JWT{Secret: []byte(cfg.Auth.JWTSecret), TokenTTL: cfg.Auth.TokenTTL}

	auctionSvc := auction.NewAuctionService(repo, hub, cfg.Auction.DefaultRules)
	services := server.Services{
		Auth:          auth.NewService(repo, jwt),
		Catalog:       catalog.NewCatalogService(repo),
		Auctions:      auctionSvc,
		Bidding:       bidding.NewBiddingService(repo, hub),
		Notifications: notification.NewNotificationService(repo),
		Live:          hub,
	}

	router := server.SetupRouter(services, server.Options{JWT: jwt, AllowedOrigins: cfg.Server.AllowedOrigins})
	srv := &http.Server{Addr: cfg.Server.Addr, Handler: router}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		utils.Info("Starting auction server", map[string]any{"addr": cfg.Server.Addr, "env": cfg.App.Env})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	if cfg.Scheduler.Enabled {
		runner := scheduler.New(gctx)
		if _, err := runner.Add(cfg.Scheduler.Spec, scheduler.PromoteJob(auctionSvc)); err != nil {
			utils.Fatal("invalid scheduler spec", map[string]any{"spec": cfg.Scheduler.Spec, "error": err.Error()})
		}
		runner.Start()
		g.Go(func() error {
			<-gctx.Done()
			runner.Stop()
			return nil
		})
	}

	g.Go(func() error {
		<-gctx.Done()
		utils.Info("Shutting down", nil)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownGrace)
		defer cancel()
		err := srv.Shutdown(shutdownCtx)
		hub.Shutdown()
		return err
	})

	if err := g.Wait(); err != nil {
		utils.Fatal("server stopped with error", map[string]any{"error": err.Error()})
	}
	utils.Info("Server stopped", nil)
}
