package server

import (
	"net/http"
	"net/url"

	auction "auction-spot/internal/auctionService"
	"auction-spot/internal/auth"
	bidding "auction-spot/internal/biddingService"
	catalog "auction-spot/internal/catalogService"
	"auction-spot/internal/livefeed"
	notification "auction-spot/internal/notificationService"
	auctionhandler "auction-spot/services/auction/handler"
	authhandler "auction-spot/services/auth/handler"
	biddinghandler "auction-spot/services/bidding/handler"
	cataloghandler "auction-spot/services/catalog/handler"
	livehandler "auction-spot/services/live/handler"
	notificationhandler "auction-spot/services/notification/handler"
	"auction-spot/utils"

	"github.com/gin-gonic/gin"
)

// Services groups everything the router dispatches to
type Services struct {
	Auth          *auth.Service
	Catalog       *catalog.CatalogService
	Auctions      *auction.AuctionService
	Bidding       *bidding.BiddingService
	Notifications *notification.NotificationService
	Live          *livefeed.Hub
}

// Options configures cross-cutting HTTP behaviour
type Options struct {
	JWT            auth.JWT
	AllowedOrigins []string
}

// SetupRouter configures all Gin routes for the application
func SetupRouter(svc Services, opts Options) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(CORSMiddleware(opts.AllowedOrigins))
	router.Use(auth.Middleware(opts.JWT))
	router.Use(RequestLoggerMiddleware) // custom request logging

	router.GET("/healthz", func(c *gin.Context) {
		utils.JSONResponse(c, http.StatusOK, gin.H{"ok": true}, "healthy")
	})

	authHandler := authhandler.NewAuthHandler(svc.Auth)
	catalogHandler := cataloghandler.NewCatalogHandler(svc.Catalog)
	auctionHandler := auctionhandler.NewAuctionHandler(svc.Auctions)
	biddingHandler := biddinghandler.NewBiddingHandler(svc.Bidding)
	notificationHandler := notificationhandler.NewNotificationHandler(svc.Notifications)
	liveHandler := livehandler.NewLiveHandler(svc.Auctions, svc.Live, originPatterns(opts.AllowedOrigins))

	api := router.Group("/api")

	api.POST("/auth/login", authHandler.LoginHandler)

	players := api.Group("/players")
	{
		players.GET("", catalogHandler.ListPlayersHandler)
		players.POST("", catalogHandler.CreatePlayerHandler)
		players.GET("/:player_id", catalogHandler.GetPlayerHandler)
		players.PUT("/:player_id", catalogHandler.UpdatePlayerHandler)
	}

	auctions := api.Group("/auctions")
	{
		auctions.GET("", auctionHandler.ListAuctionsHandler)
		auctions.POST("", auctionHandler.CreateAuctionHandler)
		auctions.GET("/:auction_id", auctionHandler.GetAuctionHandler)
		auctions.PATCH("/:auction_id/status", auctionHandler.UpdateStatusHandler)
		auctions.PATCH("/:auction_id/rules", auctionHandler.UpdateRulesHandler)
		auctions.GET("/:auction_id/timeline", auctionHandler.TimelineHandler)

		auctions.GET("/:auction_id/bids", biddingHandler.GetBidsHandler)
		auctions.POST("/:auction_id/bids", biddingHandler.PlaceBidHandler)
		auctions.POST("/:auction_id/players/:player_id/close", biddingHandler.ClosePlayerHandler)
		auctions.GET("/:auction_id/autobids", biddingHandler.GetAutoBidsHandler)
		auctions.POST("/:auction_id/autobids", biddingHandler.CreateAutoBidHandler)

		auctions.GET("/:auction_id/live", liveHandler.LiveHandler)
	}

	teams := api.Group("/teams")
	{
		teams.GET("", catalogHandler.ListTeamsHandler)
		teams.GET("/:team_id", catalogHandler.GetTeamHandler)
	}

	notifications := api.Group("/notifications")
	{
		notifications.GET("", notificationHandler.ListNotificationsHandler)
		notifications.POST("", notificationHandler.CreateNotificationHandler)
		notifications.PATCH("/:notification_id/read", notificationHandler.MarkReadHandler)
	}

	api.GET("/analytics/summary", catalogHandler.SummaryHandler)
	api.GET("/how-it-works", catalogHandler.HowItWorksHandler)

	return router
}

// originPatterns converts allowed origins into websocket host patterns
func originPatterns(allowed []string) []string {
	patterns := make([]string, 0, len(allowed))
	for _, o := range allowed {
		if o == "*" {
			return []string{"*"}
		}
		patterns = append(patterns, hostOf(o))
	}
	return patterns
}

func hostOf(origin string) string {
	u, err := url.Parse(origin)
	if err != nil || u.Host == "" {
		return origin
	}
	return u.Host
}
