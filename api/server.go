package api

import (
	"context"
	"crypto/rsa"
	"net/http"
	"time"

	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/bitmark-inc/exchange-api/exchange"
	"github.com/bitmark-inc/exchange-api/logmodule"
	"github.com/bitmark-inc/exchange-api/store"
	"github.com/bitmark-inc/exchange-api/utils"
)

var log *logrus.Entry

func init() {
	log = logrus.WithField("prefix", "gin")
}

// LiveHub upgrades an authenticated request into a realtime notification stream
type LiveHub interface {
	Serve(w http.ResponseWriter, r *http.Request, accountID string, since time.Time) error
}

// Server to run a http server instance
type Server struct {
	// Server instance
	server *http.Server

	// Stores
	store store.ExchangeCore
	mongo store.MongoStore

	// Core service
	exchange exchange.Exchange

	// Realtime notifications
	hub LiveHub

	// JWT private key
	jwtPrivateKey *rsa.PrivateKey

	clock utils.Clock
}

// NewServer new instance of server
func NewServer(
	core store.ExchangeCore,
	mongo store.MongoStore,
	ex exchange.Exchange,
	hub LiveHub,
	jwtKey *rsa.PrivateKey) *Server {
	return &Server{
		store:         core,
		mongo:         mongo,
		exchange:      ex,
		hub:           hub,
		jwtPrivateKey: jwtKey,
		clock:         utils.NewSystemClock(),
	}
}

// Run to run the server
func (s *Server) Run(addr string) error {
	s.server = &http.Server{
		Addr:    addr,
		Handler: s.setupRouter(),
	}

	return s.server.ListenAndServe()
}

func (s *Server) corsConfig() cors.Config {
	config := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PATCH"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", "Client-Type", "Client-Version"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if origins := viper.GetStringSlice("cors.origins"); len(origins) > 0 {
		config.AllowOrigins = origins
	} else {
		config.AllowAllOrigins = true
	}
	return config
}

func (s *Server) setupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(sentrygin.New(sentrygin.Options{
		Repanic:         true,
		WaitForDelivery: false,
		Timeout:         10 * time.Second,
	}))

	apiRoute := r.Group("/api")
	apiRoute.Use(logmodule.Ginrus("API"))
	apiRoute.Use(cors.New(s.corsConfig()))
	apiRoute.GET("/information", s.information)

	// api route other than `/information` will apply the following middleware
	apiRoute.Use(s.clientVersionGateway())

	apiRoute.POST("/accounts", s.accountRegister)
	apiRoute.POST("/auth", s.login)
	apiRoute.POST("/auth/refresh", s.refreshToken)

	// api route other than registration and `/auth` will apply the following middleware
	apiRoute.Use(s.authMiddleware())
	apiRoute.Use(s.recognizeAccountMiddleware())

	apiRoute.POST("/auth/logout", s.logout)
	apiRoute.GET("/accounts/me", s.accountDetail)

	itemRoute := apiRoute.Group("/items")
	{
		itemRoute.POST("", s.createItem)
		itemRoute.GET("", s.listItems)
		itemRoute.GET("/:itemID", s.getItem)
		itemRoute.PATCH("/:itemID/moderation", s.moderateItem)
	}

	requestRoute := apiRoute.Group("/requests")
	{
		requestRoute.POST("", s.createRequest)
		requestRoute.GET("", s.listRequests)
		requestRoute.GET("/:requestID", s.getRequest)
		requestRoute.POST("/:requestID/approve", s.approveRequest)
		requestRoute.POST("/:requestID/reject", s.rejectRequest)
	}

	transactionRoute := apiRoute.Group("/transactions")
	{
		transactionRoute.GET("", s.listTransactions)
		transactionRoute.GET("/:transactionID", s.getTransaction)
		transactionRoute.GET("/:transactionID/qrcode", s.transactionQRCode)
		transactionRoute.POST("/:transactionID/verify", s.verifyTransaction)
		transactionRoute.POST("/:transactionID/reject", s.rejectTransaction)
		transactionRoute.POST("/:transactionID/ratings", s.rateTransaction)
		transactionRoute.POST("/:transactionID/reports", s.reportTransaction)
	}

	notificationRoute := apiRoute.Group("/notifications")
	{
		notificationRoute.GET("", s.listNotifications)
		notificationRoute.GET("/ws", s.notificationStream)
		notificationRoute.PATCH("/:notificationID/read", s.markNotificationRead)
		notificationRoute.POST("/read-all", s.markAllNotificationsRead)
	}

	secretRoute := r.Group("/secret")
	secretRoute.Use(logmodule.Ginrus("Secret"))
	secretRoute.Use(s.apikeyAuthentication(viper.GetString("server.apikey.admin")))
	{
		secretRoute.POST("/items/:itemID/expire", s.adminExpireItem)
	}

	r.GET("/healthz", s.healthz)

	return r
}

// Shutdown to shutdown the server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// shouldInterupt sends error message and determine if it should interupt the current flow
func shouldInterupt(err error, c *gin.Context) bool {
	if err == nil {
		return false
	}

	abortWithError(c, err)
	return true
}

func (s *Server) healthz(c *gin.Context) {
	if err := s.store.Ping(); err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}
	if err := s.mongo.Ping(); err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "OK",
		"version": viper.GetString("server.version"),
	})
}

func (s *Server) information(c *gin.Context) {
	responseOK(c, map[string]interface{}{
		"server": map[string]interface{}{
			"version": viper.GetString("server.version"),
		},
		"android":        viper.GetStringMap("clients.android"),
		"ios":            viper.GetStringMap("clients.ios"),
		"system_version": "Exchange 0.1",
	})
}

// adminExpireItem is an internal only api to expire an item out of the
// workflow schedule
func (s *Server) adminExpireItem(c *gin.Context) {
	expired, err := s.exchange.ExpireItem(c.Request.Context(), c.Param("itemID"))
	if shouldInterupt(err, c) {
		return
	}

	responseOK(c, gin.H{"expired": expired})
}
