package gateway

import (
	"context"
	"net/http"

	"github.com/matthriscu/Blockchain-Fitness-ArchivingService/src/utils/config"
	monitor_gateway "github.com/matthriscu/Blockchain-Fitness-ArchivingService/src/utils/monitoring/gateway"
	"github.com/matthriscu/Blockchain-Fitness-ArchivingService/src/utils/multiversx"
	"github.com/matthriscu/Blockchain-Fitness-ArchivingService/src/utils/task"

	"github.com/gin-gonic/gin"
	"github.com/rs/xid"
)

// Rest API server, serves the read-only transaction listing
type Server struct {
	*task.Task

	httpServer *http.Server
	Router     *gin.Engine

	client  *multiversx.Client
	listing *Listing
	monitor *monitor_gateway.Monitor
}

func NewServer(config *config.Config) (self *Server) {
	self = new(Server)

	self.Task = task.NewTask(config, "server").
		WithSubtaskFunc(self.run).
		WithOnStop(self.stop)

	if !config.IsDevelopment {
		gin.SetMode(gin.ReleaseMode)
	}
	self.Router = gin.New()
	self.Router.Use(requestId())

	self.httpServer = &http.Server{
		Addr:    config.RESTListenAddress,
		Handler: self.Router,
	}

	return
}

func (self *Server) WithClient(v *multiversx.Client) *Server {
	self.client = v
	return self
}

func (self *Server) WithMonitor(monitor *monitor_gateway.Monitor) *Server {
	self.monitor = monitor
	return self
}

// Tags every request so that log lines can be correlated
func requestId() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := xid.New().String()
		c.Set("request_id", id)
		c.Header("X-Request-Id", id)
		c.Next()
	}
}

func (self *Server) run() (err error) {
	self.listing = NewListing(self.Config).
		WithClient(self.client).
		WithMonitor(self.monitor)

	v1 := self.Router.Group("v1")
	{
		v1.GET("health", self.monitor.OnGet)
		v1.GET("transactions", self.onGetTransactions)
	}

	err = self.httpServer.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		self.Log.WithError(err).Error("Failed to start REST server")
		return
	}
	return nil
}

func (self *Server) onGetTransactions(c *gin.Context) {
	transactions, err := self.listing.Get(c.Request.Context())
	if err != nil {
		self.Log.WithError(err).Error("Failed to list transactions")
		c.JSON(http.StatusBadGateway, gin.H{"error": "upstream gateway unavailable"})
		return
	}

	if self.monitor != nil {
		self.monitor.Report.Gateway.State.TransactionsReturned.Add(uint64(len(transactions)))
	}
	c.JSON(http.StatusOK, transactions)
}

func (self *Server) stop() {
	ctx, cancel := context.WithTimeout(context.Background(), self.Config.StopTimeout)
	defer cancel()

	err := self.httpServer.Shutdown(ctx)
	if err != nil {
		self.Log.WithError(err).Error("Failed to gracefully shutdown REST server")
		return
	}
}
