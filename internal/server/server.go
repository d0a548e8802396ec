package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"vmsched/internal/sched"
	"vmsched/internal/sim"
)

/* URL Consts
 */
const (
	RunURL        = "/api/simulation/run"
	AlgorithmsURL = "/api/simulation/algorithms"
	HealthzURL    = "/healthz"
	MetricsURL    = "/metrics"
)

// ErrorResponse is the body returned for a failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Server exposes a Simulator over HTTP.
type Server struct {
	router  *gin.Engine
	sim     *sim.Simulator
	listen  string
	metrics http.Handler
}

// New creates a Server and binds its handlers. A non-nil metricsHandler is
// served at MetricsURL.
func New(s *sim.Simulator, listen string, metricsHandler http.Handler) *Server {
	router := gin.New()
	router.Use(gin.Recovery(), allowAllOrigins())

	ser := &Server{
		router:  router,
		sim:     s,
		listen:  listen,
		metrics: metricsHandler,
	}
	ser.binder()
	return ser
}

// Handler returns the underlying http.Handler.
func (ser *Server) Handler() http.Handler { return ser.router }

// Run blocks serving HTTP on the configured address.
func (ser *Server) Run() error {
	log.WithField("listen", ser.listen).Info("Starting simulation server")
	return ser.router.Run(ser.listen)
}

func (ser *Server) binder() {
	ser.router.POST(RunURL, ser.runSimulation)
	ser.router.GET(AlgorithmsURL, ser.getAlgorithms)
	ser.router.GET(HealthzURL, func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	if ser.metrics != nil {
		ser.router.GET(MetricsURL, gin.WrapH(ser.metrics))
	}
}

func (ser *Server) runSimulation(c *gin.Context) {
	var req sim.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	res, err := ser.sim.Run(req)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Cause(err) == sim.ErrInvalidRequest {
			status = http.StatusBadRequest
		}
		log.WithError(err).Warn("Simulation request rejected")
		c.JSON(status, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, res)
}

func (ser *Server) getAlgorithms(c *gin.Context) {
	c.JSON(http.StatusOK, sched.AlgorithmNames())
}

// allowAllOrigins permits requests from any origin.
func allowAllOrigins() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
