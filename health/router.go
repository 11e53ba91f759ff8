package health

import (
	"net"
	"net/http"
	"time"

	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	reuseport "github.com/kavu/go_reuseport"
	"go.uber.org/zap"

	"github.com/luma/rollcall/rollup"
)

type StatsSource interface {
	Stats() rollup.Stats
}

// NewRouter serves /ping and /health. /health reports the loop's counters.
func NewRouter(debugHTTP bool, log *zap.Logger, stats StatsSource) *gin.Engine {
	gin.DisableConsoleColor()
	if !debugHTTP {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Add a ginzap middleware, which:
	//   - Logs all requests, like a combined access and error log.
	//   - RFC3339 with UTC time format.
	r.Use(ginzap.GinzapWithConfig(log, &ginzap.Config{
		TimeFormat: time.RFC3339,
		UTC:        true,
		SkipPaths:  []string{"/ping"},
	}))

	// Logs all panic to error log
	//   - stack means whether output the stack info.
	r.Use(ginzap.RecoveryWithZap(log, true))

	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, stats.Stats())
	})

	return r
}

// Listen opens a SO_REUSEPORT listener so a restarted process can bind
// before the old one has let go.
func Listen(addr string) (net.Listener, error) {
	return reuseport.Listen("tcp", addr)
}
