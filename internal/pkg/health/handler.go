package health

import (
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/labstack/echo/v4"
)

// BuildInfo contains information about the build
type BuildInfo struct {
	Version     string    `json:"version"`
	ServiceName string    `json:"service_name"`
	GoVersion   string    `json:"go_version"`
	Hostname    string    `json:"hostname"`
	Storage     string    `json:"storage"`
	ServerTime  time.Time `json:"server_time"`
}

// NewPingHandler creates a handler for the ping endpoint. The storage field
// reports which credential store backend the process selected at boot.
func NewPingHandler(serviceName, storage string) echo.HandlerFunc {
	hostname, err := os.Hostname()
	if err != nil {
		hostname = "unknown"
	}

	buildInfo := BuildInfo{
		Version:     "development",
		ServiceName: serviceName,
		GoVersion:   runtime.Version(),
		Hostname:    hostname,
		Storage:     storage,
	}
	if version := os.Getenv("VERSION"); version != "" {
		buildInfo.Version = version
	}

	return func(c echo.Context) error {
		buildInfo.ServerTime = time.Now()
		return c.JSON(http.StatusOK, buildInfo)
	}
}

// RegisterHealthEndpoints registers the ping and health probe endpoints
func RegisterHealthEndpoints(e *echo.Echo, serviceName, storage string) {
	e.GET("/ping", NewPingHandler(serviceName, storage))

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})

	e.GET("/ready", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})
}
