package bootstrap

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	httpapi "github.com/meetsync/scheduler-backend/internal/api/http"
	"github.com/meetsync/scheduler-backend/internal/api/http/middleware"
	schedhttp "github.com/meetsync/scheduler-backend/internal/scheduling/http"
	"github.com/meetsync/scheduler-backend/internal/scheduling/service"
)

type RouterDeps struct {
	ServiceName    string
	Version        string
	TimeAPIURL     string
	CallbackSecret string
	AllowedOrigins []string
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.Default()

	if len(dep.AllowedOrigins) > 0 {
		corsCfg := cors.DefaultConfig()
		corsCfg.AllowOrigins = dep.AllowedOrigins
		corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "X-Request-Id", "X-Scheduler-Secret")
		r.Use(cors.New(corsCfg))
	}

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.TimeAPIURL)
	healthHandler.RegisterRoutes(r)

	api := r.Group("/api/v1")
	api.Use(middleware.RequestIDMiddleware())

	converter := service.NewConverterClient(dep.TimeAPIURL)
	scheduler := service.NewSchedulerService(converter)

	schedHandler := schedhttp.NewHandler(scheduler, dep.CallbackSecret)
	schedHandler.Register(api)

	return r
}
