package config

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewRouter builds the gin engine with CORS for the browser client.
func NewRouter(cfg *Config) *gin.Engine {
	if cfg.Env == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()

	configCors := cors.DefaultConfig()
	configCors.AddAllowHeaders("Authorization", "X-Request-ID")
	configCors.AddExposeHeaders("X-Request-ID", "Content-Disposition")
	if len(cfg.CORSOrigins) == 0 || cfg.CORSOrigins[0] == "*" {
		configCors.AllowAllOrigins = true
	} else {
		configCors.AllowOrigins = cfg.CORSOrigins
		configCors.AllowCredentials = true
	}
	router.Use(cors.New(configCors))

	router.SetTrustedProxies(nil)

	return router
}
