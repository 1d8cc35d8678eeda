package server

import (
	"fmt"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/LatoSzymon/AplikacjePrzemyslowe-DatingApp-sub000/internal/app"
	"github.com/LatoSzymon/AplikacjePrzemyslowe-DatingApp-sub000/internal/middleware"
)

// NewRouter builds the gin engine: common middleware, a health probe, and
// the authenticated /api/v1 group all registrars attach to.
func NewRouter(appCtx *app.AppContext, registrars ...Registrar) *gin.Engine {
	if appCtx.Config.App.ENV == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.RequestLogger(appCtx.Logger),
		cors.Default(),
	)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")
	api.Use(middleware.AuthRequired(appCtx.Config.Auth.JWTSecret))
	for _, r := range registrars {
		r.Register(api)
	}

	return router
}

// StartHTTPServer boots the HTTP server on the configured address.
func StartHTTPServer(appCtx *app.AppContext, registrars ...Registrar) error {
	addr := fmt.Sprintf("%s:%s", appCtx.Config.HTTP.Host, appCtx.Config.HTTP.Port)
	return NewRouter(appCtx, registrars...).Run(addr)
}
