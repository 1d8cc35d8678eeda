package discovery

import (
	"github.com/gin-gonic/gin"

	"github.com/LatoSzymon/AplikacjePrzemyslowe-DatingApp-sub000/internal/app"
)

// Registrar ties the discovery endpoints into the HTTP router.
type Registrar struct {
	appCtx *app.AppContext
}

// NewRegistrar creates a new Registrar for the discovery service.
func NewRegistrar(appCtx *app.AppContext) *Registrar {
	return &Registrar{appCtx: appCtx}
}

// Register attaches the discovery routes to the authenticated API group.
func (r *Registrar) Register(g *gin.RouterGroup) {
	handler := NewHandler(NewService(r.appCtx))
	g.GET("/discover", handler.List)
	g.GET("/discover/next", handler.Next)
}
