package swipe

import (
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/LatoSzymon/AplikacjePrzemyslowe-DatingApp-sub000/internal/app"
	"github.com/LatoSzymon/AplikacjePrzemyslowe-DatingApp-sub000/internal/domain"
)

// Registrar ties the swipe endpoints into the HTTP router.
type Registrar struct {
	appCtx *app.AppContext
}

// NewRegistrar creates a new Registrar for the swipe service.
func NewRegistrar(appCtx *app.AppContext) *Registrar {
	return &Registrar{appCtx: appCtx}
}

// Register attaches the swipe routes and the swipetype binding rule.
func (r *Registrar) Register(g *gin.RouterGroup) {
	registerSwipeTypeRule()

	handler := NewHandler(NewService(r.appCtx))
	g.POST("/swipes", handler.Create)
	g.GET("/matches", handler.ListMatches)
	g.GET("/liked-me/count", handler.CountLikedMe)
}

func registerSwipeTypeRule() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("swipetype", func(fl validator.FieldLevel) bool {
			return domain.SwipeType(fl.Field().String()).Valid()
		})
	}
}
