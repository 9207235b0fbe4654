package adaptor

import (
	"net/http"

	"labour-market/pkg/utils"

	"go.uber.org/zap"
)

type HomeHandler struct {
	log *zap.Logger
}

func NewHomeHandler(log *zap.Logger) *HomeHandler {
	return &HomeHandler{
		log: log.With(zap.String("handler", "home")),
	}
}

// Index handles GET / (public landing view)
func (h *HomeHandler) Index(w http.ResponseWriter, r *http.Request) {
	message := utils.PopFlash(w, r)
	if message == "" {
		message = "Welcome to the labour market"
	}

	utils.ResponseSuccess(w, message, map[string]string{
		"signup": "/signup",
		"login":  "/login",
	})
}
