package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"invtrack/internal/dto"
	"invtrack/internal/service"
)

type ForecastHandler struct{ svc service.ForecastService }

func NewForecastHandler(svc service.ForecastService) *ForecastHandler {
	return &ForecastHandler{svc: svc}
}

// Predict always answers 200 for a well-formed request: bad series data and
// fitting failures degrade inside the service instead of erroring here.
func (h *ForecastHandler) Predict(c *gin.Context) {
	var req dto.ForecastRequest
	if !bindAndValidate(c, &req) {
		return
	}
	c.JSON(http.StatusOK, h.svc.Forecast(c.Request.Context(), req))
}
