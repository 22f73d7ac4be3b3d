package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/vibe-gaming/cadastro/internal/service"
	"github.com/vibe-gaming/cadastro/pkg/logger"
)

func (h *Handler) initPostalRoutes(api *gin.RouterGroup) {
	postal := api.Group("/postal")
	postal.GET("/:zipcode", h.lookupZipcode)
}

// @Summary Lookup Zipcode
// @Tags Postal
// @Description Resolve a zipcode to street and locality
// @ModuleID lookupZipcode
// @Produce  json
// @Param zipcode path string true "Zipcode"
// @Success 200 {object} domain.Address
// @Failure 404 {object} ErrorStruct
// @Failure 502 {object} ErrorStruct
// @Router /postal/{zipcode} [get]
func (h *Handler) lookupZipcode(c *gin.Context) {
	address, err := h.services.Postal.Lookup(c.Request.Context(), c.Param("zipcode"))
	if err != nil {
		if errors.Is(err, service.ErrZipcodeNotFound) {
			errorResponse(c, http.StatusNotFound, ZipcodeNotFoundCode)
			return
		}
		logger.Error("postal lookup failed", zap.String("zipcode", c.Param("zipcode")), zap.Error(err))
		errorResponse(c, http.StatusBadGateway, LookupFailedCode)
		return
	}

	c.JSON(http.StatusOK, address)
}
