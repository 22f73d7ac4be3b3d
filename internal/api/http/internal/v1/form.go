package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/vibe-gaming/cadastro/internal/api/http/session"
	"github.com/vibe-gaming/cadastro/internal/domain"
	"github.com/vibe-gaming/cadastro/internal/service"
	"github.com/vibe-gaming/cadastro/pkg/logger"
)

func (h *Handler) initFormRoutes(api *gin.RouterGroup) {
	form := api.Group("/form", h.sessionMiddleware)
	{
		form.GET("", h.getForm)
		form.PUT("/fields/:field", h.setField)
		form.POST("/visibility/:field", h.toggleVisibility)
		form.POST("/zipcode/blur", h.blurZipcode)
		form.POST("/submit", h.submitForm)
	}
}

type fieldRequest struct {
	Value string `json:"value" binding:"max=1024"`
} // @name FieldRequest

type submitResponse struct {
	Status string       `json:"status"`
	Form   *domain.Form `json:"form"`
} // @name SubmitResponse

// @Summary Get Form
// @Tags Form
// @Description Current form state of the session. Starts a new session when none is sent.
// @ModuleID getForm
// @Produce  json
// @Success 200 {object} domain.Form
// @Failure 500 {object} ErrorStruct
// @Security FormSession
// @Router /form [get]
func (h *Handler) getForm(c *gin.Context) {
	form, err := h.services.Forms.Open(c.Request.Context(), getSessionID(c))
	h.respond(c, form, err)
}

// @Summary Set Field
// @Tags Form
// @Description Store a typed value. phone, cpf and zipcode are masked like the form inputs. Passwords are never echoed back.
// @ModuleID setField
// @Accept  json
// @Produce  json
// @Param field path string true "Field name"
// @Param input body fieldRequest true "Value"
// @Success 200 {object} domain.Form
// @Failure 400 {object} ErrorStruct
// @Failure 500 {object} ErrorStruct
// @Security FormSession
// @Router /form/fields/{field} [put]
func (h *Handler) setField(c *gin.Context) {
	var req fieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, http.StatusBadRequest, InvalidRequestCode)
		return
	}

	form, err := h.services.Forms.SetField(c.Request.Context(), getSessionID(c), c.Param("field"), req.Value)
	h.respond(c, form, err)
}

// @Summary Toggle Password Visibility
// @Tags Form
// @Description Flip the masked/plaintext flag of password or password_confirmation
// @ModuleID toggleVisibility
// @Produce  json
// @Param field path string true "password or password_confirmation"
// @Success 200 {object} domain.Form
// @Failure 400 {object} ErrorStruct
// @Failure 500 {object} ErrorStruct
// @Security FormSession
// @Router /form/visibility/{field} [post]
func (h *Handler) toggleVisibility(c *gin.Context) {
	form, err := h.services.Forms.ToggleVisibility(c.Request.Context(), getSessionID(c), c.Param("field"))
	h.respond(c, form, err)
}

// @Summary Zipcode Blur
// @Tags Form
// @Description Look up the current zipcode and fill address and city
// @ModuleID blurZipcode
// @Produce  json
// @Success 200 {object} domain.Form
// @Failure 502 {object} ErrorStruct
// @Failure 500 {object} ErrorStruct
// @Security FormSession
// @Router /form/zipcode/blur [post]
func (h *Handler) blurZipcode(c *gin.Context) {
	form, err := h.services.Forms.BlurZipcode(c.Request.Context(), getSessionID(c))
	h.respond(c, form, err)
}

// @Summary Submit Form
// @Tags Form
// @Description Validate every field and send the registration. The form resets on success.
// @ModuleID submitForm
// @Produce  json
// @Success 200 {object} submitResponse
// @Failure 400 {object} ValidationErrorStruct
// @Failure 502 {object} ErrorStruct
// @Failure 500 {object} ErrorStruct
// @Security FormSession
// @Router /form/submit [post]
func (h *Handler) submitForm(c *gin.Context) {
	form, err := h.services.Forms.Submit(c.Request.Context(), getSessionID(c))
	if err != nil {
		h.respond(c, form, err)
		return
	}

	session.Set(c, h.config.Session, form.ID)
	c.JSON(http.StatusOK, submitResponse{Status: "registered", Form: form.Redacted()})
}

func (h *Handler) respond(c *gin.Context, form *domain.Form, err error) {
	if form != nil {
		session.Set(c, h.config.Session, form.ID)
	}

	switch {
	case err == nil:
		c.JSON(http.StatusOK, form.Redacted())
	case errors.Is(err, service.ErrValidation):
		validationErrorResponse(c, http.StatusBadRequest, form.Errors)
	case errors.Is(err, domain.ErrUnknownField):
		errorResponse(c, http.StatusBadRequest, UnknownFieldCode)
	case errors.Is(err, domain.ErrFieldReadOnly):
		errorResponse(c, http.StatusBadRequest, FieldReadOnlyCode)
	case errors.Is(err, service.ErrLookupFailed):
		errorResponse(c, http.StatusBadGateway, LookupFailedCode)
	case errors.Is(err, service.ErrRegistrationFailed):
		errorResponse(c, http.StatusBadGateway, RegistrationFailedCode)
	default:
		logger.Error("form request failed", zap.String("path", c.FullPath()), zap.Error(err))
		errorResponse(c, http.StatusInternalServerError, UnknownErrorCode)
	}
}
