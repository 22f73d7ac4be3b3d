package web

import (
	"errors"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/vibe-gaming/cadastro/internal/api/http/session"
	"github.com/vibe-gaming/cadastro/internal/config"
	"github.com/vibe-gaming/cadastro/internal/domain"
	"github.com/vibe-gaming/cadastro/internal/service"
	"github.com/vibe-gaming/cadastro/pkg/logger"
)

// toggle path segments are the input ids of the page
var toggleFields = map[string]string{
	"password":              domain.FieldPassword,
	"password-confirmation": domain.FieldPasswordConfirmation,
}

type Handler struct {
	forms     service.Forms
	config    *config.Config
	templates *template.Template
}

func NewHandler(forms service.Forms, cfg *config.Config) (*Handler, error) {
	templates, err := Templates()
	if err != nil {
		return nil, err
	}

	return &Handler{
		forms:     forms,
		config:    cfg,
		templates: templates,
	}, nil
}

func (h *Handler) Init(router *gin.Engine) {
	router.SetHTMLTemplate(h.templates)

	router.GET("/", h.formPage)
	router.POST("/", h.submit)
	router.POST("/zipcode", h.blurZipcode)
	router.POST("/toggle/:field", h.toggleVisibility)
}

func (h *Handler) formPage(c *gin.Context) {
	form, err := h.forms.Open(c.Request.Context(), session.ID(c, h.config.Session))
	if err != nil {
		h.fail(c, err)
		return
	}

	h.render(c, http.StatusOK, page{Form: form})
}

func (h *Handler) submit(c *gin.Context) {
	ctx := c.Request.Context()

	form, err := h.forms.SetFields(ctx, session.ID(c, h.config.Session), postedFields(c))
	if err != nil {
		h.fail(c, err)
		return
	}

	form, err = h.forms.Submit(ctx, form.ID)
	switch {
	case err == nil:
		h.render(c, http.StatusOK, page{Form: form, Registered: true})
	case errors.Is(err, service.ErrValidation):
		h.render(c, http.StatusUnprocessableEntity, page{Form: form})
	case errors.Is(err, service.ErrRegistrationFailed):
		h.render(c, http.StatusBadGateway, page{Form: form})
	default:
		h.fail(c, err)
	}
}

func (h *Handler) blurZipcode(c *gin.Context) {
	ctx := c.Request.Context()

	form, err := h.forms.SetFields(ctx, session.ID(c, h.config.Session), postedFields(c))
	if err != nil {
		h.fail(c, err)
		return
	}

	// a failed lookup leaves address and city as they were
	if _, err := h.forms.BlurZipcode(ctx, form.ID); err != nil && !errors.Is(err, service.ErrLookupFailed) {
		h.fail(c, err)
		return
	}

	h.redirect(c, form.ID)
}

func (h *Handler) toggleVisibility(c *gin.Context) {
	field, ok := toggleFields[c.Param("field")]
	if !ok {
		c.String(http.StatusNotFound, "Not found")
		return
	}

	ctx := c.Request.Context()

	form, err := h.forms.SetFields(ctx, session.ID(c, h.config.Session), postedFields(c))
	if err != nil {
		h.fail(c, err)
		return
	}

	if _, err := h.forms.ToggleVisibility(ctx, form.ID, field); err != nil {
		h.fail(c, err)
		return
	}

	h.redirect(c, form.ID)
}

// postedFields reads every user-editable field. An unchecked checkbox is not
// posted, so terms comes back empty and is stored as unchecked.
func postedFields(c *gin.Context) map[string]string {
	values := make(map[string]string, len(domain.FieldOrder))
	for _, field := range domain.FieldOrder {
		if domain.Editable(field) {
			values[field] = c.PostForm(field)
		}
	}
	return values
}

func (h *Handler) render(c *gin.Context, status int, p page) {
	session.Set(c, h.config.Session, p.Form.ID)
	c.HTML(status, formTemplate, p)
}

func (h *Handler) redirect(c *gin.Context, sessionID string) {
	session.Set(c, h.config.Session, sessionID)
	c.Redirect(http.StatusSeeOther, "/")
}

func (h *Handler) fail(c *gin.Context, err error) {
	logger.Error("form page request failed", zap.String("path", c.FullPath()), zap.Error(err))
	c.String(http.StatusInternalServerError, "Failed to process form")
}
