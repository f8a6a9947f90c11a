package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"farmline/internal/logger"
	"farmline/internal/session"
	"farmline/internal/validator"
	"farmline/pkg/apperrors"
	"farmline/pkg/contextkeys"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type BaseHandler struct {
	validator *validator.Validator
}

func NewBaseHandler(v *validator.Validator) *BaseHandler {
	return &BaseHandler{validator: v}
}

// GetDB extracts the *gorm.DB (pool or injected transaction) from the gin
// context. Must be called by every handler that reaches a service.
func (h *BaseHandler) GetDB(c *gin.Context) *gorm.DB {
	dbKey := string(contextkeys.DBContextKey)

	val, ok := c.Get(dbKey)
	if !ok {
		logger.CtxError(c.Request.Context(), "critical error: db key not found in context", "key", dbKey)
		panic("critical error: DBMiddleware did not set the db key")
	}

	db, ok := val.(*gorm.DB)
	if !ok {
		logger.CtxError(c.Request.Context(), "critical error: db in context is not *gorm.DB", "key", dbKey, "type", fmt.Sprintf("%T", val))
		panic("critical error: db in context has incorrect type")
	}

	return db
}

// BindAndValidateForm binds a POSTed form into obj and validates it. On
// failure the user is sent back to backURL with an error notice.
func (h *BaseHandler) BindAndValidateForm(c *gin.Context, obj interface{}, backURL string) bool {
	ctx := c.Request.Context()

	if err := c.ShouldBind(obj); err != nil {
		logger.CtxWithError(ctx, "Failed to bind form body", err, "path", c.Request.URL.Path)
		h.RedirectWithFlash(c, backURL, "error", "Invalid form submission. Please try again.")
		return false
	}

	if err := h.validator.Validate(obj); err != nil {
		if vErr, ok := err.(*validator.ValidationError); ok {
			logger.CtxWarn(ctx, "Validation failed", "errors", vErr.Errors, "path", c.Request.URL.Path)
			h.RedirectWithFlash(c, backURL, "error", firstValidationMessage(vErr))
		} else {
			logger.CtxWithError(ctx, "Internal validator error", err, "path", c.Request.URL.Path)
			h.RedirectWithFlash(c, backURL, "error", "Something went wrong. Please try again.")
		}
		return false
	}
	return true
}

// HandleServiceError turns a service error into a flash notice and a
// redirect: authentication failures go to the login page, everything else
// back to backURL.
func (h *BaseHandler) HandleServiceError(c *gin.Context, err error, backURL string) {
	ctx := c.Request.Context()

	if appErr, ok := apperrors.AsAppError(err); ok {
		if appErr.HTTPCode >= http.StatusInternalServerError {
			logger.CtxWithError(ctx, "Internal server error", err, "path", c.Request.URL.Path)
		} else {
			logger.CtxWarn(ctx, "Service error",
				"error", appErr.Message,
				"code", appErr.Code,
				"path", c.Request.URL.Path,
			)
		}
		if appErr.Code == apperrors.CodeUnauthorized {
			backURL = "/login"
		}
	} else {
		logger.CtxWithError(ctx, "Internal server error", err, "path", c.Request.URL.Path)
	}

	h.RedirectWithFlash(c, backURL, "error", apperrors.UserMessage(err))
}

// RedirectWithFlash queues a notice and redirects.
func (h *BaseHandler) RedirectWithFlash(c *gin.Context, url, level, message string) {
	_ = session.AddFlash(c, level, message)
	c.Redirect(http.StatusFound, url)
}

// Render renders a page template with the session identity and pending
// flash notices merged into the data.
func (h *BaseHandler) Render(c *gin.Context, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	data["Flashes"] = session.TakeFlashes(c)
	if ident, ok := session.Current(c); ok {
		data["Identity"] = ident
	}
	c.HTML(http.StatusOK, name, data)
}

// ParseParamUint parses a numeric path parameter.
func ParseParamUint(c *gin.Context, key string) (uint, error) {
	valueStr := c.Param(key)
	value, err := strconv.ParseUint(valueStr, 10, 64)
	if err != nil {
		return 0, apperrors.NewBadRequestError("Invalid path parameter: " + key)
	}
	return uint(value), nil
}

func firstValidationMessage(vErr *validator.ValidationError) string {
	for field, msg := range vErr.Errors {
		return fmt.Sprintf("%s: %s", field, msg)
	}
	return "Validation failed"
}
