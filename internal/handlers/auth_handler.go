package handlers

import (
	"fmt"
	"net/http"

	"farmline/internal/middleware"
	"farmline/internal/services"
	"farmline/internal/services/dto"
	"farmline/internal/session"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	*BaseHandler
	authService services.AuthService
}

func NewAuthHandler(base *BaseHandler, authService services.AuthService) *AuthHandler {
	return &AuthHandler{
		BaseHandler: base,
		authService: authService,
	}
}

// RegisterRoutes wires the welcome page, registration, login/logout and the
// two-step password-reset flow.
func (h *AuthHandler) RegisterRoutes(r *gin.Engine) {
	r.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/welcome")
	})
	r.GET("/welcome", h.Welcome)

	r.GET("/register", h.ShowRegister)
	r.POST("/register", h.Register)
	r.GET("/login", h.ShowLogin)
	r.POST("/login", h.Login)
	r.GET("/logout", h.Logout)

	r.GET("/forgot_password", h.ShowForgotPassword)
	r.POST("/forgot_password", h.ForgotPassword)

	reset := r.Group("/reset_password")
	reset.Use(middleware.RequireResetMarker())
	{
		reset.GET("", h.ShowResetPassword)
		reset.POST("", h.ResetPassword)
	}
}

func (h *AuthHandler) Welcome(c *gin.Context) {
	if _, ok := session.Current(c); ok {
		c.Redirect(http.StatusFound, "/market")
		return
	}
	h.Render(c, "welcome", nil)
}

func (h *AuthHandler) ShowRegister(c *gin.Context) {
	h.Render(c, "register", nil)
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if !h.BindAndValidateForm(c, &req, "/register") {
		return
	}

	db := h.GetDB(c)

	if err := h.authService.Register(db, &req); err != nil {
		h.HandleServiceError(c, err, "/register")
		return
	}

	h.RedirectWithFlash(c, "/login", "success", "Registration successful! Please login.")
}

func (h *AuthHandler) ShowLogin(c *gin.Context) {
	h.Render(c, "login", nil)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !h.BindAndValidateForm(c, &req, "/login") {
		return
	}

	db := h.GetDB(c)

	user, err := h.authService.Login(db, &req)
	if err != nil {
		h.HandleServiceError(c, err, "/login")
		return
	}

	if err := session.SetCurrent(c, user); err != nil {
		h.HandleServiceError(c, err, "/login")
		return
	}

	h.RedirectWithFlash(c, "/market", "success", fmt.Sprintf("Welcome back, %s!", user.Name))
}

func (h *AuthHandler) Logout(c *gin.Context) {
	_ = session.Clear(c)
	h.RedirectWithFlash(c, "/welcome", "success", "You have been logged out successfully.")
}

func (h *AuthHandler) ShowForgotPassword(c *gin.Context) {
	h.Render(c, "forgot_password", nil)
}

func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req dto.ForgotPasswordRequest
	if !h.BindAndValidateForm(c, &req, "/forgot_password") {
		return
	}

	db := h.GetDB(c)

	userID, err := h.authService.VerifyResetIdentity(db, req.MobileNumber, req.DOB)
	if err != nil {
		h.HandleServiceError(c, err, "/forgot_password")
		return
	}

	if err := session.SetResetUserID(c, userID); err != nil {
		h.HandleServiceError(c, err, "/forgot_password")
		return
	}
	c.Redirect(http.StatusFound, "/reset_password")
}

func (h *AuthHandler) ShowResetPassword(c *gin.Context) {
	h.Render(c, "reset_password", nil)
}

func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req dto.ResetPasswordRequest
	if !h.BindAndValidateForm(c, &req, "/reset_password") {
		return
	}

	userID, ok := session.ResetUserID(c)
	if !ok {
		c.Redirect(http.StatusFound, "/forgot_password")
		return
	}

	db := h.GetDB(c)

	if err := h.authService.ResetPassword(db, userID, req.Password, req.ConfirmPassword); err != nil {
		h.HandleServiceError(c, err, "/reset_password")
		return
	}

	_ = session.ClearResetUserID(c)
	h.RedirectWithFlash(c, "/login", "success", "Password updated successfully! Please login.")
}
