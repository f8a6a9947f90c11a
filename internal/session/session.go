// Package session owns every key the application stores in the cookie
// session, so handlers never touch raw session keys. The cookie mechanics
// themselves are delegated to gin-contrib/sessions.
package session

import (
	"encoding/gob"

	"farmline/internal/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

const (
	CookieName = "farmline_session"

	keyUserID      = "user_id"
	keyUserName    = "user_name"
	keyUserType    = "user_type"
	keyResetUserID = "reset_user_id"
)

// Flash is a one-shot notice surfaced on the next rendered page.
type Flash struct {
	Level   string // "success" or "error"
	Message string
}

func init() {
	gob.Register(Flash{})
}

// Middleware installs the cookie-backed session store.
func Middleware(secret string) gin.HandlerFunc {
	store := cookie.NewStore([]byte(secret))
	store.Options(sessions.Options{
		Path:     "/",
		HttpOnly: true,
		MaxAge:   86400 * 7,
	})
	return sessions.Sessions(CookieName, store)
}

// Identity is the logged-in user's session state.
type Identity struct {
	UserID   uint
	UserName string
	UserType models.UserType
}

// Current returns the session identity, and whether a user is logged in.
func Current(c *gin.Context) (Identity, bool) {
	s := sessions.Default(c)

	id, ok := s.Get(keyUserID).(uint)
	if !ok || id == 0 {
		return Identity{}, false
	}

	name, _ := s.Get(keyUserName).(string)
	userType, _ := s.Get(keyUserType).(string)
	return Identity{UserID: id, UserName: name, UserType: models.UserType(userType)}, true
}

// SetCurrent establishes the logged-in state after authentication.
func SetCurrent(c *gin.Context, user *models.User) error {
	s := sessions.Default(c)
	s.Set(keyUserID, user.ID)
	s.Set(keyUserName, user.Name)
	s.Set(keyUserType, string(user.UserType))
	return s.Save()
}

// Clear removes all session state unconditionally.
func Clear(c *gin.Context) error {
	s := sessions.Default(c)
	s.Clear()
	return s.Save()
}

// SetResetUserID marks the session as mid password-reset for the given user.
func SetResetUserID(c *gin.Context, userID uint) error {
	s := sessions.Default(c)
	s.Set(keyResetUserID, userID)
	return s.Save()
}

// ResetUserID returns the pending password-reset user, if any.
func ResetUserID(c *gin.Context) (uint, bool) {
	s := sessions.Default(c)
	id, ok := s.Get(keyResetUserID).(uint)
	return id, ok && id != 0
}

// ClearResetUserID drops the reset marker once the flow completes.
func ClearResetUserID(c *gin.Context) error {
	s := sessions.Default(c)
	s.Delete(keyResetUserID)
	return s.Save()
}

// AddFlash queues a notice for the next rendered page.
func AddFlash(c *gin.Context, level, message string) error {
	s := sessions.Default(c)
	s.AddFlash(Flash{Level: level, Message: message})
	return s.Save()
}

// TakeFlashes consumes and returns all queued notices.
func TakeFlashes(c *gin.Context) []Flash {
	s := sessions.Default(c)
	raw := s.Flashes()
	if len(raw) == 0 {
		return nil
	}
	_ = s.Save() // persist the consumption

	flashes := make([]Flash, 0, len(raw))
	for _, f := range raw {
		if flash, ok := f.(Flash); ok {
			flashes = append(flashes, flash)
		}
	}
	return flashes
}
