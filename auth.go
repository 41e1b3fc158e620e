package portfolio

import (
	"crypto/subtle"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
)

var (
	errAdminNotConfigured = errors.New("admin credentials not configured")
	errInvalidCredentials = errors.New("invalid credentials")
	errTooManyAttempts    = errors.New("too many login attempts")
)

// loginFailure returns the status and user-facing message for a login error.
// ok is false for errors that are not a login outcome.
func loginFailure(err error) (status int, msg string, ok bool) {
	switch {
	case errors.Is(err, errTooManyAttempts):
		return http.StatusTooManyRequests, "Too many login attempts. Try again later.", true
	case errors.Is(err, errInvalidCredentials):
		return http.StatusUnauthorized, "Invalid credentials", true
	case errors.Is(err, errAdminNotConfigured):
		return http.StatusInternalServerError, "Admin credentials not configured", true
	}
	return 0, "", false
}

// login checks the credentials against the configured admin account and
// starts an admin session. Failures count against the caller's IP.
func (a *App) login(c echo.Context, username, password string) error {
	ip := c.RealIP()
	if !a.loginLimiter.Check(ip) {
		return errTooManyAttempts
	}
	if a.Config.AdminUsername == "" || a.Config.AdminPassword == "" {
		return errAdminNotConfigured
	}
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(a.Config.AdminUsername))
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(a.Config.AdminPassword))
	if userOK&passOK != 1 {
		a.loginLimiter.Record(ip)
		c.Logger().Warnf("failed admin login from %s", ip)
		return errInvalidCredentials
	}
	if err := setAdminSession(c); err != nil {
		return err
	}
	a.loginLimiter.Reset(ip)
	return nil
}
