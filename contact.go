package portfolio

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/inpirtalent/portfolio/posts"
	"github.com/inpirtalent/portfolio/views"
)

// contactMaxPerHour caps contact submissions per client IP.
const contactMaxPerHour = 5

var errContactRateLimited = errors.New("too many messages, try again later")

// contactError is a rejected contact message.
type contactError struct {
	field string
	rule  string
}

func (e *contactError) Error() string {
	switch e.rule {
	case "required":
		return fmt.Sprintf("%s is required", strings.ToLower(e.field))
	case "email":
		return "email must be a valid address"
	case "max":
		return fmt.Sprintf("%s is too long", strings.ToLower(e.field))
	default:
		return fmt.Sprintf("%s is invalid", strings.ToLower(e.field))
	}
}

func (a *App) saveContact(ctx context.Context, m ContactMessage) (ContactMessage, error) {
	m = ContactMessage{
		Name:    strings.TrimSpace(m.Name),
		Email:   strings.TrimSpace(m.Email),
		Message: strings.TrimSpace(m.Message),
	}
	if err := a.validate.Struct(m); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			return ContactMessage{}, &contactError{field: fieldErrs[0].Field(), rule: fieldErrs[0].Tag()}
		}
		return ContactMessage{}, err
	}
	saved, err := a.Store.SaveMessage(ctx, m)
	if err != nil {
		return ContactMessage{}, fmt.Errorf("save contact message: %w", err)
	}
	a.Echo.Logger.Infof("contact message %d from %s", saved.ID, saved.Email)
	return saved, nil
}

func (a *App) handleContactForm(c echo.Context) error {
	var m ContactMessage
	if err := c.Bind(&m); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form")
	}
	if !a.contactLimiter.Allow(c.RealIP()) {
		return a.renderContactError(c, http.StatusTooManyRequests, errContactRateLimited, m)
	}
	_, err := a.saveContact(c.Request().Context(), m)
	var cerr *contactError
	if errors.As(err, &cerr) {
		return a.renderContactError(c, http.StatusBadRequest, cerr, m)
	}
	if err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/?contact=sent#contact")
}

func (a *App) renderContactError(c echo.Context, status int, cause error, m ContactMessage) error {
	return RenderStatus(c, status, a.Views.Home(a.site(), views.Home{
		Profile: a.Profile,
		Listing: a.homeListing(c, posts.DefaultLimit),
		Contact: views.ContactForm{
			Error:  "ERROR: " + strings.ToUpper(cause.Error()),
			Values: views.ContactValues{Name: m.Name, Email: m.Email, Message: m.Message},
		},
		CSRF: CsrfToken(c),
	}))
}

func (a *App) handleAPIContact(c echo.Context) error {
	var m ContactMessage
	if err := c.Bind(&m); err != nil {
		return c.JSON(http.StatusBadRequest, apiError{Error: "Invalid request body"})
	}
	if !a.contactLimiter.Allow(c.RealIP()) {
		return c.JSON(http.StatusTooManyRequests, apiError{Error: "Too many messages. Try again later."})
	}
	saved, err := a.saveContact(c.Request().Context(), m)
	var cerr *contactError
	if errors.As(err, &cerr) {
		return c.JSON(http.StatusBadRequest, apiError{Error: "Invalid contact message", Details: cerr.Error()})
	}
	if err != nil {
		c.Logger().Errorf("contact: %v", err)
		return c.JSON(http.StatusInternalServerError, apiError{Error: "Failed to send message"})
	}
	return c.JSON(http.StatusCreated, successResponse{Success: true, Message: fmt.Sprintf("Message %d received", saved.ID)})
}
