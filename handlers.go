package portfolio

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/inpirtalent/portfolio/posts"
	"github.com/inpirtalent/portfolio/views"
)

// homeStep is how many more posts each "show more" click reveals.
const homeStep = 2

func (a *App) handleHome(c echo.Context) error {
	show := posts.DefaultLimit
	if n, err := strconv.Atoi(c.QueryParam("show")); err == nil && n > show {
		show = min(n, posts.MaxLimit)
	}

	return Render(c, a.Views.Home(a.site(), views.Home{
		Profile: a.Profile,
		Listing: a.homeListing(c, show),
		Contact: views.ContactForm{Sent: c.QueryParam("contact") == "sent"},
		CSRF:    CsrfToken(c),
	}))
}

// homeListing loads the first show posts for the home page. A failed load
// is reported inline instead of failing the whole page.
func (a *App) homeListing(c echo.Context, show int) views.Listing {
	listing := views.Listing{NextShow: min(show+homeStep, posts.MaxLimit)}
	page, err := a.Cache.Page(c.Request().Context(), show, 0)
	if err != nil {
		listing.Error = a.listingError(c, err)
		return listing
	}
	listing.Posts = page.Posts
	// The home page never lists more than MaxLimit posts; the rest are
	// reachable through the API.
	listing.HasMore = page.HasMore && show < posts.MaxLimit
	return listing
}

// listingError turns a failed listing into the message shown in place of
// the posts.
func (a *App) listingError(c echo.Context, err error) string {
	if errors.Is(err, posts.ErrNotConfigured) {
		return "Airtable credentials not configured"
	}
	c.Logger().Errorf("list posts: %v", err)
	return "Failed to fetch posts"
}

func (a *App) handleWriting(c echo.Context) error {
	post, err := a.Cache.GetPost(c.Request().Context(), c.Param("slug"))
	if errors.Is(err, posts.ErrNotFound) || errors.Is(err, posts.ErrNotConfigured) {
		return RenderStatus(c, http.StatusNotFound, a.Views.NotFound(a.site()))
	}
	if err != nil {
		return fmt.Errorf("get post %q: %w", c.Param("slug"), err)
	}
	return Render(c, a.Views.Article(a.site(), post.Article()))
}

func (a *App) handleRobots(c echo.Context) error {
	var b strings.Builder
	b.WriteString("User-agent: *\n")
	b.WriteString("Allow: /\n")
	b.WriteString("Disallow: /admin\n")
	b.WriteString("Disallow: /api/\n")
	b.WriteString("\nSitemap: " + views.BuildURL(a.Config.URL, "sitemap.xml") + "\n")
	return c.String(http.StatusOK, b.String())
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	code := http.StatusInternalServerError
	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
	}
	if code >= 500 {
		c.Logger().Errorf("server error: %v", err)
	}

	if isAPIPath(c.Request().URL.Path) {
		msg := http.StatusText(code)
		if he != nil && code < 500 {
			msg = fmt.Sprint(he.Message)
		}
		_ = c.JSON(code, apiError{Error: msg})
		return
	}
	switch {
	case code == http.StatusNotFound:
		_ = RenderStatus(c, code, a.Views.NotFound(a.site()))
	case code >= 500:
		_ = RenderStatus(c, code, a.Views.ServerError(a.site()))
	default:
		a.Echo.DefaultHTTPErrorHandler(err, c)
	}
}
