package portfolio

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/inpirtalent/portfolio/posts"
	"github.com/inpirtalent/portfolio/views"
)

// dashboardMessages caps the contact messages listed on the dashboard.
const dashboardMessages = 50

var flashes = map[string]string{
	"created":         "Post created successfully",
	"updated":         "Post updated successfully",
	"deleted":         "Post deleted successfully",
	"delete-failed":   "Failed to delete post",
	"message-deleted": "Message deleted",
}

func (a *App) handleAdminLoginPage(c echo.Context) error {
	if IsAdmin(c) {
		return c.Redirect(http.StatusSeeOther, "/admin")
	}
	return Render(c, a.Views.AdminLogin(a.site(), views.Login{CSRF: CsrfToken(c)}))
}

func (a *App) handleAdminLogin(c echo.Context) error {
	username := strings.TrimSpace(c.FormValue("username"))
	err := a.login(c, username, c.FormValue("password"))
	if err == nil {
		return c.Redirect(http.StatusSeeOther, "/admin")
	}
	status, msg, ok := loginFailure(err)
	if !ok {
		return err
	}
	return RenderStatus(c, status, a.Views.AdminLogin(a.site(), views.Login{
		Username: username,
		Error:    msg,
		CSRF:     CsrfToken(c),
	}))
}

func handleAdminLogout(c echo.Context) error {
	if err := clearAdminSession(c); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/admin/login")
}

func (a *App) handleAdminDashboard(c echo.Context) error {
	ctx := c.Request().Context()
	dash := views.Dashboard{
		Flash: flashes[c.QueryParam("msg")],
		CSRF:  CsrfToken(c),
	}

	// The dashboard reads past the cache so edits show up immediately.
	all, err := a.Posts.ListAll(ctx)
	if err != nil {
		dash.Error = a.listingError(c, err)
	}
	dash.Posts = all

	msgs, err := a.Store.ListMessages(ctx, dashboardMessages)
	if err != nil {
		return err
	}
	if dash.MessageCount, err = a.Store.CountMessages(ctx); err != nil {
		return err
	}
	for _, m := range msgs {
		dash.Messages = append(dash.Messages, views.Message{
			ID:        m.ID,
			Name:      m.Name,
			Email:     m.Email,
			Body:      m.Message,
			CreatedAt: m.CreatedAt,
		})
	}
	return Render(c, a.Views.AdminDashboard(a.site(), dash))
}

func (a *App) postForm(c echo.Context, action, recordID string, in posts.Input) views.PostForm {
	return views.PostForm{
		Action:     action,
		RecordID:   recordID,
		Input:      in,
		Categories: posts.Categories,
		CSRF:       CsrfToken(c),
	}
}

func (a *App) handleAdminAddPage(c echo.Context) error {
	in := posts.Input{Date: time.Now().Format("2006-01-02")}
	return Render(c, a.Views.AdminPostForm(a.site(), a.postForm(c, "/admin/blog/add", "", in)))
}

func (a *App) handleAdminAdd(c echo.Context) error {
	var in posts.Input
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form")
	}
	if _, err := a.createPost(c.Request().Context(), in); err != nil {
		form := a.postForm(c, "/admin/blog/add", "", in)
		form.Error = a.formError(c, err, "Failed to create post. Please try again.")
		return RenderStatus(c, formStatus(err), a.Views.AdminPostForm(a.site(), form))
	}
	return c.Redirect(http.StatusSeeOther, "/admin?msg=created")
}

// handleAdminEditPage looks the post up by the id query value first, so a
// post whose title changed since the link was built is still found, then
// falls back to the slug.
func (a *App) handleAdminEditPage(c echo.Context) error {
	ctx := c.Request().Context()
	post, err := a.Cache.GetPostByID(ctx, c.QueryParam("id"))
	if errors.Is(err, posts.ErrNotFound) {
		post, err = a.Cache.GetPost(ctx, c.Param("slug"))
	}
	if errors.Is(err, posts.ErrNotFound) || errors.Is(err, posts.ErrNotConfigured) {
		return RenderStatus(c, http.StatusNotFound, a.Views.NotFound(a.site()))
	}
	if err != nil {
		return err
	}
	form := a.postForm(c, editAction(post.Slug), post.ID, posts.InputFrom(post))
	form.Slug = post.Slug
	return Render(c, a.Views.AdminPostForm(a.site(), form))
}

func (a *App) handleAdminEdit(c echo.Context) error {
	var in posts.Input
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form")
	}
	recordID := c.FormValue("recordId")
	if _, err := a.updatePost(c.Request().Context(), recordID, in); err != nil {
		form := a.postForm(c, editAction(c.Param("slug")), recordID, in)
		form.Slug = c.Param("slug")
		form.Error = a.formError(c, err, "Failed to update post. Please try again.")
		return RenderStatus(c, formStatus(err), a.Views.AdminPostForm(a.site(), form))
	}
	return c.Redirect(http.StatusSeeOther, "/admin?msg=updated")
}

func (a *App) handleAdminDelete(c echo.Context) error {
	if err := a.deletePost(c.Request().Context(), c.FormValue("recordId")); err != nil {
		c.Logger().Errorf("delete post: %v", err)
		return c.Redirect(http.StatusSeeOther, "/admin?msg=delete-failed")
	}
	return c.Redirect(http.StatusSeeOther, "/admin?msg=deleted")
}

func (a *App) handleAdminDeleteMessage(c echo.Context) error {
	id, err := strconv.ParseInt(c.FormValue("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid message id")
	}
	if err := a.Store.DeleteMessage(c.Request().Context(), id); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/admin?msg=message-deleted")
}

// formError picks the inline message for a failed form submission.
// Validation problems are shown as-is; anything else gets the generic text.
func (a *App) formError(c echo.Context, err error, generic string) string {
	var verr *posts.ValidationError
	switch {
	case errors.As(err, &verr):
		return verr.Error()
	case errors.Is(err, posts.ErrRecordIDRequired):
		return "Record ID is required"
	case errors.Is(err, posts.ErrNotConfigured):
		return "Airtable credentials not configured"
	case errors.Is(err, posts.ErrNotFound):
		return "Post not found"
	}
	c.Logger().Errorf("admin form: %v", err)
	return generic
}

func formStatus(err error) int {
	var verr *posts.ValidationError
	switch {
	case errors.As(err, &verr) || errors.Is(err, posts.ErrRecordIDRequired):
		return http.StatusBadRequest
	case errors.Is(err, posts.ErrNotFound):
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

func editAction(slug string) string {
	return "/admin/blog/edit/" + url.PathEscape(slug)
}
