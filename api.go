package portfolio

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/inpirtalent/portfolio/posts"
)

type apiError struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

type postResponse struct {
	Success bool       `json:"success"`
	Post    posts.Post `json:"post"`
}

type articleResponse struct {
	Post posts.Article `json:"post"`
}

type successResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

type updateRequest struct {
	RecordID string `json:"recordId"`
	posts.Input
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (a *App) handleAPIListPosts(c echo.Context) error {
	limit := posts.ParseLimit(c.QueryParam("limit"))
	offset := posts.ParseOffset(c.QueryParam("offset"))
	page, err := a.Cache.Page(c.Request().Context(), limit, offset)
	if err != nil {
		return a.apiFailure(c, err, "Failed to fetch posts")
	}
	return c.JSON(http.StatusOK, page)
}

func (a *App) handleAPIGetPost(c echo.Context) error {
	post, err := a.Cache.GetPost(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return a.apiFailure(c, err, "Failed to fetch post")
	}
	return c.JSON(http.StatusOK, articleResponse{Post: post.Article()})
}

func (a *App) handleAPICreatePost(c echo.Context) error {
	var in posts.Input
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, apiError{Error: "Invalid request body"})
	}
	post, err := a.createPost(c.Request().Context(), in)
	if err != nil {
		return a.apiFailure(c, err, "Failed to create post")
	}
	return c.JSON(http.StatusCreated, postResponse{Success: true, Post: post})
}

func (a *App) handleAPIUpdatePost(c echo.Context) error {
	var req updateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apiError{Error: "Invalid request body"})
	}
	post, err := a.updatePost(c.Request().Context(), req.RecordID, req.Input)
	if errors.Is(err, posts.ErrRecordIDRequired) {
		return c.JSON(http.StatusBadRequest, apiError{Error: "Record ID is required for update"})
	}
	if err != nil {
		return a.apiFailure(c, err, "Failed to update post")
	}
	return c.JSON(http.StatusOK, postResponse{Success: true, Post: post})
}

func (a *App) handleAPIDeletePost(c echo.Context) error {
	err := a.deletePost(c.Request().Context(), c.QueryParam("recordId"))
	if errors.Is(err, posts.ErrRecordIDRequired) {
		return c.JSON(http.StatusBadRequest, apiError{Error: "Record ID is required for deletion"})
	}
	if err != nil {
		return a.apiFailure(c, err, "Failed to delete post")
	}
	return c.JSON(http.StatusOK, successResponse{Success: true, Message: "Post deleted successfully"})
}

func (a *App) handleAPILogin(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apiError{Error: "Invalid request body"})
	}
	err := a.login(c, strings.TrimSpace(req.Username), req.Password)
	if err == nil {
		return c.JSON(http.StatusOK, successResponse{Success: true})
	}
	if status, msg, ok := loginFailure(err); ok {
		return c.JSON(status, apiError{Error: msg})
	}
	return err
}

func handleAPILogout(c echo.Context) error {
	if err := clearAdminSession(c); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, successResponse{Success: true})
}

func handleAPIAuthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]bool{"authenticated": IsAdmin(c)})
}

// apiFailure maps a service error onto a JSON error response.
func (a *App) apiFailure(c echo.Context, err error, msg string) error {
	var verr *posts.ValidationError
	switch {
	case errors.Is(err, posts.ErrNotConfigured):
		return c.JSON(http.StatusInternalServerError, apiError{
			Error:   "Airtable credentials not configured",
			Details: "Missing AIRTABLE_TOKEN or AIRTABLE_BASE_ID environment variables",
		})
	case errors.As(err, &verr):
		title := "Missing required fields"
		if verr.Rule != "required" {
			title = "Invalid field"
		}
		return c.JSON(http.StatusBadRequest, apiError{Error: title, Details: verr.Error()})
	case errors.Is(err, posts.ErrNotFound):
		return c.JSON(http.StatusNotFound, apiError{Error: "Post not found"})
	}
	c.Logger().Errorf("%s: %v", msg, err)
	return c.JSON(http.StatusInternalServerError, apiError{Error: msg, Details: err.Error()})
}
