package portfolio

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type manifestIcon struct {
	Src   string `json:"src"`
	Sizes string `json:"sizes"`
	Type  string `json:"type"`
}

type webManifest struct {
	Name            string         `json:"name"`
	ShortName       string         `json:"short_name"`
	Description     string         `json:"description"`
	StartURL        string         `json:"start_url"`
	Display         string         `json:"display"`
	BackgroundColor string         `json:"background_color"`
	ThemeColor      string         `json:"theme_color"`
	Icons           []manifestIcon `json:"icons"`
	Categories      []string       `json:"categories"`
	Lang            string         `json:"lang"`
	Dir             string         `json:"dir"`
	Orientation     string         `json:"orientation"`
}

func (a *App) handleManifest(c echo.Context) error {
	c.Response().Header().Set(echo.HeaderContentType, "application/manifest+json; charset=utf-8")
	return c.JSON(http.StatusOK, webManifest{
		Name:            a.Config.Name,
		ShortName:       a.Config.Author,
		Description:     a.Config.Description,
		StartURL:        "/",
		Display:         "standalone",
		BackgroundColor: "#000000",
		ThemeColor:      a.Config.ThemeColor,
		Icons: []manifestIcon{
			{Src: "/public/icon.svg", Sizes: "any", Type: "image/svg+xml"},
		},
		Categories:  []string{"portfolio", "developer", "technology"},
		Lang:        "en",
		Dir:         "ltr",
		Orientation: "any",
	})
}
