package portfolio

import (
	"encoding/xml"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/inpirtalent/portfolio/posts"
	"github.com/inpirtalent/portfolio/views"
)

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod,omitempty"`
	ChangeFreq string `xml:"changefreq,omitempty"`
	Priority   string `xml:"priority,omitempty"`
}

func (a *App) handleSitemap(c echo.Context) error {
	all, err := a.Cache.ListPosts(c.Request().Context())
	if err != nil {
		// The home page is still worth listing when the store is down.
		c.Logger().Errorf("sitemap: list posts: %v", err)
		all = nil
	}
	return a.renderSitemap(c, all)
}

func (a *App) renderSitemap(c echo.Context, all []posts.Post) error {
	base := a.Config.URL
	urls := []sitemapURL{{
		Loc:        views.BuildURL(base),
		LastMod:    time.Now().UTC().Format("2006-01-02"),
		ChangeFreq: "weekly",
		Priority:   "1.0",
	}}
	for _, p := range all {
		if p.Title == "" {
			continue
		}
		urls = append(urls, sitemapURL{
			Loc:        views.BuildURL(base, "writings", p.Slug),
			LastMod:    p.Date,
			ChangeFreq: "monthly",
			Priority:   "0.8",
		})
	}
	sitemap := sitemapURLSet{
		XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  urls,
	}
	c.Response().Header().Set(echo.HeaderContentType, "application/xml; charset=utf-8")
	c.Response().WriteHeader(http.StatusOK)
	c.Response().Write([]byte(xml.Header))
	return xml.NewEncoder(c.Response()).Encode(sitemap)
}
