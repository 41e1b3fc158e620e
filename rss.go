package portfolio

import (
	"encoding/xml"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/inpirtalent/portfolio/posts"
	"github.com/inpirtalent/portfolio/views"
)

// feedSize caps the number of items in the RSS feed.
const feedSize = 20

type rssXML struct {
	XMLName xml.Name   `xml:"rss"`
	Version string     `xml:"version,attr"`
	Channel rssChannel `xml:"channel"`
}

type rssChannel struct {
	Title       string    `xml:"title"`
	Link        string    `xml:"link"`
	Description string    `xml:"description"`
	Language    string    `xml:"language"`
	Items       []rssItem `xml:"item"`
}

type rssItem struct {
	Title       string `xml:"title"`
	Link        string `xml:"link"`
	Description string `xml:"description"`
	Category    string `xml:"category,omitempty"`
	PubDate     string `xml:"pubDate,omitempty"`
	GUID        string `xml:"guid"`
}

func (a *App) handleFeed(c echo.Context) error {
	all, err := a.Cache.ListPosts(c.Request().Context())
	if err != nil && !errors.Is(err, posts.ErrNotConfigured) {
		return fmt.Errorf("feed: %w", err)
	}
	return a.renderRSS(c, all)
}

func (a *App) renderRSS(c echo.Context, all []posts.Post) error {
	base := a.Config.URL
	items := make([]rssItem, 0, min(len(all), feedSize))
	for _, p := range all {
		if p.Title == "" {
			continue
		}
		if len(items) == feedSize {
			break
		}
		pubDate := ""
		if t, err := time.Parse("2006-01-02", p.Date); err == nil {
			pubDate = t.Format(time.RFC1123Z)
		}
		postURL := views.BuildURL(base, "writings", p.Slug)
		description := p.Excerpt
		if description == "" {
			description = p.Summary
		}
		items = append(items, rssItem{
			Title:       p.Title,
			Link:        postURL,
			Description: description,
			Category:    p.Category,
			PubDate:     pubDate,
			GUID:        postURL,
		})
	}
	feed := rssXML{
		Version: "2.0",
		Channel: rssChannel{
			Title:       a.Config.Name,
			Link:        views.BuildURL(base),
			Description: a.Config.Description,
			Language:    "en",
			Items:       items,
		},
	}
	c.Response().Header().Set(echo.HeaderContentType, "application/rss+xml; charset=utf-8")
	c.Response().WriteHeader(http.StatusOK)
	c.Response().Write([]byte(xml.Header))
	return xml.NewEncoder(c.Response()).Encode(feed)
}
