package views

import (
	"encoding/json"
	"html/template"
	"net/url"
	"path"
	"strconv"
	"strings"
	"time"

	"github.com/inpirtalent/portfolio/posts"
	"github.com/inpirtalent/portfolio/profile"
)

// BuildURL joins path segments onto a base URL.
func BuildURL(base string, pathSegments ...string) string {
	u, err := url.Parse(base)
	if err != nil {
		return base
	}
	u.Path = path.Join("/", u.Path, path.Join(pathSegments...))
	return u.String()
}

// WritingPath is the site-relative path of a post.
func WritingPath(slug string) string {
	return "/writings/" + url.PathEscape(slug)
}

// FormatDate renders an ISO date as "January 2, 2006". Anything that does
// not parse is returned unchanged.
func FormatDate(date string) string {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	return t.Format("January 2, 2006")
}

func jsonLD(data map[string]any) template.JS {
	data["@context"] = "https://schema.org"
	b, err := json.Marshal(data)
	if err != nil {
		return "{}"
	}
	return template.JS(b)
}

// WebsiteJsonLD produces a Schema.org WebSite block.
func WebsiteJsonLD(site Site) template.JS {
	data := map[string]any{
		"@type": "WebSite",
		"name":  site.Name,
		"url":   BuildURL(site.URL),
	}
	if site.Description != "" {
		data["description"] = site.Description
	}
	if site.Author != "" {
		data["publisher"] = map[string]string{"@type": "Person", "name": site.Author}
	}
	return jsonLD(data)
}

// PersonJsonLD produces a Schema.org Person block from the profile.
func PersonJsonLD(site Site, p profile.Profile) template.JS {
	var sameAs []string
	for _, l := range p.Links {
		if strings.HasPrefix(l.URL, "http") {
			sameAs = append(sameAs, l.URL)
		}
	}
	data := map[string]any{
		"@type":    "Person",
		"name":     p.Name,
		"url":      BuildURL(site.URL),
		"jobTitle": p.Headline,
	}
	if p.Description != "" {
		data["description"] = p.Description
	}
	if p.Email != "" {
		data["email"] = p.Email
	}
	if len(sameAs) > 0 {
		data["sameAs"] = sameAs
	}
	if len(p.KnowsAbout) > 0 {
		data["knowsAbout"] = p.KnowsAbout
	}
	return jsonLD(data)
}

// BlogPostingJsonLD produces a Schema.org BlogPosting block for an article.
func BlogPostingJsonLD(site Site, a posts.Article) template.JS {
	postURL := BuildURL(site.URL, "writings", a.Slug)
	data := map[string]any{
		"@type":         "BlogPosting",
		"headline":      a.Title,
		"description":   a.Excerpt,
		"datePublished": a.Date,
		"url":           postURL,
		"mainEntityOfPage": map[string]string{
			"@type": "WebPage",
			"@id":   postURL,
		},
	}
	if a.Category != "" {
		data["articleSection"] = a.Category
	}
	if site.Author != "" {
		data["author"] = map[string]string{"@type": "Person", "name": site.Author}
	}
	if a.ReadTime > 0 {
		data["timeRequired"] = "PT" + strconv.FormatFloat(a.ReadTime, 'f', -1, 64) + "M"
	}
	return jsonLD(data)
}
