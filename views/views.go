// Package views renders the site's HTML pages. Page markup lives in
// embedded html/template files; every page is exposed as a templ.Component
// so handlers render all output the same way.
package views

import (
	"bytes"
	"context"
	"embed"
	"html/template"
	"io"
	"strings"

	"github.com/a-h/templ"

	"github.com/inpirtalent/portfolio/markdown"
	"github.com/inpirtalent/portfolio/posts"
)

//go:embed templates/*.html
var templateFS embed.FS

var funcs = template.FuncMap{
	"formatDate":  FormatDate,
	"writingPath": WritingPath,
	"upper":       strings.ToUpper,
	"external": func(u string) bool {
		return strings.HasPrefix(u, "http://") || strings.HasPrefix(u, "https://")
	},
	"inline": func(s string) template.HTML {
		return template.HTML(markdown.FormatInline(s))
	},
	"paragraphs": func(paras []string) template.HTML {
		var buf bytes.Buffer
		markdown.RenderParagraphs(&buf, paras)
		return template.HTML(buf.String())
	},
}

// pages maps each page template to its own clone of the shared layout.
var pages = parsePages(
	"home.html",
	"article.html",
	"notfound.html",
	"error.html",
	"admin_login.html",
	"admin_dashboard.html",
	"admin_form.html",
)

func parsePages(names ...string) map[string]*template.Template {
	base := template.Must(template.New("layout.html").Funcs(funcs).ParseFS(templateFS, "templates/layout.html"))
	out := make(map[string]*template.Template, len(names))
	for _, name := range names {
		out[name] = template.Must(template.Must(base.Clone()).ParseFS(templateFS, "templates/"+name))
	}
	return out
}

// page is the value every template executes against.
type page struct {
	Site     Site
	Meta     PageMeta
	JSONLD   []template.JS
	Snippets []string
	Admin    bool
	Data     any
}

func render(name string, p page) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return pages[name].ExecuteTemplate(w, "layout", p)
	})
}

func meta(site Site, title, description, path, ogType string) PageMeta {
	if description == "" {
		description = site.Description
	}
	full := site.Name
	if title != "" {
		full = title + " | " + site.Name
	}
	return PageMeta{
		Title:       full,
		Description: description,
		URL:         BuildURL(site.URL, path),
		OGType:      ogType,
	}
}

func HomePage(site Site, h Home) templ.Component {
	return render("home.html", page{
		Site:     site,
		Meta:     meta(site, "", h.Profile.Description, "", "website"),
		JSONLD:   []template.JS{PersonJsonLD(site, h.Profile), WebsiteJsonLD(site)},
		Snippets: h.Profile.Snippets,
		Data:     h,
	})
}

func ArticlePage(site Site, a posts.Article) templ.Component {
	return render("article.html", page{
		Site:   site,
		Meta:   meta(site, a.Title, a.Excerpt, "/writings/"+a.Slug, "article"),
		JSONLD: []template.JS{BlogPostingJsonLD(site, a)},
		Data:   a,
	})
}

func NotFoundPage(site Site) templ.Component {
	return render("notfound.html", page{Site: site, Meta: meta(site, "Not Found", "", "", "website")})
}

func ServerErrorPage(site Site) templ.Component {
	return render("error.html", page{Site: site, Meta: meta(site, "Error", "", "", "website")})
}

func AdminLoginPage(site Site, l Login) templ.Component {
	return render("admin_login.html", page{
		Site:  site,
		Meta:  meta(site, "Admin Login", "", "/admin/login", "website"),
		Admin: true,
		Data:  l,
	})
}

func AdminDashboardPage(site Site, d Dashboard) templ.Component {
	return render("admin_dashboard.html", page{
		Site:  site,
		Meta:  meta(site, "Admin", "", "/admin", "website"),
		Admin: true,
		Data:  d,
	})
}

func AdminPostFormPage(site Site, f PostForm) templ.Component {
	title := "Add Post"
	if f.Editing() {
		title = "Edit Post"
	}
	return render("admin_form.html", page{
		Site:  site,
		Meta:  meta(site, title, "", f.Action, "website"),
		Admin: true,
		Data:  f,
	})
}
