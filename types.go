package portfolio

import (
	"time"

	"github.com/a-h/templ"

	"github.com/inpirtalent/portfolio/posts"
	"github.com/inpirtalent/portfolio/views"
)

// ContactMessage is a message left through the contact form.
type ContactMessage struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name" form:"name" validate:"required,max=200"`
	Email     string    `json:"email" form:"email" validate:"required,email,max=320"`
	Message   string    `json:"message" form:"message" validate:"required,max=5000"`
	CreatedAt time.Time `json:"createdAt"`
}

// ViewFuncs holds the components the handlers render. Every field defaults
// to the matching page of the views package.
type ViewFuncs struct {
	Home           func(site views.Site, home views.Home) templ.Component
	Article        func(site views.Site, article posts.Article) templ.Component
	AdminLogin     func(site views.Site, login views.Login) templ.Component
	AdminDashboard func(site views.Site, dash views.Dashboard) templ.Component
	AdminPostForm  func(site views.Site, form views.PostForm) templ.Component
	NotFound       func(site views.Site) templ.Component
	ServerError    func(site views.Site) templ.Component
}

func defaultViews() ViewFuncs {
	return ViewFuncs{
		Home:           views.HomePage,
		Article:        views.ArticlePage,
		AdminLogin:     views.AdminLoginPage,
		AdminDashboard: views.AdminDashboardPage,
		AdminPostForm:  views.AdminPostFormPage,
		NotFound:       views.NotFoundPage,
		ServerError:    views.ServerErrorPage,
	}
}

func (v ViewFuncs) merge(o ViewFuncs) ViewFuncs {
	if o.Home != nil {
		v.Home = o.Home
	}
	if o.Article != nil {
		v.Article = o.Article
	}
	if o.AdminLogin != nil {
		v.AdminLogin = o.AdminLogin
	}
	if o.AdminDashboard != nil {
		v.AdminDashboard = o.AdminDashboard
	}
	if o.AdminPostForm != nil {
		v.AdminPostForm = o.AdminPostForm
	}
	if o.NotFound != nil {
		v.NotFound = o.NotFound
	}
	if o.ServerError != nil {
		v.ServerError = o.ServerError
	}
	return v
}
