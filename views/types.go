package views

import (
	"slices"
	"time"

	"github.com/inpirtalent/portfolio/posts"
	"github.com/inpirtalent/portfolio/profile"
)

// Site holds the site-wide settings every page needs. Handlers copy it
// from the app config so nothing is hardcoded in templates.
type Site struct {
	Name        string
	URL         string
	Description string
	Author      string
	ThemeColor  string
}

// PageMeta carries per-page OpenGraph and SEO metadata into the <head> template.
type PageMeta struct {
	Title       string
	Description string
	URL         string // canonical + og:url
	OGType      string // "website" or "article"
}

// Listing is the blog section of the home page.
type Listing struct {
	Posts    []posts.Post
	HasMore  bool
	NextShow int
	Error    string
}

// ContactForm is the state of the home page contact form.
type ContactForm struct {
	Sent   bool
	Error  string
	Values ContactValues
}

type ContactValues struct {
	Name    string
	Email   string
	Message string
}

type Home struct {
	Profile profile.Profile
	Listing Listing
	Contact ContactForm
	CSRF    string
}

type Login struct {
	Username string
	Error    string
	CSRF     string
}

// Message is a contact message as shown on the dashboard.
type Message struct {
	ID        int64
	Name      string
	Email     string
	Body      string
	CreatedAt time.Time
}

// Dashboard lists every post and the newest messages. MessageCount is the
// total stored, which may exceed len(Messages).
type Dashboard struct {
	Posts        []posts.Post
	Messages     []Message
	MessageCount int
	Flash        string
	Error        string
	CSRF         string
}

// PostForm drives both the add and the edit form. RecordID is empty when
// adding.
type PostForm struct {
	Action     string
	RecordID   string
	Slug       string
	Input      posts.Input
	Categories []string
	Error      string
	CSRF       string
}

func (f PostForm) Editing() bool {
	return f.RecordID != ""
}

// CategoryOptions is the category menu, with the post's current category
// prepended when it is not one of the menu entries.
func (f PostForm) CategoryOptions() []string {
	cat := f.Input.Category
	if cat == "" || slices.Contains(f.Categories, cat) {
		return f.Categories
	}
	return append([]string{cat}, f.Categories...)
}
