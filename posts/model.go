package posts

import "strings"

// Categories is the fixed menu offered by the admin form.
var Categories = []string{
	"Full-Stack",
	"Backend",
	"Frontend",
	"Automation",
	"Marketing",
	"Development",
}

// Post is one blog record. Slug is derived from Title on every read and is
// never written back to the record store.
type Post struct {
	ID       string  `json:"id"`
	Title    string  `json:"title"`
	Slug     string  `json:"slug"`
	Date     string  `json:"date"`
	Category string  `json:"category"`
	Excerpt  string  `json:"excerpt"`
	Content  string  `json:"content"`
	Summary  string  `json:"summary"`
	ReadTime float64 `json:"readTime"`
}

// Article is the detail view of a post with its content split into paragraphs.
type Article struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Slug     string   `json:"slug"`
	Date     string   `json:"date"`
	Category string   `json:"category"`
	Excerpt  string   `json:"excerpt"`
	Content  []string `json:"content"`
	Summary  string   `json:"summary"`
	ReadTime float64  `json:"readTime"`
}

// Article paragraphs the post content.
func (p Post) Article() Article {
	return Article{
		ID:       p.ID,
		Title:    p.Title,
		Slug:     p.Slug,
		Date:     p.Date,
		Category: p.Category,
		Excerpt:  p.Excerpt,
		Content:  Paragraphs(p.Content),
		Summary:  p.Summary,
		ReadTime: p.ReadTime,
	}
}

// Input carries the editable fields of a post. All of them are required.
type Input struct {
	Title    string `json:"title" form:"title" validate:"required"`
	Date     string `json:"date" form:"date" validate:"required,datetime=2006-01-02"`
	Category string `json:"category" form:"category" validate:"required"`
	Excerpt  string `json:"excerpt" form:"excerpt" validate:"required"`
	Content  string `json:"content" form:"content" validate:"required"`
}

func (in Input) trimmed() Input {
	return Input{
		Title:    strings.TrimSpace(in.Title),
		Date:     strings.TrimSpace(in.Date),
		Category: strings.TrimSpace(in.Category),
		Excerpt:  strings.TrimSpace(in.Excerpt),
		Content:  strings.TrimSpace(in.Content),
	}
}

// InputFrom returns the editable fields of p, for prefilling forms.
func InputFrom(p Post) Input {
	return Input{
		Title:    p.Title,
		Date:     p.Date,
		Category: p.Category,
		Excerpt:  p.Excerpt,
		Content:  p.Content,
	}
}
