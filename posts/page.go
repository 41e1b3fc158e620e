package posts

import "strconv"

const (
	DefaultLimit = 4
	MaxLimit     = 100
)

// Page is one slice of the date-ordered post list. Offset is where the
// next page starts.
type Page struct {
	Posts   []Post `json:"posts"`
	HasMore bool   `json:"hasMore"`
	Offset  int    `json:"offset"`
	Total   int    `json:"-"`
}

// Paginate returns all[offset:offset+limit], clamped to the list bounds.
// Offsets up to math.MaxInt are accepted without overflow.
func Paginate(all []Post, limit, offset int) Page {
	limit = clampLimit(limit)
	if offset < 0 {
		offset = 0
	}
	total := len(all)
	start := min(offset, total)
	end := start + min(limit, total-start)
	page := make([]Post, end-start)
	copy(page, all[start:end])
	return Page{
		Posts:   page,
		HasMore: offset < total-limit,
		Offset:  offset + len(page),
		Total:   total,
	}
}

// ParseLimit reads a limit query value. Missing, malformed and zero values
// fall back to DefaultLimit; everything else is clamped to [1, MaxLimit].
func ParseLimit(raw string) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n == 0 {
		return DefaultLimit
	}
	return clampLimit(n)
}

// ParseOffset reads an offset query value, defaulting to 0.
func ParseOffset(raw string) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

func clampLimit(n int) int {
	return max(1, min(MaxLimit, n))
}

// FindBySlug returns the first post with a non-empty title whose slug
// matches. Titles that normalize to the same slug shadow each other.
func FindBySlug(all []Post, slug string) (Post, error) {
	for _, p := range all {
		if p.Title != "" && p.Slug == slug {
			return p, nil
		}
	}
	return Post{}, ErrNotFound
}

// FindByID returns the post stored under the record id.
func FindByID(all []Post, id string) (Post, error) {
	for _, p := range all {
		if p.ID == id {
			return p, nil
		}
	}
	return Post{}, ErrNotFound
}
