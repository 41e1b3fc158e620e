package posts

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makePosts(n int) []Post {
	out := make([]Post, n)
	for i := range out {
		title := fmt.Sprintf("Post %d", i+1)
		out[i] = Post{ID: fmt.Sprintf("rec%d", i+1), Title: title, Slug: Slugify(title)}
	}
	return out
}

func TestPaginateExample(t *testing.T) {
	page := Paginate(makePosts(5), 2, 0)
	require.Len(t, page.Posts, 2)
	assert.True(t, page.HasMore)
	assert.Equal(t, 2, page.Offset)
	assert.Equal(t, "rec1", page.Posts[0].ID)
}

func TestPaginateLastPage(t *testing.T) {
	page := Paginate(makePosts(5), 2, 4)
	require.Len(t, page.Posts, 1)
	assert.False(t, page.HasMore)
	assert.Equal(t, 5, page.Offset)
	assert.Equal(t, "rec5", page.Posts[0].ID)
}

func TestPaginatePastEnd(t *testing.T) {
	page := Paginate(makePosts(3), 4, 10)
	assert.Empty(t, page.Posts)
	assert.NotNil(t, page.Posts)
	assert.False(t, page.HasMore)
}

func TestPaginateInvariant(t *testing.T) {
	for total := 0; total <= 7; total++ {
		all := makePosts(total)
		for limit := 1; limit <= 8; limit++ {
			for _, offset := range []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, math.MaxInt - limit, math.MaxInt} {
				page := Paginate(all, limit, offset)
				if len(page.Posts) > limit {
					t.Fatalf("total=%d limit=%d offset=%d: got %d posts", total, limit, offset, len(page.Posts))
				}
				want := offset <= total && total-offset > limit
				if page.HasMore != want {
					t.Fatalf("total=%d limit=%d offset=%d: hasMore=%v", total, limit, offset, page.HasMore)
				}
			}
		}
	}
}

func TestPaginateHugeOffset(t *testing.T) {
	for _, offset := range []int{math.MaxInt, math.MaxInt - 1, math.MaxInt - MaxLimit} {
		page := Paginate(makePosts(5), MaxLimit, offset)
		assert.Empty(t, page.Posts, offset)
		assert.False(t, page.HasMore, offset)
		assert.Equal(t, offset, page.Offset)
	}
}

func TestPaginateDoesNotAlias(t *testing.T) {
	all := makePosts(3)
	page := Paginate(all, 2, 0)
	page.Posts[0].Title = "changed"
	assert.Equal(t, "Post 1", all[0].Title)
}

func TestParseLimit(t *testing.T) {
	tests := []struct {
		raw  string
		want int
	}{
		{"", DefaultLimit},
		{"abc", DefaultLimit},
		{"0", DefaultLimit},
		{"2", 2},
		{"-5", 1},
		{"1000", MaxLimit},
	}
	for _, tt := range tests {
		if got := ParseLimit(tt.raw); got != tt.want {
			t.Errorf("ParseLimit(%q) = %d, want %d", tt.raw, got, tt.want)
		}
	}
}

func TestParseOffset(t *testing.T) {
	tests := []struct {
		raw  string
		want int
	}{
		{"", 0},
		{"x", 0},
		{"-1", 0},
		{"7", 7},
	}
	for _, tt := range tests {
		if got := ParseOffset(tt.raw); got != tt.want {
			t.Errorf("ParseOffset(%q) = %d, want %d", tt.raw, got, tt.want)
		}
	}
}

func TestFindBySlug(t *testing.T) {
	all := []Post{
		{ID: "recA", Title: "Same Title!", Slug: "same-title"},
		{ID: "recB", Title: "same title", Slug: "same-title"},
		{ID: "recC", Title: "", Slug: Untitled},
	}

	p, err := FindBySlug(all, "same-title")
	require.NoError(t, err)
	assert.Equal(t, "recA", p.ID, "first match in date order wins")

	_, err = FindBySlug(all, Untitled)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = FindBySlug(all, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFindByID(t *testing.T) {
	all := makePosts(3)
	p, err := FindByID(all, "rec2")
	require.NoError(t, err)
	assert.Equal(t, "Post 2", p.Title)

	_, err = FindByID(all, "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}
