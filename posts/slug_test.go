package posts

import "testing"

func TestSlugify(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"Hello, World! 2024", "hello-world-2024"},
		{"  Leading and trailing  ", "leading-and-trailing"},
		{"Go---is   fun", "go-is-fun"},
		{"already-a-slug", "already-a-slug"},
		{"Café au lait", "caf-au-lait"},
		{"!!!", Untitled},
		{"", Untitled},
		{"UPPER case", "upper-case"},
	}
	for _, tt := range tests {
		if got := Slugify(tt.title); got != tt.want {
			t.Errorf("Slugify(%q) = %q, want %q", tt.title, got, tt.want)
		}
	}
}

func TestSlugifyStable(t *testing.T) {
	titles := []string{"Building a CRM in a weekend", "Q&A: Next steps?", "ünïcödé"}
	for _, title := range titles {
		first := Slugify(title)
		for i := 0; i < 3; i++ {
			if got := Slugify(title); got != first {
				t.Fatalf("Slugify(%q) not stable: %q then %q", title, first, got)
			}
		}
		if got := Slugify(first); got != first {
			t.Errorf("Slugify(%q) = %q, want idempotent %q", first, got, first)
		}
	}
}
