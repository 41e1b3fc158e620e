package posts

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/inpirtalent/portfolio/airtable"
)

// recordFields is the column layout of the posts table.
type recordFields struct {
	Title    string  `json:"Title"`
	Date     string  `json:"Date"`
	Category string  `json:"Category"`
	Excerpt  string  `json:"Excerpt"`
	Content  string  `json:"Content"`
	Summary  string  `json:"Summary"`
	ReadTime float64 `json:"Read Time (minutes)"`
}

// writeFields holds only the columns the site edits. Summary and read time
// are maintained in the table itself.
type writeFields struct {
	Title    string `json:"Title"`
	Date     string `json:"Date"`
	Category string `json:"Category"`
	Excerpt  string `json:"Excerpt"`
	Content  string `json:"Content"`
}

// AirtableStore is a RecordStore backed by an Airtable table.
type AirtableStore struct {
	client *airtable.Client
}

func NewAirtableStore(client *airtable.Client) *AirtableStore {
	return &AirtableStore{client: client}
}

func (s *AirtableStore) ListPosts(ctx context.Context) ([]Post, error) {
	recs, err := s.client.List(ctx, airtable.ListOptions{
		Sort: []airtable.Sort{{Field: "Date", Direction: "desc"}},
	})
	if err != nil {
		return nil, err
	}
	out := make([]Post, 0, len(recs))
	for _, rec := range recs {
		p, err := postFromRecord(rec)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

func (s *AirtableStore) CreatePost(ctx context.Context, in Input) (Post, error) {
	rec, err := s.client.Create(ctx, toWriteFields(in))
	if err != nil {
		return Post{}, notFound(err)
	}
	return postFromRecord(rec)
}

func (s *AirtableStore) UpdatePost(ctx context.Context, id string, in Input) (Post, error) {
	rec, err := s.client.Update(ctx, id, toWriteFields(in))
	if err != nil {
		return Post{}, notFound(err)
	}
	return postFromRecord(rec)
}

func (s *AirtableStore) DeletePost(ctx context.Context, id string) error {
	return notFound(s.client.Delete(ctx, id))
}

func toWriteFields(in Input) writeFields {
	return writeFields{
		Title:    in.Title,
		Date:     in.Date,
		Category: in.Category,
		Excerpt:  in.Excerpt,
		Content:  in.Content,
	}
}

func postFromRecord(rec airtable.Record) (Post, error) {
	var f recordFields
	if len(rec.Fields) > 0 {
		if err := json.Unmarshal(rec.Fields, &f); err != nil {
			return Post{}, fmt.Errorf("decode record %s: %w", rec.ID, err)
		}
	}
	return Post{
		ID:       rec.ID,
		Title:    f.Title,
		Slug:     Slugify(f.Title),
		Date:     f.Date,
		Category: f.Category,
		Excerpt:  f.Excerpt,
		Content:  f.Content,
		Summary:  f.Summary,
		ReadTime: f.ReadTime,
	}, nil
}

func notFound(err error) error {
	if errors.Is(err, airtable.ErrNotFound) {
		return fmt.Errorf("%w: %v", ErrNotFound, err)
	}
	return err
}
