package posts

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inpirtalent/portfolio/airtable"
)

func newTestAirtableStore(t *testing.T, h http.HandlerFunc) *AirtableStore {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	client, err := airtable.NewClient(airtable.Config{
		Token:     "tok",
		BaseID:    "app1",
		Table:     "Blog Posts",
		BaseURL:   srv.URL,
		RateLimit: 1000,
	}, nil)
	require.NoError(t, err)
	return NewAirtableStore(client)
}

func TestAirtableStoreListPosts(t *testing.T) {
	store := newTestAirtableStore(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Date", r.URL.Query().Get("sort[0][field]"))
		io.WriteString(w, `{"records":[
			{"id":"rec2","fields":{"Title":"Second Post","Date":"2024-02-01","Category":"Backend","Read Time (minutes)":2.5}},
			{"id":"rec1","fields":{"Title":"First Post","Date":"2024-01-01","Summary":"sum"}}
		]}`)
	})

	all, err := store.ListPosts(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "second-post", all[0].Slug)
	assert.Equal(t, 2.5, all[0].ReadTime)
	assert.Equal(t, "sum", all[1].Summary)
	assert.Zero(t, all[1].ReadTime)
}

func TestAirtableStoreCreateWritesEditableFields(t *testing.T) {
	store := newTestAirtableStore(t, func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Records []struct {
				Fields map[string]any `json:"fields"`
			} `json:"records"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Len(t, body.Records, 1)
		fields := body.Records[0].Fields
		assert.Len(t, fields, 5)
		assert.NotContains(t, fields, "Summary")
		assert.Equal(t, "Hello", fields["Title"])
		io.WriteString(w, `{"records":[{"id":"recX","fields":{"Title":"Hello","Date":"2024-03-01"}}]}`)
	})

	p, err := store.CreatePost(context.Background(), Input{
		Title: "Hello", Date: "2024-03-01", Category: "Backend", Excerpt: "e", Content: "c",
	})
	require.NoError(t, err)
	assert.Equal(t, "recX", p.ID)
	assert.Equal(t, "hello", p.Slug)
}

func TestAirtableStoreDeleteMissing(t *testing.T) {
	store := newTestAirtableStore(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		io.WriteString(w, `{"error":{"type":"NOT_FOUND","message":"Could not find record"}}`)
	})

	err := store.DeletePost(context.Background(), "recGone")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAirtableStoreUpdateMissing(t *testing.T) {
	store := newTestAirtableStore(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		w.WriteHeader(http.StatusUnprocessableEntity)
		io.WriteString(w, `{"error":{"type":"ROW_DOES_NOT_EXIST","message":"Record ID recGone does not exist"}}`)
	})

	_, err := store.UpdatePost(context.Background(), "recGone", Input{Title: "T"})
	assert.ErrorIs(t, err, ErrNotFound)
}
