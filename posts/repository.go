package posts

import "context"

// RecordStore is the external table holding the posts. ListPosts returns
// every post ordered by date, newest first.
type RecordStore interface {
	ListPosts(ctx context.Context) ([]Post, error)
	CreatePost(ctx context.Context, in Input) (Post, error)
	UpdatePost(ctx context.Context, id string, in Input) (Post, error)
	DeletePost(ctx context.Context, id string) error
}
