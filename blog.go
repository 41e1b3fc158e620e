package portfolio

import (
	"context"

	"github.com/inpirtalent/portfolio/posts"
)

// createPost, updatePost and deletePost are the only write paths to the
// record store. Each invalidates the post cache on success.

func (a *App) createPost(ctx context.Context, in posts.Input) (posts.Post, error) {
	p, err := a.Posts.Create(ctx, in)
	if err != nil {
		return posts.Post{}, err
	}
	a.Cache.Invalidate()
	a.Echo.Logger.Infof("created post %s (%s)", p.ID, p.Slug)
	return p, nil
}

func (a *App) updatePost(ctx context.Context, id string, in posts.Input) (posts.Post, error) {
	p, err := a.Posts.Update(ctx, id, in)
	if err != nil {
		return posts.Post{}, err
	}
	a.Cache.Invalidate()
	a.Echo.Logger.Infof("updated post %s (%s)", p.ID, p.Slug)
	return p, nil
}

func (a *App) deletePost(ctx context.Context, id string) error {
	if err := a.Posts.Delete(ctx, id); err != nil {
		return err
	}
	a.Cache.Invalidate()
	a.Echo.Logger.Infof("deleted post %s", id)
	return nil
}
