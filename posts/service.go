package posts

import (
	"context"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

type Service struct {
	store    RecordStore
	validate *validator.Validate
}

// NewService returns a Service over store. A nil store yields a service
// whose every operation fails with ErrNotConfigured.
func NewService(store RecordStore) *Service {
	return &Service{
		store:    store,
		validate: validator.New(),
	}
}

func (s *Service) Configured() bool {
	return s.store != nil
}

func (s *Service) ListAll(ctx context.Context) ([]Post, error) {
	if s.store == nil {
		return nil, ErrNotConfigured
	}
	return s.store.ListPosts(ctx)
}

func (s *Service) List(ctx context.Context, limit, offset int) (Page, error) {
	all, err := s.ListAll(ctx)
	if err != nil {
		return Page{}, err
	}
	return Paginate(all, limit, offset), nil
}

func (s *Service) GetBySlug(ctx context.Context, slug string) (Post, error) {
	all, err := s.ListAll(ctx)
	if err != nil {
		return Post{}, err
	}
	return FindBySlug(all, slug)
}

func (s *Service) Create(ctx context.Context, in Input) (Post, error) {
	if s.store == nil {
		return Post{}, ErrNotConfigured
	}
	in, err := s.check(in)
	if err != nil {
		return Post{}, err
	}
	return s.store.CreatePost(ctx, in)
}

func (s *Service) Update(ctx context.Context, id string, in Input) (Post, error) {
	if s.store == nil {
		return Post{}, ErrNotConfigured
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return Post{}, ErrRecordIDRequired
	}
	in, err := s.check(in)
	if err != nil {
		return Post{}, err
	}
	return s.store.UpdatePost(ctx, id, in)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if s.store == nil {
		return ErrNotConfigured
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrRecordIDRequired
	}
	return s.store.DeletePost(ctx, id)
}

func (s *Service) check(in Input) (Input, error) {
	in = in.trimmed()
	if err := s.validate.Struct(in); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			return in, &ValidationError{Field: fieldErrs[0].Field(), Rule: fieldErrs[0].Tag()}
		}
		return in, err
	}
	return in, nil
}
