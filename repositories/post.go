//go:generate go run go.uber.org/mock/mockgen -source=post.go -destination=../mocks/mock_post_repository.go -package=mocks
package repositories

import (
	"context"
	"fmt"
	"log/slog"
	"lost-found/bridge"
	"lost-found/domain"
	"lost-found/errors"
	"lost-found/remote"
	"lost-found/search"
	"slices"
	"strings"
	"time"

	"github.com/samber/lo"
)

// IPostRepository stores lost and found listings. Reads degrade to empty
// results like the chat DAO; writes report store failures.
type IPostRepository interface {
	CreatePost(ctx context.Context, author string, kind domain.PostKind, title, description, location string) (domain.Post, error)
	GetPosts(ctx context.Context) []domain.Post
	GetPostByID(ctx context.Context, postID string) *domain.Post
	MarkResolved(ctx context.Context, postID string) error
	SearchPosts(ctx context.Context, query string, limit int) []domain.Post
}

type PostRepository struct {
	store    remote.Store
	log      *slog.Logger
	ids      *domain.IDGenerator
	index    *search.PostIndex
	deadline time.Duration
	now      func() time.Time
}

func NewPostRepository(store remote.Store, log *slog.Logger, ids *domain.IDGenerator, index *search.PostIndex, deadline time.Duration) *PostRepository {
	return &PostRepository{store: store, log: log, ids: ids, index: index, deadline: deadline, now: time.Now}
}

func (r *PostRepository) op(name string) bridge.Op {
	return bridge.Op{Name: "post." + name, Deadline: r.deadline, Log: r.log}
}

func (r *PostRepository) CreatePost(ctx context.Context, author string, kind domain.PostKind, title, description, location string) (domain.Post, error) {
	title = strings.TrimSpace(title)
	if !validSegment(author) || !kind.Valid() || title == "" {
		return domain.Post{}, fmt.Errorf("%w: author=%q kind=%q title=%q", errors.ErrInvalidPost, author, kind, title)
	}
	post := domain.Post{
		ID:          r.ids.Next(domain.PostIDPrefix),
		Author:      author,
		Kind:        kind,
		Title:       title,
		Description: strings.TrimSpace(description),
		Location:    strings.TrimSpace(location),
		CreatedAt:   r.now().UTC().Truncate(time.Millisecond),
	}
	if err := bridge.Write(ctx, r.store, r.op("createPost"), remote.Join(postsPath, post.ID), encodePost(post)); err != nil {
		return domain.Post{}, fmt.Errorf("storing post: %w", err)
	}
	r.log.Info("Post created", "post_id", post.ID, "kind", post.Kind)
	return post, nil
}

// GetPosts returns every post, newest first.
func (r *PostRepository) GetPosts(ctx context.Context) []domain.Post {
	snapshot, err := bridge.ReadOnce(ctx, r.store, r.op("getPosts"), postsPath)
	if err != nil {
		r.log.Warn("Posts unavailable, returning none", "error", err)
		return []domain.Post{}
	}
	posts := make([]domain.Post, 0, len(snapshot.Children()))
	for _, child := range snapshot.Children() {
		post, err := decodePost(child)
		if err != nil {
			r.log.Warn("Skipping malformed post", "path", child.Path(), "error", err)
			continue
		}
		posts = append(posts, post)
	}
	slices.Reverse(posts)
	return posts
}

func (r *PostRepository) GetPostByID(ctx context.Context, postID string) *domain.Post {
	if !validSegment(postID) {
		return nil
	}
	snapshot, err := bridge.ReadOnce(ctx, r.store, r.op("getPostById"), remote.Join(postsPath, postID))
	if err != nil {
		r.log.Warn("Post unavailable", "post_id", postID, "error", err)
		return nil
	}
	post, err := decodePost(snapshot)
	if err != nil {
		return nil
	}
	return &post
}

func (r *PostRepository) MarkResolved(ctx context.Context, postID string) error {
	if r.GetPostByID(ctx, postID) == nil {
		return fmt.Errorf("%w: %q", errors.ErrPostNotFound, postID)
	}
	path := remote.Join(postsPath, postID, "resolved")
	if err := bridge.Write(ctx, r.store, r.op("markResolved"), path, true); err != nil {
		return fmt.Errorf("resolving post: %w", err)
	}
	return nil
}

// SearchPosts reads all posts once, refreshes the index with them and
// returns the best matches. A blank query returns every post.
func (r *PostRepository) SearchPosts(ctx context.Context, query string, limit int) []domain.Post {
	posts := r.GetPosts(ctx)
	if strings.TrimSpace(query) == "" {
		return posts
	}
	if err := r.index.Index(posts); err != nil {
		r.log.Warn("Post index refresh failed", "error", err)
		return []domain.Post{}
	}
	ids, err := r.index.Search(ctx, query, limit)
	if err != nil {
		r.log.Warn("Post search failed", "query", query, "error", err)
		return []domain.Post{}
	}
	byID := lo.KeyBy(posts, func(post domain.Post) string { return post.ID })
	return lo.FilterMap(ids, func(id string, _ int) (domain.Post, bool) {
		post, ok := byID[id]
		return post, ok
	})
}
