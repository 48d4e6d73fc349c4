// Package search ranks lost and found listings by free text.
package search

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"lost-found/domain"

	"github.com/blugelabs/bluge"
)

const (
	idField          = "_id"
	titleField       = "title"
	descriptionField = "description"
	locationField    = "location"
	kindField        = "kind"
)

// PostIndex is an in-memory full text index over posts. Indexing a post
// twice replaces the previous version.
type PostIndex struct {
	writer *bluge.Writer
	log    *slog.Logger
}

func NewPostIndex(log *slog.Logger) (*PostIndex, error) {
	writer, err := bluge.OpenWriter(bluge.InMemoryOnlyConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to open bluge writer: %w", err)
	}
	return &PostIndex{writer: writer, log: log}, nil
}

func (i *PostIndex) Close() error {
	return i.writer.Close()
}

// Index upserts the given posts in one batch.
func (i *PostIndex) Index(posts []domain.Post) error {
	if len(posts) == 0 {
		return nil
	}
	batch := bluge.NewBatch()
	for _, post := range posts {
		doc := bluge.NewDocument(post.ID).
			AddField(bluge.NewTextField(titleField, post.Title)).
			AddField(bluge.NewTextField(descriptionField, post.Description)).
			AddField(bluge.NewTextField(locationField, post.Location)).
			AddField(bluge.NewKeywordField(kindField, string(post.Kind)))
		batch.Update(doc.ID(), doc)
	}
	if err := i.writer.Batch(batch); err != nil {
		return fmt.Errorf("indexing %d posts: %w", len(posts), err)
	}
	i.log.Debug("Posts indexed", "count", len(posts))
	return nil
}

// Search returns the IDs of the posts matching query, best score first.
// A title hit weighs more than a description or location hit.
func (i *PostIndex) Search(ctx context.Context, query string, limit int) ([]string, error) {
	query = strings.TrimSpace(query)
	if query == "" || limit <= 0 {
		return []string{}, nil
	}
	reader, err := i.writer.Reader()
	if err != nil {
		return nil, fmt.Errorf("opening index reader: %w", err)
	}
	defer func() { _ = reader.Close() }()

	q := bluge.NewBooleanQuery().
		AddShould(bluge.NewMatchQuery(query).SetField(titleField).SetBoost(2)).
		AddShould(bluge.NewMatchQuery(query).SetField(descriptionField)).
		AddShould(bluge.NewMatchQuery(query).SetField(locationField)).
		SetMinShould(1)

	matches, err := reader.Search(ctx, bluge.NewTopNSearch(limit, q))
	if err != nil {
		return nil, fmt.Errorf("searching %q: %w", query, err)
	}
	ids := make([]string, 0, limit)
	match, err := matches.Next()
	for err == nil && match != nil {
		err = match.VisitStoredFields(func(field string, value []byte) bool {
			if field == idField {
				ids = append(ids, string(value))
				return false
			}
			return true
		})
		if err != nil {
			break
		}
		match, err = matches.Next()
	}
	if err != nil {
		return nil, fmt.Errorf("reading matches for %q: %w", query, err)
	}
	return ids, nil
}
