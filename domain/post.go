package domain

import "time"

type PostKind string

const (
	PostLost  PostKind = "lost"
	PostFound PostKind = "found"
)

func (k PostKind) Valid() bool {
	return k == PostLost || k == PostFound
}

// Post is a lost or found item listing.
type Post struct {
	ID          string
	Author      string
	Kind        PostKind
	Title       string
	Description string
	Location    string
	Resolved    bool
	CreatedAt   time.Time
}
