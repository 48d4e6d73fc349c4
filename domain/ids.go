package domain

import (
	"fmt"
	"math/rand/v2"
	"sync"
	"time"
)

const (
	ChatIDPrefix    = "chat"
	MessageIDPrefix = "msg"
	PostIDPrefix    = "post"

	suffixRange = 1000
)

// IDGenerator builds ids shaped "{prefix}_{epochMillis}_{0..999}", the shape
// already persisted in the store. Suffixes handed out during a millisecond are
// remembered, so the generator never repeats an id within the process; once all
// of them are used it borrows the next millisecond.
type IDGenerator struct {
	mu     sync.Mutex
	now    func() time.Time
	millis int64
	used   map[int]struct{}
}

func NewIDGenerator() *IDGenerator {
	return NewIDGeneratorWithClock(time.Now)
}

func NewIDGeneratorWithClock(now func() time.Time) *IDGenerator {
	return &IDGenerator{now: now, used: make(map[int]struct{})}
}

func (g *IDGenerator) Next(prefix string) string {
	g.mu.Lock()
	defer g.mu.Unlock()

	millis := g.now().UnixMilli()
	switch {
	case millis > g.millis:
		g.millis = millis
		clear(g.used)
	case len(g.used) == suffixRange:
		g.millis++
		clear(g.used)
	}

	suffix := rand.IntN(suffixRange)
	for {
		if _, taken := g.used[suffix]; !taken {
			break
		}
		suffix = (suffix + 1) % suffixRange
	}
	g.used[suffix] = struct{}{}
	return fmt.Sprintf("%s_%d_%d", prefix, g.millis, suffix)
}
