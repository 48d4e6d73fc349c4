package remote

import (
	stderrors "errors"
	"fmt"
	"log/slog"
	"lost-found/errors"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/cskr/pubsub"
	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

const (
	changeTopic   = "changes"
	feedCapacity  = 128
	maxUpdateSize = 500
)

// DiskStore is a Store persisted in BadgerDB.
// Each leaf of the tree is one badger key ("chats/c1/participants/0") holding
// a protobuf encoded structpb.Value. Callbacks always run on a goroutine owned
// by the store, never on the caller's.
type DiskStore struct {
	db     *badger.DB
	log    *slog.Logger
	feed   *pubsub.PubSub
	done   chan struct{}
	wg     sync.WaitGroup
	closed atomic.Bool
}

func NewDiskStore(db *badger.DB, log *slog.Logger) *DiskStore {
	return &DiskStore{
		db:   db,
		log:  log,
		feed: pubsub.New(feedCapacity),
		done: make(chan struct{}),
	}
}

// change is published on the feed after every successful mutation.
type change struct {
	paths []string
}

func (c change) touches(path string) bool {
	for _, p := range c.paths {
		if overlaps(p, path) {
			return true
		}
	}
	return false
}

func (s *DiskStore) ReadOnce(path string, listener EventListener) {
	s.dispatch(func() {
		snapshot, err := s.read(path)
		if err != nil {
			listener.cancelled(err)
			return
		}
		listener.data(snapshot)
	}, func(err error) { listener.cancelled(err) })
}

// ReadContinuous fires once with the current value, then after every change
// overlapping path, until the registration is removed or the store is closed.
// Changes seen while the listener is busy collapse into one re-read, so a slow
// listener never holds up the change feed.
func (s *DiskStore) ReadContinuous(path string, listener EventListener) Registration {
	clean, err := CleanPath(path)
	if err != nil {
		go listener.cancelled(err)
		return &subscription{stop: make(chan struct{})}
	}
	if s.closed.Load() {
		go listener.cancelled(errors.ErrStoreClosed)
		return &subscription{stop: make(chan struct{})}
	}
	sub := &subscription{
		id:   uuid.New(),
		feed: s.feed,
		ch:   s.feed.Sub(changeTopic),
		stop: make(chan struct{}),
	}
	dirty := make(chan struct{}, 1)
	s.log.Debug("Continuous listener attached", "path", clean, "id", sub.id)

	// The drain ends when the feed closes the channel (Unsub or Shutdown).
	go func() {
		for msg := range sub.ch {
			if c, isChange := msg.(change); isChange && c.touches(clean) {
				select {
				case dirty <- struct{}{}:
				default:
				}
			}
		}
	}()

	s.dispatch(func() {
		s.emit(clean, listener)
		for {
			select {
			case <-dirty:
				s.emit(clean, listener)
			case <-sub.stop:
				s.log.Debug("Continuous listener removed", "path", clean, "id", sub.id)
				return
			case <-s.done:
				return
			}
		}
	}, func(err error) { listener.cancelled(err) })
	return sub
}

func (s *DiskStore) emit(path string, listener EventListener) {
	snapshot, err := s.read(path)
	if err != nil {
		listener.cancelled(err)
		return
	}
	listener.data(snapshot)
}

func (s *DiskStore) Write(path string, value any, done CompletionListener) {
	s.dispatch(func() {
		done.complete(s.apply(map[string]any{path: value}))
	}, done.complete)
}

func (s *DiskStore) Update(values map[string]any, done CompletionListener) {
	s.dispatch(func() {
		done.complete(s.apply(values))
	}, done.complete)
}

func (s *DiskStore) Delete(path string, done CompletionListener) {
	s.dispatch(func() {
		done.complete(s.apply(map[string]any{path: nil}))
	}, done.complete)
}

// Close stops continuous listeners and waits for in-flight callbacks.
// The badger database stays open, it belongs to the caller.
func (s *DiskStore) Close() {
	if s.closed.Swap(true) {
		return
	}
	close(s.done)
	s.wg.Wait()
	s.feed.Shutdown()
}

func (s *DiskStore) dispatch(fn func(), onClosed func(error)) {
	if s.closed.Load() {
		go onClosed(errors.ErrStoreClosed)
		return
	}
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		fn()
	}()
}

func (s *DiskStore) read(path string) (Snapshot, error) {
	clean, err := CleanPath(path)
	if err != nil {
		return Snapshot{}, err
	}
	var value any
	err = s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(clean))
		switch {
		case err == nil:
			leaf, err := decodeLeaf(item)
			if err != nil {
				return err
			}
			value = leaf.AsInterface()
			return nil
		case !stderrors.Is(err, badger.ErrKeyNotFound):
			return err
		}

		prefix := []byte(clean + "/")
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()
		root := make(map[string]any)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			relative := string(item.Key()[len(prefix):])
			leaf, err := decodeLeaf(item)
			if err != nil {
				return err
			}
			insert(root, strings.Split(relative, "/"), leaf.AsInterface())
		}
		if len(root) > 0 {
			value = root
		}
		return nil
	})
	if err != nil {
		return Snapshot{}, err
	}
	return NewSnapshot(clean, value), nil
}

// apply replaces every given subtree in a single badger transaction.
func (s *DiskStore) apply(values map[string]any) error {
	if len(values) == 0 {
		return nil
	}
	if len(values) > maxUpdateSize {
		return fmt.Errorf("%w: %d paths in one update", errors.ErrInvalidPath, len(values))
	}
	cleaned := make(map[string]any, len(values))
	for path, value := range values {
		clean, err := CleanPath(path)
		if err != nil {
			return err
		}
		cleaned[clean] = value
	}
	paths := make([]string, 0, len(cleaned))
	for p := range cleaned {
		paths = append(paths, p)
	}
	for i := range paths {
		for j := i + 1; j < len(paths); j++ {
			if overlaps(paths[i], paths[j]) {
				return fmt.Errorf("%w: %q overlaps %q", errors.ErrInvalidPath, paths[i], paths[j])
			}
		}
	}

	leaves := make(map[string]*structpb.Value)
	for path, value := range cleaned {
		if err := flatten(path, value, leaves); err != nil {
			return err
		}
	}

	err := s.db.Update(func(txn *badger.Txn) error {
		for _, path := range paths {
			if err := deleteSubtree(txn, path); err != nil {
				return err
			}
		}
		for key, leaf := range leaves {
			bytes, err := proto.Marshal(leaf)
			if err != nil {
				return err
			}
			if err = txn.Set([]byte(key), bytes); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	s.feed.Pub(change{paths: paths}, changeTopic)
	return nil
}

// deleteSubtree removes the node at path, its descendants, and any scalar
// stored on one of its ancestors.
func deleteSubtree(txn *badger.Txn, path string) error {
	segments := strings.Split(path, "/")
	for i := 1; i < len(segments); i++ {
		ancestor := strings.Join(segments[:i], "/")
		if err := txn.Delete([]byte(ancestor)); err != nil {
			return err
		}
	}
	if err := txn.Delete([]byte(path)); err != nil {
		return err
	}

	prefix := []byte(path + "/")
	options := badger.DefaultIteratorOptions
	options.PrefetchValues = false
	it := txn.NewIterator(options)
	var keys [][]byte
	for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
		keys = append(keys, it.Item().KeyCopy(nil))
	}
	it.Close()
	for _, key := range keys {
		if err := txn.Delete(key); err != nil {
			return err
		}
	}
	return nil
}

func decodeLeaf(item *badger.Item) (*structpb.Value, error) {
	var leaf structpb.Value
	err := item.Value(func(val []byte) error {
		return proto.Unmarshal(val, &leaf)
	})
	return &leaf, err
}

// DecodeLeaf returns the scalar held by a raw badger value of the store.
func DecodeLeaf(val []byte) (any, error) {
	var leaf structpb.Value
	if err := proto.Unmarshal(val, &leaf); err != nil {
		return nil, err
	}
	return leaf.AsInterface(), nil
}

type subscription struct {
	id   uuid.UUID
	feed *pubsub.PubSub
	ch   chan interface{}
	stop chan struct{}
	once sync.Once
}

func (s *subscription) Remove() {
	s.once.Do(func() {
		if s.feed != nil {
			s.feed.Unsub(s.ch)
		}
		close(s.stop)
	})
}
