package remote_test

import (
	"context"
	"log/slog"
	"lost-found/bridge"
	"lost-found/errors"
	"lost-found/remote"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

func newDiskStore(t *testing.T) *remote.DiskStore {
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR))
	require.NoError(t, err)
	store := remote.NewDiskStore(db, logs.GetLoggerFromLevel(slog.LevelDebug))
	t.Cleanup(func() {
		store.Close()
		_ = db.Close()
	})
	return store
}

var op = bridge.Op{Name: "test", Deadline: 2 * time.Second}

func TestDiskStore_Write_Then_Read_Tree(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	store := newDiskStore(t)

	// Given a chat written as a nested record
	err := bridge.Write(ctx, store, op, "chats/chat_1", map[string]any{
		"chatId":       "chat_1",
		"participants": []string{"alice", "bob"},
		"createdAt":    int64(1700000000000),
		"blocked":      false,
	})
	req.NoError(err)

	// When reading it back
	snapshot, err := bridge.ReadOnce(ctx, store, op, "chats/chat_1")
	req.NoError(err)

	// Then the tree has the written shape
	req.True(snapshot.Exists())
	req.Equal("chat_1", snapshot.Key())
	createdAt, ok := snapshot.Child("createdAt").Int64()
	req.True(ok)
	req.Equal(int64(1700000000000), createdAt)
	participants := snapshot.Child("participants").Children()
	req.Len(participants, 2)
	bob, _ := participants[1].String()
	req.Equal("bob", bob)

	// And a leaf can be read on its own
	blocked, err := bridge.ReadOnce(ctx, store, op, "chats/chat_1/blocked")
	req.NoError(err)
	value, ok := blocked.Bool()
	req.True(ok)
	req.False(value)
}

func TestDiskStore_Read_Missing_Path_Does_Not_Exist(t *testing.T) {
	req := require.New(t)
	store := newDiskStore(t)

	snapshot, err := bridge.ReadOnce(context.Background(), store, op, "chats/unknown")

	req.NoError(err)
	req.False(snapshot.Exists())
}

func TestDiskStore_Write_Replaces_Subtree(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	store := newDiskStore(t)

	req.NoError(bridge.Write(ctx, store, op, "users/alice", map[string]any{"email": "a@x.io", "old": "field"}))
	req.NoError(bridge.Write(ctx, store, op, "users/alice", map[string]any{"email": "b@x.io"}))

	snapshot, err := bridge.ReadOnce(ctx, store, op, "users/alice")
	req.NoError(err)
	req.Equal(map[string]any{"email": "b@x.io"}, snapshot.Value())
}

func TestDiskStore_Leaf_Write_Under_Scalar_Replaces_Scalar(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	store := newDiskStore(t)

	req.NoError(bridge.Write(ctx, store, op, "chats/c1", "scalar"))
	req.NoError(bridge.Write(ctx, store, op, "chats/c1/blocked", true))

	snapshot, err := bridge.ReadOnce(ctx, store, op, "chats/c1")
	req.NoError(err)
	req.Equal(map[string]any{"blocked": true}, snapshot.Value())
}

func TestDiskStore_Update_Writes_And_Deletes_Together(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	store := newDiskStore(t)
	req.NoError(bridge.Write(ctx, store, op, "users/old", map[string]any{"email": "o@x.io"}))

	// When moving a node in one multi-path update
	err := bridge.Update(ctx, store, op, map[string]any{
		"users/new": map[string]any{"email": "o@x.io"},
		"users/old": nil,
	})
	req.NoError(err)

	// Then only the new node remains
	users, err := bridge.ReadOnce(ctx, store, op, "users")
	req.NoError(err)
	req.Equal(map[string]any{"new": map[string]any{"email": "o@x.io"}}, users.Value())
}

func TestDiskStore_Update_Rejects_Overlapping_Paths(t *testing.T) {
	req := require.New(t)
	store := newDiskStore(t)

	err := bridge.Update(context.Background(), store, op, map[string]any{
		"chats/c1":         map[string]any{"blocked": false},
		"chats/c1/blocked": true,
	})

	req.True(errors.IsRemote(err))
}

func TestDiskStore_Delete(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	store := newDiskStore(t)
	req.NoError(bridge.Write(ctx, store, op, "messages/c1/m1", map[string]any{"content": "hi"}))

	req.NoError(bridge.Delete(ctx, store, op, "messages/c1"))

	snapshot, err := bridge.ReadOnce(ctx, store, op, "messages/c1")
	req.NoError(err)
	req.False(snapshot.Exists())
}

func TestDiskStore_Invalid_Path_Is_Reported_Through_Listener(t *testing.T) {
	req := require.New(t)
	store := newDiskStore(t)

	_, err := bridge.ReadOnce(context.Background(), store, op, "chats//c1")

	req.True(errors.IsRemote(err))
	req.Contains(err.Error(), "invalid store path")
}

func TestDiskStore_Callback_Runs_On_Another_Goroutine(t *testing.T) {
	req := require.New(t)
	store := newDiskStore(t)
	callerID := goroutineID()
	callbackID := make(chan string, 1)

	store.ReadOnce("chats", remote.EventListener{
		OnData: func(remote.Snapshot) { callbackID <- goroutineID() },
	})

	select {
	case id := <-callbackID:
		req.NotEqual(callerID, id)
	case <-time.After(time.Second):
		req.Fail("listener never fired")
	}
}

func TestDiskStore_Continuous_Listener_Sees_Changes(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	store := newDiskStore(t)
	events := make(chan remote.Snapshot, 10)

	// Given a continuous listener on a chat's messages
	registration := store.ReadContinuous("messages/c1", remote.EventListener{
		OnData: func(s remote.Snapshot) { events <- s },
	})
	defer registration.Remove()
	initial := <-events
	req.False(initial.Exists())

	// When a message is written under it, and another elsewhere
	req.NoError(bridge.Write(ctx, store, op, "messages/c2/m1", map[string]any{"content": "elsewhere"}))
	req.NoError(bridge.Write(ctx, store, op, "messages/c1/m1", map[string]any{"content": "hi"}))

	// Then only the relevant change is delivered
	select {
	case s := <-events:
		req.Len(s.Children(), 1)
		content, _ := s.Child("m1/content").String()
		req.Equal("hi", content)
	case <-time.After(time.Second):
		req.Fail("no change delivered")
	}
}

func TestDiskStore_Blocked_Listener_Does_Not_Stall_Writes(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	store := newDiskStore(t)
	block := make(chan struct{})
	t.Cleanup(func() { close(block) })

	// Given a listener on an unrelated path that never returns
	registration := store.ReadContinuous("other", remote.EventListener{
		OnData: func(remote.Snapshot) { <-block },
	})
	t.Cleanup(registration.Remove)

	// When more writes than the feed can buffer go through
	quick := bridge.Op{Name: "test", Deadline: 500 * time.Millisecond}
	for i := range 300 {
		// Then every one of them completes
		req.NoError(bridge.Write(ctx, store, quick, "chats/c", i), "write %d", i)
	}
}

func TestDiskStore_Slow_Listener_Sees_Latest_Value(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	store := newDiskStore(t)
	release := make(chan struct{})
	events := make(chan remote.Snapshot, 10)

	// Given a listener held on its first delivery
	registration := store.ReadContinuous("chats/c", remote.EventListener{
		OnData: func(s remote.Snapshot) {
			<-release
			events <- s
		},
	})
	defer registration.Remove()

	// When several changes land while it is busy
	for i := 1; i <= 200; i++ {
		req.NoError(bridge.Write(ctx, store, op, "chats/c", i))
	}
	close(release)

	// Then the changes collapse and the last delivery carries the last value
	deadline := time.After(2 * time.Second)
	for {
		select {
		case s := <-events:
			if v, _ := s.Int64(); v == 200 {
				return
			}
		case <-deadline:
			req.Fail("latest value never delivered")
			return
		}
	}
}

func TestDiskStore_Closed_Store_Rejects_Calls(t *testing.T) {
	req := require.New(t)
	store := newDiskStore(t)
	store.Close()

	err := bridge.Write(context.Background(), store, op, "chats/c1/blocked", true)

	req.True(errors.IsRemote(err))
	req.Contains(err.Error(), errors.ErrStoreClosed.Error())
}

func goroutineID() string {
	buf := make([]byte, 64)
	buf = buf[:runtime.Stack(buf, false)]
	return strings.Fields(string(buf))[1]
}
