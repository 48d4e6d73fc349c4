package remote

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSortKeys_Integers_First_Then_Lexicographic(t *testing.T) {
	req := require.New(t)
	keys := []string{"b", "10", "a", "2", "msg_2", "msg_10", "0"}

	SortKeys(keys)

	req.Equal([]string{"0", "2", "10", "a", "b", "msg_10", "msg_2"}, keys)
}

func TestSnapshot_Child_And_Children(t *testing.T) {
	req := require.New(t)
	snapshot := NewSnapshot("/chats/", map[string]any{
		"c2": map[string]any{"blocked": true},
		"c1": map[string]any{"participants": map[string]any{"1": "bob", "0": "alice"}},
	})

	children := snapshot.Children()
	req.Len(children, 2)
	req.Equal("c1", children[0].Key())
	req.Equal("chats/c1", children[0].Path())

	blocked, ok := snapshot.Child("c2/blocked").Bool()
	req.True(ok)
	req.True(blocked)

	participants := snapshot.Child("c1/participants").Children()
	first, _ := participants[0].String()
	req.Equal("alice", first)

	req.False(snapshot.Child("c3").Exists())
	req.False(snapshot.Child("c2/blocked/deeper").Exists())
}

func TestSnapshot_Int64_From_Float(t *testing.T) {
	req := require.New(t)

	value, ok := NewSnapshot("a", float64(1700000000123)).Int64()

	req.True(ok)
	req.Equal(int64(1700000000123), value)

	_, ok = NewSnapshot("a", "text").Int64()
	req.False(ok)
}

func TestCleanPath(t *testing.T) {
	req := require.New(t)

	clean, err := CleanPath("/chats/c1/")
	req.NoError(err)
	req.Equal("chats/c1", clean)

	for _, bad := range []string{"", "/", "chats//c1", "chats/c.1", "users/$x", "a/[b]"} {
		_, err = CleanPath(bad)
		req.Error(err, bad)
	}
}

func TestNormalize_Lists_Become_Index_Maps(t *testing.T) {
	req := require.New(t)

	value, err := Normalize(map[string]any{
		"participants": []string{"alice", "bob"},
		"createdAt":    int64(42),
		"blocked":      false,
	})

	req.NoError(err)
	req.Equal(map[string]any{
		"participants": map[string]any{"0": "alice", "1": "bob"},
		"createdAt":    float64(42),
		"blocked":      false,
	}, value)
}

func TestNormalize_Empty_Container_Is_Nil(t *testing.T) {
	req := require.New(t)

	value, err := Normalize(map[string]any{})

	req.NoError(err)
	req.Nil(value)
}
