package repositories

import (
	"fmt"
	"lost-found/domain"
	"lost-found/errors"
	"lost-found/remote"
	"strings"
	"time"
)

const (
	chatsPath    = "chats"
	messagesPath = "messages"
	usersPath    = "users"
	postsPath    = "posts"
	blockedField = "blocked"
)

// Records are stored with epoch milliseconds and lists as index keyed children.

func encodeChat(chat domain.Chat) map[string]any {
	return map[string]any{
		"chatId":       chat.ID,
		"participants": chat.Participants,
		"createdAt":    chat.CreatedAt.UnixMilli(),
		blockedField:   chat.Blocked,
	}
}

func decodeChat(snapshot remote.Snapshot) (domain.Chat, error) {
	if !snapshot.Exists() {
		return domain.Chat{}, errors.ErrNotFound
	}
	id := stringOr(snapshot.Child("chatId"), snapshot.Key())
	var participants []string
	for _, child := range snapshot.Child("participants").Children() {
		if username, ok := child.String(); ok {
			participants = append(participants, username)
		}
	}
	if len(participants) == 0 {
		return domain.Chat{}, fmt.Errorf("%w: chat %q has no participants", errors.ErrMalformedRecord, id)
	}
	blocked, _ := snapshot.Child(blockedField).Bool()
	return domain.Chat{
		ID:           id,
		Participants: participants,
		CreatedAt:    millis(snapshot.Child("createdAt")),
		Blocked:      blocked,
	}, nil
}

func encodeMessage(message domain.Message) map[string]any {
	return map[string]any{
		"messageId": message.ID,
		"chatId":    message.ChatID,
		"sender":    message.Sender,
		"content":   message.Content,
		"sentAt":    message.SentAt.UnixMilli(),
		"read":      message.Read,
	}
}

func decodeMessage(snapshot remote.Snapshot) (domain.Message, error) {
	id := stringOr(snapshot.Child("messageId"), snapshot.Key())
	sender, ok := snapshot.Child("sender").String()
	if !ok {
		return domain.Message{}, fmt.Errorf("%w: message %q has no sender", errors.ErrMalformedRecord, id)
	}
	content, ok := snapshot.Child("content").String()
	if !ok {
		return domain.Message{}, fmt.Errorf("%w: message %q has no content", errors.ErrMalformedRecord, id)
	}
	read, _ := snapshot.Child("read").Bool()
	return domain.Message{
		ID:      id,
		ChatID:  stringOr(snapshot.Child("chatId"), ""),
		Sender:  sender,
		Content: content,
		SentAt:  millis(snapshot.Child("sentAt")),
		Read:    read,
	}, nil
}

func encodeUser(user domain.User) map[string]any {
	return map[string]any{
		"username":     user.Username,
		"email":        user.Email,
		"passwordHash": user.PasswordHash,
		"createdAt":    user.CreatedAt.UnixMilli(),
	}
}

func decodeUser(snapshot remote.Snapshot) (domain.User, error) {
	if !snapshot.Exists() {
		return domain.User{}, errors.ErrNotFound
	}
	if _, isNode := snapshot.Value().(map[string]any); !isNode {
		return domain.User{}, fmt.Errorf("%w: user %q is not a record", errors.ErrMalformedRecord, snapshot.Key())
	}
	email, _ := snapshot.Child("email").String()
	hash, _ := snapshot.Child("passwordHash").String()
	return domain.User{
		Username:     stringOr(snapshot.Child("username"), snapshot.Key()),
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    millis(snapshot.Child("createdAt")),
	}, nil
}

func encodePost(post domain.Post) map[string]any {
	return map[string]any{
		"postId":      post.ID,
		"author":      post.Author,
		"kind":        string(post.Kind),
		"title":       post.Title,
		"description": post.Description,
		"location":    post.Location,
		"resolved":    post.Resolved,
		"createdAt":   post.CreatedAt.UnixMilli(),
	}
}

func decodePost(snapshot remote.Snapshot) (domain.Post, error) {
	if !snapshot.Exists() {
		return domain.Post{}, errors.ErrNotFound
	}
	id := stringOr(snapshot.Child("postId"), snapshot.Key())
	title, ok := snapshot.Child("title").String()
	if !ok {
		return domain.Post{}, fmt.Errorf("%w: post %q has no title", errors.ErrMalformedRecord, id)
	}
	author, _ := snapshot.Child("author").String()
	kind, _ := snapshot.Child("kind").String()
	description, _ := snapshot.Child("description").String()
	location, _ := snapshot.Child("location").String()
	resolved, _ := snapshot.Child("resolved").Bool()
	return domain.Post{
		ID:          id,
		Author:      author,
		Kind:        domain.PostKind(kind),
		Title:       title,
		Description: description,
		Location:    location,
		Resolved:    resolved,
		CreatedAt:   millis(snapshot.Child("createdAt")),
	}, nil
}

func stringOr(snapshot remote.Snapshot, fallback string) string {
	if value, ok := snapshot.String(); ok && value != "" {
		return value
	}
	return fallback
}

func millis(snapshot remote.Snapshot) time.Time {
	ms, ok := snapshot.Int64()
	if !ok {
		return time.Time{}
	}
	return time.UnixMilli(ms).UTC()
}

// validSegment reports whether name can be used as one path segment.
func validSegment(name string) bool {
	return name != "" && !strings.ContainsAny(name, "/.#$[]")
}
