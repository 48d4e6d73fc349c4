//go:generate go run go.uber.org/mock/mockgen -source=chat.go -destination=../mocks/mock_chat_repository.go -package=mocks
package repositories

import (
	"context"
	"fmt"
	"log/slog"
	"lost-found/bridge"
	"lost-found/domain"
	"lost-found/errors"
	"lost-found/remote"
	"slices"
	"time"

	"github.com/samber/lo"
)

// IChatRepository never fails: every read degrades to an empty list, false or
// nil, and writes report success to the caller whatever the store answered.
type IChatRepository interface {
	GetChatsForUser(ctx context.Context, username string) []domain.Chat
	CreateChat(ctx context.Context, participants []string) domain.Chat
	SendMessage(ctx context.Context, chatID, sender, content string) domain.Message
	GetMessagesForChat(ctx context.Context, chatID string) []domain.Message
	GetChatByID(ctx context.Context, chatID string) *domain.Chat
	ChatExistsBetweenUsers(ctx context.Context, username1, username2 string) bool
	UpdateChatIsBlocked(ctx context.Context, chatID string, blocked bool)
	IsChatBlocked(ctx context.Context, chatID string) bool
}

// WriteFailureHook is told about writes whose failure is not surfaced to callers.
type WriteFailureHook func(op, path string, err error)

type ChatRepository struct {
	store          remote.Store
	log            *slog.Logger
	ids            *domain.IDGenerator
	deadline       time.Duration
	now            func() time.Time
	onWriteFailure WriteFailureHook
}

func NewChatRepository(store remote.Store, log *slog.Logger, ids *domain.IDGenerator, deadline time.Duration) *ChatRepository {
	return &ChatRepository{store: store, log: log, ids: ids, deadline: deadline, now: time.Now}
}

// OnWriteFailure registers a hook fired after each silent write failure.
func (r *ChatRepository) OnWriteFailure(hook WriteFailureHook) *ChatRepository {
	r.onWriteFailure = hook
	return r
}

func (r *ChatRepository) op(name string) bridge.Op {
	return bridge.Op{Name: "chat." + name, Deadline: r.deadline, Log: r.log}
}

// GetChatsForUser reads every chat once and keeps those the user takes part in.
func (r *ChatRepository) GetChatsForUser(ctx context.Context, username string) []domain.Chat {
	chats := r.readAllChats(ctx, "getChatsForUser")
	return lo.Filter(chats, func(chat domain.Chat, _ int) bool {
		return chat.HasParticipant(username)
	})
}

// CreateChat returns the new chat even when the store refused the write:
// the caller has already committed it to its view.
func (r *ChatRepository) CreateChat(ctx context.Context, participants []string) domain.Chat {
	chat := domain.Chat{
		ID:           r.ids.Next(domain.ChatIDPrefix),
		Participants: slices.Clone(participants),
		CreatedAt:    r.timestamp(),
		Blocked:      false,
	}
	path := remote.Join(chatsPath, chat.ID)
	if err := bridge.Write(ctx, r.store, r.op("createChat"), path, encodeChat(chat)); err != nil {
		r.silentWriteFailure("createChat", path, err)
	} else {
		r.log.Debug("Chat created", "chat_id", chat.ID, "participants", chat.Participants)
	}
	return chat
}

// SendMessage stores the message under messages/{chatId}/{messageId} and
// returns it whatever the write outcome.
func (r *ChatRepository) SendMessage(ctx context.Context, chatID, sender, content string) domain.Message {
	message := domain.Message{
		ID:      r.ids.Next(domain.MessageIDPrefix),
		ChatID:  chatID,
		Sender:  sender,
		Content: content,
		SentAt:  r.timestamp(),
		Read:    false,
	}
	path := remote.Join(messagesPath, chatID, message.ID)
	if !validSegment(chatID) {
		r.silentWriteFailure("sendMessage", path, fmt.Errorf("%w: chat id %q", errors.ErrInvalidPath, chatID))
		return message
	}
	if err := bridge.Write(ctx, r.store, r.op("sendMessage"), path, encodeMessage(message)); err != nil {
		r.silentWriteFailure("sendMessage", path, err)
	}
	return message
}

// GetMessagesForChat keeps the store's natural child order, which follows sentAt.
func (r *ChatRepository) GetMessagesForChat(ctx context.Context, chatID string) []domain.Message {
	if !validSegment(chatID) {
		return []domain.Message{}
	}
	snapshot, err := bridge.ReadOnce(ctx, r.store, r.op("getMessagesForChat"), remote.Join(messagesPath, chatID))
	if err != nil {
		r.log.Warn("Messages unavailable, returning none", "chat_id", chatID, "error", err)
		return []domain.Message{}
	}
	messages := make([]domain.Message, 0, len(snapshot.Children()))
	for _, child := range snapshot.Children() {
		message, err := decodeMessage(child)
		if err != nil {
			r.log.Warn("Skipping malformed message", "path", child.Path(), "error", err)
			continue
		}
		if message.ChatID == "" {
			message.ChatID = chatID
		}
		messages = append(messages, message)
	}
	return messages
}

func (r *ChatRepository) GetChatByID(ctx context.Context, chatID string) *domain.Chat {
	if !validSegment(chatID) {
		return nil
	}
	snapshot, err := bridge.ReadOnce(ctx, r.store, r.op("getChatById"), remote.Join(chatsPath, chatID))
	if err != nil {
		r.log.Warn("Chat unavailable", "chat_id", chatID, "error", err)
		return nil
	}
	if !snapshot.Exists() {
		return nil
	}
	chat, err := decodeChat(snapshot)
	if err != nil {
		r.log.Warn("Malformed chat", "chat_id", chatID, "error", err)
		return nil
	}
	return &chat
}

// ChatExistsBetweenUsers is symmetric: the participant list order never matters.
func (r *ChatRepository) ChatExistsBetweenUsers(ctx context.Context, username1, username2 string) bool {
	chats := r.readAllChats(ctx, "chatExistsBetweenUsers")
	return lo.SomeBy(chats, func(chat domain.Chat) bool {
		return chat.HasParticipants(username1, username2)
	})
}

func (r *ChatRepository) UpdateChatIsBlocked(ctx context.Context, chatID string, blocked bool) {
	path := remote.Join(chatsPath, chatID, blockedField)
	if !validSegment(chatID) {
		r.silentWriteFailure("updateChatIsBlocked", path, fmt.Errorf("%w: chat id %q", errors.ErrInvalidPath, chatID))
		return
	}
	if err := bridge.Write(ctx, r.store, r.op("updateChatIsBlocked"), path, blocked); err != nil {
		r.silentWriteFailure("updateChatIsBlocked", path, err)
	}
}

func (r *ChatRepository) IsChatBlocked(ctx context.Context, chatID string) bool {
	if !validSegment(chatID) {
		return false
	}
	snapshot, err := bridge.ReadOnce(ctx, r.store, r.op("isChatBlocked"), remote.Join(chatsPath, chatID, blockedField))
	if err != nil {
		r.log.Warn("Block state unavailable, assuming unblocked", "chat_id", chatID, "error", err)
		return false
	}
	blocked, _ := snapshot.Bool()
	return blocked
}

func (r *ChatRepository) readAllChats(ctx context.Context, name string) []domain.Chat {
	snapshot, err := bridge.ReadOnce(ctx, r.store, r.op(name), chatsPath)
	if err != nil {
		r.log.Warn("Chats unavailable, returning none", "op", name, "error", err)
		return []domain.Chat{}
	}
	chats := make([]domain.Chat, 0, len(snapshot.Children()))
	for _, child := range snapshot.Children() {
		chat, err := decodeChat(child)
		if err != nil {
			r.log.Warn("Skipping malformed chat", "path", child.Path(), "error", err)
			continue
		}
		chats = append(chats, chat)
	}
	return chats
}

func (r *ChatRepository) silentWriteFailure(op, path string, err error) {
	r.log.Error("Write failed, caller not told", "event", "silent_write_failure", "op", op, "path", path, "error", err)
	if r.onWriteFailure != nil {
		r.onWriteFailure(op, path, err)
	}
}

// timestamp has the millisecond precision the store keeps.
func (r *ChatRepository) timestamp() time.Time {
	return r.now().UTC().Truncate(time.Millisecond)
}
