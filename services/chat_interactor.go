package services

import (
	"context"
	"fmt"
	"log/slog"
	"lost-found/domain"
	"lost-found/repositories"
	"strings"

	"github.com/go-playground/validator/v10"
)

const (
	ErrNoParticipants     = "No participants specified"
	ErrInvalidMessageData = "Invalid message data"
	ErrUserNotFound       = "User not found"
	ErrInvalidChatData    = "Invalid chat data"
	ErrChatNotFound       = "Chat not found"
)

var validate = validator.New()

type createChatRequest struct {
	Participants []string `validate:"min=1"`
}

type sendMessageRequest struct {
	ChatID   string `validate:"required"`
	Username string `validate:"required"`
	Content  string `validate:"required"`
}

type loadMessagesRequest struct {
	ChatID   string `validate:"required"`
	Username string `validate:"required"`
}

// ChatInteractor runs the chat use cases. Each call is independent: it
// validates its input, talks to the repositories and hands a single result to
// the presenter, which it also returns.
type ChatInteractor struct {
	chats     repositories.IChatRepository
	users     repositories.IUserRepository
	presenter ChatOutputBoundary
	filter    ContentFilter
	log       *slog.Logger
}

func NewChatInteractor(
	chats repositories.IChatRepository,
	users repositories.IUserRepository,
	presenter ChatOutputBoundary,
	log *slog.Logger,
) *ChatInteractor {
	return &ChatInteractor{chats: chats, users: users, presenter: presenter, log: log}
}

// WithContentFilter censors message content before it reaches the repository.
func (i *ChatInteractor) WithContentFilter(filter ContentFilter) *ChatInteractor {
	i.filter = filter
	return i
}

func (i *ChatInteractor) LoadChats(ctx context.Context, username string) (result ChatListResult) {
	defer func() {
		if r := recover(); r != nil {
			result = ChatListResult{Error: i.failure("load chats", r)}
		}
		i.presenter.PresentChats(result)
	}()
	return ChatListResult{Chats: i.chats.GetChatsForUser(ctx, username)}
}

// CreateChat answers with the refreshed chat list of the first participant.
func (i *ChatInteractor) CreateChat(ctx context.Context, participants []string) (result ChatListResult) {
	defer func() {
		if r := recover(); r != nil {
			result = ChatListResult{Error: i.failure("create chat", r)}
		}
		i.presenter.PresentChats(result)
	}()
	if err := validate.Struct(createChatRequest{Participants: participants}); err != nil {
		return ChatListResult{Error: ErrNoParticipants}
	}
	chat := i.chats.CreateChat(ctx, participants)
	i.log.Debug("Chat created", "chat_id", chat.ID)
	return ChatListResult{Chats: i.chats.GetChatsForUser(ctx, participants[0])}
}

// SendMessage answers with the chat's full message list.
func (i *ChatInteractor) SendMessage(ctx context.Context, chatID, username, content string) (result MessageListResult) {
	defer func() {
		if r := recover(); r != nil {
			result = MessageListResult{Error: i.failure("send message", r)}
		}
		i.presenter.PresentMessages(result)
	}()
	content = strings.TrimSpace(content)
	if err := validate.Struct(sendMessageRequest{ChatID: chatID, Username: username, Content: content}); err != nil {
		return MessageListResult{Error: ErrInvalidMessageData}
	}
	if i.users.GetUserByUsername(ctx, username) == nil {
		return MessageListResult{Error: ErrUserNotFound}
	}
	if i.filter != nil {
		content = i.filter.Filter(content)
	}
	i.chats.SendMessage(ctx, chatID, username, content)
	return MessageListResult{Messages: i.chats.GetMessagesForChat(ctx, chatID)}
}

func (i *ChatInteractor) LoadMessages(ctx context.Context, chatID, username string) (result MessageListResult) {
	defer func() {
		if r := recover(); r != nil {
			result = MessageListResult{Error: i.failure("load messages", r)}
		}
		i.presenter.PresentMessages(result)
	}()
	if err := validate.Struct(loadMessagesRequest{ChatID: chatID, Username: username}); err != nil {
		return MessageListResult{Error: ErrInvalidChatData}
	}
	chat := i.chats.GetChatByID(ctx, chatID)
	if chat == nil {
		return MessageListResult{Error: ErrChatNotFound}
	}
	return MessageListResult{Chat: chat, Messages: i.chats.GetMessagesForChat(ctx, chatID)}
}

func (i *ChatInteractor) GetUserByUsername(ctx context.Context, username string) (user *domain.User) {
	defer i.swallow("get user by username", func() { user = nil })
	return i.users.GetUserByUsername(ctx, username)
}

func (i *ChatInteractor) ChatExistsBetweenUsers(ctx context.Context, username1, username2 string) (exists bool) {
	defer i.swallow("check chat existence", func() { exists = false })
	return i.chats.ChatExistsBetweenUsers(ctx, username1, username2)
}

func (i *ChatInteractor) UpdateChatIsBlocked(ctx context.Context, chatID string, blocked bool) {
	defer i.swallow("update chat block state", func() {})
	i.chats.UpdateChatIsBlocked(ctx, chatID, blocked)
}

func (i *ChatInteractor) IsChatBlocked(ctx context.Context, chatID string) (blocked bool) {
	defer i.swallow("read chat block state", func() { blocked = false })
	return i.chats.IsChatBlocked(ctx, chatID)
}

func (i *ChatInteractor) failure(action string, recovered any) string {
	message := fmt.Sprint(recovered)
	if err, ok := recovered.(error); ok {
		message = err.Error()
	}
	i.log.Error("Unexpected failure", "action", action, "error", message)
	return fmt.Sprintf("Failed to %s: %s", action, message)
}

// swallow must be deferred directly so that recover sees the panic.
func (i *ChatInteractor) swallow(action string, fallback func()) {
	if r := recover(); r != nil {
		i.failure(action, r)
		fallback()
	}
}
