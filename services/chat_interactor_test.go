package services_test

import (
	"context"
	stderrors "errors"
	"log/slog"
	"lost-found/domain"
	"lost-found/mocks"
	"lost-found/remote"
	"lost-found/repositories"
	"lost-found/services"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	chats      *mocks.MockIChatRepository
	users      *mocks.MockIUserRepository
	presenter  *mocks.MockChatOutputBoundary
	interactor *services.ChatInteractor
}

func newFixture(t *testing.T) fixture {
	ctrl := gomock.NewController(t)
	f := fixture{
		chats:     mocks.NewMockIChatRepository(ctrl),
		users:     mocks.NewMockIUserRepository(ctrl),
		presenter: mocks.NewMockChatOutputBoundary(ctrl),
	}
	f.interactor = services.NewChatInteractor(f.chats, f.users, f.presenter, logs.GetLoggerFromLevel(slog.LevelDebug))
	return f
}

var (
	alice = domain.User{Username: "alice", Email: "alice@example.com"}
	chat  = domain.Chat{ID: "chat_1700000000000_7", Participants: []string{"alice", "bob"}}
)

func TestChatInteractor_LoadChats(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	f := newFixture(t)
	expected := services.ChatListResult{Chats: []domain.Chat{chat}}

	f.chats.EXPECT().GetChatsForUser(ctx, "alice").Return([]domain.Chat{chat})
	f.presenter.EXPECT().PresentChats(expected).Times(1)

	req.Equal(expected, f.interactor.LoadChats(ctx, "alice"))
}

func TestChatInteractor_CreateChat_Without_Participants(t *testing.T) {
	for _, participants := range [][]string{nil, {}} {
		req := require.New(t)
		f := newFixture(t)
		expected := services.ChatListResult{Error: "No participants specified"}

		// Then the repository is never called
		f.presenter.EXPECT().PresentChats(expected).Times(1)

		req.Equal(expected, f.interactor.CreateChat(context.Background(), participants))
	}
}

func TestChatInteractor_CreateChat_Returns_First_Participant_List(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	f := newFixture(t)
	other := domain.Chat{ID: "chat_1700000000000_1", Participants: []string{"alice", "carol"}}
	expected := services.ChatListResult{Chats: []domain.Chat{other, chat}}

	gomock.InOrder(
		f.chats.EXPECT().CreateChat(ctx, []string{"alice", "bob"}).Return(chat),
		f.chats.EXPECT().GetChatsForUser(ctx, "alice").Return([]domain.Chat{other, chat}),
		f.presenter.EXPECT().PresentChats(expected),
	)

	req.Equal(expected, f.interactor.CreateChat(ctx, []string{"alice", "bob"}))
}

func TestChatInteractor_SendMessage_Invalid_Data(t *testing.T) {
	tests := []struct {
		name                      string
		chatID, username, content string
	}{
		{"whitespace content", chat.ID, "alice", "   \t\n"},
		{"empty content", chat.ID, "alice", ""},
		{"missing chat", "", "alice", "hi"},
		{"missing user", chat.ID, "", "hi"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			f := newFixture(t)
			expected := services.MessageListResult{Error: "Invalid message data"}
			f.presenter.EXPECT().PresentMessages(expected).Times(1)

			req.Equal(expected, f.interactor.SendMessage(context.Background(), tt.chatID, tt.username, tt.content))
		})
	}
}

func TestChatInteractor_SendMessage_Unknown_User(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	f := newFixture(t)
	expected := services.MessageListResult{Error: "User not found"}

	f.users.EXPECT().GetUserByUsername(ctx, "mallory").Return(nil)
	f.presenter.EXPECT().PresentMessages(expected)

	req.Equal(expected, f.interactor.SendMessage(ctx, chat.ID, "mallory", "hi"))
}

func TestChatInteractor_SendMessage_Returns_Full_List(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	f := newFixture(t)
	previous := domain.Message{ID: "msg_1", ChatID: chat.ID, Sender: "bob", Content: "found it"}
	sent := domain.Message{ID: "msg_2", ChatID: chat.ID, Sender: "alice", Content: "thanks"}
	expected := services.MessageListResult{Messages: []domain.Message{previous, sent}}

	gomock.InOrder(
		f.users.EXPECT().GetUserByUsername(ctx, "alice").Return(&alice),
		// content arrives trimmed
		f.chats.EXPECT().SendMessage(ctx, chat.ID, "alice", "thanks").Return(sent),
		f.chats.EXPECT().GetMessagesForChat(ctx, chat.ID).Return([]domain.Message{previous, sent}),
		f.presenter.EXPECT().PresentMessages(expected),
	)

	req.Equal(expected, f.interactor.SendMessage(ctx, chat.ID, "alice", "  thanks  "))
}

func TestChatInteractor_SendMessage_Applies_Content_Filter(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	f := newFixture(t)
	filter := mocks.NewMockContentFilter(gomock.NewController(t))
	f.interactor.WithContentFilter(filter)

	f.users.EXPECT().GetUserByUsername(ctx, "alice").Return(&alice)
	filter.EXPECT().Filter("what a scam").Return("what a ****")
	f.chats.EXPECT().SendMessage(ctx, chat.ID, "alice", "what a ****").Return(domain.Message{})
	f.chats.EXPECT().GetMessagesForChat(ctx, chat.ID).Return([]domain.Message{})
	f.presenter.EXPECT().PresentMessages(gomock.Any())

	result := f.interactor.SendMessage(ctx, chat.ID, "alice", "what a scam")
	req.Empty(result.Error)
}

func TestChatInteractor_LoadMessages(t *testing.T) {
	t.Run("invalid chat data", func(t *testing.T) {
		req := require.New(t)
		f := newFixture(t)
		expected := services.MessageListResult{Error: "Invalid chat data"}
		f.presenter.EXPECT().PresentMessages(expected).Times(2)

		req.Equal(expected, f.interactor.LoadMessages(context.Background(), "", "alice"))
		req.Equal(expected, f.interactor.LoadMessages(context.Background(), chat.ID, ""))
	})

	t.Run("chat not found", func(t *testing.T) {
		req := require.New(t)
		ctx := context.Background()
		f := newFixture(t)
		expected := services.MessageListResult{Error: "Chat not found"}
		f.chats.EXPECT().GetChatByID(ctx, "chat_0_0").Return(nil)
		f.presenter.EXPECT().PresentMessages(expected)

		result := f.interactor.LoadMessages(ctx, "chat_0_0", "alice")
		req.Equal(expected, result)
		req.Nil(result.Messages)
	})

	t.Run("chat with messages", func(t *testing.T) {
		req := require.New(t)
		ctx := context.Background()
		f := newFixture(t)
		messages := []domain.Message{{ID: "msg_1", ChatID: chat.ID, Sender: "alice", Content: "hi"}}
		expected := services.MessageListResult{Chat: &chat, Messages: messages}
		f.chats.EXPECT().GetChatByID(ctx, chat.ID).Return(&chat)
		f.chats.EXPECT().GetMessagesForChat(ctx, chat.ID).Return(messages)
		f.presenter.EXPECT().PresentMessages(expected)

		req.Equal(expected, f.interactor.LoadMessages(ctx, chat.ID, "alice"))
	})
}

func TestChatInteractor_Unexpected_Failures_Become_Results(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	f := newFixture(t)

	f.chats.EXPECT().GetChatsForUser(ctx, "alice").DoAndReturn(func(context.Context, string) []domain.Chat {
		panic(stderrors.New("store client bug"))
	})
	f.presenter.EXPECT().PresentChats(services.ChatListResult{Error: "Failed to load chats: store client bug"})
	req.Equal("Failed to load chats: store client bug", f.interactor.LoadChats(ctx, "alice").Error)

	f.chats.EXPECT().GetChatByID(ctx, chat.ID).DoAndReturn(func(context.Context, string) *domain.Chat {
		panic("nil map")
	})
	f.presenter.EXPECT().PresentMessages(services.MessageListResult{Error: "Failed to load messages: nil map"})
	req.Equal("Failed to load messages: nil map", f.interactor.LoadMessages(ctx, chat.ID, "alice").Error)
}

func TestChatInteractor_Pass_Throughs(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	f := newFixture(t)

	f.users.EXPECT().GetUserByUsername(ctx, "alice").Return(&alice)
	f.chats.EXPECT().ChatExistsBetweenUsers(ctx, "bob", "alice").Return(true)
	f.chats.EXPECT().UpdateChatIsBlocked(ctx, chat.ID, true)
	f.chats.EXPECT().IsChatBlocked(ctx, chat.ID).Return(true)

	req.Equal(&alice, f.interactor.GetUserByUsername(ctx, "alice"))
	req.True(f.interactor.ChatExistsBetweenUsers(ctx, "bob", "alice"))
	f.interactor.UpdateChatIsBlocked(ctx, chat.ID, true)
	req.True(f.interactor.IsChatBlocked(ctx, chat.ID))
}

func TestChatInteractor_Pass_Throughs_Never_Panic(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	f := newFixture(t)
	boom := func() { panic("boom") }

	f.users.EXPECT().GetUserByUsername(gomock.Any(), gomock.Any()).Do(func(context.Context, string) { boom() })
	f.chats.EXPECT().ChatExistsBetweenUsers(gomock.Any(), gomock.Any(), gomock.Any()).Do(func(context.Context, string, string) { boom() })
	f.chats.EXPECT().UpdateChatIsBlocked(gomock.Any(), gomock.Any(), gomock.Any()).Do(func(context.Context, string, bool) { boom() })
	f.chats.EXPECT().IsChatBlocked(gomock.Any(), gomock.Any()).Do(func(context.Context, string) { boom() })

	req.Nil(f.interactor.GetUserByUsername(ctx, "alice"))
	req.False(f.interactor.ChatExistsBetweenUsers(ctx, "alice", "bob"))
	req.NotPanics(func() { f.interactor.UpdateChatIsBlocked(ctx, chat.ID, true) })
	req.False(f.interactor.IsChatBlocked(ctx, chat.ID))
}

// recorder keeps what the interactor pushed, for the end to end scenario.
type recorder struct {
	chats    []services.ChatListResult
	messages []services.MessageListResult
}

func (r *recorder) PresentChats(result services.ChatListResult)       { r.chats = append(r.chats, result) }
func (r *recorder) PresentMessages(result services.MessageListResult) { r.messages = append(r.messages, result) }

func TestChatInteractor_Create_Send_Load_Scenario(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR))
	req.NoError(err)
	store := remote.NewDiskStore(db, log)
	defer func() {
		store.Close()
		_ = db.Close()
	}()

	users := repositories.NewUserRepository(store, log, 2*time.Second, 4*time.Second)
	chats := repositories.NewChatRepository(store, log, domain.NewIDGenerator(), 2*time.Second)
	presenter := &recorder{}
	interactor := services.NewChatInteractor(chats, users, presenter, log)
	_, err = users.CreateUser(ctx, "alice", "alice@example.com", "ComplexPass123!")
	req.NoError(err)

	// Given a chat between alice and bob
	created := interactor.CreateChat(ctx, []string{"alice", "bob"})
	req.Empty(created.Error)
	req.Len(created.Chats, 1)
	chatID := created.Chats[0].ID
	req.NotEmpty(chatID)

	// When alice says hi
	sent := interactor.SendMessage(ctx, chatID, "alice", "hi")
	req.Empty(sent.Error)

	// Then loading the chat shows both participants and the message
	loaded := interactor.LoadMessages(ctx, chatID, "alice")
	req.Empty(loaded.Error)
	req.Equal([]string{"alice", "bob"}, loaded.Chat.Participants)
	req.Len(loaded.Messages, 1)
	req.Equal("alice", loaded.Messages[0].Sender)
	req.Equal("hi", loaded.Messages[0].Content)

	// And every call pushed exactly one result
	req.Len(presenter.chats, 1)
	req.Len(presenter.messages, 2)
}
