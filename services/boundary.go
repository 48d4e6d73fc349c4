//go:generate go run go.uber.org/mock/mockgen -source=boundary.go -destination=../mocks/mock_boundary.go -package=mocks
package services

import "lost-found/domain"

// ChatListResult carries either the chats or an error message, never both.
type ChatListResult struct {
	Chats []domain.Chat
	Error string
}

// MessageListResult carries either a chat with its messages or an error message.
type MessageListResult struct {
	Chat     *domain.Chat
	Messages []domain.Message
	Error    string
}

// ChatOutputBoundary receives exactly one result per interactor request.
type ChatOutputBoundary interface {
	PresentChats(result ChatListResult)
	PresentMessages(result MessageListResult)
}

// ContentFilter rewrites message content before it is sent.
type ContentFilter interface {
	Filter(content string) string
}
