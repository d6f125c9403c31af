package ports

import "context"

// ChatSender identifies who wrote a chat message.
type ChatSender string

const (
	SenderUser      ChatSender = "user"
	SenderAssistant ChatSender = "assistant"
)

// ChatMessage is one turn of an assistant conversation.
type ChatMessage struct {
	Sender ChatSender `json:"sender" validate:"required,oneof=user assistant"`
	Text   string     `json:"text"   validate:"required"`
}

// TextGenerator is the remote text-generation collaborator.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
	Chat(ctx context.Context, system string, history []ChatMessage) (string, error)
}

// MessageKind selects the marketing message template.
type MessageKind string

const (
	MessageReminder  MessageKind = "reminder"
	MessagePromotion MessageKind = "promotion"
	MessageBirthday  MessageKind = "birthday"
)

// MessageRequest asks for a marketing message for one client.
type MessageRequest struct {
	Kind      MessageKind `json:"kind"      validate:"required,oneof=reminder promotion birthday"`
	ClientID  int64       `json:"clientId"  validate:"required"`
	Promotion string      `json:"promotion"`
}

// GeneratedText is returned by the marketing operations. Fallback is true when
// the collaborator failed and Text holds the localized apology instead.
type GeneratedText struct {
	Text     string `json:"text"`
	Fallback bool   `json:"fallback"`
}

type MarketingService interface {
	GenerateMessage(ctx context.Context, req MessageRequest) (*GeneratedText, error)
	Ask(ctx context.Context, history []ChatMessage) (*GeneratedText, error)
}
