package domain

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

type MessageType string

const (
	TypeText  MessageType = "TEXT"
	TypeImage MessageType = "IMAGE"
	TypeEmoji MessageType = "EMOJI"
)

// Content is the closed set of payloads a chat message can carry.
// Only TextContent, ImageContent and EmojiContent implement it.
type Content interface {
	Type() MessageType
	isContent()
}

type TextContent struct {
	Text string
}

type ImageContent struct {
	URL string
}

type EmojiContent struct {
	Code string
}

func (TextContent) Type() MessageType  { return TypeText }
func (ImageContent) Type() MessageType { return TypeImage }
func (EmojiContent) Type() MessageType { return TypeEmoji }

func (TextContent) isContent()  {}
func (ImageContent) isContent() {}
func (EmojiContent) isContent() {}

// InboundMessage is the envelope a client sends over the socket.
type InboundMessage struct {
	MessageType    string `json:"messageType"`
	MessageContent string `json:"messageContent,omitempty"`
	ImageURL       string `json:"imageUrl,omitempty"`
	EmojiCode      string `json:"emojiCode,omitempty"`
}

// DecodeInbound parses raw bytes into a typed Content.
// Unknown message types yield ErrUnsupportedKind.
func DecodeInbound(raw []byte) (Content, error) {
	var in InboundMessage
	if err := json.Unmarshal(raw, &in); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedEnvelope, err)
	}
	return in.Content()
}

func (in InboundMessage) Content() (Content, error) {
	switch MessageType(in.MessageType) {
	case TypeText:
		return TextContent{Text: in.MessageContent}, nil
	case TypeImage:
		return ImageContent{URL: in.ImageURL}, nil
	case TypeEmoji:
		return EmojiContent{Code: in.EmojiCode}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedKind, in.MessageType)
	}
}

// NormalizeImageURL rewrites every backslash to a forward slash.
func NormalizeImageURL(url string) string {
	return strings.ReplaceAll(url, `\`, "/")
}

// ChatMessage is the canonical record broadcast to connections.
type ChatMessage struct {
	MessageID      int64       `json:"messageId"`
	ChatRoomID     int64       `json:"chatRoomId"`
	SenderID       int64       `json:"senderId"`
	SenderNickname string      `json:"senderNickname"`
	MessageType    MessageType `json:"messageType"`
	Content        string      `json:"content"`
	SentAt         time.Time   `json:"sentAt"`
}

func NewChatMessage(msg *Message, sender *User) *ChatMessage {
	return &ChatMessage{
		MessageID:      msg.ID,
		ChatRoomID:     msg.ChatRoomID,
		SenderID:       msg.SenderID,
		SenderNickname: sender.Nickname,
		MessageType:    msg.Type,
		Content:        msg.Content,
		SentAt:         msg.CreatedAt,
	}
}
