package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeInbound(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Content
	}{
		{"text", `{"messageType":"TEXT","messageContent":"hello"}`, TextContent{Text: "hello"}},
		{"empty text", `{"messageType":"TEXT"}`, TextContent{}},
		{"image", `{"messageType":"IMAGE","imageUrl":"uploads\\p.png"}`, ImageContent{URL: `uploads\p.png`}},
		{"emoji", `{"messageType":"EMOJI","emojiCode":":heart:"}`, EmojiContent{Code: ":heart:"}},
		{"extra fields ignored", `{"messageType":"EMOJI","emojiCode":":x:","messageContent":"ignored"}`, EmojiContent{Code: ":x:"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeInbound([]byte(tt.raw))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want.Type(), got.Type())
		})
	}
}

func TestDecodeInbound_Errors(t *testing.T) {
	_, err := DecodeInbound([]byte(`{"messageType":"VIDEO"}`))
	assert.ErrorIs(t, err, ErrUnsupportedKind)

	_, err = DecodeInbound([]byte(`{"messageType":"text"}`))
	assert.ErrorIs(t, err, ErrUnsupportedKind)

	_, err = DecodeInbound([]byte(`{}`))
	assert.ErrorIs(t, err, ErrUnsupportedKind)

	_, err = DecodeInbound([]byte(`not json`))
	assert.ErrorIs(t, err, ErrMalformedEnvelope)
}

func TestNormalizeImageURL(t *testing.T) {
	assert.Equal(t, "a/b/c.png", NormalizeImageURL(`a\b\c.png`))
	assert.Equal(t, "https://cdn.example.com/x.png", NormalizeImageURL("https://cdn.example.com/x.png"))
	assert.Equal(t, "", NormalizeImageURL(""))
}

func TestChatMessage_JSON(t *testing.T) {
	sentAt := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	msg := NewChatMessage(
		&Message{ID: 1, ChatRoomID: 3, SenderID: 7, Type: TypeText, Content: "hi", CreatedAt: sentAt},
		&User{ID: 7, Nickname: "buyer"},
	)

	data, err := json.Marshal(msg)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"messageId": 1,
		"chatRoomId": 3,
		"senderId": 7,
		"senderNickname": "buyer",
		"messageType": "TEXT",
		"content": "hi",
		"sentAt": "2024-05-01T12:00:00Z"
	}`, string(data))
}

func TestChatRoom_Participants(t *testing.T) {
	r := &ChatRoom{ID: 1, BuyerID: 7, SellerID: 9}

	assert.True(t, r.HasParticipant(7))
	assert.True(t, r.HasParticipant(9))
	assert.False(t, r.HasParticipant(11))
	assert.Equal(t, int64(9), r.Counterpart(7))
	assert.Equal(t, int64(7), r.Counterpart(9))
}
