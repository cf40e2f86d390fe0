package logging

import "log/slog"

// Domain identifiers

func Room(id int64) slog.Attr {
	return slog.Int64("chat_room_id", id)
}

func User(id int64) slog.Attr {
	return slog.Int64("user_id", id)
}

func Message(id int64) slog.Attr {
	return slog.Int64("message_id", id)
}

func Kind(kind string) slog.Attr {
	return slog.String("message_type", kind)
}

// Request / tracing

func TraceID(id string) slog.Attr {
	return slog.String("trace_id", id)
}

// Error handling

func Err(err error) slog.Attr {
	if err == nil {
		return slog.String("error", "")
	}
	return slog.String("error", err.Error())
}
