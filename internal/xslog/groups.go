package xslog

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/mohamadkhanafer/fitnessapp/internal/xcontext"
	"github.com/mohamadkhanafer/fitnessapp/internal/xhttp"
)

const (
	groupRequest  = "request"
	groupResponse = "response"
	groupError    = "error"
)

const (
	keyID         = "id"
	keyMethod     = "method"
	keyPath       = "path"
	keyIP         = "ip"
	keyStatusText = "status_text"
	keyDurationMS = "duration_ms"
	keyValue      = "value"
	keyType       = "type"
	keyStack      = "stack"
)

func RequestGroup(r *http.Request) slog.Attr {
	attrs := []slog.Attr{
		slog.String(keyMethod, r.Method),
		slog.String(keyPath, r.URL.Path),
		slog.String(keyIP, xhttp.GetRequestIP(r)),
	}
	if id, ok := xcontext.GetRequestID(r.Context()); ok {
		attrs = append(attrs, slog.String(keyID, id))
	}
	return slog.GroupAttrs(groupRequest, attrs...)
}

func ResponseGroup(status int, duration time.Duration) slog.Attr {
	return slog.Group(groupResponse,
		HTTPStatus(status),
		slog.String(keyStatusText, http.StatusText(status)),
		Duration(duration),
		slog.Int64(keyDurationMS, duration.Milliseconds()),
	)
}

func ErrorGroupWithStack(err any) slog.Attr {
	return slog.Group(groupError,
		slog.Any(keyValue, err),
		slog.String(keyType, fmt.Sprintf("%T", err)),
		slog.String(keyStack, string(debug.Stack())),
	)
}
