package domain

import "context"

// NoticeLevel classifies a user-facing notification.
type NoticeLevel string

const (
	NoticeSuccess NoticeLevel = "success"
	NoticeWarning NoticeLevel = "warning"
	NoticeError   NoticeLevel = "error"
)

// Notice is a user-facing notification (rendered as a toast by the UI).
type Notice struct {
	Level NoticeLevel `json:"level"`
	Text  string      `json:"text"`
}

// Notifier delivers notices to whatever surface the UI provides. This
// allows for different implementations (in-process bus, logging, test
// recorder).
type Notifier interface {
	Notify(ctx context.Context, n Notice) error
}

// TokenSource supplies the bearer credential for outbound API calls.
// The credential may expire between calls, so it is fetched fresh for
// every call and never cached past single-call use.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// TokenVerifier validates an inbound bearer credential and resolves the
// seller uid it belongs to.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (uid string, err error)
}
