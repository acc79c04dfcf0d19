package api

import (
	"errors"
	"fmt"
)

// TerminalError представляет HTTP ошибку, которую бессмысленно повторять:
// сервер детерминированно отвергает запрос (4xx кроме 408/429).
type TerminalError struct {
	Message string
	Status  int
}

func (e *TerminalError) Error() string {
	return fmt.Sprintf("server rejected request (%d): %s", e.Status, e.Message)
}

// RemoteError представляет ошибку уровня приложения, пришедшую внутри
// успешного HTTP ответа. Terminal различает постоянные отказы от
// временных, чтобы очередь не повторяла безнадежные операции вечно.
type RemoteError struct {
	Code     string
	Message  string
	Terminal bool
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("remote error %s: %s", e.Code, e.Message)
}

// IsTerminal reports whether the error is a permanent failure that
// retrying will never fix. Everything else is treated as retryable.
func IsTerminal(err error) bool {
	var terminalErr *TerminalError
	if errors.As(err, &terminalErr) {
		return true
	}

	var remoteErr *RemoteError
	if errors.As(err, &remoteErr) {
		return remoteErr.Terminal
	}

	return false
}
