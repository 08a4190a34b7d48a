package telegram

import (
	"errors"
	"fmt"
	"strings"

	"restaurant-bot/internal/chat"
)

// errorMessage returns a user-facing error string for the given error.
func errorMessage(err error, available []string) string {
	if err == nil {
		return ""
	}
	if errors.Is(err, chat.ErrInvalidAlgorithm) {
		return fmt.Sprintf("Unknown classifier. Available: %s", strings.Join(available, ", "))
	}
	return msgFailed
}
