package domain

import (
	"context"
	"fmt"
	"strings"
	"time"
)

type SessionStyle string

const (
	// SessionStylePrompt sends the image and the instruction prompt as one request.
	SessionStylePrompt SessionStyle = "prompt"
	// SessionStyleChat seeds a chat history with the image and then asks for the analysis.
	SessionStyleChat SessionStyle = "chat"
)

func ParseSessionStyle(s string) (SessionStyle, error) {
	switch SessionStyle(strings.ToLower(strings.TrimSpace(s))) {
	case "", SessionStylePrompt:
		return SessionStylePrompt, nil
	case SessionStyleChat:
		return SessionStyleChat, nil
	default:
		return "", NewDomainError(ErrCodeValidation, fmt.Sprintf("unknown session style %q", s), nil)
	}
}

type Analysis struct {
	Text     string
	Model    string
	Style    SessionStyle
	Duration time.Duration
}

// ImageAnalyzer sends an image to a hosted multimodal model and returns the
// text it produced, unmodified.
type ImageAnalyzer interface {
	AnalyzeImage(ctx context.Context, image Image) (string, error)
	Model() string
	Style() SessionStyle
}
