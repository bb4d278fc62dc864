// Copyright 2026 Omnaris Ltd.
// SPDX-License-Identifier: AGPL-3.0

package mailer

import (
	"context"
)

type Attachment struct {
	Filename    string
	Content     []byte
	ContentType string
}

type Message struct {
	To          string
	Subject     string
	HTML        string
	Attachments []Attachment
}

// EmailProviderInterface is the outbound email dependency. It is opaque and
// potentially unavailable; callers treat every error as a failed attempt.
type EmailProviderInterface interface {
	// Send delivers the message and returns the provider-assigned message ID.
	Send(ctx context.Context, msg *Message) (string, error)
	Name() string
}
