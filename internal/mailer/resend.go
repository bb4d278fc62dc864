// Copyright 2026 Omnaris Ltd.
// SPDX-License-Identifier: AGPL-3.0

package mailer

import (
	"context"
	"fmt"
	"time"

	"github.com/resend/resend-go/v2"

	"github.com/omnaris/scan-service/internal/logging"
	"github.com/omnaris/scan-service/internal/monitoring"
	"github.com/omnaris/scan-service/internal/tracing"
)

const providerName = "resend"

var _ EmailProviderInterface = (*ResendMailer)(nil)

type ResendMailer struct {
	client  *resend.Client
	from    string
	timeout time.Duration

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewResendMailer(apiKey, from string, timeout time.Duration, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *ResendMailer {
	m := new(ResendMailer)

	m.client = resend.NewClient(apiKey)
	m.from = from
	m.timeout = timeout

	m.tracer = tracer
	m.monitor = monitor
	m.logger = logger

	return m
}

func (m *ResendMailer) Name() string {
	return providerName
}

// Send performs one bounded outbound call. Timeout expiry counts as a
// delivery failure like any other provider error.
func (m *ResendMailer) Send(ctx context.Context, msg *Message) (string, error) {
	ctx, span := m.tracer.Start(ctx, "mailer.ResendMailer.Send")
	defer span.End()

	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	params := &resend.SendEmailRequest{
		From:    m.from,
		To:      []string{msg.To},
		Subject: msg.Subject,
		Html:    msg.HTML,
	}

	for _, a := range msg.Attachments {
		params.Attachments = append(params.Attachments, &resend.Attachment{
			Filename:    a.Filename,
			Content:     a.Content,
			ContentType: a.ContentType,
		})
	}

	sent, err := m.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		_ = m.monitor.SetDependencyAvailability(map[string]string{"component": providerName}, 0)
		return "", fmt.Errorf("failed to send email: %w", err)
	}

	_ = m.monitor.SetDependencyAvailability(map[string]string{"component": providerName}, 1)
	return sent.Id, nil
}
