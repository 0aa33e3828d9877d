package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/resend/resend-go/v2"
)

// EmailService sends transactional emails.
type EmailService interface {
	SendResultsRecap(ctx context.Context, toEmail string, groups []ClassGroup) error
}

// NoopEmailService is used when email delivery is disabled.
type NoopEmailService struct{}

func (s *NoopEmailService) SendResultsRecap(ctx context.Context, toEmail string, groups []ClassGroup) error {
	log.Printf("[EmailService] noop send results recap to=%s", toEmail)
	return nil
}

// ResendEmailService sends emails via Resend REST API.
type ResendEmailService struct {
	from   string
	client *resend.Client
}

func NewResendEmailService(apiKey, from string) (*ResendEmailService, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("resend api key is required")
	}
	if from == "" {
		return nil, fmt.Errorf("email from is required")
	}
	return &ResendEmailService{
		from:   from,
		client: resend.NewClient(apiKey),
	}, nil
}

func (s *ResendEmailService) SendResultsRecap(ctx context.Context, toEmail string, groups []ClassGroup) error {
	if toEmail == "" {
		return fmt.Errorf("toEmail is required")
	}

	text, html := renderRecap(groups)
	params := &resend.SendEmailRequest{
		From:    s.from,
		To:      []string{toEmail},
		Subject: "Rekap hasil kuis CHECKMyXy",
		Text:    text,
		Html:    html,
	}

	options := &resend.SendEmailOptions{}

	var lastErr error
	for attempt := 0; attempt < 3; attempt++ {
		_, err := s.client.Emails.SendWithOptions(ctx, params, options)
		if err == nil {
			return nil
		}
		lastErr = err

		if wait, ok := resendRetryDelay(err, attempt); ok {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(wait):
				continue
			}
		}

		return fmt.Errorf("resend send failed: %w", err)
	}

	return fmt.Errorf("resend send failed after retries: %w", lastErr)
}

func renderRecap(groups []ClassGroup) (text string, html string) {
	var txt, h strings.Builder
	txt.WriteString("Rekap hasil kuis per kelas:\n\n")
	h.WriteString("<h2>Rekap hasil kuis per kelas</h2>")

	if len(groups) == 0 {
		txt.WriteString("Belum ada hasil.\n")
		h.WriteString("<p>Belum ada hasil.</p>")
		return txt.String(), h.String()
	}

	for _, g := range groups {
		fmt.Fprintf(&txt, "Kelas %s:\n", g.ClassName)
		fmt.Fprintf(&h, "<h3>Kelas %s</h3><ul>", g.ClassName)
		for _, st := range g.Students {
			fmt.Fprintf(&txt, "  - %s: %d tahap selesai, rata-rata %d%%\n", st.Name, len(st.Stages), st.Average)
			fmt.Fprintf(&h, "<li>%s: %d tahap selesai, rata-rata <strong>%d%%</strong></li>", st.Name, len(st.Stages), st.Average)
		}
		txt.WriteString("\n")
		h.WriteString("</ul>")
	}
	return txt.String(), h.String()
}

func resendRetryDelay(err error, attempt int) (time.Duration, bool) {
	var rateLimitErr *resend.RateLimitError
	if errors.As(err, &rateLimitErr) {
		if seconds, convErr := strconv.Atoi(strings.TrimSpace(rateLimitErr.RetryAfter)); convErr == nil && seconds > 0 {
			if seconds > 30 {
				seconds = 30
			}
			return time.Duration(seconds) * time.Second, true
		}
		return time.Duration(attempt+1) * time.Second, true
	}

	var netErr net.Error
	if errors.As(err, &netErr) && (netErr.Timeout() || netErr.Temporary()) {
		return time.Duration(attempt+1) * 500 * time.Millisecond, true
	}

	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "timeout") || strings.Contains(msg, "temporar") {
		return time.Duration(attempt+1) * 500 * time.Millisecond, true
	}

	return 0, false
}
