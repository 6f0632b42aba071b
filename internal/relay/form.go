package relay

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"go.uber.org/zap"
)

const emptyCartSummary = "No items in cart"

// FormRelay posts the order as a multipart form to an email-relay endpoint
// (formsubmit-style). Any non-2xx response counts as a failed submission.
type FormRelay struct {
	url     string
	subject string
	client  *http.Client
	log     *zap.Logger
}

func NewFormRelay(url, subject string, log *zap.Logger) *FormRelay {
	return &FormRelay{
		url:     url,
		subject: subject,
		client:  &http.Client{},
		log:     log,
	}
}

func (r *FormRelay) Submit(ctx context.Context, s Submission) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	summary := s.Summary
	if summary == "" {
		summary = emptyCartSummary
	}

	fields := map[string]string{
		"_subject":      r.subject,
		"_template":     "table",
		"_captcha":      "false",
		"cart_items":    summary,
		"cart_total":    s.Total,
		"cart_currency": s.Currency,
	}
	for k, v := range s.Fields {
		fields[k] = v
	}
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			return fmt.Errorf("encode form field %s: %w", k, err)
		}
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("encode form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.url, &buf)
	if err != nil {
		return fmt.Errorf("build relay request: %w", err)
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	req.Header.Set("Accept", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return fmt.Errorf("post to relay: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		r.log.Warn("relay rejected submission", zap.String("status", resp.Status))
		return fmt.Errorf("relay responded %s", resp.Status)
	}
	return nil
}
