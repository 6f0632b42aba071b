package relay

import (
	"bytes"
	"context"
	"fmt"
	htmltemplate "html/template"
	"strings"
	texttemplate "text/template"

	gopkgmail "gopkg.in/gomail.v2"
)

type SMTPConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
	To       string
	Subject  string
}

// SMTPSender delivers the order summary directly over SMTP instead of going
// through an HTTP relay.
type SMTPSender struct {
	cfg SMTPConfig
}

func NewSMTPSender(cfg SMTPConfig) *SMTPSender {
	return &SMTPSender{cfg: cfg}
}

const plainTemplate = `New order received.

Items:
{{.Summary}}

Total: {{.Total}}
Currency: {{.Currency}}

Shipping details:
{{- range $k, $v := .Fields}}
{{$k}}: {{$v}}
{{- end}}
`

const htmlTemplate = `<h2>New order received</h2>
<pre>{{.Summary}}</pre>
<p><b>Total:</b> {{.Total}} ({{.Currency}})</p>
<table>
{{- range $k, $v := .Fields}}
<tr><td>{{$k}}</td><td>{{$v}}</td></tr>
{{- end}}
</table>
`

func (s *SMTPSender) Submit(ctx context.Context, sub Submission) error {
	if sub.Summary == "" {
		sub.Summary = emptyCartSummary
	}

	plainBody, err := s.renderPlain(sub)
	if err != nil {
		return fmt.Errorf("render plain: %w", err)
	}
	htmlBody, err := s.renderHTML(sub)
	if err != nil {
		return fmt.Errorf("render html: %w", err)
	}

	m := gopkgmail.NewMessage()
	m.SetHeader("From", s.cfg.From)
	m.SetHeader("To", s.cfg.To)
	m.SetHeader("Subject", s.cfg.Subject)
	m.SetBody("text/plain", plainBody)
	m.AddAlternative("text/html", htmlBody)

	d := gopkgmail.NewDialer(s.cfg.Host, s.cfg.Port, s.cfg.User, s.cfg.Password)
	d.SSL = true

	done := make(chan error, 1)
	go func() { done <- d.DialAndSend(m) }()
	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *SMTPSender) renderPlain(sub Submission) (string, error) {
	tmpl, err := texttemplate.New("order").Parse(plainTemplate)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, sub); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func (s *SMTPSender) renderHTML(sub Submission) (string, error) {
	tmpl, err := htmltemplate.New("order").Parse(htmlTemplate)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, sub); err != nil {
		return "", err
	}
	return strings.TrimSpace(buf.String()), nil
}
