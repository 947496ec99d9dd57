package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/example/bhawani/internal/models"
)

const mailjetAPI = "https://api.mailjet.com"

// indiaTime is the zone submission times are reported in.
var indiaTime = time.FixedZone("IST", 5*60*60+30*60)

// MailjetConfig holds credentials and addressing for contact notifications.
type MailjetConfig struct {
	APIKey    string
	SecretKey string
	FromEmail string
	FromName  string
	ToEmail   string
	ToName    string
}

// MailjetService sends transactional email through the Mailjet v3.1 send API.
type MailjetService struct {
	cfg     MailjetConfig
	baseURL string
	client  *http.Client
}

// NewMailjetService constructs a MailjetService.
func NewMailjetService(cfg MailjetConfig) *MailjetService {
	return &MailjetService{
		cfg:     cfg,
		baseURL: mailjetAPI,
		client:  &http.Client{Timeout: 15 * time.Second},
	}
}

type mailjetAddress struct {
	Email string `json:"Email"`
	Name  string `json:"Name,omitempty"`
}

type mailjetMessage struct {
	From     mailjetAddress   `json:"From"`
	To       []mailjetAddress `json:"To"`
	Subject  string           `json:"Subject"`
	HTMLPart string           `json:"HTMLPart"`
}

type mailjetRequest struct {
	Messages []mailjetMessage `json:"Messages"`
}

type mailjetResponse struct {
	Messages []struct {
		Status string `json:"Status"`
	} `json:"Messages"`
}

var contactEmailTemplate = template.Must(template.New("contact").Funcs(template.FuncMap{
	"lines": func(s string) []string { return strings.Split(s, "\n") },
}).Parse(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #333; border-bottom: 2px solid #dc2626; padding-bottom: 10px;">New Contact Form Submission</h2>
  <div style="background: #f9fafb; padding: 20px; border-radius: 8px; margin: 20px 0;">
    <p style="margin: 10px 0;"><strong>Name:</strong> {{.Msg.Name}}</p>
    <p style="margin: 10px 0;"><strong>Email:</strong> <a href="mailto:{{.Msg.Email}}">{{.Msg.Email}}</a></p>
    <p style="margin: 10px 0;"><strong>Phone:</strong> <a href="tel:{{.Msg.Phone}}">{{.Msg.Phone}}</a></p>
    <p style="margin: 10px 0;"><strong>Subject:</strong> {{.Msg.Subject}}</p>
  </div>
  <div style="background: #fff; padding: 20px; border-left: 4px solid #dc2626; margin: 20px 0;">
    <p style="margin: 0; color: #666;"><strong>Message:</strong></p>
    <p style="margin: 10px 0; line-height: 1.6; color: #333;">{{range $i, $line := lines .Msg.Message}}{{if $i}}<br>{{end}}{{$line}}{{end}}</p>
  </div>
  <hr style="border: none; border-top: 1px solid #e5e7eb; margin: 20px 0;">
  <div style="color: #9ca3af; font-size: 12px;">
    <p><strong>Submitted at:</strong> {{.SubmittedAt}}</p>
    <p><strong>IP Address:</strong> {{.Msg.IPAddress}}</p>
    <p><strong>User Agent:</strong> {{.Msg.UserAgent}}</p>
    <p><strong>Message ID:</strong> #{{.Msg.ID}}</p>
  </div>
</div>`))

// ContactEmailHTML renders the notification body for msg. User input is escaped.
func ContactEmailHTML(msg models.ContactMessage) (string, error) {
	submitted := msg.CreatedAt
	if submitted.IsZero() {
		submitted = time.Now()
	}

	var buf bytes.Buffer
	err := contactEmailTemplate.Execute(&buf, struct {
		Msg         models.ContactMessage
		SubmittedAt string
	}{
		Msg:         msg,
		SubmittedAt: submitted.In(indiaTime).Format("02/01/2006, 15:04:05"),
	})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}

// NotifyContact emails the configured recipient about msg.
func (s *MailjetService) NotifyContact(ctx context.Context, msg models.ContactMessage) error {
	body, err := ContactEmailHTML(msg)
	if err != nil {
		return fmt.Errorf("render contact email: %w", err)
	}

	payload, err := json.Marshal(mailjetRequest{Messages: []mailjetMessage{{
		From:     mailjetAddress{Email: s.cfg.FromEmail, Name: s.cfg.FromName},
		To:       []mailjetAddress{{Email: s.cfg.ToEmail, Name: s.cfg.ToName}},
		Subject:  "New Contact Form: " + msg.Subject,
		HTMLPart: body,
	}}})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/v3.1/send", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("mailjet request build: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(s.cfg.APIKey, s.cfg.SecretKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("mailjet request: %w", err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("mailjet send failed: status %d, body: %s", resp.StatusCode, string(raw))
	}

	var parsed mailjetResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("mailjet unmarshal: %w", err)
	}
	for _, m := range parsed.Messages {
		if m.Status != "success" {
			return fmt.Errorf("mailjet message status %q", m.Status)
		}
	}
	return nil
}
