package services

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"strings"

	"fibresite/config"
	"fibresite/models"

	"gopkg.in/gomail.v2"
)

// Mail failure classes reported back to the caller.
var (
	ErrMailAuth       = errors.New("email authentication failed, check SMTP credentials")
	ErrMailConnection = errors.New("could not connect to email server")
	ErrMailSend       = errors.New("failed to send email")
)

// MailSender abstracts the SMTP dialer so handlers can be tested without a
// live relay. *gomail.Dialer satisfies it.
type MailSender interface {
	DialAndSend(m ...*gomail.Message) error
}

type MailService struct {
	sender       MailSender
	from         string
	salesEmail   string
	supportEmail string
	appName      string
}

func NewMailService() *MailService {
	cfg := config.AppConfig
	return &MailService{
		sender:       gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword),
		from:         cfg.SMTPFrom,
		salesEmail:   cfg.SalesEmail,
		supportEmail: cfg.SupportEmail,
		appName:      cfg.AppName,
	}
}

// NewMailServiceWithSender wires an explicit sender, used in tests.
func NewMailServiceWithSender(sender MailSender, from, salesEmail, supportEmail, appName string) *MailService {
	return &MailService{
		sender:       sender,
		from:         from,
		salesEmail:   salesEmail,
		supportEmail: supportEmail,
		appName:      appName,
	}
}

var contactTemplate = template.Must(template.New("contact").Parse(`
<div style="font-family:Arial,sans-serif;max-width:600px;margin:0 auto;">
  <h2 style="color:#F79621;">New Contact Form Submission</h2>
  <table style="width:100%;border-collapse:collapse;">
    <tr><td style="padding:8px;font-weight:bold;">Name</td><td style="padding:8px;">{{.Name}}</td></tr>
    {{if .Email}}<tr><td style="padding:8px;font-weight:bold;">Email</td><td style="padding:8px;">{{.Email}}</td></tr>{{end}}
    {{if .Phone}}<tr><td style="padding:8px;font-weight:bold;">Phone</td><td style="padding:8px;">{{.Phone}}</td></tr>{{end}}
    {{if .Subject}}<tr><td style="padding:8px;font-weight:bold;">Subject</td><td style="padding:8px;">{{.Subject}}</td></tr>{{end}}
  </table>
  <h3>Message</h3>
  <p style="background:#f8f8f8;padding:12px;border-radius:6px;white-space:pre-wrap;">{{.Message}}</p>
</div>`))

var connectionRequestTemplate = template.Must(template.New("connection").Parse(`
<div style="font-family:Arial,sans-serif;max-width:600px;margin:0 auto;">
  <h2 style="color:#F79621;">New Internet Connection Request</h2>
  <table style="width:100%;border-collapse:collapse;">
    <tr><td style="padding:8px;font-weight:bold;">Name</td><td style="padding:8px;">{{.Name}}</td></tr>
    {{if .Email}}<tr><td style="padding:8px;font-weight:bold;">Email</td><td style="padding:8px;">{{.Email}}</td></tr>{{end}}
    {{if .Phone}}<tr><td style="padding:8px;font-weight:bold;">Phone</td><td style="padding:8px;">{{.Phone}}</td></tr>{{end}}
    {{if .Location}}<tr><td style="padding:8px;font-weight:bold;">Location</td><td style="padding:8px;">{{.Location}}</td></tr>{{end}}
  </table>
  <h3>Details</h3>
  <p style="background:#f8f8f8;padding:12px;border-radius:6px;white-space:pre-wrap;">{{.Message}}</p>
</div>`))

// Route picks the destination mailbox and template from the subject line.
// Connection requests go to sales with the dedicated template, anything
// flagged as a general enquiry goes to support; everything else is a sales
// lead.
func (ms *MailService) Route(subject string) (recipient string, tmpl *template.Template) {
	lower := strings.ToLower(subject)
	switch {
	case strings.Contains(lower, "internet connection request"):
		return ms.salesEmail, connectionRequestTemplate
	case strings.Contains(lower, "general"):
		return ms.supportEmail, contactTemplate
	default:
		return ms.salesEmail, contactTemplate
	}
}

// RenderBody executes the routed template against the contact request.
func (ms *MailService) RenderBody(tmpl *template.Template, req *models.ContactRequest) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, req); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// SendContactMail routes, renders, and relays a contact-form submission.
func (ms *MailService) SendContactMail(req *models.ContactRequest) error {
	recipient, tmpl := ms.Route(req.Subject)

	body, err := ms.RenderBody(tmpl, req)
	if err != nil {
		return err
	}

	subject := req.Subject
	if subject == "" {
		subject = fmt.Sprintf("New message from %s website", ms.appName)
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", fmt.Sprintf("%s <%s>", ms.appName, ms.from))
	msg.SetHeader("To", recipient)
	if req.Email != "" {
		msg.SetHeader("Reply-To", req.Email)
	}
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", body)

	if err := ms.sender.DialAndSend(msg); err != nil {
		return classifyMailError(err)
	}

	return nil
}

// classifyMailError maps transport errors onto the failure classes surfaced
// to the client. SMTP auth rejections come back as 535 or mention
// authentication; dial problems mention the connection.
func classifyMailError(err error) error {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "535") || strings.Contains(msg, "auth"):
		return fmt.Errorf("%w: %v", ErrMailAuth, err)
	case strings.Contains(msg, "connection refused") ||
		strings.Contains(msg, "no such host") ||
		strings.Contains(msg, "i/o timeout") ||
		strings.Contains(msg, "dial tcp"):
		return fmt.Errorf("%w: %v", ErrMailConnection, err)
	default:
		return fmt.Errorf("%w: %v", ErrMailSend, err)
	}
}
