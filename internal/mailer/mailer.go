// Package mailer sends transactional email over SMTP. Without SMTP
// configuration all sends are logged and succeed, so form endpoints keep
// working in local development.
package mailer

import (
	"context"
	"fmt"
	"strings"

	"github.com/wneessen/go-mail"
	"go.uber.org/zap"

	"github.com/ledgerhall/site/internal/config"
	"github.com/ledgerhall/site/internal/leads"
)

// ContactMessage is a submitted contact form.
type ContactMessage struct {
	Name         string
	Email        string
	Subject      string
	Message      string
	Organization string
}

// Sender delivers the site's three transactional mails.
type Sender interface {
	// SendContact notifies staff of a contact-form submission.
	SendContact(ctx context.Context, msg ContactMessage) error
	// SendInquiryNotification notifies staff of an inquiry, including the
	// triage score and reference id.
	SendInquiryNotification(ctx context.Context, inq leads.Inquiry, score int, ref string) error
	// SendCourseConfirmation confirms a course registration to the submitter.
	SendCourseConfirmation(ctx context.Context, inq leads.Inquiry, ref string) error
}

// New returns an SMTP sender, or a disabled sender when no host is
// configured.
func New(cfg config.SMTPConfig, log *zap.Logger) Sender {
	if log == nil {
		log = zap.NewNop()
	}
	if cfg.Host == "" {
		return &disabled{log: log}
	}
	return &smtpSender{cfg: cfg, log: log}
}

type smtpSender struct {
	cfg config.SMTPConfig
	log *zap.Logger
}

func (s *smtpSender) SendContact(ctx context.Context, msg ContactMessage) error {
	body := fmt.Sprintf(
		"New contact form submission\n\nName: %s\nEmail: %s\nOrganization: %s\n\n%s\n",
		msg.Name, msg.Email, msg.Organization, msg.Message)

	m, err := s.newMsg(s.cfg.NotifyTo, "Contact: "+msg.Subject, body)
	if err != nil {
		return err
	}
	if msg.Email != "" {
		if err := m.ReplyTo(msg.Email); err != nil {
			s.log.Warn("invalid reply-to on contact mail", zap.Error(err))
		}
	}
	return s.send(ctx, m)
}

func (s *smtpSender) SendInquiryNotification(ctx context.Context, inq leads.Inquiry, score int, ref string) error {
	body := fmt.Sprintf(
		"New %s inquiry (ref %s)\n\nName: %s\nEmail: %s\nOrganization: %s\nLead score: %d\nTimeline: %s\nTeam size: %s\nCourses: %s\n",
		inq.ServiceType, ref, inq.Name, inq.Email, inq.Organization, score,
		inq.Timeline, inq.TeamSize, strings.Join(inq.SelectedCourses, ", "))

	m, err := s.newMsg(s.cfg.NotifyTo, fmt.Sprintf("Inquiry: %s (score %d)", inq.ServiceType, score), body)
	if err != nil {
		return err
	}
	return s.send(ctx, m)
}

func (s *smtpSender) SendCourseConfirmation(ctx context.Context, inq leads.Inquiry, ref string) error {
	body := fmt.Sprintf(
		"Hello %s,\n\nThank you for registering your interest in our executive courses.\n"+
			"Your reference is %s. A member of the institute will be in touch shortly.\n\n"+
			"Ledger Hall Institute\n",
		inq.Name, ref)

	m, err := s.newMsg(inq.Email, "Your course registration at Ledger Hall Institute", body)
	if err != nil {
		return err
	}
	return s.send(ctx, m)
}

func (s *smtpSender) newMsg(to, subject, body string) (*mail.Msg, error) {
	m := mail.NewMsg()
	if err := m.From(s.cfg.From); err != nil {
		return nil, fmt.Errorf("mail from %q: %w", s.cfg.From, err)
	}
	if err := m.To(to); err != nil {
		return nil, fmt.Errorf("mail to %q: %w", to, err)
	}
	m.Subject(subject)
	m.SetBodyString(mail.TypeTextPlain, body)
	return m, nil
}

func (s *smtpSender) send(ctx context.Context, m *mail.Msg) error {
	opts := []mail.Option{
		mail.WithPort(s.cfg.Port),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
	}
	if s.cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(s.cfg.Username),
			mail.WithPassword(s.cfg.Password),
		)
	}

	client, err := mail.NewClient(s.cfg.Host, opts...)
	if err != nil {
		return fmt.Errorf("smtp client: %w", err)
	}
	if err := client.DialAndSendWithContext(ctx, m); err != nil {
		return fmt.Errorf("send mail: %w", err)
	}
	return nil
}

// disabled logs sends instead of delivering them.
type disabled struct {
	log *zap.Logger
}

func (d *disabled) SendContact(_ context.Context, msg ContactMessage) error {
	d.log.Info("mail disabled, dropping contact notification",
		zap.String("from", msg.Email), zap.String("subject", msg.Subject))
	return nil
}

func (d *disabled) SendInquiryNotification(_ context.Context, inq leads.Inquiry, score int, ref string) error {
	d.log.Info("mail disabled, dropping inquiry notification",
		zap.String("serviceType", inq.ServiceType), zap.Int("score", score), zap.String("ref", ref))
	return nil
}

func (d *disabled) SendCourseConfirmation(_ context.Context, inq leads.Inquiry, ref string) error {
	d.log.Info("mail disabled, dropping course confirmation",
		zap.String("to", inq.Email), zap.String("ref", ref))
	return nil
}
