package mailer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerhall/site/internal/config"
	"github.com/ledgerhall/site/internal/leads"
)

func TestNew_DisabledWithoutHost(t *testing.T) {
	s := New(config.SMTPConfig{}, nil)
	_, disabled := s.(*disabled)
	assert.True(t, disabled)

	// Disabled sends succeed so the form endpoints keep working.
	ctx := context.Background()
	assert.NoError(t, s.SendContact(ctx, ContactMessage{Name: "Ada", Subject: "s"}))
	assert.NoError(t, s.SendInquiryNotification(ctx, leads.Inquiry{ServiceType: "research"}, 40, "ref-1"))
	assert.NoError(t, s.SendCourseConfirmation(ctx, leads.Inquiry{Email: "a@example.com"}, "ref-1"))
}

func TestNew_SMTPWithHost(t *testing.T) {
	s := New(config.SMTPConfig{Host: "smtp.example.com", Port: 587, From: "noreply@example.com"}, nil)
	_, ok := s.(*smtpSender)
	assert.True(t, ok)
}

func TestNewMsg_RejectsBadAddresses(t *testing.T) {
	s := &smtpSender{cfg: config.SMTPConfig{From: "not an address", NotifyTo: "team@example.com"}}
	_, err := s.newMsg(s.cfg.NotifyTo, "subject", "body")
	require.Error(t, err)

	s.cfg.From = "noreply@example.com"
	m, err := s.newMsg("also not an address", "subject", "body")
	require.Error(t, err)
	assert.Nil(t, m)
}
