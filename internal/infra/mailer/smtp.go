package mailer

import (
	"context"
	"crypto/tls"
	"net"
	"net/smtp"
	"time"

	"coachdesk/internal/domain/notification"
	"coachdesk/internal/pkg/clock"
	"coachdesk/internal/pkg/config"
	"coachdesk/internal/pkg/errs"
	"coachdesk/internal/usecase/shared"
)

// SMTPSender submits messages to the channel's host:port. STARTTLS is used
// whenever the server offers it; AUTH PLAIN only when credentials are set.
type SMTPSender struct {
	username string
	password string
	signer   *DKIMSigner
	clock    clock.Clock
	dialer   net.Dialer
}

func NewSMTPSender(cfg config.MailConfig, signer *DKIMSigner, clk clock.Clock) *SMTPSender {
	return &SMTPSender{
		username: cfg.SMTPUsername,
		password: cfg.SMTPPassword,
		signer:   signer,
		clock:    clk,
	}
}

func (s *SMTPSender) Send(ctx context.Context, ch notification.Channel, msg shared.OutboundEmail) error {
	host, _, err := net.SplitHostPort(ch.Endpoint)
	if err != nil {
		return errs.Wrap(err, "invalid smtp endpoint")
	}

	raw, err := buildMessage(ch, msg, s.clock.Now())
	if err != nil {
		return errs.Wrap(err, "failed to build message")
	}
	if raw, err = s.signer.Sign(raw, ch.FromAddress); err != nil {
		return err
	}

	conn, err := s.dialer.DialContext(ctx, "tcp", ch.Endpoint)
	if err != nil {
		return errs.Wrap(err, "smtp dial failed")
	}
	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	} else {
		_ = conn.SetDeadline(time.Now().Add(time.Minute))
	}

	c, err := smtp.NewClient(conn, host)
	if err != nil {
		_ = conn.Close()
		return errs.Wrap(err, "smtp handshake failed")
	}
	defer c.Close()

	if ok, _ := c.Extension("STARTTLS"); ok {
		if err := c.StartTLS(&tls.Config{ServerName: host}); err != nil {
			return errs.Wrap(err, "smtp starttls failed")
		}
	}
	if s.username != "" {
		if ok, _ := c.Extension("AUTH"); ok {
			if err := c.Auth(smtp.PlainAuth("", s.username, s.password, host)); err != nil {
				return errs.Wrap(err, "smtp auth failed")
			}
		}
	}

	if err := c.Mail(ch.FromAddress); err != nil {
		return errs.Wrap(err, "smtp MAIL FROM rejected")
	}
	if err := c.Rcpt(msg.ToEmail); err != nil {
		return errs.Wrap(err, "smtp RCPT TO rejected")
	}
	w, err := c.Data()
	if err != nil {
		return errs.Wrap(err, "smtp DATA rejected")
	}
	if _, err := w.Write(raw); err != nil {
		return errs.Wrap(err, "failed to write message")
	}
	if err := w.Close(); err != nil {
		return errs.Wrap(err, "smtp message rejected")
	}
	return c.Quit()
}
