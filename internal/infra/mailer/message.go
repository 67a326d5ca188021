package mailer

import (
	"bytes"
	"fmt"
	"mime"
	"mime/quotedprintable"
	"net/mail"
	"strings"
	"time"

	"coachdesk/internal/domain/notification"
	"coachdesk/internal/usecase/shared"

	"github.com/google/uuid"
)

func recipientAddress(msg shared.OutboundEmail) string {
	if msg.ToName == "" {
		return msg.ToEmail
	}
	return (&mail.Address{Name: msg.ToName, Address: msg.ToEmail}).String()
}

// buildMessage renders a text/plain RFC 5322 message with CRLF line endings.
func buildMessage(ch notification.Channel, msg shared.OutboundEmail, now time.Time) ([]byte, error) {
	var buf bytes.Buffer

	domain := "localhost"
	if i := strings.LastIndex(ch.FromAddress, "@"); i >= 0 {
		domain = ch.FromAddress[i+1:]
	}

	headers := [][2]string{
		{"From", ch.From()},
		{"To", recipientAddress(msg)},
		{"Subject", mime.QEncoding.Encode("utf-8", msg.Subject)},
		{"Date", now.Format(time.RFC1123Z)},
		{"Message-ID", fmt.Sprintf("<%s@%s>", uuid.NewString(), domain)},
		{"MIME-Version", "1.0"},
		{"Content-Type", `text/plain; charset="utf-8"`},
		{"Content-Transfer-Encoding", "quoted-printable"},
	}
	for _, h := range headers {
		buf.WriteString(h[0] + ": " + h[1] + "\r\n")
	}
	buf.WriteString("\r\n")

	qp := quotedprintable.NewWriter(&buf)
	body := strings.ReplaceAll(msg.Body, "\r\n", "\n")
	if _, err := qp.Write([]byte(strings.ReplaceAll(body, "\n", "\r\n"))); err != nil {
		return nil, err
	}
	if err := qp.Close(); err != nil {
		return nil, err
	}
	buf.WriteString("\r\n")
	return buf.Bytes(), nil
}
