// Package mail delivers report emails over SMTP or the Gmail API.
package mail

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"mime"
	"mime/multipart"
	netmail "net/mail"
	"net/textproto"
	"strings"
	"time"
)

// ErrNotSignedIn is returned by the Gmail mailer when no refresh token is stored.
var ErrNotSignedIn = errors.New("not signed in to Gmail")

type Attachment struct {
	Filename    string
	ContentType string
	Data        []byte
}

type Message struct {
	From        string
	To          []string
	Subject     string
	Body        string
	Attachments []Attachment
}

// Mailer sends one message to all of its recipients.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

// NoopMailer accepts every message and sends nothing.
type NoopMailer struct{}

func (NoopMailer) Send(context.Context, Message) error { return nil }

// BuildMIME encodes msg as an RFC 5322 message: a multipart/mixed body with
// the plain-text part first and each attachment base64 encoded.
func BuildMIME(msg Message) ([]byte, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	headers := []string{
		"From: " + msg.From,
		"To: " + joinAddresses(msg.To),
		"Subject: " + mime.QEncoding.Encode("utf-8", msg.Subject),
		"Date: " + time.Now().Format(time.RFC1123Z),
		"MIME-Version: 1.0",
		fmt.Sprintf("Content-Type: multipart/mixed; boundary=%q", mw.Boundary()),
		"",
		"",
	}
	var out bytes.Buffer
	out.WriteString(strings.Join(headers, "\r\n"))

	text, err := mw.CreatePart(textproto.MIMEHeader{
		"Content-Type":              {`text/plain; charset="UTF-8"`},
		"Content-Transfer-Encoding": {"8bit"},
	})
	if err != nil {
		return nil, fmt.Errorf("creating text part: %w", err)
	}
	if _, err := text.Write([]byte(msg.Body)); err != nil {
		return nil, fmt.Errorf("writing text part: %w", err)
	}

	for _, a := range msg.Attachments {
		contentType := a.ContentType
		if contentType == "" {
			contentType = "application/octet-stream"
		}
		part, err := mw.CreatePart(textproto.MIMEHeader{
			"Content-Type":              {fmt.Sprintf("%s; name=%q", contentType, a.Filename)},
			"Content-Disposition":       {fmt.Sprintf("attachment; filename=%q", a.Filename)},
			"Content-Transfer-Encoding": {"base64"},
		})
		if err != nil {
			return nil, fmt.Errorf("creating attachment part: %w", err)
		}
		if err := writeBase64Lines(part, a.Data); err != nil {
			return nil, fmt.Errorf("writing attachment %s: %w", a.Filename, err)
		}
	}

	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("closing multipart body: %w", err)
	}
	out.Write(buf.Bytes())
	return out.Bytes(), nil
}

// AddrSpec renders a bare address for the wire, quoting a local part that
// holds specials such as "a,b"@example.com.
func AddrSpec(addr string) string {
	return strings.TrimSuffix(strings.TrimPrefix((&netmail.Address{Address: addr}).String(), "<"), ">")
}

func joinAddresses(addrs []string) string {
	out := make([]string, len(addrs))
	for i, a := range addrs {
		out[i] = AddrSpec(a)
	}
	return strings.Join(out, ", ")
}

// writeBase64Lines wraps the encoding at 76 characters per line.
func writeBase64Lines(w interface{ Write([]byte) (int, error) }, data []byte) error {
	encoded := base64.StdEncoding.EncodeToString(data)
	for len(encoded) > 0 {
		n := min(76, len(encoded))
		if _, err := w.Write([]byte(encoded[:n] + "\r\n")); err != nil {
			return err
		}
		encoded = encoded[n:]
	}
	return nil
}
