// Package mailer formats and delivers the HTML notifications the flows send.
// Every send is a single best-effort attempt; there is no queue and no retry.
package mailer

import (
	"context"
	"fmt"
	"log"

	"golang.org/x/sync/errgroup"
	"gopkg.in/gomail.v2"

	"github.com/summitinspect/leadgate/internal/models"
)

// Email is the wire contract with the delivery service.
type Email struct {
	To      string
	Subject string
	HTML    string
}

// Sender delivers one email.
type Sender interface {
	Send(ctx context.Context, e Email) error
}

// SMTP sends mail through an SMTP relay.
type SMTP struct {
	dialer *gomail.Dialer
	from   string
}

func NewSMTP(host string, port int, user, pass, from string) *SMTP {
	return &SMTP{dialer: gomail.NewDialer(host, port, user, pass), from: from}
}

func (s *SMTP) Send(_ context.Context, e Email) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", e.To)
	m.SetHeader("Subject", e.Subject)
	m.SetBody("text/html", e.HTML)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("mailer: send to %s: %w", e.To, err)
	}
	return nil
}

// Outgoing pairs an email with the role of its recipient so reduction logic
// can tell the submitter's copy from the admin's.
type Outgoing struct {
	Email
	Role models.RecipientRole
}

// Broadcast attempts every email independently and returns one outcome per
// input, in input order. One recipient's failure never prevents another
// recipient's attempt.
func Broadcast(ctx context.Context, s Sender, mails []Outgoing) []models.NotificationOutcome {
	outcomes := make([]models.NotificationOutcome, len(mails))

	var g errgroup.Group
	for i, m := range mails {
		g.Go(func() error {
			outcome := models.NotificationOutcome{Recipient: m.To, Role: m.Role, Sent: true}
			if err := s.Send(ctx, m.Email); err != nil {
				log.Printf("ERROR: notification to %s (%s) failed: %v", m.To, m.Role, err)
				outcome.Sent = false
				outcome.Reason = err.Error()
			}
			outcomes[i] = outcome
			return nil
		})
	}
	g.Wait()

	return outcomes
}
