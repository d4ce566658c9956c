package notify

import (
	"fmt"
	"net/smtp"
	"sort"
	"strings"

	"github.com/jordan-wright/email"
	"github.com/sirupsen/logrus"

	"sacco-backoffice/internal/config"
)

var subjects = map[Event]string{
	EventGuaranteeRequested:   "New Guarantee Request",
	EventGuaranteeAccepted:    "Guarantee Request Accepted",
	EventGuaranteeDeclined:    "Guarantee Request Declined",
	EventGuaranteeCancelled:   "Guarantee Request Cancelled",
	EventApplicationSubmitted: "Loan Application Submitted",
	EventApplicationApproved:  "Loan Application Approved",
	EventApplicationDeclined:  "Loan Application Declined",
	EventApplicationCancelled: "Loan Application Cancelled",
	EventApplicationAmended:   "Loan Application Amended",
}

// EmailSender delivers notifications over SMTP.
type EmailSender struct {
	cfg *config.Config
	log *logrus.Logger
}

func NewEmailSender(cfg *config.Config, log *logrus.Logger) *EmailSender {
	return &EmailSender{cfg: cfg, log: log}
}

func (s *EmailSender) Notify(event Event, recipient string, fields map[string]string) {
	if recipient == "" {
		return
	}
	subject, ok := subjects[event]
	if !ok {
		subject = string(event)
	}

	e := email.NewEmail()
	e.From = s.cfg.SenderEmail
	e.To = []string{recipient}
	e.Subject = subject
	e.Text = []byte(body(subject, fields))

	addr := fmt.Sprintf("%s:%s", s.cfg.SMTPHost, s.cfg.SMTPPort)
	auth := smtp.PlainAuth("", s.cfg.SMTPUser, s.cfg.SMTPPass, s.cfg.SMTPHost)
	if err := e.Send(addr, auth); err != nil {
		s.log.WithFields(logrus.Fields{
			"event":     event,
			"recipient": recipient,
		}).Errorf("failed to send notification: %v", err)
		return
	}
	s.log.WithField("recipient", recipient).Infof("notification sent: %s", event)
}

func body(subject string, fields map[string]string) string {
	var b strings.Builder
	b.WriteString(subject + "\n\n")

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&b, "%s: %s\n", strings.ReplaceAll(k, "_", " "), fields[k])
	}
	b.WriteString("\nBest regards,\nSACCO Back Office")
	return b.String()
}
