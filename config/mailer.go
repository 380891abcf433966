package config

import (
	"fmt"
	"net/smtp"
	"os"

	"github.com/jordan-wright/email"
)

// SendMail delivers a plain-text email through the configured SMTP account.
func SendMail(to, subject, body string) error {
	from := os.Getenv("EMAIL_ADDRESS")
	password := os.Getenv("EMAIL_PASSWORD")
	host := os.Getenv("SMTP_HOST")
	if host == "" {
		host = "smtp.gmail.com"
	}
	port := os.Getenv("SMTP_PORT")
	if port == "" {
		port = "587"
	}

	e := email.NewEmail()
	e.From = fmt.Sprintf("InternshipGo <%s>", from)
	e.To = []string{to}
	e.Subject = subject
	e.Text = []byte(body)

	return e.Send(host+":"+port, smtp.PlainAuth("", from, password, host))
}
