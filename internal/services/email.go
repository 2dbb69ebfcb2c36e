package services

import (
	"crypto/tls"
	"fmt"

	"github.com/boardinghouse/rental-backend/internal/config"
	"gopkg.in/gomail.v2"
)

type EmailService struct {
	config *config.Config
}

func NewEmailService(config *config.Config) *EmailService {
	return &EmailService{config: config}
}

func (s *EmailService) SendEmail(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.config.FromEmail)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	d := gomail.NewDialer(s.config.SMTPHost, s.config.SMTPPort, s.config.SMTPUsername, s.config.SMTPPassword)
	d.TLSConfig = &tls.Config{InsecureSkipVerify: true}

	return d.DialAndSend(m)
}

func (s *EmailService) SendWelcomeEmail(email, name string) error {
	subject := "Welcome to BoardingHouse"
	body := fmt.Sprintf(`
		<h2>Welcome, %s!</h2>
		<p>Your account has been created. You can now browse listings,
		save favorites, and contact landlords.</p>
		<p>Best regards,<br>The BoardingHouse Team</p>
	`, name)

	return s.SendEmail(email, subject, body)
}

func (s *EmailService) SendInquiryReplyNotification(email, reply string) error {
	subject := "A landlord replied to your inquiry"
	body := fmt.Sprintf(`
		<h2>You have a new reply</h2>
		<p>A landlord replied to your inquiry:</p>
		<blockquote>%s</blockquote>
		<p>Log in to view the full conversation.</p>
		<p>Best regards,<br>The BoardingHouse Team</p>
	`, reply)

	return s.SendEmail(email, subject, body)
}

func (s *EmailService) SendModerationNotification(email, listingTitle, decision, notes string) error {
	subject := fmt.Sprintf("Your listing was %s", decision)
	body := fmt.Sprintf(`
		<h2>Listing review complete</h2>
		<p>Your listing <strong>%s</strong> was %s.</p>
	`, listingTitle, decision)

	if notes != "" {
		body += fmt.Sprintf(`
		<p>Reviewer notes:</p>
		<blockquote>%s</blockquote>
		<p>You can edit the listing to re-submit it for review.</p>
	`, notes)
	}

	body += `<p>Best regards,<br>The BoardingHouse Team</p>`

	return s.SendEmail(email, subject, body)
}
