package service

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"
)

type emailService struct {
	host     string
	port     int
	username string
	password string
	from     string
}

func NewEmailService(host string, port int, username, password, from string) EmailService {
	return &emailService{
		host:     host,
		port:     port,
		username: username,
		password: password,
		from:     from,
	}
}

func (s *emailService) send(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	d := gomail.NewDialer(s.host, s.port, s.username, s.password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email via gomail: %w", err)
	}
	return nil
}

func (s *emailService) SendComplaintReceived(ctx context.Context, email, firstName, subject string) error {
	body := fmt.Sprintf("Hello %s,\n\nWe received your complaint: %q.\n\nOur support team will get back to you shortly. You can edit or withdraw the complaint from your dashboard while it is still pending.\n\nBest regards,\nThe Car Rental Team", firstName, subject)
	return s.send(email, "We received your complaint", body)
}

func (s *emailService) SendPickupReminder(ctx context.Context, email, firstName, carName, startDate string) error {
	body := fmt.Sprintf("Hello %s,\n\nA quick reminder that your rental of the %s starts on %s. Please bring your driver's licence when picking up the car.\n\nBest regards,\nThe Car Rental Team", firstName, carName, startDate)
	return s.send(email, "Your rental starts tomorrow", body)
}
