package utils

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/gomail.v2"

	"github.com/kevanghobadi/windsurf-hotel/app/entities"
)

// SendBookingNotification mails a new booking request to the front-desk
// inbox. When SMTP_HOST is unset the send is skipped entirely, so local and
// test runs never touch the network.
func SendBookingNotification(booking entities.Booking) error {
	smtpHost := os.Getenv("SMTP_HOST")
	if smtpHost == "" {
		return nil
	}

	smtpPort, err := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if err != nil {
		return fmt.Errorf("invalid SMTP_PORT: %w", err)
	}
	smtpUser := os.Getenv("SMTP_USER")
	smtpPass := os.Getenv("SMTP_PASS")
	smtpFrom := os.Getenv("SMTP_FROM")
	notifyTo := os.Getenv("BOOKING_NOTIFY_TO")
	if notifyTo == "" {
		notifyTo = smtpFrom
	}

	m := gomail.NewMessage()
	m.SetHeader("From", smtpFrom)
	m.SetHeader("To", notifyTo)
	m.SetHeader("Subject", fmt.Sprintf("New booking request from %s", booking.FullName))

	htmlBody := fmt.Sprintf(`
    <h1>New Booking Request</h1>
    <p><b>Guest:</b> %s (%s, %s)</p>
    <p><b>Stay:</b> %s to %s</p>
    <p><b>Total:</b> %.2f</p>
    <p><b>Message:</b> %s</p>
    <p>Booking ID: %s</p>
    `, booking.FullName, booking.Email, booking.Phone,
		booking.CheckIn, booking.CheckOut, booking.TotalPrice,
		booking.Message, booking.ID)

	m.SetBody("text/html", htmlBody)

	d := gomail.NewDialer(smtpHost, smtpPort, smtpUser, smtpPass)
	return d.DialAndSend(m)
}
