package utils

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/gomail.v2"
)

// SendResetCodeEmail mails a password reset code to a staff account using
// the SMTP settings from the environment.
func SendResetCodeEmail(email, code string) error {
	fromEmail := os.Getenv("SMTP_USER")

	m := gomail.NewMessage()
	m.SetHeader("From", fromEmail)
	m.SetHeader("To", email)
	m.SetHeader("Subject", "ClinicDesk password reset code")
	m.SetBody("text/plain", "Your password reset code is: "+code+
		"\n\nThe code expires in 15 minutes. If you did not request a reset, ignore this email.")

	smtpHost := os.Getenv("SMTP_HOST")
	smtpPort, err := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if err != nil {
		return fmt.Errorf("invalid SMTP_PORT value: %w", err)
	}
	smtpPass := os.Getenv("SMTP_PASS")

	d := gomail.NewDialer(smtpHost, smtpPort, fromEmail, smtpPass)
	return d.DialAndSend(m)
}
