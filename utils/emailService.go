package utils

import (
	"fmt"
	"log"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"learnhub/config"
)

// SendEmail sends a transactional email through SendGrid. All email in the
// system is best-effort: callers log failures and move on.
func SendEmail(toEmail, toName, subject, htmlBody string) error {
	if config.AppConfig.SendgridApiKey == "" {
		log.Printf("Email to %s skipped: SENDGRID_API_KEY not configured", toEmail)
		return nil
	}

	from := mail.NewEmail("LearnHub", config.AppConfig.EmailSender)
	to := mail.NewEmail(toName, toEmail)
	message := mail.NewSingleEmail(from, subject, to, "", htmlBody)

	client := sendgrid.NewSendClient(config.AppConfig.SendgridApiKey)
	resp, err := client.Send(message)
	if err != nil {
		return err
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("sendgrid returned status %d: %s", resp.StatusCode, resp.Body)
	}
	return nil
}

// HTML wrapper shared by all outgoing mail
func emailTemplate(title, bodyContent string) string {
	return fmt.Sprintf(`
	<html>
		<body style="font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px;">
			<div style="max-width: 500px; margin: auto; background-color: #ffffff; border-radius: 8px; padding: 30px;">
				<h2 style="color: #333333; text-align: center;">%s</h2>
				%s
				<p style="text-align: center; font-size: 12px; color: #bbbbbb; margin-top: 30px;">Thank you for learning with LearnHub.</p>
			</div>
		</body>
	</html>
	`, title, bodyContent)
}

// SendWelcomeEmail greets a newly registered user
func SendWelcomeEmail(email, name string) {
	body := fmt.Sprintf(`<p style="font-size: 16px; color: #555555;">Hi %s,</p>
		<p style="font-size: 14px; color: #555555;">Your account has been created. Browse the catalogue and book your first class!</p>`, name)

	if err := SendEmail(email, name, "Welcome to LearnHub", emailTemplate("Welcome to LearnHub", body)); err != nil {
		log.Printf("Error sending welcome email to %s: %v", email, err)
	}
}

// SendEnrollmentEmail confirms a successful course enrollment
func SendEnrollmentEmail(email, name, courseTitle string) {
	body := fmt.Sprintf(`<p style="font-size: 16px; color: #555555;">Hi %s,</p>
		<p style="font-size: 14px; color: #555555;">You are enrolled in <b>%s</b>. See your dashboard for the class schedule.</p>`, name, courseTitle)

	if err := SendEmail(email, name, "Course Enrollment Confirmation", emailTemplate("Enrollment Confirmed", body)); err != nil {
		log.Printf("Error sending enrollment email to %s: %v", email, err)
	}
}

// SendClassReminderEmail reminds a student about an upcoming class
func SendClassReminderEmail(email, name, courseTitle, date, timeSlot string) {
	body := fmt.Sprintf(`<p style="font-size: 16px; color: #555555;">Hi %s,</p>
		<p style="font-size: 14px; color: #555555;">Your class for <b>%s</b> is coming up on %s at %s.</p>`, name, courseTitle, date, timeSlot)

	if err := SendEmail(email, name, "Upcoming Class Reminder", emailTemplate("Class Reminder", body)); err != nil {
		log.Printf("Error sending class reminder to %s: %v", email, err)
	}
}
