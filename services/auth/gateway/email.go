package gateway

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/carbonkhet/carbonkhet/internal/pkg/logger"
	"github.com/carbonkhet/carbonkhet/internal/pkg/models"
	"github.com/carbonkhet/carbonkhet/services/auth"
)

// NotificationGW delivers auth-related email over SMTP. When SMTP is not
// configured it degrades to logging the message content, so local
// environments can still complete the OTP flow.
type NotificationGW struct {
	smtp      models.SMTPConfig
	clientURL string
}

// NewNotificationGW creates a new notification gateway instance
func NewNotificationGW(smtp models.SMTPConfig, clientURL string) auth.NotificationGW {
	return &NotificationGW{
		smtp:      smtp,
		clientURL: clientURL,
	}
}

func (g *NotificationGW) configured() bool {
	return g.smtp.Host != "" && g.smtp.From != ""
}

func (g *NotificationGW) send(to, subject, htmlBody string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(g.smtp.From, "CarbonKhet"))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	d := gomail.NewDialer(g.smtp.Host, g.smtp.Port, g.smtp.Username, g.smtp.Password)
	return d.DialAndSend(m)
}

// SendOTP delivers a one-time login code. Returns whether the code was
// actually emailed; callers use this to decide what to tell the client.
func (g *NotificationGW) SendOTP(ctx context.Context, email, code string) bool {
	if !g.configured() {
		logger.Info("SMTP not configured, logging OTP instead of sending",
			logger.String("email", email),
			logger.String("otp", code))
		return true
	}

	if err := g.send(email, "Your CarbonKhet verification code", otpEmailHTML(code)); err != nil {
		logger.Error("Failed to send OTP email",
			logger.String("email", email),
			logger.Err(err))
		return false
	}

	logger.Info("OTP email sent", logger.String("email", email))
	return true
}

// SendWelcome sends the onboarding email after a farmer's first login or
// registration. Delivery failures are logged but never fail the signup.
func (g *NotificationGW) SendWelcome(ctx context.Context, email, name string, estimatedIncome int64) bool {
	if !g.configured() {
		logger.Info("SMTP not configured, skipping welcome email",
			logger.String("email", email))
		return true
	}

	if err := g.send(email, "Welcome to CarbonKhet!", welcomeEmailHTML(name, estimatedIncome, g.clientURL)); err != nil {
		logger.Error("Failed to send welcome email",
			logger.String("email", email),
			logger.Err(err))
		return false
	}

	logger.Info("Welcome email sent", logger.String("email", email))
	return true
}

func otpEmailHTML(code string) string {
	formatted := code
	if len(code) == 6 {
		formatted = fmt.Sprintf("%s-%s", code[:3], code[3:])
	}

	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><meta charset="UTF-8" /><title>Verification code</title></head>
<body style="margin: 0; padding: 0; font-family: Arial, sans-serif; background-color: #f4f8f4;">
	<table align="center" border="0" cellpadding="0" cellspacing="0" width="600" style="border-collapse: collapse; background-color: #ffffff;">
		<tr>
			<td align="center" style="padding: 30px 0; background-color: #2e7d32; color: #ffffff;">
				<h1 style="margin: 0; font-size: 24px;">CarbonKhet</h1>
			</td>
		</tr>
		<tr>
			<td style="padding: 30px; color: #333333; font-size: 16px; line-height: 1.6;">
				<p style="margin-top: 0;">Use the code below to sign in to your CarbonKhet account:</p>
				<table align="center" border="0" cellpadding="0" cellspacing="0" style="margin: 20px auto;">
					<tr>
						<td align="center" style="background-color: #e8f5e9; border: 1px solid #c8e6c9; border-radius: 8px; padding: 15px 40px;">
							<span style="color: #2e7d32; font-size: 24px; font-weight: bold; letter-spacing: 2px;">%s</span>
						</td>
					</tr>
				</table>
				<p>This code expires in 5 minutes.</p>
				<p style="margin-bottom: 0;">If you did not request it, you can safely ignore this email.</p>
			</td>
		</tr>
	</table>
</body>
</html>`, formatted)
}

func welcomeEmailHTML(name string, estimatedIncome int64, clientURL string) string {
	if name == "" {
		name = "Farmer"
	}
	dashboardURL := clientURL + "/dashboard"

	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><meta charset="UTF-8" /><title>Welcome to CarbonKhet</title></head>
<body style="margin: 0; padding: 0; font-family: Arial, sans-serif; background-color: #f4f8f4;">
	<table align="center" border="0" cellpadding="0" cellspacing="0" width="600" style="border-collapse: collapse; background-color: #ffffff;">
		<tr>
			<td align="center" style="padding: 30px 0; background-color: #2e7d32; color: #ffffff;">
				<h1 style="margin: 0; font-size: 24px;">Welcome to CarbonKhet!</h1>
			</td>
		</tr>
		<tr>
			<td style="padding: 30px; color: #333333; font-size: 16px; line-height: 1.6;">
				<p style="margin-top: 0;">Hello <strong>%s</strong>,</p>
				<p>Your farm is now registered on CarbonKhet. Based on your farm details, your estimated annual carbon income is:</p>
				<table align="center" border="0" cellpadding="0" cellspacing="0" style="margin: 20px auto;">
					<tr>
						<td align="center" style="background-color: #e8f5e9; border: 1px solid #c8e6c9; border-radius: 8px; padding: 15px 40px;">
							<span style="color: #2e7d32; font-size: 24px; font-weight: bold;">&#8377;%d</span>
						</td>
					</tr>
				</table>
				<p>Complete your farm profile to refine this estimate and get matched with carbon credit projects.</p>
				<table align="center" border="0" cellpadding="0" cellspacing="0" style="margin: 20px auto;">
					<tr>
						<td align="center" style="background-color: #2e7d32; border-radius: 4px;">
							<a href="%s" target="_blank" style="display: inline-block; color: #ffffff; font-size: 16px; font-weight: bold; text-decoration: none; padding: 12px 30px;">Go to dashboard</a>
						</td>
					</tr>
				</table>
			</td>
		</tr>
	</table>
</body>
</html>`, name, estimatedIncome, dashboardURL)
}
