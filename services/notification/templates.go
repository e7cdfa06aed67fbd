package notification

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"mehfil/models"
	"mehfil/utils"
)

const layout = `<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>{{.Title}}</title></head>
<body style="font-family:-apple-system,'Segoe UI',Roboto,sans-serif;background:#f8fafc;margin:0">
<div style="max-width:600px;margin:0 auto;background:#fff">
  <div style="background:linear-gradient(135deg,#ec4899 0%,#f59e0b 100%);padding:32px 20px;text-align:center;color:#fff">
    <h1 style="margin:0">Mehfil AI</h1>
  </div>
  <div style="padding:32px 20px;color:#334155">
    <p>Assalam o Alaikum {{.Name}},</p>
    {{block "content" .}}{{end}}
  </div>
  <div style="padding:20px;text-align:center;color:#64748b;font-size:14px;border-top:1px solid #e2e8f0">
    <p>&copy; {{.Year}} Mehfil AI. All rights reserved.</p>
    <p>This is an automated email, please do not reply.</p>
  </div>
</div>
</body>
</html>`

const verificationContent = `{{define "content"}}
<p>Thank you for joining Mehfil AI, your smart wedding planning assistant.</p>
<p>Please verify your email to start exploring venues, vendors and personalized wedding plans.</p>
<p><a href="{{.Link}}" style="background:#ec4899;color:#fff;padding:14px 28px;border-radius:12px;text-decoration:none">Verify Email</a></p>
<p>This link expires in 24 hours. If you didn't create an account, please ignore this email.</p>
{{end}}`

const resetContent = `{{define "content"}}
<p>We received a request to reset the password for your Mehfil AI account.</p>
<p><a href="{{.Link}}" style="background:#ec4899;color:#fff;padding:14px 28px;border-radius:12px;text-decoration:none">Reset Password</a></p>
<p>This link expires in 1 hour. If you didn't request this, please ignore this email.</p>
{{end}}`

const bookingContent = `{{define "content"}}
<p>Your booking is confirmed. Here are the details:</p>
<table style="width:100%;border-collapse:collapse">
  <tr><td>Booking number</td><td><strong>{{.Booking.BookingNumber}}</strong></td></tr>
  <tr><td>Vendor</td><td>{{.Booking.VendorName}}</td></tr>
  <tr><td>Date</td><td>{{.Date}}</td></tr>
  {{if .Booking.Guests}}<tr><td>Guests</td><td>{{.Booking.Guests}}</td></tr>{{end}}
  <tr><td>Total</td><td>PKR {{.Amount}}</td></tr>
</table>
<p>The vendor will contact you to finalize arrangements.</p>
{{end}}`

var (
	verificationTmpl = template.Must(template.Must(template.New("verification").Parse(layout)).Parse(verificationContent))
	resetTmpl        = template.Must(template.Must(template.New("reset").Parse(layout)).Parse(resetContent))
	bookingTmpl      = template.Must(template.Must(template.New("booking").Parse(layout)).Parse(bookingContent))
)

type mailView struct {
	Title   string
	Name    string
	Year    int
	Link    string
	Date    string
	Amount  string
	Booking *models.Booking
}

// renderedMail is a subject and HTML body ready to send.
type renderedMail struct {
	Subject string
	HTML    string
}

// longDate formats YYYY-MM-DD as "Thursday, December 25, 2025".
func longDate(date string) string {
	t, err := time.Parse(utils.DateLayout, date)
	if err != nil {
		return date
	}
	return t.Format("Monday, January 2, 2006")
}

func render(p models.MailPayload, baseURL string, now time.Time) (*renderedMail, error) {
	view := mailView{Name: p.Name, Year: now.Year()}
	var (
		tmpl    *template.Template
		subject string
	)
	switch p.Kind {
	case models.MailVerification:
		tmpl, subject = verificationTmpl, "Verify Your Email - Mehfil AI"
		view.Title = "Verify Your Email"
		view.Link = baseURL + "/verify-email?token=" + p.Token
	case models.MailPasswordReset:
		tmpl, subject = resetTmpl, "Reset Your Password - Mehfil AI"
		view.Title = "Reset Your Password"
		view.Link = baseURL + "/reset-password?token=" + p.Token
	case models.MailBookingConfirmation:
		if p.Booking == nil {
			return nil, fmt.Errorf("booking confirmation without booking")
		}
		tmpl, subject = bookingTmpl, fmt.Sprintf("Booking Confirmed for %s - Mehfil AI", p.Booking.VendorName)
		view.Title = "Booking Confirmed"
		view.Booking = p.Booking
		view.Date = longDate(p.Booking.BookingDate)
		view.Amount = utils.FormatAmount(p.Booking.TotalPrice)
	default:
		return nil, fmt.Errorf("unknown mail kind %q", p.Kind)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, view); err != nil {
		return nil, fmt.Errorf("failed to render %s mail: %w", p.Kind, err)
	}
	return &renderedMail{Subject: subject, HTML: buf.String()}, nil
}
