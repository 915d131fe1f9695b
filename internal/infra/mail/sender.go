package mail

import (
	"bytes"
	"fmt"
	"text/template"

	"gopkg.in/gomail.v2"
)

type EmailSender struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
	To       string
}

func NewEmailSender(host string, port int, user, password, from, to string) *EmailSender {
	return &EmailSender{
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
		From:     from,
		To:       to,
	}
}

type submissionAlertData struct {
	Kind    string
	Name    string
	Email   string
	Summary string
}

var alertTemplate = template.Must(template.New("alert").Parse(`
<h2>New {{.Kind}} submission</h2>
<p><strong>Name:</strong> {{.Name}}</p>
<p><strong>Email:</strong> {{.Email}}</p>
{{if .Summary}}<p><strong>Details:</strong> {{.Summary}}</p>{{end}}
`))

// SendSubmissionAlert mails the operator inbox when a new contact or
// booking request lands.
func (s *EmailSender) SendSubmissionAlert(kind, name, email, summary string) error {
	var body bytes.Buffer
	data := submissionAlertData{Kind: kind, Name: name, Email: email, Summary: summary}
	if err := alertTemplate.Execute(&body, data); err != nil {
		return fmt.Errorf("render alert template: %w", err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", s.To)
	m.SetHeader("Subject", fmt.Sprintf("Thynra: new %s request from %s", kind, name))
	m.SetBody("text/html", body.String())

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("send SMTP mail: %w", err)
	}

	return nil
}
