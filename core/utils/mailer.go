package utils

import (
	"bytes"
	"fmt"
	"html/template"
	"net/smtp"
	"time"

	"guestdesk/core/config"
)

type TaskAssignedMailData struct {
	RecipientName string
	TaskTitle     string
	Description   string
	Deadline      *time.Time
	AssignerName  string
	PlatformURL   string
}

var taskAssignedTemplate = template.Must(template.New("task_assigned").Parse(`
<div style="font-family: Arial, Helvetica, sans-serif; padding: 24px;">
  <h2>New task assigned</h2>
  <p>Hello <strong>{{.RecipientName}}</strong>,</p>
  <p>A new task has been assigned to you.</p>
  <div style="border-left: 4px solid #2563eb; padding: 16px; margin: 20px 0;">
    <p><strong>Title:</strong> {{.TaskTitle}}</p>
    <p><strong>Description:</strong> {{if .Description}}{{.Description}}{{else}}&mdash;{{end}}</p>
    <p><strong>Deadline:</strong> {{if .Deadline}}{{.Deadline.Format "02/01/2006"}}{{else}}Not set{{end}}</p>
  </div>
  <p>Task created by: <strong>{{.AssignerName}}</strong></p>
  <p><a href="{{.PlatformURL}}">Open the board</a></p>
</div>
`))

func SendTaskAssignedMail(to string, data TaskAssignedMailData) error {
	cfg, ok := config.GetSafe()
	if !ok {
		return fmt.Errorf("config not initialized")
	}
	if cfg.Mail.Host == "" {
		return fmt.Errorf("mail transport not configured")
	}

	if data.PlatformURL == "" {
		data.PlatformURL = cfg.Server.BaseURL
	}

	var body bytes.Buffer
	if err := taskAssignedTemplate.Execute(&body, data); err != nil {
		return err
	}

	subject := fmt.Sprintf("New task assigned: %s", data.TaskTitle)
	msg := bytes.Buffer{}
	msg.WriteString(fmt.Sprintf("From: %s\r\n", cfg.Mail.From))
	msg.WriteString(fmt.Sprintf("To: %s\r\n", to))
	msg.WriteString(fmt.Sprintf("Subject: %s\r\n", subject))
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	msg.WriteString("\r\n")
	msg.Write(body.Bytes())

	addr := fmt.Sprintf("%s:%d", cfg.Mail.Host, cfg.Mail.Port)
	var auth smtp.Auth
	if cfg.Mail.User != "" {
		auth = smtp.PlainAuth("", cfg.Mail.User, cfg.Mail.Password, cfg.Mail.Host)
	}
	return smtp.SendMail(addr, auth, cfg.Mail.From, []string{to}, msg.Bytes())
}
