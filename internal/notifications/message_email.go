package notifications

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"

	"folio-backend/internal/messages"
)

// MessageMailer forwards new contact-form inquiries to the site owner's
// inbox. It satisfies messages.Mailer.
type MessageMailer struct {
	client     *BrevoClient
	ownerEmail string
	ownerName  string
}

func NewMessageMailer(client *BrevoClient, ownerEmail, ownerName string) *MessageMailer {
	if client == nil || ownerEmail == "" {
		return nil
	}
	return &MessageMailer{
		client:     client,
		ownerEmail: ownerEmail,
		ownerName:  ownerName,
	}
}

var messageNotificationTmpl = template.Must(template.New("message").Parse(`
<h2>New portfolio inquiry</h2>
<p><strong>From:</strong> {{.Name}} &lt;{{.Email}}&gt;</p>
<p><strong>Received:</strong> {{.CreatedAt.Format "2006-01-02 15:04"}}</p>
<hr/>
<p>{{.Message}}</p>
`))

func (m *MessageMailer) SendMessageNotification(ctx context.Context, msg messages.Message) (string, error) {
	if m == nil {
		return "", errors.New("message mailer is nil")
	}

	var body bytes.Buffer
	if err := messageNotificationTmpl.Execute(&body, msg); err != nil {
		return "", fmt.Errorf("message notification template: %w", err)
	}

	subject := fmt.Sprintf("New inquiry from %s", msg.Name)
	return m.client.sendHTML(ctx, m.ownerEmail, m.ownerName, subject, body.String())
}
