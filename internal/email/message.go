// Package email builds the heatwave alert messages sent to residents.
package email

import (
	"fmt"
	"html"
	"strings"

	"heatwatch/internal/domain"
)

// Message is a rendered email.
type Message struct {
	Subject string
	HTML    string
	Text    string
}

var typeLabels = map[domain.NotificationType]string{
	domain.NotificationInfo:     "Information",
	domain.NotificationWarning:  "Alerte",
	domain.NotificationCritical: "Alerte critique",
}

var typeColors = map[domain.NotificationType]string{
	domain.NotificationInfo:     "#2563EB",
	domain.NotificationWarning:  "#D97706",
	domain.NotificationCritical: "#DC2626",
}

// NotificationMessage renders the alert email for n. frontendURL is where
// the notifications page lives.
func NotificationMessage(n *domain.Notification, toName, frontendURL string) Message {
	label, ok := typeLabels[n.Type]
	if !ok {
		label = typeLabels[domain.NotificationInfo]
	}
	color, ok := typeColors[n.Type]
	if !ok {
		color = typeColors[domain.NotificationInfo]
	}
	link := strings.TrimRight(frontendURL, "/") + "/dashboard/notifications"
	name := toName
	if strings.TrimSpace(name) == "" {
		name = "Madame, Monsieur"
	}

	subject := fmt.Sprintf("[HeatWatch] %s : %s", label, n.Title)
	text := fmt.Sprintf("Bonjour %s,\n\n%s\n\nConsultez vos notifications : %s\n\nRestez au frais, hydratez-vous régulièrement.\n\nL'équipe HeatWatch",
		name, n.Title, link)
	body := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"></head>
<body style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
  <h2 style="color: %s;">%s</h2>
  <p>Bonjour %s,</p>
  <p>%s</p>
  <p style="text-align: center; margin: 30px 0;">
    <a href="%s" style="background-color: %s; color: white; padding: 12px 24px; text-decoration: none; border-radius: 6px; display: inline-block;">Voir mes notifications</a>
  </p>
  <p>Restez au frais, hydratez-vous régulièrement et prenez des nouvelles de vos proches.</p>
  <hr style="border: none; border-top: 1px solid #eee; margin: 20px 0;">
  <p style="color: #999; font-size: 12px;">HeatWatch - Surveillance des vagues de chaleur</p>
</body>
</html>`, color, html.EscapeString(label), html.EscapeString(name), html.EscapeString(n.Title),
		html.EscapeString(link), color)

	return Message{Subject: subject, HTML: body, Text: text}
}
