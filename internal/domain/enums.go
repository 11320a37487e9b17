package domain

// UserRole identifies what a dashboard user is allowed to see and do.
type UserRole string

const (
	RoleAdmin  UserRole = "admin"
	RoleAgent  UserRole = "agent"
	RoleExpert UserRole = "expert"
	RoleClient UserRole = "client"

	// RoleAnonymous is the zero role: no session or an unreadable role claim.
	RoleAnonymous UserRole = ""
)

// RoleLabels holds the display label of each role.
var RoleLabels = map[UserRole]string{
	RoleAdmin:  "Administrateur",
	RoleAgent:  "Agent Sanitaire",
	RoleExpert: "Lanceur d'alerte",
	RoleClient: "Utilisateur",
}

// IsValid reports whether r is one of the known, non-anonymous roles.
func (r UserRole) IsValid() bool {
	_, ok := RoleLabels[r]
	return ok
}

// NotificationType classifies a notification by severity.
type NotificationType string

const (
	NotificationInfo     NotificationType = "info"
	NotificationWarning  NotificationType = "warning"
	NotificationCritical NotificationType = "critical"
)

// ValidNotificationTypes is the set of accepted notification types.
var ValidNotificationTypes = map[NotificationType]bool{
	NotificationInfo:     true,
	NotificationWarning:  true,
	NotificationCritical: true,
}

// DeliveryStatus tracks the email delivery of a notification.
type DeliveryStatus string

const (
	DeliveryPending DeliveryStatus = "pending"
	DeliverySent    DeliveryStatus = "sent"
	DeliveryFailed  DeliveryStatus = "failed"
)

// AlertLevel is the heat alert level shown for a region.
type AlertLevel string

const (
	AlertLevelNormal  AlertLevel = "normal"
	AlertLevelWarning AlertLevel = "warning"
	AlertLevelDanger  AlertLevel = "danger"
)

// AlertLevelFor derives the alert level from a maximum temperature in °C.
func AlertLevelFor(maxTempC float64) AlertLevel {
	switch {
	case maxTempC >= 40:
		return AlertLevelDanger
	case maxTempC >= 37:
		return AlertLevelWarning
	default:
		return AlertLevelNormal
	}
}
