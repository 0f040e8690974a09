package model

import "time"

const (
	NotificationVariantDefault     = "default"
	NotificationVariantDestructive = "destructive"
)

// Notification is a toast shown to a user after something happened to their
// account. EventID is the domain event it was rendered from.
type Notification struct {
	ID          string    `json:"id,omitempty" bson:"_id,omitempty"`
	UserID      string    `json:"user_id" bson:"user_id"`
	EventID     string    `json:"event_id" bson:"event_id"`
	EventType   string    `json:"event_type" bson:"event_type"`
	Title       string    `json:"title" bson:"title"`
	Description string    `json:"description" bson:"description"`
	Variant     string    `json:"variant" bson:"variant"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
}
