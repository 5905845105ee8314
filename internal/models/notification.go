package models

// Notification is informational only; delivery failures never roll back the
// operation that produced it.
type Notification struct {
	BaseModel
	UserID    string           `gorm:"not null;index" json:"user_id"`
	Type      NotificationType `gorm:"type:varchar(30);not null" json:"type"`
	Message   string           `json:"message"`
	RelatedID string           `json:"related_id,omitempty"`
	Read      bool             `gorm:"default:false" json:"read"`
}
