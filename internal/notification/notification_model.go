package notification

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/** --------------------ENTITIES-------------------- */

// TypeShare is the only notification type produced today; the column is a
// free tag so future event kinds need no migration.
const TypeShare = "share"

// Notification is a one-way message to a recipient. Sender name and email
// are copied in at creation time: notifications are historical records,
// and a sender renaming later must not rewrite old inbox entries.
type Notification struct {
	ID          string    `gorm:"primaryKey;type:uuid" json:"id"`
	RecipientID string    `gorm:"not null;index" json:"recipientId"`
	SenderID    string    `json:"senderId,omitempty"`
	SenderName  string    `json:"senderName,omitempty"`
	SenderEmail string    `json:"senderEmail,omitempty"`
	Type        string    `gorm:"not null;type:varchar(50);default:'share'" json:"type"`
	Message     string    `gorm:"not null" json:"message"`
	Read        bool      `gorm:"not null;default:false" json:"read"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (n *Notification) BeforeCreate(tx *gorm.DB) error {
	if n.ID == "" {
		n.ID = uuid.New().String()
	}
	return nil
}

/** -------------------- DTOs -------------------- */

type ShareRequest struct {
	Email   string `json:"email" binding:"required,email"`
	Message string `json:"message"`
}

type UnreadCountResponse struct {
	Unread int64 `json:"unread"`
}
