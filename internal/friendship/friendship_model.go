package friendship

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"quickybite-service/internal/user"
)

/** --------------------ENTITIES-------------------- */

// Status of a friend edge. pending is the only initial state; accepted and
// rejected are terminal.
const (
	StatusPending  = "pending"
	StatusAccepted = "accepted"
	StatusRejected = "rejected"
)

// FriendEdge is a directed relationship proposal from requester to target.
// The composite unique index enforces at most one edge per ordered pair;
// the reverse direction is a separate edge on purpose.
type FriendEdge struct {
	ID          string    `gorm:"primaryKey;type:uuid" json:"id"`
	RequesterID string    `gorm:"not null;uniqueIndex:idx_requester_target" json:"requesterId"`
	TargetID    string    `gorm:"not null;uniqueIndex:idx_requester_target" json:"targetId"`
	Status      string    `gorm:"not null;type:varchar(20);default:'pending'" json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (e *FriendEdge) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	return nil
}

/** -------------------- DTOs -------------------- */

// Request
type SendRequest struct {
	FriendID string `json:"friendId" binding:"required"`
}

type RespondRequest struct {
	Status string `json:"status" binding:"required,oneof=accepted rejected"`
}

// Response
// RequestEntry is one pending request enriched with the counterpart's
// directory profile at read time.
type RequestEntry struct {
	RequestID string       `json:"requestId"`
	CreatedAt time.Time    `json:"createdAt"`
	User      user.Profile `json:"user"`
}

type RequestsResponse struct {
	Received []RequestEntry `json:"received"`
	Sent     []RequestEntry `json:"sent"`
}

// FriendEntry tags the resolved counterpart with the edge id so the client
// can later remove the friendship.
type FriendEntry struct {
	FriendshipID string       `json:"friendshipId"`
	Friend       user.Profile `json:"friend"`
}
