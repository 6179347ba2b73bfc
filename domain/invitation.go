package domain

import (
	"time"

	"github.com/google/uuid"
)

// Invitation asks the receiver to join a Group. IsAccepted stays nil until the receiver answers.
type Invitation struct {
	ID           uuid.UUID  `json:"id"`
	SenderID     uuid.UUID  `json:"sender_id"`
	ReceiverID   uuid.UUID  `json:"receiver_id"`
	GroupID      uuid.UUID  `json:"group_id"`
	SentDate     time.Time  `json:"sent_date"`
	ResponseDate *time.Time `json:"response_date,omitempty"`
	IsAccepted   *bool      `json:"is_accepted,omitempty"`
	Sender       *User      `json:"sender,omitempty"`
	Receiver     *User      `json:"receiver,omitempty"`
	Group        *Group     `json:"group,omitempty"`
}

func (i Invitation) GetID() uuid.UUID            { return i.ID }
func (i Invitation) GetSenderID() uuid.UUID      { return i.SenderID }
func (i Invitation) GetReceiverID() uuid.UUID    { return i.ReceiverID }
func (i Invitation) GetGroupID() uuid.UUID       { return i.GroupID }
func (i Invitation) GetSentDate() time.Time      { return i.SentDate }
func (i Invitation) GetResponseDate() *time.Time { return i.ResponseDate }
func (i Invitation) GetIsAccepted() *bool        { return i.IsAccepted }

// IsPending reports whether the receiver has not answered yet.
func (i Invitation) IsPending() bool {
	return i.IsAccepted == nil
}
