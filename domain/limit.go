package domain

import "github.com/google/uuid"

// Limit is a spending limit of one group member.
type Limit struct {
	ID          uuid.UUID  `json:"id"`
	GroupUserID uuid.UUID  `json:"group_user_id"`
	Amount      int64      `json:"amount"`
	NoticeType  NoticeType `json:"notice_type"`
	GroupUser   *GroupUser `json:"group_user,omitempty"`
}

func (l Limit) GetID() uuid.UUID          { return l.ID }
func (l Limit) GetGroupUserID() uuid.UUID { return l.GroupUserID }
func (l Limit) GetAmount() int64          { return l.Amount }
func (l Limit) GetNoticeType() NoticeType { return l.NoticeType }
