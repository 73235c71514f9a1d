package models

import (
	"time"
)

type AnnouncementPriority string

const (
	PriorityNormal AnnouncementPriority = "normal"
	PriorityHigh   AnnouncementPriority = "high"
	PriorityUrgent AnnouncementPriority = "urgent"
)

type Announcement struct {
	ID       uint                 `json:"id" gorm:"primaryKey"`
	Title    string               `json:"title" gorm:"not null;size:200;index" validate:"required,min=1,max=200"`
	Content  string               `json:"content" gorm:"type:text" validate:"required"`
	Priority AnnouncementPriority `json:"priority" gorm:"not null;default:normal;size:20" validate:"omitempty,oneof=normal high urgent"`
	PostedBy string               `json:"posted_by" gorm:"not null;size:255"`

	CreatedAt time.Time `json:"created_at" gorm:"index"`
}

func (Announcement) TableName() string {
	return "announcements"
}
