package model

import (
	"time"

	"gorm.io/gorm"
)

// RecentWindow is how far back a publication still counts as recent.
const RecentWindow = 24 * time.Hour

// Question is a poll, visible once PubDate has passed.
type Question struct {
	ID           uint      `gorm:"primarykey" json:"id"`
	QuestionText string    `json:"question_text" gorm:"type:varchar(200);not null"`
	PubDate      time.Time `json:"pub_date" gorm:"not null;index"`
	Choices      []Choice  `json:"choices,omitempty" gorm:"foreignKey:QuestionID;constraint:OnDelete:CASCADE"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// IsPublished reports whether the question is visible at now.
func (q *Question) IsPublished(now time.Time) bool {
	return !q.PubDate.After(now)
}

// WasPublishedRecently is true for questions published within the last day.
// Questions dated in the future are never recent.
func (q *Question) WasPublishedRecently(now time.Time) bool {
	return !q.PubDate.Before(now.Add(-RecentWindow)) && q.IsPublished(now)
}

// BeforeSave stores publication dates in UTC so range filters compare
// consistently across drivers.
func (q *Question) BeforeSave(tx *gorm.DB) error {
	q.PubDate = q.PubDate.UTC()
	return nil
}
