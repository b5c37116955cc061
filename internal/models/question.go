package models

import "time"

type Question struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	RoomID      uint           `gorm:"not null;index" json:"room_id"`
	Room        Room           `gorm:"foreignKey:RoomID;constraint:OnDelete:CASCADE" json:"-"`
	Title       string         `gorm:"size:255;not null" json:"title"`
	Description *string        `gorm:"type:text" json:"description"`
	StudentName *string        `gorm:"size:100" json:"student_name"`
	IsSolved    bool           `gorm:"not null;default:false" json:"is_solved"`
	Votes       []QuestionVote `gorm:"foreignKey:QuestionID" json:"-"`
	CreatedAt   time.Time      `json:"created_at"`
}

const (
	VoteTypeUp   = "up"
	VoteTypeDown = "down"
)

// QuestionVote rows are immutable once created. The composite unique index
// enforces one vote per voter token per question; NULL tokens are exempt.
type QuestionVote struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	QuestionID uint      `gorm:"not null;index;uniqueIndex:idx_question_voter" json:"question_id"`
	VoterToken *string   `gorm:"size:64;uniqueIndex:idx_question_voter" json:"voter_token,omitempty"`
	VoteType   string    `gorm:"size:8;not null" json:"vote_type"`
	CreatedAt  time.Time `json:"created_at"`
}
