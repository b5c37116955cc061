package models

import "time"

type Room struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	Title     string     `gorm:"size:255;not null" json:"title"`
	RoomCode  string     `gorm:"size:6;uniqueIndex;not null" json:"room_code"`
	OwnerID   uint       `gorm:"not null;index" json:"owner_id"`
	Owner     Teacher    `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE" json:"-"`
	IsOpen    bool       `gorm:"not null;default:true" json:"is_open"`
	Questions []Question `gorm:"foreignKey:RoomID" json:"questions,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}
