package domain

import "time"

type Message struct {
	ID         string    `json:"id" gorm:"primaryKey"`
	SenderID   string    `json:"sender_id" gorm:"index"`
	ReceiverID string    `json:"receiver_id" gorm:"index"`
	Content    string    `json:"content"`
	Read       bool      `json:"read"`
	CreatedAt  time.Time `json:"created_at"`
}

func (Message) TableName() string { return "messages" }
