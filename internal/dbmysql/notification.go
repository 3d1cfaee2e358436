package dbmysql

import (
	"time"
)

// Notification is append-only; only the Viewed flag mutates after create.
type Notification struct {
	ID         uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID     uint64    `gorm:"column:user_id;not null;index" json:"user_id"` // recipient
	Message    string    `gorm:"column:message;size:255;not null" json:"message"`
	Link       string    `gorm:"column:link;size:255" json:"link"`
	Initiator  uint64    `gorm:"column:initiator" json:"initiator"`
	ObjectType string    `gorm:"column:object_type;type:enum('comment','follow','like')" json:"object_type"`
	ObjectID   uint64    `gorm:"column:object_id" json:"object_id"`
	Viewed     bool      `gorm:"column:viewed;default:false;index" json:"viewed"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime;index" json:"created_at"`
}
