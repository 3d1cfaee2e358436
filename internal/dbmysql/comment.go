package dbmysql

import (
	"time"
)

type Comment struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	SitID     uint64    `gorm:"column:sit_id;not null;index" json:"sit_id"`
	UserID    uint64    `gorm:"column:user_id;not null;index" json:"user_id"`
	Body      string    `gorm:"column:body;type:text;not null" json:"body"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (c *Comment) LikeableType() string { return "Comment" }
func (c *Comment) LikeableID() uint64   { return c.ID }
