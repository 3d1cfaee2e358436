package dbmysql

import (
	"time"
)

// Relationship is a directed follow edge: follower follows followed.
// The pair is unique; re-following is a no-op at the service layer.
type Relationship struct {
	ID         uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	FollowerID uint64    `gorm:"column:follower_id;not null;index:idx_follower_followed,unique" json:"follower_id"`
	FollowedID uint64    `gorm:"column:followed_id;not null;index:idx_follower_followed,unique;index" json:"followed_id"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}
