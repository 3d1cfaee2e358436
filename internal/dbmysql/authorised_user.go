package dbmysql

import (
	"time"
)

// AuthorisedUser records that UserID has explicitly allowed
// AuthorisedUserID to view their journal under selected_users mode.
// The owner replaces their whole grant set atomically.
type AuthorisedUser struct {
	ID               uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID           uint64    `gorm:"column:user_id;not null;index:idx_owner_granted,unique" json:"user_id"`
	AuthorisedUserID uint64    `gorm:"column:authorised_user_id;not null;index:idx_owner_granted,unique;index" json:"authorised_user_id"`
	CreatedAt        time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}
