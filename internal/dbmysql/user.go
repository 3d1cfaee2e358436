package dbmysql

import (
	"time"

	"gorm.io/gorm"

	"github.com/vickris/opensit/internal/common"
)

type User struct {
	UserID           uint64             `gorm:"primaryKey;column:user_id;autoIncrement" json:"user_id"`
	Username         string             `gorm:"column:username;uniqueIndex;size:20;not null" json:"username"`
	Email            string             `gorm:"column:email;size:255" json:"email"`
	PasswordHash     string             `gorm:"column:password_hash;size:255;not null" json:"-"`
	FirstName        string             `gorm:"column:first_name;size:100" json:"first_name"`
	LastName         string             `gorm:"column:last_name;size:100" json:"last_name"`
	City             string             `gorm:"column:city;size:100" json:"city"`
	Country          string             `gorm:"column:country;size:100" json:"country"`
	PrivacySetting   common.PrivacyMode `gorm:"column:privacy_setting;type:enum('public','following','selected_users','private');default:'public'" json:"privacy_setting"`
	DefaultSitLength int                `gorm:"column:default_sit_length;default:30" json:"default_sit_length"`
	SitsCount        int                `gorm:"column:sits_count;default:0" json:"sits_count"`
	CreatedAt        time.Time          `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time          `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt        gorm.DeletedAt     `gorm:"index" json:"-"`
}

// DisplayName mirrors how the user is named in notification messages.
func (u *User) DisplayName() string {
	if u.FirstName == "" {
		return u.Username
	}
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

// PrivateJournal reports whether every sit of this user is private.
func (u *User) PrivateJournal() bool {
	return u.PrivacySetting == common.PrivacyPrivate
}
