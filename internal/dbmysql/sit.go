package dbmysql

import (
	"time"
)

// Sit is one logged meditation session. An empty body makes it a stub:
// it shows up in the owner's own journal but never in anyone's feed.
type Sit struct {
	SitID    uint64 `gorm:"primaryKey;column:sit_id;autoIncrement" json:"sit_id"`
	UserID   uint64 `gorm:"column:user_id;not null;index" json:"user_id"`
	Title    string `gorm:"column:title;size:255" json:"title"`
	Body     string `gorm:"column:body;type:text" json:"body"`
	Duration int    `gorm:"column:duration" json:"duration"` // minutes

	// Private is a cached projection of the owner's privacy mode, kept in
	// step by the visibility sweep. It is a query fast path only; access
	// control always re-derives from the owner's current mode.
	Private bool `gorm:"column:private;default:false;index" json:"private"`

	Views     int       `gorm:"column:views;default:0" json:"views"`
	CreatedAt time.Time `gorm:"column:created_at;index" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (s *Sit) LikeableType() string { return "Sit" }
func (s *Sit) LikeableID() uint64   { return s.SitID }

// Stub reports whether this sit has no body.
func (s *Sit) Stub() bool { return s.Body == "" }
