package dbmysql

import (
	"time"
)

// Like is a polymorphic, existence-only association: user X likes target
// (LikeableType, LikeableID). No payload.
type Like struct {
	ID           uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID       uint64    `gorm:"column:user_id;not null;index:idx_user_likeable,unique" json:"user_id"`
	LikeableType string    `gorm:"column:likeable_type;size:50;not null;index:idx_user_likeable,unique" json:"likeable_type"`
	LikeableID   uint64    `gorm:"column:likeable_id;not null;index:idx_user_likeable,unique" json:"likeable_id"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

// Favourite bookmarks a sit (or anything favourable) for later.
type Favourite struct {
	ID              uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID          uint64    `gorm:"column:user_id;not null;index:idx_user_favourable,unique" json:"user_id"`
	FavourableType  string    `gorm:"column:favourable_type;size:50;not null;index:idx_user_favourable,unique" json:"favourable_type"`
	FavourableID    uint64    `gorm:"column:favourable_id;not null;index:idx_user_favourable,unique" json:"favourable_id"`
	CreatedAt       time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}
