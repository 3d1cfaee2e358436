package user

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/vickris/opensit/internal/common"
	"github.com/vickris/opensit/internal/dbmysql"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *dbmysql.User) error
	GetUserByID(ctx context.Context, userID uint64) (*dbmysql.User, error)
	GetUserByUsername(ctx context.Context, username string) (*dbmysql.User, error)
	UpdateUser(ctx context.Context, user *dbmysql.User) error
	CheckUserExists(ctx context.Context, username string) (bool, error)
	GetUsersByIDs(ctx context.Context, ids []uint64) ([]*dbmysql.User, error)

	// IDsWithPrivacyMode filters the given id set down to users whose
	// current mode matches.
	IDsWithPrivacyMode(ctx context.Context, ids []uint64, mode common.PrivacyMode) ([]uint64, error)
	PublicUserIDs(ctx context.Context) ([]uint64, error)

	NewestUsers(ctx context.Context, count int) ([]*dbmysql.User, error)
	ActiveUsers(ctx context.Context) ([]*dbmysql.User, error)

	// UpdatePrivacyMode writes the new mode and, when the change crosses
	// the private boundary, sweeps every sit's cached marker — both inside
	// one transaction so no window exists where mode and markers disagree.
	UpdatePrivacyMode(ctx context.Context, userID uint64, mode common.PrivacyMode) (common.PrivacyMode, error)

	// SweepVisibility forces every sit marker back in line with the
	// owner's current mode. Recovery path for inconsistent markers.
	SweepVisibility(ctx context.Context, ownerID uint64) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) CreateUser(ctx context.Context, user *dbmysql.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) GetUserByID(ctx context.Context, userID uint64) (*dbmysql.User, error) {
	var user dbmysql.User
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&user).Error
	if err != nil {
		return nil, common.NotFoundOrErr(err, "user", userID)
	}

	return &user, nil
}

func (r *userRepository) GetUserByUsername(ctx context.Context, username string) (*dbmysql.User, error) {
	var user dbmysql.User
	err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error
	if err != nil {
		return nil, common.NotFoundOrErr(err, "user", 0)
	}

	return &user, nil
}

func (r *userRepository) UpdateUser(ctx context.Context, user *dbmysql.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

func (r *userRepository) CheckUserExists(ctx context.Context, username string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&dbmysql.User{}).Where("username = ?", username).Count(&count).Error
	return count > 0, err
}

func (r *userRepository) GetUsersByIDs(ctx context.Context, ids []uint64) ([]*dbmysql.User, error) {
	if len(ids) == 0 {
		return []*dbmysql.User{}, nil
	}
	var users []*dbmysql.User
	err := r.db.WithContext(ctx).Where("user_id IN ?", ids).Find(&users).Error
	return users, err
}

func (r *userRepository) IDsWithPrivacyMode(ctx context.Context, ids []uint64, mode common.PrivacyMode) ([]uint64, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var out []uint64
	err := r.db.WithContext(ctx).
		Model(&dbmysql.User{}).
		Where("user_id IN ? AND privacy_setting = ?", ids, mode).
		Pluck("user_id", &out).Error
	return out, err
}

func (r *userRepository) PublicUserIDs(ctx context.Context) ([]uint64, error) {
	var ids []uint64
	err := r.db.WithContext(ctx).
		Model(&dbmysql.User{}).
		Where("privacy_setting = ?", common.PrivacyPublic).
		Pluck("user_id", &ids).Error
	return ids, err
}

func (r *userRepository) NewestUsers(ctx context.Context, count int) ([]*dbmysql.User, error) {
	var users []*dbmysql.User
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(count).
		Find(&users).Error
	return users, err
}

func (r *userRepository) ActiveUsers(ctx context.Context) ([]*dbmysql.User, error) {
	var users []*dbmysql.User
	err := r.db.WithContext(ctx).
		Where("privacy_setting <> ?", common.PrivacyPrivate).
		Order("sits_count DESC").
		Find(&users).Error
	return users, err
}

func (r *userRepository) UpdatePrivacyMode(ctx context.Context, userID uint64, mode common.PrivacyMode) (common.PrivacyMode, error) {
	var oldMode common.PrivacyMode
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var user dbmysql.User
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("user_id = ?", userID).First(&user).Error; err != nil {
			return common.NotFoundOrErr(err, "user", userID)
		}
		oldMode = user.PrivacySetting

		if err := tx.Model(&dbmysql.User{}).
			Where("user_id = ?", userID).
			Update("privacy_setting", mode).Error; err != nil {
			return err
		}

		// Only crossings of the private boundary touch existing markers;
		// the other modes are resolved live at read time.
		switch {
		case mode == common.PrivacyPrivate:
			return sweepMarkers(tx, userID, true)
		case oldMode == common.PrivacyPrivate:
			return sweepMarkers(tx, userID, false)
		}
		return nil
	})
	return oldMode, err
}

func (r *userRepository) SweepVisibility(ctx context.Context, ownerID uint64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var user dbmysql.User
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("user_id = ?", ownerID).First(&user).Error; err != nil {
			return common.NotFoundOrErr(err, "user", ownerID)
		}
		return sweepMarkers(tx, ownerID, user.PrivacySetting == common.PrivacyPrivate)
	})
}

func sweepMarkers(tx *gorm.DB, ownerID uint64, private bool) error {
	return tx.Model(&dbmysql.Sit{}).
		Where("user_id = ?", ownerID).
		Update("private", private).Error
}
