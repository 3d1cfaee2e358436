package user

import (
	"context"

	"gorm.io/gorm"

	"github.com/vickris/opensit/internal/dbmysql"
)

// AuthorisedUserRepository holds the explicit per-user grants consulted
// under selected_users mode.
type AuthorisedUserRepository interface {
	// Replace swaps an owner's whole grant set in one transaction.
	Replace(ctx context.Context, ownerID uint64, grantedIDs []uint64) error
	Exists(ctx context.Context, ownerID, grantedID uint64) (bool, error)
	GrantedIDs(ctx context.Context, ownerID uint64) ([]uint64, error)
	GranterIDs(ctx context.Context, grantedID uint64) ([]uint64, error)
}

type authorisedUserRepository struct {
	db *gorm.DB
}

func NewAuthorisedUserRepository(db *gorm.DB) AuthorisedUserRepository {
	return &authorisedUserRepository{db: db}
}

func (r *authorisedUserRepository) Replace(ctx context.Context, ownerID uint64, grantedIDs []uint64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", ownerID).Delete(&dbmysql.AuthorisedUser{}).Error; err != nil {
			return err
		}
		for _, id := range grantedIDs {
			grant := &dbmysql.AuthorisedUser{UserID: ownerID, AuthorisedUserID: id}
			if err := tx.Create(grant).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *authorisedUserRepository) Exists(ctx context.Context, ownerID, grantedID uint64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&dbmysql.AuthorisedUser{}).
		Where("user_id = ? AND authorised_user_id = ?", ownerID, grantedID).
		Count(&count).Error
	return count > 0, err
}

func (r *authorisedUserRepository) GrantedIDs(ctx context.Context, ownerID uint64) ([]uint64, error) {
	var ids []uint64
	err := r.db.WithContext(ctx).
		Model(&dbmysql.AuthorisedUser{}).
		Where("user_id = ?", ownerID).
		Pluck("authorised_user_id", &ids).Error
	return ids, err
}

func (r *authorisedUserRepository) GranterIDs(ctx context.Context, grantedID uint64) ([]uint64, error) {
	var ids []uint64
	err := r.db.WithContext(ctx).
		Model(&dbmysql.AuthorisedUser{}).
		Where("authorised_user_id = ?", grantedID).
		Pluck("user_id", &ids).Error
	return ids, err
}
