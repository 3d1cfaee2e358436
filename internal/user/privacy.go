package user

import (
	"context"
	"sort"

	"github.com/vickris/opensit/internal/common"
	"github.com/vickris/opensit/internal/dbmysql"
)

// PrivacyResolver decides, for any (viewer, owner) pair, whether the
// owner's journal is visible. It is the source of truth for access
// control; the cached private marker on sits is never consulted here.
type PrivacyResolver struct {
	users   UserRepository
	follows FollowRepository
	grants  AuthorisedUserRepository
}

func NewPrivacyResolver(users UserRepository, follows FollowRepository, grants AuthorisedUserRepository) *PrivacyResolver {
	return &PrivacyResolver{users: users, follows: follows, grants: grants}
}

// CanView evaluates the precedence table: self, public, following
// (mutual), selected_users (explicit grant), private. Anonymous viewers
// (id 0) only pass the public rule. Errors deny by default.
func (r *PrivacyResolver) CanView(ctx context.Context, viewerID uint64, owner *dbmysql.User) (bool, error) {
	if viewerID == owner.UserID && viewerID != common.AnonymousUserID {
		return true, nil
	}

	switch owner.PrivacySetting {
	case common.PrivacyPublic:
		return true, nil

	case common.PrivacyFollowing:
		if viewerID == common.AnonymousUserID {
			return false, nil
		}
		// Visibility under following mode is mutual: the owner must have
		// followed the viewer back.
		ownerFollowsViewer, err := r.follows.Exists(ctx, owner.UserID, viewerID)
		if err != nil || !ownerFollowsViewer {
			return false, err
		}
		return r.follows.Exists(ctx, viewerID, owner.UserID)

	case common.PrivacySelectedUsers:
		if viewerID == common.AnonymousUserID {
			return false, nil
		}
		return r.grants.Exists(ctx, owner.UserID, viewerID)

	case common.PrivacyPrivate:
		return false, nil
	}

	// Unknown mode never defaults to visible.
	return false, &common.ValidationError{Field: "privacy_setting", Reason: "unknown mode " + string(owner.PrivacySetting)}
}

// CanViewID is CanView with an owner lookup. A missing owner surfaces as
// not-found.
func (r *PrivacyResolver) CanViewID(ctx context.Context, viewerID, ownerID uint64) (bool, error) {
	owner, err := r.users.GetUserByID(ctx, ownerID)
	if err != nil {
		return false, err
	}
	return r.CanView(ctx, viewerID, owner)
}

// ViewableUserIDs enumerates restricted-but-granted owners for the viewer:
// following-mode users with a mutual follow, and selected_users-mode users
// who granted the viewer. Public owners are handled by content selection,
// not here.
func (r *PrivacyResolver) ViewableUserIDs(ctx context.Context, viewerID uint64) ([]uint64, error) {
	if viewerID == common.AnonymousUserID {
		return nil, nil
	}

	followed, err := r.follows.FollowedIDs(ctx, viewerID)
	if err != nil {
		return nil, err
	}
	followers, err := r.follows.FollowerIDs(ctx, viewerID)
	if err != nil {
		return nil, err
	}

	mutual := intersect(followed, followers)
	followingMode, err := r.users.IDsWithPrivacyMode(ctx, mutual, common.PrivacyFollowing)
	if err != nil {
		return nil, err
	}

	granters, err := r.grants.GranterIDs(ctx, viewerID)
	if err != nil {
		return nil, err
	}
	selectedMode, err := r.users.IDsWithPrivacyMode(ctx, granters, common.PrivacySelectedUsers)
	if err != nil {
		return nil, err
	}

	return unionIDs(followingMode, selectedMode), nil
}

// MutualFollowingIDs returns ids of users the viewer follows who follow
// the viewer back.
func (r *PrivacyResolver) MutualFollowingIDs(ctx context.Context, userID uint64) ([]uint64, error) {
	followed, err := r.follows.FollowedIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	followers, err := r.follows.FollowerIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	return intersect(followed, followers), nil
}

func intersect(a, b []uint64) []uint64 {
	inB := make(map[uint64]bool, len(b))
	for _, id := range b {
		inB[id] = true
	}
	var out []uint64
	for _, id := range a {
		if inB[id] {
			out = append(out, id)
		}
	}
	return out
}

func unionIDs(sets ...[]uint64) []uint64 {
	seen := make(map[uint64]bool)
	var out []uint64
	for _, set := range sets {
		for _, id := range set {
			if !seen[id] {
				seen[id] = true
				out = append(out, id)
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
