package user

import (
	"context"
	"log"

	"github.com/vickris/opensit/internal/common"
	"github.com/vickris/opensit/internal/config"
	"github.com/vickris/opensit/internal/dbmysql"
)

// Notifier is satisfied by the notification dispatcher. Follow events fan
// out through it.
type Notifier interface {
	Dispatch(ctx context.Context, event common.NotificationEvent) (*dbmysql.Notification, error)
}

// SignupHook runs after a user row exists. Hooks are an ordered pipeline
// so tests can register users without triggering mail delivery.
type SignupHook func(ctx context.Context, u *dbmysql.User) error

type UserService interface {
	RegisterUser(ctx context.Context, username, email, password string) (*dbmysql.User, string, error)
	LoginUser(ctx context.Context, username, password string) (*dbmysql.User, string, error)
	GetProfile(ctx context.Context, userID uint64) (*dbmysql.User, error)
	UpdateProfile(ctx context.Context, userID uint64, email, firstName, lastName, city, country string) error

	Follow(ctx context.Context, followerID, followedID uint64) error
	Unfollow(ctx context.Context, followerID, followedID uint64) error
	IsFollowing(ctx context.Context, followerID, followedID uint64) (bool, error)
	FollowingAnyone(ctx context.Context, userID uint64) (bool, error)

	SetPrivacyMode(ctx context.Context, userID uint64, mode common.PrivacyMode) error
	RepairVisibility(ctx context.Context, ownerID uint64) error
	ReplaceSelectedUsers(ctx context.Context, ownerID uint64, grantedIDs []uint64) error
	SelectedUsers(ctx context.Context, ownerID uint64) ([]uint64, error)

	UsersToFollow(ctx context.Context, userID uint64) ([]*dbmysql.User, error)
	NewestUsers(ctx context.Context, count int) ([]*dbmysql.User, error)
	ActiveUsers(ctx context.Context) ([]*dbmysql.User, error)
}

type userService struct {
	userRepo   UserRepository
	followRepo FollowRepository
	grantRepo  AuthorisedUserRepository
	notifier   Notifier
	platform   config.PlatformConfig
	hooks      []SignupHook
}

func NewUserService(
	userRepo UserRepository,
	followRepo FollowRepository,
	grantRepo AuthorisedUserRepository,
	notifier Notifier,
	platform config.PlatformConfig,
	hooks ...SignupHook,
) UserService {
	return &userService{
		userRepo:   userRepo,
		followRepo: followRepo,
		grantRepo:  grantRepo,
		notifier:   notifier,
		platform:   platform,
		hooks:      hooks,
	}
}

// DefaultSignupHooks are the production post-creation side effects: follow
// the platform account, then send the welcome mail.
func DefaultSignupHooks(follows FollowRepository, mailer common.Mailer, platform config.PlatformConfig) []SignupHook {
	return []SignupHook{
		func(ctx context.Context, u *dbmysql.User) error {
			if u.UserID == platform.SystemUserID {
				return nil
			}
			_, err := follows.Create(ctx, u.UserID, platform.SystemUserID)
			return err
		},
		func(ctx context.Context, u *dbmysql.User) error {
			return mailer.SendWelcomeEmail(ctx, u.Email, u.Username)
		},
	}
}

func (s *userService) RegisterUser(ctx context.Context, username, email, password string) (*dbmysql.User, string, error) {
	if err := common.ValidateUsername(username); err != nil {
		return nil, "", err
	}
	if err := common.ValidateEmail(email); err != nil {
		return nil, "", err
	}
	if err := common.ValidatePassword(password); err != nil {
		return nil, "", err
	}

	exists, err := s.userRepo.CheckUserExists(ctx, username)
	if err != nil {
		return nil, "", err
	}
	if exists {
		return nil, "", &common.ValidationError{Field: "username", Reason: "already taken"}
	}

	hashed, err := common.HashPassword(password)
	if err != nil {
		return nil, "", err
	}

	user := &dbmysql.User{
		Username:       username,
		Email:          email,
		PasswordHash:   hashed,
		PrivacySetting: common.PrivacyPublic,
	}

	if err := s.userRepo.CreateUser(ctx, user); err != nil {
		return nil, "", err
	}

	for _, hook := range s.hooks {
		if err := hook(ctx, user); err != nil {
			log.Printf("signup hook for user %d failed: %v", user.UserID, err)
		}
	}

	token, err := common.GenerateToken(user.UserID, user.Username)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

func (s *userService) LoginUser(ctx context.Context, username, password string) (*dbmysql.User, string, error) {
	if username == "" || password == "" {
		return nil, "", &common.ValidationError{Field: "credentials", Reason: "username and password required"}
	}

	user, err := s.userRepo.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, "", err
	}

	if err := common.CheckPassword(password, user.PasswordHash); err != nil {
		return nil, "", &common.ValidationError{Field: "password", Reason: "invalid password"}
	}

	token, err := common.GenerateToken(user.UserID, user.Username)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (s *userService) GetProfile(ctx context.Context, userID uint64) (*dbmysql.User, error) {
	return s.userRepo.GetUserByID(ctx, userID)
}

func (s *userService) UpdateProfile(ctx context.Context, userID uint64, email, firstName, lastName, city, country string) error {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return err
	}

	if email != "" {
		if err := common.ValidateEmail(email); err != nil {
			return err
		}
		user.Email = email
	}
	if firstName != "" {
		user.FirstName = firstName
	}
	if lastName != "" {
		user.LastName = lastName
	}
	if city != "" {
		user.City = city
	}
	if country != "" {
		user.Country = country
	}

	return s.userRepo.UpdateUser(ctx, user)
}

// Follow creates the edge and notifies the followed user. Re-following is
// a no-op, not an error.
func (s *userService) Follow(ctx context.Context, followerID, followedID uint64) error {
	if followerID == followedID {
		return &common.ValidationError{Field: "followed_id", Reason: "cannot follow yourself"}
	}

	follower, err := s.userRepo.GetUserByID(ctx, followerID)
	if err != nil {
		return err
	}
	if _, err := s.userRepo.GetUserByID(ctx, followedID); err != nil {
		return err
	}

	exists, err := s.followRepo.Exists(ctx, followerID, followedID)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	rel, err := s.followRepo.Create(ctx, followerID, followedID)
	if err != nil {
		return err
	}

	if _, err := s.notifier.Dispatch(ctx, common.NotificationEvent{
		Kind:              common.EventNewFollower,
		RecipientID:       followedID,
		InitiatorID:       followerID,
		InitiatorName:     follower.DisplayName(),
		InitiatorUsername: follower.Username,
		ObjectID:          rel.ID,
	}); err != nil {
		log.Printf("new-follower notification for user %d failed: %v", followedID, err)
	}
	return nil
}

func (s *userService) Unfollow(ctx context.Context, followerID, followedID uint64) error {
	return s.followRepo.Delete(ctx, followerID, followedID)
}

func (s *userService) IsFollowing(ctx context.Context, followerID, followedID uint64) (bool, error) {
	return s.followRepo.Exists(ctx, followerID, followedID)
}

// FollowingAnyone ignores the implicit platform-account edge.
func (s *userService) FollowingAnyone(ctx context.Context, userID uint64) (bool, error) {
	followed, err := s.followRepo.FollowedIDs(ctx, userID)
	if err != nil {
		return false, err
	}
	for _, id := range followed {
		if id != s.platform.SystemUserID {
			return true, nil
		}
	}
	return false, nil
}

// SetPrivacyMode validates the mode and runs the write plus the marker
// sweep as one unit in the repository.
func (s *userService) SetPrivacyMode(ctx context.Context, userID uint64, mode common.PrivacyMode) error {
	if err := common.ValidatePrivacyMode(mode); err != nil {
		return err
	}
	_, err := s.userRepo.UpdatePrivacyMode(ctx, userID, mode)
	return err
}

// RepairVisibility re-runs the marker sweep for an owner whose cached
// markers diverged from their mode.
func (s *userService) RepairVisibility(ctx context.Context, ownerID uint64) error {
	return s.userRepo.SweepVisibility(ctx, ownerID)
}

func (s *userService) ReplaceSelectedUsers(ctx context.Context, ownerID uint64, grantedIDs []uint64) error {
	deduped := make([]uint64, 0, len(grantedIDs))
	seen := make(map[uint64]bool, len(grantedIDs))
	for _, id := range grantedIDs {
		if id == 0 || id == ownerID || seen[id] {
			continue
		}
		seen[id] = true
		deduped = append(deduped, id)
	}
	return s.grantRepo.Replace(ctx, ownerID, deduped)
}

func (s *userService) SelectedUsers(ctx context.Context, ownerID uint64) ([]uint64, error) {
	return s.grantRepo.GrantedIDs(ctx, ownerID)
}

// UsersToFollow suggests accounts followed by at least the configured
// number of the user's own followed accounts, minus the user and anyone
// already followed.
func (s *userService) UsersToFollow(ctx context.Context, userID uint64) ([]*dbmysql.User, error) {
	followed, err := s.followRepo.FollowedIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(followed) == 0 {
		return []*dbmysql.User{}, nil
	}

	threshold := s.platform.SuggestionThreshold
	if threshold < 1 {
		threshold = 2
	}
	candidates, err := s.followRepo.SuggestionCandidates(ctx, followed, threshold)
	if err != nil {
		return nil, err
	}

	alreadyFollowed := make(map[uint64]bool, len(followed))
	for _, id := range followed {
		alreadyFollowed[id] = true
	}

	var ids []uint64
	for _, id := range candidates {
		if id == userID || alreadyFollowed[id] {
			continue
		}
		ids = append(ids, id)
	}
	return s.userRepo.GetUsersByIDs(ctx, ids)
}

func (s *userService) NewestUsers(ctx context.Context, count int) ([]*dbmysql.User, error) {
	if count <= 0 {
		count = 5
	}
	return s.userRepo.NewestUsers(ctx, count)
}

func (s *userService) ActiveUsers(ctx context.Context) ([]*dbmysql.User, error) {
	return s.userRepo.ActiveUsers(ctx)
}
