package sit

import (
	"context"
	"log"

	"github.com/vickris/opensit/internal/common"
	"github.com/vickris/opensit/internal/dbmysql"
	"github.com/vickris/opensit/internal/user"
)

// Notifier is satisfied by the notification dispatcher.
type Notifier interface {
	Dispatch(ctx context.Context, event common.NotificationEvent) (*dbmysql.Notification, error)
}

// FeedService composes viewer feeds and owns the sit/like/comment flows
// that hang off them. Every read re-derives visibility from the privacy
// resolver; the cached marker only narrows the feed query.
type FeedService struct {
	sits     SitRepository
	likes    LikeRepository
	comments CommentRepository
	users    user.UserRepository
	follows  user.FollowRepository
	resolver *user.PrivacyResolver
	notifier Notifier
}

func NewFeedService(
	sits SitRepository,
	likes LikeRepository,
	comments CommentRepository,
	users user.UserRepository,
	follows user.FollowRepository,
	resolver *user.PrivacyResolver,
	notifier Notifier,
) *FeedService {
	return &FeedService{
		sits:     sits,
		likes:    likes,
		comments: comments,
		users:    users,
		follows:  follows,
		resolver: resolver,
		notifier: notifier,
	}
}

// Feed returns the viewer's aggregated feed, newest first, stubs excluded.
// It is recomputed on every call; there is no cursor or cache.
func (s *FeedService) Feed(ctx context.Context, viewerID uint64) ([]dbmysql.Sit, error) {
	owners, err := s.readableOwners(ctx, viewerID)
	if err != nil {
		return nil, err
	}
	return s.sits.FeedByOwners(ctx, owners)
}

// readableOwners is the owner set whose sits the viewer may read in a
// feed: the viewer, restricted-but-granted owners from the resolver, and
// followed owners whose journal is public. Followed owners in following/
// selected_users mode are only included via the resolver, never by the
// follow edge alone.
func (s *FeedService) readableOwners(ctx context.Context, viewerID uint64) ([]uint64, error) {
	if viewerID == common.AnonymousUserID {
		return s.users.PublicUserIDs(ctx)
	}

	viewable, err := s.resolver.ViewableUserIDs(ctx, viewerID)
	if err != nil {
		return nil, err
	}

	followed, err := s.follows.FollowedIDs(ctx, viewerID)
	if err != nil {
		return nil, err
	}
	followedPublic, err := s.users.IDsWithPrivacyMode(ctx, followed, common.PrivacyPublic)
	if err != nil {
		return nil, err
	}

	owners := make(map[uint64]bool, len(viewable)+len(followedPublic)+1)
	owners[viewerID] = true
	for _, id := range viewable {
		owners[id] = true
	}
	for _, id := range followedPublic {
		owners[id] = true
	}

	out := make([]uint64, 0, len(owners))
	for id := range owners {
		out = append(out, id)
	}
	return out, nil
}

// GetSit reads one sit under full access control. Denials surface as
// not-found so private content existence never leaks. A marker that
// disagrees with the owner's current mode is reported, not trusted.
func (s *FeedService) GetSit(ctx context.Context, viewerID, sitID uint64) (*dbmysql.Sit, error) {
	sit, err := s.sits.GetByID(ctx, sitID)
	if err != nil {
		return nil, err
	}

	owner, err := s.users.GetUserByID(ctx, sit.UserID)
	if err != nil {
		return nil, err
	}

	ok, err := s.resolver.CanView(ctx, viewerID, owner)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, &common.NotFoundError{Resource: "sit", ID: sitID}
	}

	if sit.Private != owner.PrivateJournal() {
		return nil, &common.InconsistentStateError{
			OwnerID: owner.UserID,
			Detail:  "sit marker does not match owner's privacy mode",
		}
	}

	if viewerID != owner.UserID {
		if err := s.sits.IncrementViews(ctx, sitID); err != nil {
			log.Printf("incrementing views for sit %d failed: %v", sitID, err)
		}
		sit.Views++
	}

	return sit, nil
}

// ListUserSits returns another user's journal, subject to access control,
// or the owner's full journal including stubs.
func (s *FeedService) ListUserSits(ctx context.Context, viewerID, ownerID uint64) ([]dbmysql.Sit, error) {
	if viewerID != ownerID {
		ok, err := s.resolver.CanViewID(ctx, viewerID, ownerID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, &common.NotFoundError{Resource: "user", ID: ownerID}
		}
	}
	return s.sits.ListByUser(ctx, ownerID)
}

func (s *FeedService) CreateSit(ctx context.Context, ownerID uint64, title, body string, duration int) (*dbmysql.Sit, error) {
	owner, err := s.users.GetUserByID(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if duration <= 0 {
		duration = owner.DefaultSitLength
	}

	sit := &dbmysql.Sit{
		UserID:   ownerID,
		Title:    title,
		Body:     body,
		Duration: duration,
	}
	if err := s.sits.Create(ctx, sit); err != nil {
		return nil, err
	}
	return sit, nil
}

func (s *FeedService) UpdateSit(ctx context.Context, callerID, sitID uint64, title, body string, duration int) (*dbmysql.Sit, error) {
	sit, err := s.ownSit(ctx, callerID, sitID)
	if err != nil {
		return nil, err
	}

	sit.Title = title
	sit.Body = body
	if duration > 0 {
		sit.Duration = duration
	}
	if err := s.sits.Update(ctx, sit); err != nil {
		return nil, err
	}
	return sit, nil
}

func (s *FeedService) DeleteSit(ctx context.Context, callerID, sitID uint64) error {
	if _, err := s.ownSit(ctx, callerID, sitID); err != nil {
		return err
	}
	return s.sits.Delete(ctx, sitID)
}

// ownSit loads a sit and hides it from anyone but its owner.
func (s *FeedService) ownSit(ctx context.Context, callerID, sitID uint64) (*dbmysql.Sit, error) {
	sit, err := s.sits.GetByID(ctx, sitID)
	if err != nil {
		return nil, err
	}
	if sit.UserID != callerID {
		return nil, &common.NotFoundError{Resource: "sit", ID: sitID}
	}
	return sit, nil
}

// LikeSit records the like and notifies the sit owner, unless the liker
// is the owner.
func (s *FeedService) LikeSit(ctx context.Context, userID, sitID uint64) error {
	sit, err := s.GetSit(ctx, userID, sitID)
	if err != nil {
		return err
	}

	already, err := s.likes.HasLike(ctx, userID, sit)
	if err != nil {
		return err
	}
	if already {
		return nil
	}

	like, err := s.likes.CreateLike(ctx, userID, sit)
	if err != nil {
		return err
	}

	if sit.UserID == userID {
		return nil
	}

	liker, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		return err
	}
	if _, err := s.notifier.Dispatch(ctx, common.NotificationEvent{
		Kind:          common.EventNewLikeOnSit,
		RecipientID:   sit.UserID,
		InitiatorID:   userID,
		InitiatorName: liker.DisplayName(),
		ObjectID:      like.ID,
		SitID:         sit.SitID,
		SitOwnerID:    sit.UserID,
	}); err != nil {
		log.Printf("like notification for sit %d failed: %v", sitID, err)
	}
	return nil
}

func (s *FeedService) UnlikeSit(ctx context.Context, userID, sitID uint64) error {
	sit, err := s.sits.GetByID(ctx, sitID)
	if err != nil {
		return err
	}
	return s.likes.DeleteLike(ctx, userID, sit)
}

func (s *FeedService) LikesSit(ctx context.Context, userID, sitID uint64) (bool, error) {
	sit, err := s.sits.GetByID(ctx, sitID)
	if err != nil {
		return false, err
	}
	return s.likes.HasLike(ctx, userID, sit)
}

func (s *FeedService) FavouriteSit(ctx context.Context, userID, sitID uint64) error {
	sit, err := s.GetSit(ctx, userID, sitID)
	if err != nil {
		return err
	}
	already, err := s.likes.HasFavourite(ctx, userID, sit)
	if err != nil || already {
		return err
	}
	return s.likes.CreateFavourite(ctx, userID, sit)
}

func (s *FeedService) UnfavouriteSit(ctx context.Context, userID, sitID uint64) error {
	sit, err := s.sits.GetByID(ctx, sitID)
	if err != nil {
		return err
	}
	return s.likes.DeleteFavourite(ctx, userID, sit)
}

func (s *FeedService) Favourited(ctx context.Context, userID, sitID uint64) (bool, error) {
	sit, err := s.sits.GetByID(ctx, sitID)
	if err != nil {
		return false, err
	}
	return s.likes.HasFavourite(ctx, userID, sit)
}

func (s *FeedService) FavouriteSits(ctx context.Context, userID uint64) ([]dbmysql.Sit, error) {
	ids, err := s.likes.FavouriteSitIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	sits := make([]dbmysql.Sit, 0, len(ids))
	for _, id := range ids {
		sit, err := s.sits.GetByID(ctx, id)
		if err != nil {
			continue
		}
		sits = append(sits, *sit)
	}
	return sits, nil
}

// AddComment persists the comment and fans out notifications to the sit
// owner and every distinct prior commenter. The author is never notified.
func (s *FeedService) AddComment(ctx context.Context, authorID, sitID uint64, body string) (*dbmysql.Comment, error) {
	if body == "" {
		return nil, &common.ValidationError{Field: "body", Reason: "cannot be empty"}
	}

	sit, err := s.GetSit(ctx, authorID, sitID)
	if err != nil {
		return nil, err
	}

	author, err := s.users.GetUserByID(ctx, authorID)
	if err != nil {
		return nil, err
	}
	owner, err := s.users.GetUserByID(ctx, sit.UserID)
	if err != nil {
		return nil, err
	}

	priorCommenters, err := s.comments.CommenterIDs(ctx, sitID)
	if err != nil {
		return nil, err
	}

	comment := &dbmysql.Comment{SitID: sitID, UserID: authorID, Body: body}
	if err := s.comments.Create(ctx, comment); err != nil {
		return nil, err
	}

	recipients := make(map[uint64]bool)
	recipients[owner.UserID] = true
	for _, id := range priorCommenters {
		recipients[id] = true
	}
	delete(recipients, authorID)

	for recipientID := range recipients {
		if _, err := s.notifier.Dispatch(ctx, common.NotificationEvent{
			Kind:          common.EventNewComment,
			RecipientID:   recipientID,
			InitiatorID:   authorID,
			InitiatorName: author.DisplayName(),
			ObjectID:      comment.ID,
			SitID:         sitID,
			SitOwnerID:    owner.UserID,
			SitOwnerName:  owner.DisplayName(),
		}); err != nil {
			log.Printf("comment notification for user %d failed: %v", recipientID, err)
		}
	}

	return comment, nil
}

// ListComments returns a sit's comments under the same access rules as
// the sit itself.
func (s *FeedService) ListComments(ctx context.Context, viewerID, sitID uint64) ([]dbmysql.Comment, error) {
	if _, err := s.GetSit(ctx, viewerID, sitID); err != nil {
		return nil, err
	}
	return s.comments.ListBySit(ctx, sitID)
}
