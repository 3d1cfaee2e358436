package sit

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/vickris/opensit/internal/common"
	"github.com/vickris/opensit/internal/dbmysql"
)

// ---- In-memory fakes for repositories ----

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }

type fakeUserRepo struct {
	store map[uint64]*dbmysql.User
	sits  *fakeSitRepo
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{store: map[uint64]*dbmysql.User{}}
}

func (r *fakeUserRepo) add(u *dbmysql.User) *dbmysql.User {
	r.store[u.UserID] = u
	return u
}

func (r *fakeUserRepo) CreateUser(_ context.Context, u *dbmysql.User) error {
	r.store[u.UserID] = u
	return nil
}

func (r *fakeUserRepo) GetUserByID(_ context.Context, id uint64) (*dbmysql.User, error) {
	u, ok := r.store[id]
	if !ok {
		return nil, &common.NotFoundError{Resource: "user", ID: id}
	}
	uu := *u
	return &uu, nil
}

func (r *fakeUserRepo) GetUserByUsername(_ context.Context, username string) (*dbmysql.User, error) {
	for _, u := range r.store {
		if u.Username == username {
			uu := *u
			return &uu, nil
		}
	}
	return nil, &common.NotFoundError{Resource: "user", ID: 0}
}

func (r *fakeUserRepo) UpdateUser(_ context.Context, u *dbmysql.User) error {
	r.store[u.UserID] = u
	return nil
}

func (r *fakeUserRepo) CheckUserExists(_ context.Context, username string) (bool, error) {
	for _, u := range r.store {
		if u.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeUserRepo) GetUsersByIDs(_ context.Context, ids []uint64) ([]*dbmysql.User, error) {
	var out []*dbmysql.User
	for _, id := range ids {
		if u, ok := r.store[id]; ok {
			uu := *u
			out = append(out, &uu)
		}
	}
	return out, nil
}

func (r *fakeUserRepo) IDsWithPrivacyMode(_ context.Context, ids []uint64, mode common.PrivacyMode) ([]uint64, error) {
	var out []uint64
	for _, id := range ids {
		if u, ok := r.store[id]; ok && u.PrivacySetting == mode {
			out = append(out, id)
		}
	}
	return out, nil
}

func (r *fakeUserRepo) PublicUserIDs(_ context.Context) ([]uint64, error) {
	var out []uint64
	for id, u := range r.store {
		if u.PrivacySetting == common.PrivacyPublic {
			out = append(out, id)
		}
	}
	return out, nil
}

func (r *fakeUserRepo) NewestUsers(_ context.Context, count int) ([]*dbmysql.User, error) {
	return nil, nil
}

func (r *fakeUserRepo) ActiveUsers(_ context.Context) ([]*dbmysql.User, error) {
	return nil, nil
}

func (r *fakeUserRepo) UpdatePrivacyMode(_ context.Context, userID uint64, mode common.PrivacyMode) (common.PrivacyMode, error) {
	u, ok := r.store[userID]
	if !ok {
		return "", &common.NotFoundError{Resource: "user", ID: userID}
	}
	oldMode := u.PrivacySetting
	u.PrivacySetting = mode

	if mode == common.PrivacyPrivate || oldMode == common.PrivacyPrivate {
		r.sits.sweep(userID, mode == common.PrivacyPrivate)
	}
	return oldMode, nil
}

func (r *fakeUserRepo) SweepVisibility(_ context.Context, ownerID uint64) error {
	u, ok := r.store[ownerID]
	if !ok {
		return &common.NotFoundError{Resource: "user", ID: ownerID}
	}
	r.sits.sweep(ownerID, u.PrivacySetting == common.PrivacyPrivate)
	return nil
}

type fakeSitRepo struct {
	store map[uint64]dbmysql.Sit
	next  uint64
	users *fakeUserRepo
	now   func() time.Time
}

func newFakeSitRepo(users *fakeUserRepo, now func() time.Time) *fakeSitRepo {
	r := &fakeSitRepo{store: map[uint64]dbmysql.Sit{}, next: 1, users: users, now: now}
	users.sits = r
	return r
}

func (r *fakeSitRepo) sweep(ownerID uint64, private bool) {
	for id, s := range r.store {
		if s.UserID == ownerID {
			s.Private = private
			r.store[id] = s
		}
	}
}

func (r *fakeSitRepo) Create(_ context.Context, s *dbmysql.Sit) error {
	owner, ok := r.users.store[s.UserID]
	if !ok {
		return &common.NotFoundError{Resource: "user", ID: s.UserID}
	}
	s.SitID = r.next
	r.next++
	s.Private = owner.PrivacySetting == common.PrivacyPrivate
	if s.CreatedAt.IsZero() {
		s.CreatedAt = r.now()
	}
	owner.SitsCount++
	r.store[s.SitID] = *s
	return nil
}

func (r *fakeSitRepo) GetByID(_ context.Context, id uint64) (*dbmysql.Sit, error) {
	s, ok := r.store[id]
	if !ok {
		return nil, &common.NotFoundError{Resource: "sit", ID: id}
	}
	ss := s
	return &ss, nil
}

func (r *fakeSitRepo) Update(_ context.Context, s *dbmysql.Sit) error {
	r.store[s.SitID] = *s
	return nil
}

func (r *fakeSitRepo) Delete(_ context.Context, id uint64) error {
	s, ok := r.store[id]
	if !ok {
		return &common.NotFoundError{Resource: "sit", ID: id}
	}
	if owner, ok := r.users.store[s.UserID]; ok && owner.SitsCount > 0 {
		owner.SitsCount--
	}
	delete(r.store, id)
	return nil
}

func (r *fakeSitRepo) byUser(userID uint64) []dbmysql.Sit {
	var out []dbmysql.Sit
	for _, s := range r.store {
		if s.UserID == userID {
			out = append(out, s)
		}
	}
	sortNewestFirst(out)
	return out
}

func (r *fakeSitRepo) ListByUser(_ context.Context, userID uint64) ([]dbmysql.Sit, error) {
	return r.byUser(userID), nil
}

func (r *fakeSitRepo) LatestByUser(_ context.Context, userID uint64) (*dbmysql.Sit, error) {
	sits := r.byUser(userID)
	if len(sits) == 0 {
		return nil, &common.NotFoundError{Resource: "sit", ID: 0}
	}
	return &sits[0], nil
}

func (r *fakeSitRepo) FeedByOwners(_ context.Context, ownerIDs []uint64) ([]dbmysql.Sit, error) {
	owners := make(map[uint64]bool, len(ownerIDs))
	for _, id := range ownerIDs {
		owners[id] = true
	}
	var out []dbmysql.Sit
	for _, s := range r.store {
		if owners[s.UserID] && s.Body != "" && !s.Private {
			out = append(out, s)
		}
	}
	sortNewestFirst(out)
	return out, nil
}

func (r *fakeSitRepo) ListInRange(_ context.Context, userID uint64, from, to time.Time) ([]dbmysql.Sit, error) {
	var out []dbmysql.Sit
	for _, s := range r.store {
		if s.UserID == userID && !s.CreatedAt.Before(from) && s.CreatedAt.Before(to) {
			out = append(out, s)
		}
	}
	sortNewestFirst(out)
	return out, nil
}

func (r *fakeSitRepo) TimestampsDesc(_ context.Context, userID uint64) ([]time.Time, error) {
	sits := r.byUser(userID)
	stamps := make([]time.Time, 0, len(sits))
	for _, s := range sits {
		stamps = append(stamps, s.CreatedAt)
	}
	return stamps, nil
}

func (r *fakeSitRepo) CountByMonth(_ context.Context, userID uint64, year int, month time.Month) (int, error) {
	count := 0
	for _, s := range r.store {
		if s.UserID == userID && s.CreatedAt.Year() == year && s.CreatedAt.Month() == month {
			count++
		}
	}
	return count, nil
}

func (r *fakeSitRepo) CountByYear(_ context.Context, userID uint64, year int) (int, error) {
	count := 0
	for _, s := range r.store {
		if s.UserID == userID && s.CreatedAt.Year() == year {
			count++
		}
	}
	return count, nil
}

func (r *fakeSitRepo) SumDurationInRange(_ context.Context, userID uint64, from, to time.Time) (int, error) {
	total := 0
	for _, s := range r.store {
		if s.UserID == userID && !s.CreatedAt.Before(from) && s.CreatedAt.Before(to) {
			total += s.Duration
		}
	}
	return total, nil
}

func (r *fakeSitRepo) TotalDuration(_ context.Context, userID uint64) (int, error) {
	total := 0
	for _, s := range r.store {
		if s.UserID == userID {
			total += s.Duration
		}
	}
	return total, nil
}

func (r *fakeSitRepo) FirstSitTime(_ context.Context, userID uint64) (time.Time, error) {
	sits := r.byUser(userID)
	if len(sits) == 0 {
		return time.Time{}, &common.NotFoundError{Resource: "sit", ID: 0}
	}
	return sits[len(sits)-1].CreatedAt, nil
}

func (r *fakeSitRepo) IncrementViews(_ context.Context, id uint64) error {
	s, ok := r.store[id]
	if !ok {
		return &common.NotFoundError{Resource: "sit", ID: id}
	}
	s.Views++
	r.store[id] = s
	return nil
}

func sortNewestFirst(sits []dbmysql.Sit) {
	sort.Slice(sits, func(i, j int) bool {
		if !sits[i].CreatedAt.Equal(sits[j].CreatedAt) {
			return sits[i].CreatedAt.After(sits[j].CreatedAt)
		}
		return sits[i].SitID > sits[j].SitID
	})
}

type edge struct {
	follower, followed uint64
}

type fakeFollowRepo struct {
	edges map[edge]bool
}

func newFakeFollowRepo() *fakeFollowRepo {
	return &fakeFollowRepo{edges: map[edge]bool{}}
}

func (r *fakeFollowRepo) follow(follower, followed uint64) {
	r.edges[edge{follower, followed}] = true
}

func (r *fakeFollowRepo) Create(_ context.Context, followerID, followedID uint64) (*dbmysql.Relationship, error) {
	r.edges[edge{followerID, followedID}] = true
	return &dbmysql.Relationship{FollowerID: followerID, FollowedID: followedID}, nil
}

func (r *fakeFollowRepo) Delete(_ context.Context, followerID, followedID uint64) error {
	e := edge{followerID, followedID}
	if !r.edges[e] {
		return &common.NotFoundError{Resource: "relationship", ID: followedID}
	}
	delete(r.edges, e)
	return nil
}

func (r *fakeFollowRepo) Exists(_ context.Context, followerID, followedID uint64) (bool, error) {
	return r.edges[edge{followerID, followedID}], nil
}

func (r *fakeFollowRepo) FollowedIDs(_ context.Context, userID uint64) ([]uint64, error) {
	var out []uint64
	for e := range r.edges {
		if e.follower == userID {
			out = append(out, e.followed)
		}
	}
	return out, nil
}

func (r *fakeFollowRepo) FollowerIDs(_ context.Context, userID uint64) ([]uint64, error) {
	var out []uint64
	for e := range r.edges {
		if e.followed == userID {
			out = append(out, e.follower)
		}
	}
	return out, nil
}

func (r *fakeFollowRepo) SuggestionCandidates(_ context.Context, followerIDs []uint64, minShared int) ([]uint64, error) {
	counts := map[uint64]int{}
	for _, follower := range followerIDs {
		for e := range r.edges {
			if e.follower == follower {
				counts[e.followed]++
			}
		}
	}
	var out []uint64
	for id, n := range counts {
		if n >= minShared {
			out = append(out, id)
		}
	}
	return out, nil
}

type fakeGrantRepo struct {
	grants map[edge]bool // owner -> granted
}

func newFakeGrantRepo() *fakeGrantRepo {
	return &fakeGrantRepo{grants: map[edge]bool{}}
}

func (r *fakeGrantRepo) grant(ownerID, grantedID uint64) {
	r.grants[edge{ownerID, grantedID}] = true
}

func (r *fakeGrantRepo) Replace(_ context.Context, ownerID uint64, grantedIDs []uint64) error {
	for e := range r.grants {
		if e.follower == ownerID {
			delete(r.grants, e)
		}
	}
	for _, id := range grantedIDs {
		r.grants[edge{ownerID, id}] = true
	}
	return nil
}

func (r *fakeGrantRepo) Exists(_ context.Context, ownerID, grantedID uint64) (bool, error) {
	return r.grants[edge{ownerID, grantedID}], nil
}

func (r *fakeGrantRepo) GrantedIDs(_ context.Context, ownerID uint64) ([]uint64, error) {
	var out []uint64
	for e := range r.grants {
		if e.follower == ownerID {
			out = append(out, e.followed)
		}
	}
	return out, nil
}

func (r *fakeGrantRepo) GranterIDs(_ context.Context, grantedID uint64) ([]uint64, error) {
	var out []uint64
	for e := range r.grants {
		if e.followed == grantedID {
			out = append(out, e.follower)
		}
	}
	return out, nil
}

type fakeLikeRepo struct {
	likes map[string]bool
	favs  map[string]bool
	next  uint64
}

func newFakeLikeRepo() *fakeLikeRepo {
	return &fakeLikeRepo{likes: map[string]bool{}, favs: map[string]bool{}, next: 1}
}

func likeKey(userID uint64, target common.Likeable) string {
	return fmt.Sprintf("%d/%s/%d", userID, target.LikeableType(), target.LikeableID())
}

func (r *fakeLikeRepo) CreateLike(_ context.Context, userID uint64, target common.Likeable) (*dbmysql.Like, error) {
	r.likes[likeKey(userID, target)] = true
	like := &dbmysql.Like{ID: r.next, UserID: userID, LikeableType: target.LikeableType(), LikeableID: target.LikeableID()}
	r.next++
	return like, nil
}

func (r *fakeLikeRepo) DeleteLike(_ context.Context, userID uint64, target common.Likeable) error {
	k := likeKey(userID, target)
	if !r.likes[k] {
		return &common.NotFoundError{Resource: "like", ID: target.LikeableID()}
	}
	delete(r.likes, k)
	return nil
}

func (r *fakeLikeRepo) HasLike(_ context.Context, userID uint64, target common.Likeable) (bool, error) {
	return r.likes[likeKey(userID, target)], nil
}

func (r *fakeLikeRepo) CreateFavourite(_ context.Context, userID uint64, target common.Likeable) error {
	r.favs[likeKey(userID, target)] = true
	return nil
}

func (r *fakeLikeRepo) DeleteFavourite(_ context.Context, userID uint64, target common.Likeable) error {
	k := likeKey(userID, target)
	if !r.favs[k] {
		return &common.NotFoundError{Resource: "favourite", ID: target.LikeableID()}
	}
	delete(r.favs, k)
	return nil
}

func (r *fakeLikeRepo) HasFavourite(_ context.Context, userID uint64, target common.Likeable) (bool, error) {
	return r.favs[likeKey(userID, target)], nil
}

func (r *fakeLikeRepo) FavouriteSitIDs(_ context.Context, userID uint64) ([]uint64, error) {
	return nil, nil
}

type fakeCommentRepo struct {
	store map[uint64]dbmysql.Comment
	next  uint64
}

func newFakeCommentRepo() *fakeCommentRepo {
	return &fakeCommentRepo{store: map[uint64]dbmysql.Comment{}, next: 1}
}

func (r *fakeCommentRepo) Create(_ context.Context, c *dbmysql.Comment) error {
	c.ID = r.next
	r.next++
	r.store[c.ID] = *c
	return nil
}

func (r *fakeCommentRepo) GetByID(_ context.Context, id uint64) (*dbmysql.Comment, error) {
	c, ok := r.store[id]
	if !ok {
		return nil, &common.NotFoundError{Resource: "comment", ID: id}
	}
	cc := c
	return &cc, nil
}

func (r *fakeCommentRepo) ListBySit(_ context.Context, sitID uint64) ([]dbmysql.Comment, error) {
	var out []dbmysql.Comment
	for _, c := range r.store {
		if c.SitID == sitID {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeCommentRepo) CommenterIDs(_ context.Context, sitID uint64) ([]uint64, error) {
	seen := map[uint64]bool{}
	var out []uint64
	for _, c := range r.store {
		if c.SitID == sitID && !seen[c.UserID] {
			seen[c.UserID] = true
			out = append(out, c.UserID)
		}
	}
	return out, nil
}

func (r *fakeCommentRepo) Delete(_ context.Context, id uint64) error {
	if _, ok := r.store[id]; !ok {
		return &common.NotFoundError{Resource: "comment", ID: id}
	}
	delete(r.store, id)
	return nil
}

type fakeNotifier struct {
	events []common.NotificationEvent
}

func (n *fakeNotifier) Dispatch(_ context.Context, event common.NotificationEvent) (*dbmysql.Notification, error) {
	n.events = append(n.events, event)
	return &dbmysql.Notification{UserID: event.RecipientID}, nil
}
