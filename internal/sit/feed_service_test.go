package sit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/vickris/opensit/internal/common"
	"github.com/vickris/opensit/internal/dbmysql"
	"github.com/vickris/opensit/internal/user"
)

type feedFixture struct {
	svc      *FeedService
	users    *fakeUserRepo
	sits     *fakeSitRepo
	follows  *fakeFollowRepo
	grants   *fakeGrantRepo
	likes    *fakeLikeRepo
	comments *fakeCommentRepo
	notifier *fakeNotifier
}

func newFeedFixture(now time.Time) *feedFixture {
	users := newFakeUserRepo()
	clock := fixedClock{now: now}
	sits := newFakeSitRepo(users, clock.Now)
	follows := newFakeFollowRepo()
	grants := newFakeGrantRepo()
	likes := newFakeLikeRepo()
	comments := newFakeCommentRepo()
	notifier := &fakeNotifier{}
	resolver := user.NewPrivacyResolver(users, follows, grants)

	return &feedFixture{
		svc:      NewFeedService(sits, likes, comments, users, follows, resolver, notifier),
		users:    users,
		sits:     sits,
		follows:  follows,
		grants:   grants,
		likes:    likes,
		comments: comments,
		notifier: notifier,
	}
}

func (f *feedFixture) addUser(id uint64, name string, mode common.PrivacyMode) *dbmysql.User {
	return f.users.add(&dbmysql.User{UserID: id, Username: name, PrivacySetting: mode, DefaultSitLength: 30})
}

func (f *feedFixture) addSit(t *testing.T, ownerID uint64, body string, createdAt time.Time) *dbmysql.Sit {
	t.Helper()
	s := &dbmysql.Sit{UserID: ownerID, Body: body, Duration: 20, CreatedAt: createdAt}
	require.NoError(t, f.sits.Create(context.Background(), s))
	return s
}

func feedIDs(sits []dbmysql.Sit) []uint64 {
	ids := make([]uint64, 0, len(sits))
	for _, s := range sits {
		ids = append(ids, s.SitID)
	}
	return ids
}

func TestFeedService_OrderingAndStubs(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	f := newFeedFixture(now)
	ctx := context.Background()

	f.addUser(1, "owner", common.PrivacyPublic)
	f.addUser(2, "viewer", common.PrivacyPublic)
	f.follows.follow(2, 1)

	t3 := f.addSit(t, 1, "oldest", now.Add(-3*time.Hour))
	t1 := f.addSit(t, 1, "newest", now.Add(-1*time.Hour))
	t2 := f.addSit(t, 1, "middle", now.Add(-2*time.Hour))
	f.addSit(t, 1, "", now) // stub never reaches a feed

	feed, err := f.svc.Feed(ctx, 2)
	require.NoError(t, err)
	require.Equal(t, []uint64{t1.SitID, t2.SitID, t3.SitID}, feedIDs(feed))
}

func TestFeedService_AnonymousFeedIsPublicOnly(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	f := newFeedFixture(now)
	ctx := context.Background()

	f.addUser(1, "pub", common.PrivacyPublic)
	f.addUser(2, "priv", common.PrivacyPrivate)
	f.addUser(3, "foll", common.PrivacyFollowing)

	visible := f.addSit(t, 1, "public entry", now.Add(-time.Hour))
	f.addSit(t, 2, "private entry", now.Add(-time.Minute))
	f.addSit(t, 3, "followers entry", now.Add(-time.Minute))

	feed, err := f.svc.Feed(ctx, common.AnonymousUserID)
	require.NoError(t, err)
	require.Equal(t, []uint64{visible.SitID}, feedIDs(feed))
}

func TestFeedService_FeedVisibilityRules(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	f := newFeedFixture(now)
	ctx := context.Background()

	viewer := f.addUser(2, "viewer", common.PrivacyPublic)
	f.addUser(1, "pub", common.PrivacyPublic)
	f.addUser(3, "priv", common.PrivacyPrivate)
	f.addUser(4, "mutual", common.PrivacyFollowing)
	f.addUser(5, "granter", common.PrivacySelectedUsers)
	f.addUser(6, "oneway", common.PrivacyFollowing)

	// viewer follows 1, 3, 4 and 6; only 4 follows back
	f.follows.follow(2, 1)
	f.follows.follow(2, 3)
	f.follows.follow(2, 4)
	f.follows.follow(2, 6)
	f.follows.follow(4, 2)
	// 5 granted the viewer without any follow edge
	f.grants.grant(5, 2)

	own := f.addSit(t, viewer.UserID, "mine", now.Add(-1*time.Minute))
	pub := f.addSit(t, 1, "from pub", now.Add(-2*time.Minute))
	f.addSit(t, 3, "from priv", now.Add(-3*time.Minute))
	mutual := f.addSit(t, 4, "from mutual", now.Add(-4*time.Minute))
	granted := f.addSit(t, 5, "from granter", now.Add(-5*time.Minute))
	f.addSit(t, 6, "from oneway", now.Add(-6*time.Minute))

	feed, err := f.svc.Feed(ctx, viewer.UserID)
	require.NoError(t, err)
	require.Equal(t, []uint64{own.SitID, pub.SitID, mutual.SitID, granted.SitID}, feedIDs(feed))
}

func TestFeedService_PrivacyRoundTrip(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	f := newFeedFixture(now)
	ctx := context.Background()

	f.addUser(1, "owner", common.PrivacyPublic)
	f.addUser(2, "viewer", common.PrivacyPublic)
	f.follows.follow(2, 1)

	a := f.addSit(t, 1, "first", now.Add(-3*time.Hour))
	b := f.addSit(t, 1, "second", now.Add(-2*time.Hour))

	_, err := f.users.UpdatePrivacyMode(ctx, 1, common.PrivacyPrivate)
	require.NoError(t, err)

	feed, err := f.svc.Feed(ctx, 2)
	require.NoError(t, err)
	require.Empty(t, feed)

	// entries created while private carry the private marker too
	c := f.addSit(t, 1, "hidden at birth", now.Add(-1*time.Hour))
	require.True(t, f.sits.store[c.SitID].Private)

	_, err = f.users.UpdatePrivacyMode(ctx, 1, common.PrivacyPublic)
	require.NoError(t, err)

	feed, err = f.svc.Feed(ctx, 2)
	require.NoError(t, err)
	require.Equal(t, []uint64{c.SitID, b.SitID, a.SitID}, feedIDs(feed))
}

func TestFeedService_GetSit(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	f := newFeedFixture(now)
	ctx := context.Background()

	f.addUser(1, "owner", common.PrivacyPrivate)
	f.addUser(2, "stranger", common.PrivacyPublic)
	hidden := f.addSit(t, 1, "secret", now.Add(-time.Hour))

	t.Run("denial surfaces as not found", func(t *testing.T) {
		_, err := f.svc.GetSit(ctx, 2, hidden.SitID)
		require.Error(t, err)
		require.True(t, common.IsNotFound(err))
	})

	t.Run("owner reads without a view increment", func(t *testing.T) {
		got, err := f.svc.GetSit(ctx, 1, hidden.SitID)
		require.NoError(t, err)
		require.Equal(t, 0, got.Views)
	})

	t.Run("non-owner reads increment views", func(t *testing.T) {
		f.addUser(3, "author", common.PrivacyPublic)
		open := f.addSit(t, 3, "visible", now.Add(-time.Minute))

		got, err := f.svc.GetSit(ctx, 2, open.SitID)
		require.NoError(t, err)
		require.Equal(t, 1, got.Views)
		require.Equal(t, 1, f.sits.store[open.SitID].Views)
	})

	t.Run("stale marker is reported, not trusted", func(t *testing.T) {
		f.addUser(4, "drifted", common.PrivacyPublic)
		stale := f.addSit(t, 4, "marker out of date", now.Add(-time.Minute))

		s := f.sits.store[stale.SitID]
		s.Private = true
		f.sits.store[stale.SitID] = s

		_, err := f.svc.GetSit(ctx, 2, stale.SitID)
		require.Error(t, err)
		require.ErrorIs(t, err, common.ErrInconsistentState)

		// the repair pass restores agreement
		require.NoError(t, f.users.SweepVisibility(ctx, 4))
		got, err := f.svc.GetSit(ctx, 2, stale.SitID)
		require.NoError(t, err)
		require.False(t, got.Private)
	})
}

func TestFeedService_CreateSitDefaults(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	f := newFeedFixture(now)
	ctx := context.Background()

	f.addUser(1, "owner", common.PrivacyPublic)

	s, err := f.svc.CreateSit(ctx, 1, "", "sat quietly", 0)
	require.NoError(t, err)
	require.Equal(t, 30, s.Duration) // owner's default length

	s, err = f.svc.CreateSit(ctx, 1, "", "sat longer", 45)
	require.NoError(t, err)
	require.Equal(t, 45, s.Duration)

	require.Equal(t, 2, f.users.store[1].SitsCount)
}

func TestFeedService_OwnerOnlyMutations(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	f := newFeedFixture(now)
	ctx := context.Background()

	f.addUser(1, "owner", common.PrivacyPublic)
	f.addUser(2, "other", common.PrivacyPublic)
	s := f.addSit(t, 1, "mine", now.Add(-time.Hour))

	_, err := f.svc.UpdateSit(ctx, 2, s.SitID, "", "tampered", 0)
	require.True(t, common.IsNotFound(err))

	err = f.svc.DeleteSit(ctx, 2, s.SitID)
	require.True(t, common.IsNotFound(err))

	require.NoError(t, f.svc.DeleteSit(ctx, 1, s.SitID))
	require.Equal(t, 0, f.users.store[1].SitsCount)
}

func TestFeedService_LikeSit(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	f := newFeedFixture(now)
	ctx := context.Background()

	f.addUser(1, "owner", common.PrivacyPublic)
	f.addUser(2, "liker", common.PrivacyPublic)
	s := f.addSit(t, 1, "likeable", now.Add(-time.Hour))

	require.NoError(t, f.svc.LikeSit(ctx, 2, s.SitID))
	require.Len(t, f.notifier.events, 1)
	require.Equal(t, common.EventNewLikeOnSit, f.notifier.events[0].Kind)
	require.Equal(t, uint64(1), f.notifier.events[0].RecipientID)

	// liking twice neither duplicates the like nor re-notifies
	require.NoError(t, f.svc.LikeSit(ctx, 2, s.SitID))
	require.Len(t, f.notifier.events, 1)

	// owners liking their own sit stay silent
	require.NoError(t, f.svc.LikeSit(ctx, 1, s.SitID))
	require.Len(t, f.notifier.events, 1)
}

func TestFeedService_AddCommentFanout(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	f := newFeedFixture(now)
	ctx := context.Background()

	f.addUser(1, "owner", common.PrivacyPublic)
	f.addUser(2, "first_commenter", common.PrivacyPublic)
	f.addUser(3, "second_commenter", common.PrivacyPublic)
	s := f.addSit(t, 1, "discuss", now.Add(-time.Hour))

	recipients := func(from int) map[uint64]bool {
		out := map[uint64]bool{}
		for _, e := range f.notifier.events[from:] {
			out[e.RecipientID] = true
		}
		return out
	}

	// first comment notifies the owner only
	_, err := f.svc.AddComment(ctx, 2, s.SitID, "lovely")
	require.NoError(t, err)
	require.Equal(t, map[uint64]bool{1: true}, recipients(0))
	require.Equal(t, common.EventNewComment, f.notifier.events[0].Kind)

	// second commenter notifies the owner and the prior commenter
	mark := len(f.notifier.events)
	_, err = f.svc.AddComment(ctx, 3, s.SitID, "agreed")
	require.NoError(t, err)
	require.Equal(t, map[uint64]bool{1: true, 2: true}, recipients(mark))

	// the owner replying notifies both commenters but never themself
	mark = len(f.notifier.events)
	_, err = f.svc.AddComment(ctx, 1, s.SitID, "thanks both")
	require.NoError(t, err)
	require.Equal(t, map[uint64]bool{2: true, 3: true}, recipients(mark))

	// empty bodies never reach the store
	_, err = f.svc.AddComment(ctx, 2, s.SitID, "")
	require.True(t, common.IsValidation(err))
}
