package common

// PrivacyMode governs the default visibility of all of a user's sits.
type PrivacyMode string

const (
	PrivacyPublic        PrivacyMode = "public"
	PrivacyFollowing     PrivacyMode = "following"
	PrivacySelectedUsers PrivacyMode = "selected_users"
	PrivacyPrivate       PrivacyMode = "private"
)

// EventKind identifies a domain event handed to the notification dispatcher.
type EventKind string

const (
	EventNewComment   EventKind = "NewComment"
	EventNewFollower  EventKind = "NewFollower"
	EventNewLikeOnSit EventKind = "NewLikeOnSit"
)

// Notification object types as persisted on the notification row.
const (
	ObjectTypeComment = "comment"
	ObjectTypeFollow  = "follow"
	ObjectTypeLike    = "like"
)

// AnonymousUserID is the viewer id used for guest (unauthenticated) reads.
const AnonymousUserID uint64 = 0

// NotificationEvent carries everything the dispatcher needs to compose and
// persist a notification. Fields irrelevant to a given Kind stay zero.
type NotificationEvent struct {
	Kind        EventKind
	RecipientID uint64
	InitiatorID uint64

	// InitiatorName is the display name used in message text;
	// InitiatorUsername builds profile links.
	InitiatorName     string
	InitiatorUsername string

	// ObjectID is the id of the comment/relationship/like the event is about.
	ObjectID uint64

	SitID        uint64
	SitOwnerID   uint64
	SitOwnerName string
}
