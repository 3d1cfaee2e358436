package notif

import (
	"context"
	"fmt"

	"github.com/vickris/opensit/internal/common"
	"github.com/vickris/opensit/internal/config"
	"github.com/vickris/opensit/internal/dbmysql"
)

// Dispatcher converts domain events into persisted notification rows.
// Events it does not recognize, and events that would notify their own
// initiator, produce no row and no error.
type Dispatcher struct {
	repo NotificationRepository
	cnf  config.NotificationConfig
}

func NewDispatcher(repo NotificationRepository, cnf config.NotificationConfig) *Dispatcher {
	return &Dispatcher{repo: repo, cnf: cnf}
}

func (d *Dispatcher) Dispatch(ctx context.Context, event common.NotificationEvent) (*dbmysql.Notification, error) {
	if !d.cnf.Enabled {
		return nil, nil
	}
	if event.InitiatorID == event.RecipientID {
		return nil, nil
	}

	var n *dbmysql.Notification
	switch event.Kind {
	case common.EventNewComment:
		n = d.newComment(event)
	case common.EventNewFollower:
		n = d.newFollower(event)
	case common.EventNewLikeOnSit:
		n = d.newLikeOnSit(event)
	default:
		return nil, nil
	}

	if n.UserID == 0 {
		return nil, &common.ValidationError{Field: "recipient", Reason: "missing"}
	}
	if n.Message == "" {
		return nil, &common.ValidationError{Field: "message", Reason: "empty"}
	}

	if err := d.repo.Create(ctx, n); err != nil {
		return nil, err
	}
	return n, nil
}

// newComment picks the message variant by the recipient's relationship to
// the sit: the owner hears "your sit", prior commenters hear whose sit it
// was.
func (d *Dispatcher) newComment(event common.NotificationEvent) *dbmysql.Notification {
	var message string
	switch {
	case event.RecipientID == event.SitOwnerID:
		message = fmt.Sprintf("%s commented on your sit.", event.InitiatorName)
	case event.InitiatorID == event.SitOwnerID:
		message = fmt.Sprintf("%s also commented on their own sit.", event.InitiatorName)
	default:
		message = fmt.Sprintf("%s also commented on %s's sit.", event.InitiatorName, event.SitOwnerName)
	}

	return &dbmysql.Notification{
		UserID:     event.RecipientID,
		Message:    message,
		Link:       fmt.Sprintf("/sits/%d#comment-%d", event.SitID, event.ObjectID),
		Initiator:  event.InitiatorID,
		ObjectType: common.ObjectTypeComment,
		ObjectID:   event.ObjectID,
	}
}

func (d *Dispatcher) newFollower(event common.NotificationEvent) *dbmysql.Notification {
	return &dbmysql.Notification{
		UserID:     event.RecipientID,
		Message:    fmt.Sprintf("%s is now following you!", event.InitiatorName),
		Link:       fmt.Sprintf("/u/%s", event.InitiatorUsername),
		Initiator:  event.InitiatorID,
		ObjectType: common.ObjectTypeFollow,
		ObjectID:   event.ObjectID,
	}
}

func (d *Dispatcher) newLikeOnSit(event common.NotificationEvent) *dbmysql.Notification {
	return &dbmysql.Notification{
		UserID:     event.RecipientID,
		Message:    fmt.Sprintf("%s likes your entry.", event.InitiatorName),
		Link:       fmt.Sprintf("/sits/%d", event.SitID),
		Initiator:  event.InitiatorID,
		ObjectType: common.ObjectTypeLike,
		ObjectID:   event.ObjectID,
	}
}

// List returns a page of the recipient's notifications, newest first.
func (d *Dispatcher) List(ctx context.Context, userID uint64, page int) ([]dbmysql.Notification, error) {
	pageSize := d.cnf.PageSize
	if pageSize <= 0 {
		pageSize = 10
	}
	if page < 1 {
		page = 1
	}
	return d.repo.ByUser(ctx, userID, pageSize, (page-1)*pageSize)
}

func (d *Dispatcher) UnreadCount(ctx context.Context, userID uint64) (int64, error) {
	return d.repo.UnreadCount(ctx, userID)
}

// MarkAllRead snapshots the unread ids first, so rows created after the
// snapshot stay unread.
func (d *Dispatcher) MarkAllRead(ctx context.Context, userID uint64) error {
	ids, err := d.repo.UnreadIDs(ctx, userID)
	if err != nil {
		return err
	}
	return d.repo.MarkViewed(ctx, ids)
}
