package common

import (
	"context"
	"time"
)

// Clock abstracts "now" so streak and date-bucket computations are testable
// without the wall clock.
type Clock interface {
	Now() time.Time
}

// SystemClock is the production Clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// Mailer is the outbound mail collaborator. Delivery and formatting live
// outside this core; the signup pipeline only fires it.
type Mailer interface {
	SendWelcomeEmail(ctx context.Context, to, username string) error
}

// Likeable is implemented by anything that can be the target of a like.
type Likeable interface {
	LikeableType() string
	LikeableID() uint64
}
