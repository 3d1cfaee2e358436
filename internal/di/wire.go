//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"

	"github.com/vickris/opensit/internal/dbmysql"
	"github.com/vickris/opensit/internal/notif"
	"github.com/vickris/opensit/internal/server"
	"github.com/vickris/opensit/internal/sit"
	"github.com/vickris/opensit/internal/user"
)

func InitializeApplication() (*Application, error) {
	wire.Build(
		ProvideConfig,
		ProvideClock,
		ProvideMailer,
		ProvideNotificationConfig,
		dbmysql.NewMySQL,

		user.NewUserRepository,
		user.NewFollowRepository,
		user.NewAuthorisedUserRepository,
		user.NewPrivacyResolver,
		sit.NewSitRepository,
		sit.NewLikeRepository,
		sit.NewCommentRepository,
		notif.NewNotificationRepository,

		notif.NewDispatcher,
		wire.Bind(new(user.Notifier), new(*notif.Dispatcher)),
		wire.Bind(new(sit.Notifier), new(*notif.Dispatcher)),

		ProvideUserService,
		sit.NewFeedService,
		sit.NewStatsService,

		server.New,
		wire.Struct(new(Application), "*"),
	)
	return &Application{}, nil
}
