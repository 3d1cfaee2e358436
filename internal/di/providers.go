package di

import (
	"context"
	"log"

	"gorm.io/gorm"

	"github.com/vickris/opensit/internal/common"
	"github.com/vickris/opensit/internal/config"
	"github.com/vickris/opensit/internal/notif"
	"github.com/vickris/opensit/internal/server"
	"github.com/vickris/opensit/internal/user"
)

// Application bundles everything a cmd binary needs.
type Application struct {
	Config *config.Config
	DB     *gorm.DB
	Server *server.Server
}

func ProvideConfig() *config.Config {
	return config.Load()
}

func ProvideClock() common.Clock {
	return common.SystemClock{}
}

func ProvideNotificationConfig(cfg *config.Config) config.NotificationConfig {
	return cfg.Notification
}

// ProvideUserService assembles the signup hook pipeline before handing the
// service its collaborators.
func ProvideUserService(
	userRepo user.UserRepository,
	followRepo user.FollowRepository,
	grantRepo user.AuthorisedUserRepository,
	dispatcher *notif.Dispatcher,
	mailer common.Mailer,
	cfg *config.Config,
) user.UserService {
	hooks := user.DefaultSignupHooks(followRepo, mailer, cfg.Platform)
	return user.NewUserService(userRepo, followRepo, grantRepo, dispatcher, cfg.Platform, hooks...)
}

func ProvideMailer() common.Mailer {
	return &LogMailer{}
}

// LogMailer stands in for real delivery; outbound mail formatting lives
// outside this service.
type LogMailer struct{}

func (m *LogMailer) SendWelcomeEmail(_ context.Context, to, username string) error {
	log.Printf("welcome mail queued for %s <%s>", username, to)
	return nil
}
