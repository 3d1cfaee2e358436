package server

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/vickris/opensit/internal/common"
	"github.com/vickris/opensit/internal/notif"
	"github.com/vickris/opensit/internal/sit"
	"github.com/vickris/opensit/internal/user"
)

// Server wires the domain services to the HTTP surface.
type Server struct {
	users      user.UserService
	feed       *sit.FeedService
	stats      *sit.StatsService
	dispatcher *notif.Dispatcher
}

func New(users user.UserService, feed *sit.FeedService, stats *sit.StatsService, dispatcher *notif.Dispatcher) *Server {
	return &Server{
		users:      users,
		feed:       feed,
		stats:      stats,
		dispatcher: dispatcher,
	}
}

// Router builds the route table. Guest-readable routes take optional auth;
// everything else requires a token.
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)
	r.HandleFunc("/register", s.handleRegister).Methods(http.MethodPost)
	r.HandleFunc("/login", s.handleLogin).Methods(http.MethodPost)

	public := r.NewRoute().Subrouter()
	public.Use(common.OptionalAuthMiddleware)
	public.HandleFunc("/feed", s.handleFeed).Methods(http.MethodGet)
	public.HandleFunc("/sits/{id:[0-9]+}", s.handleGetSit).Methods(http.MethodGet)
	public.HandleFunc("/sits/{id:[0-9]+}/comments", s.handleListComments).Methods(http.MethodGet)
	public.HandleFunc("/users/{id:[0-9]+}/sits", s.handleListUserSits).Methods(http.MethodGet)
	public.HandleFunc("/users/newest", s.handleNewestUsers).Methods(http.MethodGet)
	public.HandleFunc("/users/active", s.handleActiveUsers).Methods(http.MethodGet)

	auth := r.NewRoute().Subrouter()
	auth.Use(common.AuthMiddleware)

	auth.HandleFunc("/me", s.handleGetProfile).Methods(http.MethodGet)
	auth.HandleFunc("/me", s.handleUpdateProfile).Methods(http.MethodPut)
	auth.HandleFunc("/me/privacy", s.handleSetPrivacyMode).Methods(http.MethodPut)
	auth.HandleFunc("/me/privacy/repair", s.handleRepairVisibility).Methods(http.MethodPost)
	auth.HandleFunc("/me/selected-users", s.handleReplaceSelectedUsers).Methods(http.MethodPut)
	auth.HandleFunc("/me/selected-users", s.handleSelectedUsers).Methods(http.MethodGet)

	auth.HandleFunc("/sits", s.handleCreateSit).Methods(http.MethodPost)
	auth.HandleFunc("/sits/{id:[0-9]+}", s.handleUpdateSit).Methods(http.MethodPut)
	auth.HandleFunc("/sits/{id:[0-9]+}", s.handleDeleteSit).Methods(http.MethodDelete)
	auth.HandleFunc("/sits/{id:[0-9]+}/like", s.handleLikeSit).Methods(http.MethodPost)
	auth.HandleFunc("/sits/{id:[0-9]+}/like", s.handleUnlikeSit).Methods(http.MethodDelete)
	auth.HandleFunc("/sits/{id:[0-9]+}/favourite", s.handleFavouriteSit).Methods(http.MethodPost)
	auth.HandleFunc("/sits/{id:[0-9]+}/favourite", s.handleUnfavouriteSit).Methods(http.MethodDelete)
	auth.HandleFunc("/sits/{id:[0-9]+}/comments", s.handleAddComment).Methods(http.MethodPost)
	auth.HandleFunc("/me/favourites", s.handleFavouriteSits).Methods(http.MethodGet)

	auth.HandleFunc("/users/{id:[0-9]+}/follow", s.handleFollow).Methods(http.MethodPost)
	auth.HandleFunc("/users/{id:[0-9]+}/follow", s.handleUnfollow).Methods(http.MethodDelete)
	auth.HandleFunc("/users/suggestions", s.handleSuggestions).Methods(http.MethodGet)

	auth.HandleFunc("/me/stats/streak", s.handleStreak).Methods(http.MethodGet)
	auth.HandleFunc("/me/stats/month", s.handleMonthlyStats).Methods(http.MethodGet)
	auth.HandleFunc("/me/stats/journal", s.handleJournalRange).Methods(http.MethodGet)
	auth.HandleFunc("/me/stats/hours", s.handleTotalHours).Methods(http.MethodGet)

	auth.HandleFunc("/me/notifications", s.handleNotifications).Methods(http.MethodGet)
	auth.HandleFunc("/me/notifications/read", s.handleMarkAllRead).Methods(http.MethodPost)
	auth.HandleFunc("/me/notifications/unread-count", s.handleUnreadCount).Methods(http.MethodGet)

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy", "service": "opensit"})
}
