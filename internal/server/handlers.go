package server

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/vickris/opensit/internal/common"
	"github.com/vickris/opensit/internal/dbmysql"
)

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type authResponse struct {
	Token  string `json:"token"`
	UserID uint64 `json:"user_id"`
}

type profileResponse struct {
	UserID         uint64             `json:"user_id"`
	Username       string             `json:"username"`
	DisplayName    string             `json:"display_name"`
	Email          string             `json:"email,omitempty"`
	City           string             `json:"city,omitempty"`
	Country        string             `json:"country,omitempty"`
	PrivacySetting common.PrivacyMode `json:"privacy_setting"`
	SitsCount      int                `json:"sits_count"`
}

type updateProfileRequest struct {
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	City      string `json:"city"`
	Country   string `json:"country"`
}

type sitRequest struct {
	Title    string `json:"title"`
	Body     string `json:"body"`
	Duration int    `json:"duration"`
}

type commentRequest struct {
	Body string `json:"body"`
}

type privacyRequest struct {
	Mode common.PrivacyMode `json:"mode"`
}

type selectedUsersRequest struct {
	UserIDs []uint64 `json:"user_ids"`
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if !decodeBody(w, r, &req) {
		return
	}
	user, token, err := s.users.RegisterUser(r.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, authResponse{Token: token, UserID: user.UserID})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !decodeBody(w, r, &req) {
		return
	}
	user, token, err := s.users.LoginUser(r.Context(), req.Username, req.Password)
	if err != nil {
		// invalid credentials never reveal which part was wrong
		http.Error(w, "invalid username or password", http.StatusUnauthorized)
		return
	}
	writeJSON(w, http.StatusOK, authResponse{Token: token, UserID: user.UserID})
}

func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	user, err := s.users.GetProfile(r.Context(), common.UserIDFromContext(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}
	profile := toProfile(user)
	profile.Email = user.Email // own profile only
	writeJSON(w, http.StatusOK, profile)
}

func (s *Server) handleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req updateProfileRequest
	if !decodeBody(w, r, &req) {
		return
	}
	err := s.users.UpdateProfile(r.Context(), common.UserIDFromContext(r.Context()),
		req.Email, req.FirstName, req.LastName, req.City, req.Country)
	if err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleSetPrivacyMode(w http.ResponseWriter, r *http.Request) {
	var req privacyRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := s.users.SetPrivacyMode(r.Context(), common.UserIDFromContext(r.Context()), req.Mode); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleRepairVisibility(w http.ResponseWriter, r *http.Request) {
	if err := s.users.RepairVisibility(r.Context(), common.UserIDFromContext(r.Context())); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleReplaceSelectedUsers(w http.ResponseWriter, r *http.Request) {
	var req selectedUsersRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := s.users.ReplaceSelectedUsers(r.Context(), common.UserIDFromContext(r.Context()), req.UserIDs); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleSelectedUsers(w http.ResponseWriter, r *http.Request) {
	ids, err := s.users.SelectedUsers(r.Context(), common.UserIDFromContext(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string][]uint64{"user_ids": ids})
}

func (s *Server) handleFeed(w http.ResponseWriter, r *http.Request) {
	sits, err := s.feed.Feed(r.Context(), common.UserIDFromContext(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sits)
}

func (s *Server) handleGetSit(w http.ResponseWriter, r *http.Request) {
	sit, err := s.feed.GetSit(r.Context(), common.UserIDFromContext(r.Context()), pathID(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sit)
}

func (s *Server) handleListUserSits(w http.ResponseWriter, r *http.Request) {
	sits, err := s.feed.ListUserSits(r.Context(), common.UserIDFromContext(r.Context()), pathID(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sits)
}

func (s *Server) handleCreateSit(w http.ResponseWriter, r *http.Request) {
	var req sitRequest
	if !decodeBody(w, r, &req) {
		return
	}
	sit, err := s.feed.CreateSit(r.Context(), common.UserIDFromContext(r.Context()), req.Title, req.Body, req.Duration)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, sit)
}

func (s *Server) handleUpdateSit(w http.ResponseWriter, r *http.Request) {
	var req sitRequest
	if !decodeBody(w, r, &req) {
		return
	}
	sit, err := s.feed.UpdateSit(r.Context(), common.UserIDFromContext(r.Context()), pathID(r), req.Title, req.Body, req.Duration)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sit)
}

func (s *Server) handleDeleteSit(w http.ResponseWriter, r *http.Request) {
	if err := s.feed.DeleteSit(r.Context(), common.UserIDFromContext(r.Context()), pathID(r)); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleLikeSit(w http.ResponseWriter, r *http.Request) {
	if err := s.feed.LikeSit(r.Context(), common.UserIDFromContext(r.Context()), pathID(r)); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleUnlikeSit(w http.ResponseWriter, r *http.Request) {
	if err := s.feed.UnlikeSit(r.Context(), common.UserIDFromContext(r.Context()), pathID(r)); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleFavouriteSit(w http.ResponseWriter, r *http.Request) {
	if err := s.feed.FavouriteSit(r.Context(), common.UserIDFromContext(r.Context()), pathID(r)); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleUnfavouriteSit(w http.ResponseWriter, r *http.Request) {
	if err := s.feed.UnfavouriteSit(r.Context(), common.UserIDFromContext(r.Context()), pathID(r)); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleFavouriteSits(w http.ResponseWriter, r *http.Request) {
	sits, err := s.feed.FavouriteSits(r.Context(), common.UserIDFromContext(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sits)
}

func (s *Server) handleAddComment(w http.ResponseWriter, r *http.Request) {
	var req commentRequest
	if !decodeBody(w, r, &req) {
		return
	}
	comment, err := s.feed.AddComment(r.Context(), common.UserIDFromContext(r.Context()), pathID(r), req.Body)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, comment)
}

func (s *Server) handleListComments(w http.ResponseWriter, r *http.Request) {
	comments, err := s.feed.ListComments(r.Context(), common.UserIDFromContext(r.Context()), pathID(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, comments)
}

func (s *Server) handleFollow(w http.ResponseWriter, r *http.Request) {
	if err := s.users.Follow(r.Context(), common.UserIDFromContext(r.Context()), pathID(r)); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleUnfollow(w http.ResponseWriter, r *http.Request) {
	if err := s.users.Unfollow(r.Context(), common.UserIDFromContext(r.Context()), pathID(r)); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleSuggestions(w http.ResponseWriter, r *http.Request) {
	users, err := s.users.UsersToFollow(r.Context(), common.UserIDFromContext(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toProfiles(users))
}

func (s *Server) handleNewestUsers(w http.ResponseWriter, r *http.Request) {
	count, _ := strconv.Atoi(r.URL.Query().Get("count"))
	users, err := s.users.NewestUsers(r.Context(), count)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toProfiles(users))
}

func (s *Server) handleActiveUsers(w http.ResponseWriter, r *http.Request) {
	users, err := s.users.ActiveUsers(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toProfiles(users))
}

func (s *Server) handleStreak(w http.ResponseWriter, r *http.Request) {
	streak, err := s.stats.Streak(r.Context(), common.UserIDFromContext(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"streak": streak})
}

func (s *Server) handleMonthlyStats(w http.ResponseWriter, r *http.Request) {
	now := time.Now()
	year, _ := strconv.Atoi(r.URL.Query().Get("year"))
	month, _ := strconv.Atoi(r.URL.Query().Get("month"))
	if year == 0 {
		year = now.Year()
	}
	if month < 1 || month > 12 {
		month = int(now.Month())
	}
	stats, err := s.stats.MonthlyStats(r.Context(), common.UserIDFromContext(r.Context()), year, time.Month(month))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (s *Server) handleJournalRange(w http.ResponseWriter, r *http.Request) {
	months, err := s.stats.JournalRange(r.Context(), common.UserIDFromContext(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, months)
}

func (s *Server) handleTotalHours(w http.ResponseWriter, r *http.Request) {
	hours, err := s.stats.TotalHoursSat(r.Context(), common.UserIDFromContext(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"hours": hours})
}

func (s *Server) handleNotifications(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	notifications, err := s.dispatcher.List(r.Context(), common.UserIDFromContext(r.Context()), page)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, notifications)
}

func (s *Server) handleMarkAllRead(w http.ResponseWriter, r *http.Request) {
	if err := s.dispatcher.MarkAllRead(r.Context(), common.UserIDFromContext(r.Context())); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleUnreadCount(w http.ResponseWriter, r *http.Request) {
	count, err := s.dispatcher.UnreadCount(r.Context(), common.UserIDFromContext(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int64{"unread": count})
}

func toProfile(u *dbmysql.User) profileResponse {
	return profileResponse{
		UserID:         u.UserID,
		Username:       u.Username,
		DisplayName:    u.DisplayName(),
		City:           u.City,
		Country:        u.Country,
		PrivacySetting: u.PrivacySetting,
		SitsCount:      u.SitsCount,
	}
}

func toProfiles(users []*dbmysql.User) []profileResponse {
	out := make([]profileResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toProfile(u))
	}
	return out
}

func pathID(r *http.Request) uint64 {
	id, _ := strconv.ParseUint(mux.Vars(r)["id"], 10, 64)
	return id
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case common.IsNotFound(err):
		http.Error(w, err.Error(), http.StatusNotFound)
	case common.IsValidation(err):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
