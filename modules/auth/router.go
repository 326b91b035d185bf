package auth

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/dmitrymomot/invoicekit/pkg/logger"
	"github.com/dmitrymomot/invoicekit/pkg/session"
)

// SessionKeyUserID is the session mapping key that carries the
// authenticated user's document id.
const SessionKeyUserID = "user_id"

// Router mounts the authentication endpoints on a fresh chi router:
//
//	POST /login   verify credentials, rotate the session id, bind the user
//	POST /logout  drop the session
//	GET  /me      return the authenticated user
//
// The surrounding stack must install the session middleware first; the
// handlers reach the session only through its request context and public
// mapping API.
//
// Example:
//
//	r := chi.NewRouter()
//	r.Use(manager.Middleware)
//	r.Mount("/auth", auth.Router(svc))
func Router(svc *Service) chi.Router {
	r := chi.NewRouter()
	r.Post("/login", svc.handleLogin)
	r.Post("/logout", svc.handleLogout)
	r.Get("/me", svc.handleMe)
	return r
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type userResponse struct {
	ID           string `json:"id"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	BusinessName string `json:"business_name"`
	GSTNumber    string `json:"gst_number,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Service) handleLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	user, err := s.Authenticate(ctx, req.Email, req.Password)
	switch {
	case errors.Is(err, ErrAccountNotApproved):
		writeJSON(w, http.StatusForbidden, errorResponse{Error: "account is pending approval"})
		return
	case err != nil:
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "invalid credentials"})
		return
	}

	sess, ok := session.FromContext(ctx)
	if !ok {
		s.log.ErrorContext(ctx, "session middleware not installed", logger.Component("auth"))
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
		return
	}

	// Rotate the identifier at the privilege boundary before binding the
	// user to the session.
	if err := s.sessions.Renew(sess); err != nil {
		s.log.ErrorContext(ctx, "session renew failed",
			logger.Error(err),
			logger.Component("auth"),
		)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
		return
	}
	sess.Set(SessionKeyUserID, user.ID)

	s.log.InfoContext(ctx, "user logged in",
		logger.UserID(user.ID.Hex()),
		logger.SessionID(sess.ID),
		logger.Component("auth"),
	)

	writeJSON(w, http.StatusOK, toUserResponse(user))
}

func (s *Service) handleLogout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	sess, ok := session.FromContext(ctx)
	if !ok {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	if _, authenticated := sess.Get(SessionKeyUserID); authenticated {
		s.log.InfoContext(ctx, "user logged out",
			logger.SessionID(sess.ID),
			logger.Component("auth"),
		)
	}

	// Emptying the mapping makes the save that follows this handler drop
	// the record and expire the cookie.
	sess.Clear()
	w.WriteHeader(http.StatusNoContent)
}

func (s *Service) handleMe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	sess, ok := session.FromContext(ctx)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "unauthorized"})
		return
	}

	ref, ok := sess.Get(SessionKeyUserID)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "unauthorized"})
		return
	}

	id, ok := ref.(bson.ObjectID)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "unauthorized"})
		return
	}

	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		// The session may outlive the account it references.
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "unauthorized"})
		return
	}

	writeJSON(w, http.StatusOK, toUserResponse(user))
}

func toUserResponse(u *User) userResponse {
	return userResponse{
		ID:           u.ID.Hex(),
		Username:     u.Username,
		Email:        u.Email,
		BusinessName: u.BusinessName,
		GSTNumber:    u.GSTNumber,
	}
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
