package api

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"net/http"

	"github.com/gorilla/sessions"
)

const (
	sessionName  = "mathmentor_learner"
	learnerIDKey = "learner_id"

	learnerCookieMaxAge = 30 * 24 * 60 * 60 // seconds
)

type contextKey int

const learnerCtxKey contextKey = iota

// Identity assigns each browser an anonymous learner ID in a signed
// cookie. This is identity, not authentication: the ID only keys the
// learner's own progress rows.
type Identity struct {
	store *sessions.CookieStore
}

// NewIdentity creates the cookie-backed identity layer. An empty
// secret gets a random one, invalidating existing cookies on restart.
func NewIdentity(secret string, secure bool) *Identity {
	key := []byte(secret)
	if len(key) == 0 {
		key = make([]byte, 32)
		rand.Read(key)
	}

	cs := sessions.NewCookieStore(key)
	cs.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   learnerCookieMaxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   secure,
	}
	return &Identity{store: cs}
}

// Middleware establishes the learner ID for every request, minting one
// on first contact.
func (i *Identity) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// A decode error (stale or tampered cookie) yields a fresh
		// session, which is the right recovery here.
		sess, _ := i.store.Get(r, sessionName)

		id, ok := sess.Values[learnerIDKey].(string)
		if !ok || id == "" {
			id = newLearnerID()
			sess.Values[learnerIDKey] = id
			if err := sess.Save(r, w); err != nil {
				Error(w, http.StatusInternalServerError, "failed to establish learner identity")
				return
			}
		}

		ctx := context.WithValue(r.Context(), learnerCtxKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// LearnerID extracts the learner ID from the request context.
func LearnerID(ctx context.Context) string {
	if v, ok := ctx.Value(learnerCtxKey).(string); ok {
		return v
	}
	return ""
}

func newLearnerID() string {
	buf := make([]byte, 16)
	rand.Read(buf)
	return "anon_" + hex.EncodeToString(buf)
}
