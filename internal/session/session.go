package session

import (
	"errors"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/crucial707/scheduler/internal/models"
)

// CookieName holds the signed session token.
const CookieName = "scheduler_session"

var ErrNoSession = errors.New("no valid session")

// Session is the server's record of who is signed in for the current client.
type Session struct {
	UserID   int
	Username string
}

// Manager issues and validates session cookies. The cookie value is an HS256
// JWT carrying user_id, username, and exp, so no session state is kept in the
// database.
type Manager struct {
	secret []byte
	ttl    time.Duration
}

func NewManager(secret []byte, ttl time.Duration) *Manager {
	return &Manager{secret: secret, ttl: ttl}
}

// Issue signs a token for the user and sets the session cookie.
func (m *Manager) Issue(w http.ResponseWriter, user *models.User) error {
	claims := jwt.MapClaims{
		"user_id":  user.ID,
		"username": user.Username,
		"exp":      time.Now().Add(m.ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    signed,
		Path:     "/",
		MaxAge:   int(m.ttl.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// Clear expires the session cookie unconditionally.
func (m *Manager) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{Name: CookieName, Value: "", Path: "/", MaxAge: -1, HttpOnly: true})
}

// FromRequest parses and validates the session cookie. Returns ErrNoSession
// for a missing, malformed, expired, or tampered cookie.
func (m *Manager) FromRequest(r *http.Request) (*Session, error) {
	cookie, err := r.Cookie(CookieName)
	if err != nil || cookie.Value == "" {
		return nil, ErrNoSession
	}

	token, err := jwt.Parse(cookie.Value, func(token *jwt.Token) (interface{}, error) {
		return m.secret, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil || !token.Valid {
		return nil, ErrNoSession
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrNoSession
	}

	userID, ok := claims["user_id"].(float64)
	if !ok {
		return nil, ErrNoSession
	}
	username, _ := claims["username"].(string)

	return &Session{UserID: int(userID), Username: username}, nil
}
