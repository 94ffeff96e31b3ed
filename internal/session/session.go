// Package session holds the mock login flag. Any submitted form logs the user in.
package session

import "countrydex/internal/domain"

const (
	LoginNotice  = "Logged in successfully!"
	SignupNotice = "Signed up and logged in successfully!"
	LogoutNotice = "Logged out successfully!"
)

// Session tracks whether the user is logged in
type Session struct {
	state domain.SessionState
}

// New returns a logged out session
func New() *Session {
	return &Session{state: domain.LoggedOut}
}

// LogIn always succeeds, including when already logged in
func (s *Session) LogIn() string {
	s.state = domain.LoggedIn
	return LoginNotice
}

// SignUp behaves like LogIn with its own notice
func (s *Session) SignUp() string {
	s.state = domain.LoggedIn
	return SignupNotice
}

// LogOut returns the notice to show, or "" when already logged out
func (s *Session) LogOut() string {
	if s.state == domain.LoggedOut {
		return ""
	}
	s.state = domain.LoggedOut
	return LogoutNotice
}

func (s *Session) State() domain.SessionState { return s.state }

func (s *Session) LoggedIn() bool { return s.state == domain.LoggedIn }
