package session

import "time"

// Status is a point-in-time view of the session.
type Status struct {
	LoggedIn  bool          // An unexpired token is held
	HasToken  bool          // A token is held, expired or not
	Expired   bool          // The held token has expired but was never cleared
	Subject   string        // Username of the held token
	ExpiresAt time.Time     // Zero when no token is held
	Remaining time.Duration // Validity left, zero when expired or logged out
}

// Status reports the session state without changing it. Unlike IsLoggedIn it
// distinguishes an expired token from no token at all.
func (m *Manager) Status() Status {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.current == nil {
		return Status{}
	}

	now := m.nowFunc()
	expired := m.current.IsExpiredAt(now)
	return Status{
		LoggedIn:  !expired,
		HasToken:  true,
		Expired:   expired,
		Subject:   m.current.Subject,
		ExpiresAt: m.current.ExpiresAt(),
		Remaining: m.current.RemainingAt(now),
	}
}
