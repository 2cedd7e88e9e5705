package payload

import "mingle/internal/core"

// Request fields are taken as-is. Absent fields decode to empty strings
// and are stored that way.
type SignupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s SignupRequest) ToMessage() core.SignupMessage {
	return core.SignupMessage{
		Username: s.Username,
		Email:    s.Email,
		Password: s.Password,
	}
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (l LoginRequest) ToMessage() core.LoginMessage {
	return core.LoginMessage{
		Username: l.Username,
		Password: l.Password,
	}
}
