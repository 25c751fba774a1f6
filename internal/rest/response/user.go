package response

import "github.com/Guyuepp/Go-Clean-Architecture-Forum/domain"

// DateTimeFormat is how timestamps are rendered in responses.
const DateTimeFormat = domain.TimeLayout

type RegisteredUser struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Fullname  string `json:"fullname"`
	CreatedAt string `json:"created_at"`
}

func NewRegisteredUserFromDomain(u *domain.User) RegisteredUser {
	return RegisteredUser{
		ID:        u.ID,
		Username:  u.Username,
		Fullname:  u.Fullname,
		CreatedAt: u.CreatedAt.UTC().Format(DateTimeFormat),
	}
}

type Token struct {
	AccessToken string `json:"access_token"`
}
