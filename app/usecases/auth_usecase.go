package usecases

import (
	"net/http"
)

// AuthUsecase checks the admin password against the single process-wide
// secret. There are no per-admin accounts: the token handed back on a
// successful login is the secret itself, which the dashboard then replays in
// the Authorization header.
type AuthUsecase interface {
	Login(password string) (string, error)
}

type authUsecase struct {
	adminSecret string
}

func NewAuthUsecase(adminSecret string) AuthUsecase {
	return &authUsecase{adminSecret: adminSecret}
}

func (u *authUsecase) Login(password string) (string, error) {
	if u.adminSecret == "" || password != u.adminSecret {
		return "", &UseCaseError{Code: http.StatusUnauthorized, Message: "invalid password"}
	}
	return u.adminSecret, nil
}
