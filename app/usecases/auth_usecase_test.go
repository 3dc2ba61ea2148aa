package usecases

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginReturnsSecretAsToken(t *testing.T) {
	u := NewAuthUsecase("hotel-admin-2024")

	token, err := u.Login("hotel-admin-2024")
	require.NoError(t, err)
	assert.Equal(t, "hotel-admin-2024", token)
}

func TestLoginWrongPassword(t *testing.T) {
	u := NewAuthUsecase("hotel-admin-2024")

	_, err := u.Login("guess")
	var ucErr *UseCaseError
	require.ErrorAs(t, err, &ucErr)
	assert.Equal(t, http.StatusUnauthorized, ucErr.Code)
}

func TestLoginDisabledWithoutSecret(t *testing.T) {
	u := NewAuthUsecase("")

	_, err := u.Login("")
	assert.Error(t, err)
}
