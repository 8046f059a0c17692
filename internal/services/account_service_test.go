package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"tripplanner/internal/models/request_models"
	"tripplanner/pkg/utils"
)

func TestRegisterAndLogin(t *testing.T) {
	e := newEnv(t)
	id := e.register("Ana@Example.com")

	_, err := e.accounts.Register(ctx, request_models.SignUpRequest{Email: "ana@example.com", Password: "another one"})
	assert.ErrorIs(t, err, utils.ErrEmailAlreadyExists)

	login, err := e.accounts.Login(ctx, request_models.LoginRequest{Email: "ana@example.com", Password: "correct horse"})
	require.NoError(t, err)
	assert.NotEmpty(t, login.Token)
	assert.Equal(t, id.String(), login.Account.ID)

	_, err = e.accounts.Login(ctx, request_models.LoginRequest{Email: "ana@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, utils.ErrInvalidCredentials)
	_, err = e.accounts.Login(ctx, request_models.LoginRequest{Email: "nobody@example.com", Password: "correct horse"})
	assert.ErrorIs(t, err, utils.ErrInvalidCredentials)

	me, err := e.accounts.Me(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", me.Email)

	_, err = e.accounts.Me(ctx, uuid.New())
	assert.ErrorIs(t, err, utils.ErrAccountNotFound)
}
