package service

import (
	"testing"

	"github.com/oliverisaac/pinboard/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateUserAndAuthenticate(t *testing.T) {
	f := newFixture(t)

	user, err := f.svc.CreateUser(f.ctx, "  carol ", "correct horse")
	require.NoError(t, err)
	assert.Equal(t, "carol", user.Username)
	assert.NotEqual(t, "correct horse", user.Password)

	got, err := f.svc.Authenticate(f.ctx, "carol", "correct horse")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)

	fetched, err := f.svc.GetUser(f.ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "carol", fetched.Username)
}

func TestCreateUser_Validation(t *testing.T) {
	f := newFixture(t)

	cases := []struct {
		username, password, field string
	}{
		{"", "long enough", "username"},
		{"has space", "long enough", "username"},
		{"dave", "short", "password"},
		{"alice", "long enough", "username"},
	}
	for _, tc := range cases {
		_, err := f.svc.CreateUser(f.ctx, tc.username, tc.password)
		var verr *types.ValidationError
		require.ErrorAs(t, err, &verr, "username %q", tc.username)
		assert.Equal(t, tc.field, verr.Field)
	}
}

func TestAuthenticate_FailuresLookAlike(t *testing.T) {
	f := newFixture(t)

	_, wrongPassword := f.svc.Authenticate(f.ctx, "alice", "nope")
	_, unknownUser := f.svc.Authenticate(f.ctx, "mallory", "nope")
	require.Error(t, wrongPassword)
	require.Error(t, unknownUser)
	assert.Equal(t, wrongPassword.Error(), unknownUser.Error())
}

func TestGetUser_Missing(t *testing.T) {
	f := newFixture(t)
	_, err := f.svc.GetUser(f.ctx, 4242)
	assert.ErrorIs(t, err, types.ErrNotFound)
}
