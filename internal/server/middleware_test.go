package server_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mathildetho/taskade/internal/auth"
	"github.com/mathildetho/taskade/internal/server"
	"github.com/mathildetho/taskade/internal/store/models"
	"github.com/mathildetho/taskade/internal/testutil"
)

const testSecret = "test-secret"

// capture runs the Authenticate middleware and records the user the
// downstream handler observed.
func capture(t *testing.T, fs *testutil.FakeStore, header string) *models.User {
	t.Helper()

	var seen *models.User
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = auth.UserFrom(r.Context())
	})

	req := httptest.NewRequest(http.MethodPost, "/graphql", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	server.Authenticate(fs, testSecret, next).ServeHTTP(httptest.NewRecorder(), req)
	return seen
}

func TestAuthenticate_ValidToken(t *testing.T) {
	fs := testutil.NewFakeStore()
	user := fs.SeedUser("A", "a@x.com", "hash")
	token, err := auth.IssueToken(testSecret, user.ID.Hex())
	require.NoError(t, err)

	seen := capture(t, fs, token)
	require.NotNil(t, seen)
	assert.Equal(t, user.ID, seen.ID)
}

func TestAuthenticate_BearerPrefixStripped(t *testing.T) {
	fs := testutil.NewFakeStore()
	user := fs.SeedUser("A", "a@x.com", "hash")
	token, err := auth.IssueToken(testSecret, user.ID.Hex())
	require.NoError(t, err)

	seen := capture(t, fs, "Bearer "+token)
	require.NotNil(t, seen)
	assert.Equal(t, user.ID, seen.ID)
}

func TestAuthenticate_Anonymous(t *testing.T) {
	fs := testutil.NewFakeStore()
	user := fs.SeedUser("A", "a@x.com", "hash")

	wrongSecret, err := auth.IssueToken("other-secret", user.ID.Hex())
	require.NoError(t, err)

	// Token for a user that no longer exists.
	gone, err := auth.IssueToken(testSecret, "64b0c3f0a6e1d2b3c4d5e6f7")
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
	}{
		{name: "no header", header: ""},
		{name: "garbage token", header: "not.a.jwt"},
		{name: "wrong secret", header: wrongSecret},
		{name: "deleted user", header: gone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Nil(t, capture(t, fs, tt.header))
		})
	}
}
