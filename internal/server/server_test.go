package server_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mathildetho/taskade/internal/config"
	"github.com/mathildetho/taskade/internal/server"
	"github.com/mathildetho/taskade/internal/testutil"
)

type gqlResponse struct {
	Data   map[string]json.RawMessage `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

func post(t *testing.T, url, token, query string) gqlResponse {
	t.Helper()

	body, err := json.Marshal(map[string]string{"query": query})
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", token)
	}

	res, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer res.Body.Close()

	var out gqlResponse
	require.NoError(t, json.NewDecoder(res.Body).Decode(&out))
	return out
}

// Full request path: sign up over HTTP, reuse the returned token on a
// protected query.
func TestServer_EndToEnd(t *testing.T) {
	fs := testutil.NewFakeStore()
	cfg := &config.Config{}
	cfg.Auth.Secret = "test-secret"

	srv, err := server.New(cfg, fs)
	require.NoError(t, err)

	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()
	url := ts.URL + "/graphql"

	res := post(t, url, "", `mutation {
		signUp(input: {email: "a@x.com", password: "pw", name: "A"}) { token }
	}`)
	require.Empty(t, res.Errors)

	var signUp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(res.Data["signUp"], &signUp))
	require.NotEmpty(t, signUp.Token)

	// Anonymous protected query fails.
	res = post(t, url, "", `{ myTaskLists { id } }`)
	require.NotEmpty(t, res.Errors)
	assert.Contains(t, res.Errors[0].Message, "not authenticated")

	// Same query with the issued token succeeds.
	res = post(t, url, signUp.Token, `mutation { createTaskList(title: "Groceries") { title } }`)
	require.Empty(t, res.Errors)

	res = post(t, url, signUp.Token, `{ myTaskLists { title } }`)
	require.Empty(t, res.Errors)

	var lists []struct {
		Title string `json:"title"`
	}
	require.NoError(t, json.Unmarshal(res.Data["myTaskLists"], &lists))
	require.Len(t, lists, 1)
	assert.Equal(t, "Groceries", lists[0].Title)
}
