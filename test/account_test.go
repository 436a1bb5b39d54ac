//go:build integration_test || all_tests

package test

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/agpcoach/agp/internal/account"
	"github.com/agpcoach/agp/internal/profile"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (s *IntegrationTestSuite) TestSignupLoginLogout() {
	t := s.T()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	signupReq := fakeSignup(s.newAccessCode(1))
	resp := s.doRequest(ctx, "POST", "/a/signup", "", signupReq)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var signupResp account.TokenResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&signupResp))
	resp.Body.Close()

	var prof profile.Response
	s.getJSON(ctx, "/profile", signupResp.Token, &prof)
	assert.Equal(t, signupReq.FirstName, prof.FirstName)
	assert.Equal(t, 1, prof.Position.Day)
	assert.Equal(t, 1, prof.Position.Phase)

	resp = s.doRequest(ctx, "POST", "/a/login", "", account.LoginRequest{Email: signupReq.Email, Password: testPassword})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var loginResp account.TokenResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&loginResp))
	resp.Body.Close()
	assert.NotEqual(t, signupResp.Token, loginResp.Token)

	resp = s.doRequest(ctx, "POST", "/a/login", "", account.LoginRequest{Email: signupReq.Email, Password: "wrong-password"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	resp = s.doRequest(ctx, "GET", "/a/logout", loginResp.Token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	// logged out token no longer works, the signup session still does
	resp = s.doRequest(ctx, "GET", "/profile", loginResp.Token, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()
	resp = s.doRequest(ctx, "GET", "/profile", signupResp.Token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()
}

func (s *IntegrationTestSuite) TestSignup_AccessCodeRules() {
	t := s.T()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	code := s.newAccessCode(1)

	resp := s.doRequest(ctx, "POST", "/a/signup", "", fakeSignup(code))
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	// used up
	resp = s.doRequest(ctx, "POST", "/a/signup", "", fakeSignup(code))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	resp = s.doRequest(ctx, "POST", "/a/signup", "", fakeSignup("ABCD-EFGH"))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	var usedCount int
	require.NoError(t, s.DB.QueryRow(`SELECT used_count FROM access_code WHERE code = $1`, code).Scan(&usedCount))
	assert.Equal(t, 1, usedCount)
}

func (s *IntegrationTestSuite) TestSignup_EmailTaken() {
	t := s.T()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	code := s.newAccessCode(2)
	first := fakeSignup(code)
	resp := s.doRequest(ctx, "POST", "/a/signup", "", first)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	second := fakeSignup(code)
	second.Email = first.Email
	resp = s.doRequest(ctx, "POST", "/a/signup", "", second)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	resp.Body.Close()

	// failed signup does not consume the code
	var usedCount int
	require.NoError(t, s.DB.QueryRow(`SELECT used_count FROM access_code WHERE code = $1`, code).Scan(&usedCount))
	assert.Equal(t, 1, usedCount)
}
