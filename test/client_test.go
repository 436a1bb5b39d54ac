//go:build integration_test || all_tests

package test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/agpcoach/agp/internal/account"
	"github.com/agpcoach/agp/internal/accesscodes"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/require"
)

const testPassword = "camomile-tea-42"

// newAccessCode inserts a fresh code straight into the db.
func (s *IntegrationTestSuite) newAccessCode(maxUses int) string {
	code, err := accesscodes.Generate()
	require.NoError(s.T(), err)
	_, err = s.DB.Exec(
		`INSERT INTO access_code (code, max_uses, used_count, created_at) VALUES ($1, $2, 0, $3);`,
		code, maxUses, time.Now(),
	)
	require.NoError(s.T(), err)
	return code
}

func fakeSignup(code string) account.SignupRequest {
	return account.SignupRequest{
		Email:      strings.ToLower(gofakeit.Email()),
		Password:   testPassword,
		AccessCode: code,
		FirstName:  gofakeit.FirstName(),
	}
}

// signup creates a new account and returns its session token.
func (s *IntegrationTestSuite) signup(ctx context.Context) string {
	resp := s.doRequest(ctx, "POST", "/a/signup", "", fakeSignup(s.newAccessCode(1)))
	defer resp.Body.Close()
	require.Equal(s.T(), http.StatusCreated, resp.StatusCode)

	var tokenResp account.TokenResponse
	require.NoError(s.T(), json.NewDecoder(resp.Body).Decode(&tokenResp))
	require.NotEmpty(s.T(), tokenResp.Token)
	return tokenResp.Token
}

func (s *IntegrationTestSuite) doRequest(ctx context.Context, method, path, token string, body any) *http.Response {
	var reqBody io.Reader
	if body != nil {
		bodyBytes, err := json.Marshal(body)
		require.NoError(s.T(), err)
		reqBody = bytes.NewBuffer(bodyBytes)
	}

	req, err := http.NewRequestWithContext(ctx, method, fmt.Sprintf("%s%s", serverEndpoint, path), reqBody)
	require.NoError(s.T(), err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := s.httpClient.Do(req)
	require.NoError(s.T(), err)
	return resp
}

func (s *IntegrationTestSuite) getJSON(ctx context.Context, path, token string, target any) {
	resp := s.doRequest(ctx, "GET", path, token, nil)
	defer resp.Body.Close()
	require.Equal(s.T(), http.StatusOK, resp.StatusCode, path)
	require.NoError(s.T(), json.NewDecoder(resp.Body).Decode(target))
}
