package apiclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/ncobase/boardfront/logging/logger"
	"github.com/ncobase/boardfront/logging/observes"
	"github.com/ncobase/boardfront/net/cookie"
	"github.com/ncobase/boardfront/structs"
	"go.opentelemetry.io/otel/codes"
)

// RefreshPath is the upstream token refresh endpoint.
const RefreshPath = "/auth/refresh"

var (
	// ErrNoRefreshToken is returned when the store holds no refresh token.
	ErrNoRefreshToken = errors.New("no refresh token")
	// ErrRefreshRejected is returned when the upstream refuses or garbles the refresh.
	ErrRefreshRejected = errors.New("refresh rejected")
)

type refreshBody struct {
	RefreshToken string `json:"refresh_token"`
}

// Refresh exchanges the stored refresh token for a new pair and persists it.
// It makes at most one upstream call and never retries.
func (c *Client) Refresh(ctx context.Context, store cookie.TokenStore) (*structs.TokenPair, error) {
	refreshToken := store.Tokens().RefreshToken
	if refreshToken == "" {
		return nil, ErrNoRefreshToken
	}

	ctx, span := observes.StartSpan(ctx, "apiclient.Refresh")
	defer span.End()

	pair, err := c.exchange(ctx, refreshToken)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		logger.Infof(ctx, "token refresh failed: %v", err)
		return nil, err
	}

	store.SetAccessToken(pair.AccessToken)
	store.SetRefreshToken(pair.RefreshToken)
	return &pair, nil
}

// exchange performs the refresh call, shared between concurrent callers
// holding the same refresh token when dedup is enabled.
func (c *Client) exchange(ctx context.Context, refreshToken string) (structs.TokenPair, error) {
	if !c.dedup {
		return c.refreshOnce(ctx, refreshToken)
	}
	v, err, shared := c.group.Do(refreshToken, func() (any, error) {
		return c.refreshOnce(ctx, refreshToken)
	})
	if shared {
		logger.Debugf(ctx, "token refresh shared with a concurrent request")
	}
	if err != nil {
		return structs.TokenPair{}, err
	}
	return v.(structs.TokenPair), nil
}

func (c *Client) refreshOnce(ctx context.Context, refreshToken string) (structs.TokenPair, error) {
	body, err := json.Marshal(refreshBody{RefreshToken: refreshToken})
	if err != nil {
		return structs.TokenPair{}, fmt.Errorf("encode refresh body: %w", err)
	}

	res, err := c.send(ctx, Request{Method: http.MethodPost, Path: RefreshPath}, body, "")
	if err != nil {
		return structs.TokenPair{}, fmt.Errorf("%w: %v", ErrRefreshRejected, err)
	}
	if !res.ok() {
		return structs.TokenPair{}, fmt.Errorf("%w: status %d", ErrRefreshRejected, res.status)
	}

	var pair structs.TokenPair
	if err := json.Unmarshal(res.body, &pair); err != nil {
		return structs.TokenPair{}, fmt.Errorf("%w: decode body: %v", ErrRefreshRejected, err)
	}
	if !pair.Complete() {
		return structs.TokenPair{}, fmt.Errorf("%w: incomplete token pair", ErrRefreshRejected)
	}
	return pair, nil
}
