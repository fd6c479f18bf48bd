package service

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"darkparadise-rest-api/internal/steam"
	"darkparadise-rest-api/pkg/apierror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeResolver struct {
	name string
	err  error
}

func (f fakeResolver) Nickname(context.Context, string) (string, error) { return f.name, f.err }

func TestProfileService_SteamNickname(t *testing.T) {
	tests := []struct {
		name     string
		id       string
		resolver fakeResolver
		want     string
		status   int
	}{
		{"found", "7656", fakeResolver{name: "Dr. Bright"}, "Dr. Bright", 0},
		{"no profile", "7656", fakeResolver{err: steam.ErrProfileNotFound}, "", http.StatusNotFound},
		{"upstream error", "7656", fakeResolver{err: errors.New("HTTP 403")}, "", http.StatusInternalServerError},
		{"empty id", "", fakeResolver{name: "x"}, "", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewProfileService(tt.resolver).SteamNickname(context.Background(), tt.id)
			if tt.status == 0 {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
				return
			}

			apiErr, ok := apierror.As(err)
			require.True(t, ok)
			assert.Equal(t, tt.status, apiErr.StatusCode)
			assert.NotEmpty(t, apiErr.Message)
		})
	}
}

func TestProfileService_UpstreamMessageIsKept(t *testing.T) {
	_, err := NewProfileService(fakeResolver{err: errors.New("unexpected status: HTTP 429")}).SteamNickname(context.Background(), "1")
	assert.ErrorContains(t, err, "HTTP 429")
}
