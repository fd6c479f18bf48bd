package service

import (
	"context"
	"errors"

	"darkparadise-rest-api/internal/steam"
	"darkparadise-rest-api/pkg/apierror"
)

// NicknameResolver resolves a Steam id to a display name.
type NicknameResolver interface {
	Nickname(ctx context.Context, steamID string) (string, error)
}

// ProfileService looks up external game-platform profiles.
type ProfileService struct {
	resolver NicknameResolver
}

// NewProfileService creates a new profile service.
func NewProfileService(resolver NicknameResolver) *ProfileService {
	return &ProfileService{resolver: resolver}
}

// SteamNickname returns the nickname for steamID. A missing profile is a
// 404; any other upstream failure is a 500 carrying the cause.
func (s *ProfileService) SteamNickname(ctx context.Context, steamID string) (string, error) {
	if steamID == "" {
		return "", apierror.BadRequest("steam id is required")
	}

	name, err := s.resolver.Nickname(ctx, steamID)
	if errors.Is(err, steam.ErrProfileNotFound) {
		return "", apierror.NotFound("steam profile not found")
	}
	if err != nil {
		return "", apierror.InternalError("steam API error: " + err.Error())
	}
	return name, nil
}
