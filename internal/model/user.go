package model

import "time"

// User is a site account linked to a Discord identity.
type User struct {
	ID            int64     `json:"id"`
	DiscordID     string    `json:"discord_id"`
	Username      string    `json:"username"`
	Discriminator *string   `json:"discriminator,omitempty"`
	Avatar        *string   `json:"avatar,omitempty"`
	SteamID       *string   `json:"steam_id,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
