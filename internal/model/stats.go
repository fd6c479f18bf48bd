package model

import "time"

// ServerStatSample is one persisted observation of a game server.
// Samples are append-only.
type ServerStatSample struct {
	ID           int64     `json:"id"`
	ServerKey    string    `json:"server_key"`
	PlayersCount int       `json:"players_count"`
	IsOnline     bool      `json:"is_online"`
	RecordedAt   time.Time `json:"recorded_at"`
}
