package model

import (
	"bytes"
	"encoding/json"
	"time"
)

// GameServer is the static description of one configured game server.
type GameServer struct {
	Key         string
	Name        string
	Description string
	StatusURL   string
	MaxPlayers  int
	ServerType  string
}

// StatusSample is a successful observation of a game server.
type StatusSample struct {
	Players     int
	// MaxPlayers is the capacity the server reports. Views show the
	// configured capacity instead.
	MaxPlayers  int
	LastUpdated time.Time
}

// StatusResult is either a reachable sample or an unreachable reason.
// The zero value is unreachable with an empty reason; build results with
// Reachable or Unreachable.
type StatusResult struct {
	sample *StatusSample
	reason string
}

// Reachable wraps a successful sample.
func Reachable(s StatusSample) StatusResult {
	return StatusResult{sample: &s}
}

// Unreachable records why a server could not be observed.
func Unreachable(reason string) StatusResult {
	return StatusResult{reason: reason}
}

// Sample returns the observation and true when the server was reachable.
func (r StatusResult) Sample() (StatusSample, bool) {
	if r.sample == nil {
		return StatusSample{}, false
	}
	return *r.sample, true
}

// IsOnline reports whether the server answered with a usable status.
func (r StatusResult) IsOnline() bool {
	return r.sample != nil
}

// Players is the observed player count, 0 when unreachable.
func (r StatusResult) Players() int {
	if r.sample == nil {
		return 0
	}
	return r.sample.Players
}

// Reason is the diagnostic for an unreachable result.
func (r StatusResult) Reason() string {
	return r.reason
}

// ServerView is the merged public shape of one server.
type ServerView struct {
	Key         string     `json:"-"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	ServerType  string     `json:"server_type"`
	MaxPlayers  int        `json:"max_players"`
	Players     int        `json:"players"`
	IsOnline    bool       `json:"is_online"`
	LastUpdated *time.Time `json:"last_updated,omitempty"`
	Error       string     `json:"error,omitempty"`
}

// NewServerView merges static metadata with a fetched status.
// Name, description, type and max_players always come from the configuration,
// so a server reads the same online and offline. The reported capacity in the
// sample is not shown.
func NewServerView(gs GameServer, r StatusResult) ServerView {
	v := ServerView{
		Key:         gs.Key,
		Name:        gs.Name,
		Description: gs.Description,
		ServerType:  gs.ServerType,
		MaxPlayers:  gs.MaxPlayers,
	}

	if s, ok := r.Sample(); ok {
		updated := s.LastUpdated
		v.Players = s.Players
		v.IsOnline = true
		v.LastUpdated = &updated
	} else {
		v.Error = r.Reason()
	}
	return v
}

// ServerSet is a list of views that encodes as a JSON object keyed by
// server key, in list order.
type ServerSet []ServerView

// MarshalJSON implements json.Marshaler.
func (s ServerSet) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, v := range s {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(v.Key)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(v)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Keys returns the server keys in order.
func (s ServerSet) Keys() []string {
	keys := make([]string, len(s))
	for i, v := range s {
		keys[i] = v.Key
	}
	return keys
}
