package service

import (
	"context"
	"log"
	"time"

	"darkparadise-rest-api/internal/model"
	"darkparadise-rest-api/internal/telemetry"
	"darkparadise-rest-api/pkg/apierror"
)

// recordTimeout bounds one best-effort sample write.
const recordTimeout = 5 * time.Second

// StatusFetcher queries one status URL. Implementations never fail; a
// broken upstream is reported as an unreachable result.
type StatusFetcher interface {
	Fetch(ctx context.Context, url string) model.StatusResult
}

// ServerService aggregates the status of the configured game servers.
type ServerService struct {
	servers  []model.GameServer
	fetcher  StatusFetcher
	recorder telemetry.Recorder
}

// NewServerService creates a server service. A nil recorder disables
// sample recording.
func NewServerService(servers []model.GameServer, fetcher StatusFetcher, recorder telemetry.Recorder) *ServerService {
	if recorder == nil {
		recorder = telemetry.Noop{}
	}
	return &ServerService{
		servers:  servers,
		fetcher:  fetcher,
		recorder: recorder,
	}
}

// ListServers fetches every configured server in configuration order and
// records one sample per server. Recording failures are logged only.
func (s *ServerService) ListServers(ctx context.Context) model.ServerSet {
	set := make(model.ServerSet, 0, len(s.servers))

	for _, gs := range s.servers {
		result := s.fetcher.Fetch(ctx, gs.StatusURL)
		set = append(set, model.NewServerView(gs, result))
		s.record(ctx, gs.Key, result)
	}

	return set
}

// GetServer fetches one server by key without recording a sample.
func (s *ServerService) GetServer(ctx context.Context, key string) (model.ServerView, error) {
	gs, ok := s.lookup(key)
	if !ok {
		return model.ServerView{}, apierror.NotFound("server not found")
	}

	return model.NewServerView(gs, s.fetcher.Fetch(ctx, gs.StatusURL)), nil
}

// Keys returns the configured server keys in order.
func (s *ServerService) Keys() []string {
	keys := make([]string, len(s.servers))
	for i, gs := range s.servers {
		keys[i] = gs.Key
	}
	return keys
}

func (s *ServerService) lookup(key string) (model.GameServer, bool) {
	for _, gs := range s.servers {
		if gs.Key == key {
			return gs, true
		}
	}
	return model.GameServer{}, false
}

// record writes a sample detached from the request's cancellation, so a
// client hanging up does not drop telemetry.
func (s *ServerService) record(ctx context.Context, key string, result model.StatusResult) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), recordTimeout)
	defer cancel()

	sample := model.ServerStatSample{
		ServerKey:    key,
		PlayersCount: result.Players(),
		IsOnline:     result.IsOnline(),
		RecordedAt:   time.Now().UTC(),
	}
	if err := s.recorder.Record(ctx, sample); err != nil {
		log.Printf("[ServerService] Failed to record stats for %s: %v", key, err)
	}
}
