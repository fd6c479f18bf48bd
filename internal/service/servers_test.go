package service

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"darkparadise-rest-api/internal/model"
	"darkparadise-rest-api/pkg/apierror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testServers = []model.GameServer{
	{Key: "server1", Name: "Dark Paradise | Vanilla", Description: "vanilla", StatusURL: "http://status/1", MaxPlayers: 25, ServerType: "vanilla"},
	{Key: "server2", Name: "Dark Paradise | Only Events", Description: "events", StatusURL: "http://status/2", MaxPlayers: 30, ServerType: "events"},
}

// fakeFetcher answers by URL and records the call order.
type fakeFetcher struct {
	results map[string]model.StatusResult
	calls   []string
}

func (f *fakeFetcher) Fetch(_ context.Context, url string) model.StatusResult {
	f.calls = append(f.calls, url)
	if r, ok := f.results[url]; ok {
		return r
	}
	return model.Unreachable("no route")
}

type fakeRecorder struct {
	samples []model.ServerStatSample
	err     error
}

func (f *fakeRecorder) Record(_ context.Context, s model.ServerStatSample) error {
	f.samples = append(f.samples, s)
	return f.err
}

func mixedFetcher() *fakeFetcher {
	return &fakeFetcher{results: map[string]model.StatusResult{
		"http://status/1": model.Reachable(model.StatusSample{Players: 12, MaxPlayers: 25, LastUpdated: time.Now()}),
		"http://status/2": model.Unreachable("status API unavailable: HTTP 503"),
	}}
}

func TestListServers_MergesInConfigOrder(t *testing.T) {
	fetcher := mixedFetcher()
	recorder := &fakeRecorder{}
	svc := NewServerService(testServers, fetcher, recorder)

	set := svc.ListServers(context.Background())

	require.Len(t, set, 2)
	assert.Equal(t, []string{"server1", "server2"}, set.Keys())
	assert.Equal(t, []string{"http://status/1", "http://status/2"}, fetcher.calls)

	assert.True(t, set[0].IsOnline)
	assert.Equal(t, 12, set[0].Players)
	assert.NotNil(t, set[0].LastUpdated)

	assert.False(t, set[1].IsOnline)
	assert.Zero(t, set[1].Players)
	assert.Equal(t, "status API unavailable: HTTP 503", set[1].Error)
	assert.Equal(t, 30, set[1].MaxPlayers)
}

func TestListServers_RecordsOneSamplePerServer(t *testing.T) {
	recorder := &fakeRecorder{}
	svc := NewServerService(testServers, mixedFetcher(), recorder)

	svc.ListServers(context.Background())

	require.Len(t, recorder.samples, 2)
	assert.Equal(t, "server1", recorder.samples[0].ServerKey)
	assert.Equal(t, 12, recorder.samples[0].PlayersCount)
	assert.True(t, recorder.samples[0].IsOnline)
	assert.Equal(t, "server2", recorder.samples[1].ServerKey)
	assert.Zero(t, recorder.samples[1].PlayersCount)
	assert.False(t, recorder.samples[1].IsOnline)
	assert.False(t, recorder.samples[0].RecordedAt.IsZero())
}

func TestListServers_RecorderFailureDoesNotChangeResult(t *testing.T) {
	ok := NewServerService(testServers, mixedFetcher(), &fakeRecorder{}).ListServers(context.Background())
	failing := &fakeRecorder{err: errors.New("database is locked")}
	broken := NewServerService(testServers, mixedFetcher(), failing).ListServers(context.Background())

	require.Len(t, broken, len(ok))
	for i := range ok {
		ok[i].LastUpdated, broken[i].LastUpdated = nil, nil
		assert.Equal(t, ok[i], broken[i])
	}
	assert.Len(t, failing.samples, 2, "every server is still attempted")
}

func TestListServers_RecordsAfterCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var seen []error
	recorder := recorderFunc(func(ctx context.Context, _ model.ServerStatSample) error {
		seen = append(seen, ctx.Err())
		return nil
	})

	NewServerService(testServers, mixedFetcher(), recorder).ListServers(ctx)

	assert.Equal(t, []error{nil, nil}, seen)
}

func TestGetServer_MatchesListMetadata(t *testing.T) {
	svc := NewServerService(testServers, mixedFetcher(), &fakeRecorder{})
	set := svc.ListServers(context.Background())

	for _, listed := range set {
		one, err := svc.GetServer(context.Background(), listed.Key)
		require.NoError(t, err)

		assert.Equal(t, listed.Name, one.Name)
		assert.Equal(t, listed.Description, one.Description)
		assert.Equal(t, listed.ServerType, one.ServerType)
		assert.Equal(t, listed.MaxPlayers, one.MaxPlayers)
		assert.Equal(t, listed.IsOnline, one.IsOnline)
	}
}

func TestGetServer_UnknownKey(t *testing.T) {
	fetcher := mixedFetcher()
	recorder := &fakeRecorder{}
	svc := NewServerService(testServers, fetcher, recorder)

	_, err := svc.GetServer(context.Background(), "server9")

	apiErr, ok := apierror.As(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.NotEmpty(t, apiErr.Message)
	assert.Empty(t, fetcher.calls)
	assert.Empty(t, recorder.samples)
}

func TestGetServer_DoesNotRecord(t *testing.T) {
	recorder := &fakeRecorder{}
	svc := NewServerService(testServers, mixedFetcher(), recorder)

	_, err := svc.GetServer(context.Background(), "server1")
	require.NoError(t, err)
	assert.Empty(t, recorder.samples)
}

func TestKeys(t *testing.T) {
	svc := NewServerService(testServers, mixedFetcher(), nil)
	assert.Equal(t, []string{"server1", "server2"}, svc.Keys())

	// nil recorder falls back to a no-op
	assert.Len(t, svc.ListServers(context.Background()), 2)
}

type recorderFunc func(ctx context.Context, s model.ServerStatSample) error

func (f recorderFunc) Record(ctx context.Context, s model.ServerStatSample) error { return f(ctx, s) }
