package telemetry

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"darkparadise-rest-api/internal/model"

	"github.com/oklog/ulid/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRecorder struct {
	got []model.ServerStatSample
	err error
}

func (f *fakeRecorder) Record(_ context.Context, s model.ServerStatSample) error {
	f.got = append(f.got, s)
	return f.err
}

type fakeStore struct {
	got []*model.ServerStatSample
}

func (f *fakeStore) RecordSample(_ context.Context, s *model.ServerStatSample) error {
	f.got = append(f.got, s)
	return nil
}

func TestStoreRecorder(t *testing.T) {
	store := &fakeStore{}
	sample := model.ServerStatSample{ServerKey: "server1", PlayersCount: 7, IsOnline: true}

	require.NoError(t, NewStoreRecorder(store).Record(context.Background(), sample))

	require.Len(t, store.got, 1)
	assert.Equal(t, "server1", store.got[0].ServerKey)
	assert.Equal(t, 7, store.got[0].PlayersCount)
}

func TestMulti_RunsAllAndJoinsErrors(t *testing.T) {
	errA := errors.New("store down")
	a := &fakeRecorder{err: errA}
	b := &fakeRecorder{}
	sample := model.ServerStatSample{ServerKey: "server2"}

	err := Multi{a, b}.Record(context.Background(), sample)

	assert.ErrorIs(t, err, errA)
	assert.Len(t, a.got, 1)
	assert.Len(t, b.got, 1)
}

func TestMulti_Empty(t *testing.T) {
	assert.NoError(t, Multi{}.Record(context.Background(), model.ServerStatSample{}))
	assert.NoError(t, Noop{}.Record(context.Background(), model.ServerStatSample{}))
}

func TestNewPayload(t *testing.T) {
	at := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	p := NewPayload(model.ServerStatSample{ServerKey: "server1", PlayersCount: 3, IsOnline: true, RecordedAt: at})

	_, err := ulid.Parse(p.EventID)
	require.NoError(t, err)
	assert.Equal(t, at.UnixMilli(), p.RecordedAt)

	data, err := json.Marshal(p)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"`+p.EventID+`","server_key":"server1","players_count":3,"is_online":true,"recorded_at":`+
		jsonInt(at.UnixMilli())+`}`, string(data))

	other := NewPayload(model.ServerStatSample{ServerKey: "server1"})
	assert.NotEqual(t, p.EventID, other.EventID)
	assert.NotZero(t, other.RecordedAt)
}

func TestStreamPublisher_UnreachableRedis(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	p := NewStreamPublisherWithClient(client, "", 0)
	t.Cleanup(func() { p.Close() })

	assert.Equal(t, DefaultStreamKey, p.stream)
	assert.Equal(t, int64(DefaultMaxStreamLen), p.maxLen)

	err := p.Record(context.Background(), model.ServerStatSample{ServerKey: "server1"})
	assert.Error(t, err)
}

func TestNewStreamPublisher_PingFails(t *testing.T) {
	_, err := NewStreamPublisher(StreamConfig{Addr: "127.0.0.1:1"})
	assert.Error(t, err)
}

func jsonInt(v int64) string {
	b, _ := json.Marshal(v)
	return string(b)
}
