// Package telemetry persists server-stat samples.
package telemetry

import (
	"context"
	"errors"

	"darkparadise-rest-api/internal/model"
)

// Recorder appends one server-stat sample somewhere durable.
type Recorder interface {
	Record(ctx context.Context, sample model.ServerStatSample) error
}

// SampleStore is the part of the store a StoreRecorder needs.
type SampleStore interface {
	RecordSample(ctx context.Context, sample *model.ServerStatSample) error
}

// StoreRecorder writes samples to the relational store.
type StoreRecorder struct {
	store SampleStore
}

// NewStoreRecorder creates a recorder backed by store.
func NewStoreRecorder(store SampleStore) *StoreRecorder {
	return &StoreRecorder{store: store}
}

// Record implements Recorder.
func (r *StoreRecorder) Record(ctx context.Context, sample model.ServerStatSample) error {
	return r.store.RecordSample(ctx, &sample)
}

// Multi fans a sample out to every recorder. All recorders run even when
// some fail; the failures are joined.
type Multi []Recorder

// Record implements Recorder.
func (m Multi) Record(ctx context.Context, sample model.ServerStatSample) error {
	var errs []error
	for _, r := range m {
		if err := r.Record(ctx, sample); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Noop discards samples.
type Noop struct{}

// Record implements Recorder.
func (Noop) Record(context.Context, model.ServerStatSample) error { return nil }
