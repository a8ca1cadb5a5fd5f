package nakama

import (
	"context"
	"errors"

	"github.com/heroiclabs/nakama-common/api"
	"github.com/heroiclabs/nakama-common/runtime"
)

// noopLogger implements runtime.Logger for tests that only need to satisfy the interface.
type noopLogger struct{}

func (noopLogger) Debug(string, ...interface{}) {}
func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}
func (noopLogger) WithField(string, interface{}) runtime.Logger {
	return noopLogger{}
}
func (noopLogger) WithFields(map[string]interface{}) runtime.Logger {
	return noopLogger{}
}
func (noopLogger) Fields() map[string]interface{} {
	return nil
}

// fakeNakama records storage writes; every other NakamaModule method panics through the nil embed.
type fakeNakama struct {
	runtime.NakamaModule
	writeErr error
	writes   []*runtime.StorageWrite
}

func (f *fakeNakama) StorageWrite(ctx context.Context, writes []*runtime.StorageWrite) ([]*api.StorageObjectAck, error) {
	if f.writeErr != nil {
		return nil, f.writeErr
	}
	f.writes = append(f.writes, writes...)
	acks := make([]*api.StorageObjectAck, 0, len(writes))
	for _, w := range writes {
		acks = append(acks, &api.StorageObjectAck{Collection: w.Collection, Key: w.Key})
	}
	return acks, nil
}

var errStorageDown = errors.New("storage down")
