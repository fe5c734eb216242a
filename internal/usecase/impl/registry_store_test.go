package impl

import (
	"context"
	"io"
	"log/slog"
	"sort"
	"sync"
	"time"

	"famhealth/config"
	"famhealth/internal/domain/entity"
	"famhealth/internal/domain/repository"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(freeLimit int) *config.Config {
	cfg := &config.Config{
		Device: &config.DeviceConfig{FreeLimit: freeLimit},
	}
	cfg.ApplyDefaults()

	return cfg
}

// memDeviceStore mirrors the SQL registry semantics: one row per device id, last-seen
// never moves backwards, metadata merges field by field and a foreign owner is never
// overwritten.
type memDeviceStore struct {
	mu      sync.Mutex
	devices map[string]entity.DeviceRegistration
	failOn  map[string]error
}

func newMemDeviceStore(devices ...*entity.DeviceRegistration) *memDeviceStore {
	store := &memDeviceStore{
		devices: make(map[string]entity.DeviceRegistration),
		failOn:  make(map[string]error),
	}
	for _, device := range devices {
		store.devices[device.DeviceID] = *device
	}

	return store
}

func (s *memDeviceStore) FindDevicesByAccount(_ context.Context, accountID string) ([]*entity.DeviceRegistration, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.failOn["FindDevicesByAccount"]; err != nil {
		return nil, err
	}

	devices := make([]*entity.DeviceRegistration, 0)
	for _, device := range s.devices {
		if device.AccountID == accountID {
			copied := device
			devices = append(devices, &copied)
		}
	}
	sort.Slice(devices, func(i, j int) bool {
		return devices[i].LastSeenAt.After(devices[j].LastSeenAt)
	})

	return devices, nil
}

func (s *memDeviceStore) FindDeviceByID(_ context.Context, deviceID string) (*entity.DeviceRegistration, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	device, ok := s.devices[deviceID]
	if !ok {
		return nil, repository.ErrDeviceNotFound
	}

	return &device, nil
}

func (s *memDeviceStore) UpsertDevice(_ context.Context, device *entity.DeviceRegistration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.failOn["UpsertDevice"]; err != nil {
		return err
	}

	now := time.Now()
	existing, ok := s.devices[device.DeviceID]
	if !ok {
		row := *device
		row.Metadata = (*entity.DeviceMetadata)(nil).Merge(device.Metadata)
		row.CreatedAt = now
		row.UpdatedAt = now
		s.devices[device.DeviceID] = row

		return nil
	}

	if existing.AccountID != device.AccountID {
		return repository.ErrDeviceOwnedByAnotherAccount
	}

	if device.LastSeenAt.After(existing.LastSeenAt) {
		existing.LastSeenAt = device.LastSeenAt
	}
	existing.Metadata = existing.Metadata.Merge(device.Metadata)
	existing.UpdatedAt = now
	s.devices[device.DeviceID] = existing

	return nil
}

func (s *memDeviceStore) RefreshDevice(_ context.Context, deviceID, accountID string, seenAt time.Time, metadata *entity.DeviceMetadata) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.failOn["RefreshDevice"]; err != nil {
		return err
	}

	existing, ok := s.devices[deviceID]
	if !ok || existing.AccountID != accountID {
		return repository.ErrDeviceNotFound
	}

	if seenAt.After(existing.LastSeenAt) {
		existing.LastSeenAt = seenAt
	}
	if !metadata.IsEmpty() {
		existing.Metadata = existing.Metadata.Merge(metadata)
	}
	s.devices[deviceID] = existing

	return nil
}

func (s *memDeviceStore) DeleteDevice(_ context.Context, deviceID, accountID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.failOn["DeleteDevice"]; err != nil {
		return err
	}

	if existing, ok := s.devices[deviceID]; ok && existing.AccountID == accountID {
		delete(s.devices, deviceID)
	}

	return nil
}

func (s *memDeviceStore) snapshot() map[string]entity.DeviceRegistration {
	s.mu.Lock()
	defer s.mu.Unlock()

	copied := make(map[string]entity.DeviceRegistration, len(s.devices))
	for id, device := range s.devices {
		copied[id] = device
	}

	return copied
}

func (s *memDeviceStore) restore(devices map[string]entity.DeviceRegistration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.devices = devices
}

func (s *memDeviceStore) deviceIDs(accountID string) []string {
	devices, _ := s.FindDevicesByAccount(context.Background(), accountID)

	ids := make([]string, 0, len(devices))
	for _, device := range devices {
		ids = append(ids, device.DeviceID)
	}
	sort.Strings(ids)

	return ids
}

// memTxManager runs the callback against the same store and restores its previous
// contents when the callback fails.
type memTxManager struct {
	store *memDeviceStore
}

func (tm *memTxManager) Execute(_ context.Context, fn func(txRepoFactory repository.RepositoryFactory) error) error {
	before := tm.store.snapshot()

	if err := fn(&memRepoFactory{store: tm.store}); err != nil {
		tm.store.restore(before)

		return err
	}

	return nil
}

type memRepoFactory struct {
	store *memDeviceStore
}

func (f *memRepoFactory) DeviceRepo() repository.DeviceRepository {
	return f.store
}
