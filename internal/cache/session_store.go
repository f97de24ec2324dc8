package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"sajhnaa_back_end/internal/store"
)

const (
	// SnapshotTTL : une session boutique inactive expire après 30 jours,
	// comme un panier abandonné.
	SnapshotTTL = 30 * 24 * time.Hour

	snapshotKeyPrefix = "sajhnaa:store:v1:"
)

// SnapshotStore persiste les instantanés de session boutique dans Redis.
// Implémente store.Persister.
type SnapshotStore struct {
	Redis *redis.Client
}

func NewSnapshotStore(rdb *redis.Client) *SnapshotStore {
	return &SnapshotStore{Redis: rdb}
}

func snapshotKey(sessionID string) string {
	return snapshotKeyPrefix + sessionID
}

// Save écrit l'instantané JSON et rafraîchit le TTL.
func (s *SnapshotStore) Save(sessionID string, snap store.Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return err
	}
	ctx := context.Background()
	return s.Redis.Set(ctx, snapshotKey(sessionID), data, SnapshotTTL).Err()
}

// Load relit l'instantané ; absent n'est pas une erreur.
func (s *SnapshotStore) Load(sessionID string) (store.Snapshot, bool, error) {
	ctx := context.Background()
	data, err := s.Redis.Get(ctx, snapshotKey(sessionID)).Result()
	if err == redis.Nil {
		return store.Snapshot{}, false, nil
	}
	if err != nil {
		return store.Snapshot{}, false, err
	}

	var snap store.Snapshot
	if err := json.Unmarshal([]byte(data), &snap); err != nil {
		// Instantané corrompu: on le purge et on repart d'un état neuf.
		_ = s.Delete(sessionID)
		return store.Snapshot{}, false, nil
	}
	return snap, true, nil
}

// Delete purge l'instantané (suppression de compte, RGPD).
func (s *SnapshotStore) Delete(sessionID string) error {
	ctx := context.Background()
	return s.Redis.Del(ctx, snapshotKey(sessionID)).Err()
}
