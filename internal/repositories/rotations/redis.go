package rotations

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/soeforge/rotation-builder/internal/domain/rotation"
	apperrors "github.com/soeforge/rotation-builder/internal/errors"
)

const (
	// Key patterns
	rotationKeyPrefix = "rotation:"
	allRotationsKey   = "rotations:all"
	classRotationsKey = "class:%s:rotations"
)

// RedisRepoConfig holds configuration for the Redis repository
type RedisRepoConfig struct {
	Client redis.UniversalClient
}

// redisRepository implements Repository using Redis
type redisRepository struct {
	client redis.UniversalClient
}

// NewRedisRepository creates a new Redis-backed rotation repository
func NewRedisRepository(cfg *RedisRepoConfig) Repository {
	if cfg.Client == nil {
		panic("redis client is required")
	}

	return &redisRepository{
		client: cfg.Client,
	}
}

// Create stores a new rotation snapshot
func (r *redisRepository) Create(ctx context.Context, snap *rotation.Snapshot) error {
	if snap == nil {
		return apperrors.InvalidArgument("rotation cannot be nil")
	}
	if snap.ID == "" {
		return apperrors.InvalidArgument("rotation ID cannot be empty")
	}

	data, err := json.Marshal(snap)
	if err != nil {
		return apperrors.WrapWithCode(err, apperrors.CodeInternal, "failed to serialize rotation")
	}

	rotationKey := rotationKeyPrefix + snap.ID

	// Pipeline the existence check with the writes
	pipe := r.client.TxPipeline()
	pipe.Exists(ctx, rotationKey)
	pipe.Set(ctx, rotationKey, data, 0)
	pipe.SAdd(ctx, allRotationsKey, snap.ID)
	pipe.SAdd(ctx, fmt.Sprintf(classRotationsKey, snap.Metadata.ClassName), snap.ID)

	cmds, err := pipe.Exec(ctx)
	if err != nil {
		return apperrors.Wrap(err, "failed to create rotation")
	}

	if existsCmd, ok := cmds[0].(*redis.IntCmd); ok && existsCmd.Val() > 0 {
		return apperrors.AlreadyExistsf("rotation with ID %s already exists", snap.ID)
	}

	return nil
}

// Get retrieves a rotation snapshot by ID
func (r *redisRepository) Get(ctx context.Context, id string) (*rotation.Snapshot, error) {
	data, err := r.client.Get(ctx, rotationKeyPrefix+id).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, apperrors.NotFoundf("rotation not found: %s", id)
		}
		return nil, apperrors.Wrap(err, "failed to get rotation")
	}

	var snap rotation.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, apperrors.WrapWithCode(err, apperrors.CodeInternal, "failed to deserialize rotation")
	}

	return &snap, nil
}

// Update replaces an existing rotation snapshot
func (r *redisRepository) Update(ctx context.Context, snap *rotation.Snapshot) error {
	if snap == nil {
		return apperrors.InvalidArgument("rotation cannot be nil")
	}
	if snap.ID == "" {
		return apperrors.InvalidArgument("rotation ID cannot be empty")
	}

	// Fetch the stored copy so a class change keeps the indexes straight
	existing, err := r.Get(ctx, snap.ID)
	if err != nil {
		return err
	}

	data, err := json.Marshal(snap)
	if err != nil {
		return apperrors.WrapWithCode(err, apperrors.CodeInternal, "failed to serialize rotation")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, rotationKeyPrefix+snap.ID, data, 0)

	if existing.Metadata.ClassName != snap.Metadata.ClassName {
		pipe.SRem(ctx, fmt.Sprintf(classRotationsKey, existing.Metadata.ClassName), snap.ID)
		pipe.SAdd(ctx, fmt.Sprintf(classRotationsKey, snap.Metadata.ClassName), snap.ID)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return apperrors.Wrap(err, "failed to update rotation")
	}

	return nil
}

// Delete removes a rotation snapshot
func (r *redisRepository) Delete(ctx context.Context, id string) error {
	// Fetch first to clean up the indexes
	snap, err := r.Get(ctx, id)
	if err != nil {
		return err
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, rotationKeyPrefix+id)
	pipe.SRem(ctx, allRotationsKey, id)
	pipe.SRem(ctx, fmt.Sprintf(classRotationsKey, snap.Metadata.ClassName), id)

	if _, err := pipe.Exec(ctx); err != nil {
		return apperrors.Wrap(err, "failed to delete rotation")
	}

	return nil
}

// GetByClass retrieves all rotations for a class
func (r *redisRepository) GetByClass(ctx context.Context, className string) ([]*rotation.Snapshot, error) {
	ids, err := r.client.SMembers(ctx, fmt.Sprintf(classRotationsKey, className)).Result()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to get rotations for class")
	}

	return r.getMultiple(ctx, ids)
}

// List retrieves all stored rotations
func (r *redisRepository) List(ctx context.Context) ([]*rotation.Snapshot, error) {
	ids, err := r.client.SMembers(ctx, allRotationsKey).Result()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list rotations")
	}

	return r.getMultiple(ctx, ids)
}

// getMultiple retrieves multiple snapshots by their IDs
func (r *redisRepository) getMultiple(ctx context.Context, ids []string) ([]*rotation.Snapshot, error) {
	if len(ids) == 0 {
		return []*rotation.Snapshot{}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = rotationKeyPrefix + id
	}

	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to get multiple rotations")
	}

	snaps := make([]*rotation.Snapshot, 0, len(ids))
	for _, val := range values {
		if val == nil {
			// Deleted under us; indexes are cleaned lazily
			continue
		}

		data, ok := val.(string)
		if !ok {
			continue
		}

		var snap rotation.Snapshot
		if err := json.Unmarshal([]byte(data), &snap); err != nil {
			continue
		}

		snaps = append(snaps, &snap)
	}

	return snaps, nil
}
