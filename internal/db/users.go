package db

import (
	"strconv"
	"time"

	"github.com/OpenListTeam/go-cache"
	"github.com/pkg/errors"

	"github.com/trackwell/trackwell/internal/model"
)

// Resolved profiles are display data; a short TTL keeps hot list renders off
// the users table without holding stale names for long.
var (
	profileCache    = cache.NewMemCache(cache.WithShards[*model.UserProfile](8))
	profileCacheTTL = time.Minute
)

func profileCacheKey(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

// ResolveProfiles batch-fetches display profiles for a set of user ids. Ids
// missing from the users table are absent from the result, not an error. One
// query covers every cache miss in the set.
func (d *Database) ResolveProfiles(ids []uint) (map[uint]*model.UserProfile, error) {
	result := make(map[uint]*model.UserProfile, len(ids))
	var missing []uint
	for _, id := range ids {
		if p, ok := profileCache.Get(profileCacheKey(id)); ok {
			result[id] = p
			continue
		}
		missing = append(missing, id)
	}
	if len(missing) == 0 {
		return result, nil
	}
	var profiles []*model.UserProfile
	if err := d.db.Where("id IN ?", missing).Find(&profiles).Error; err != nil {
		return nil, errors.WithStack(err)
	}
	for _, p := range profiles {
		result[p.ID] = p
		profileCache.Set(profileCacheKey(p.ID), p, cache.WithEx[*model.UserProfile](profileCacheTTL))
	}
	return result, nil
}
