package cache

import (
	"context"
	"fmt"
	"strconv"
	"time"
)

const (
	UserKeyPrefix    = "user:%d"
	SessionKeyPrefix = "session:%s"
)

const (
	UserTTL = 5 * time.Minute
)

func UserKey(userID uint) string {
	return fmt.Sprintf(UserKeyPrefix, userID)
}

func SessionKey(sessionID string) string {
	return fmt.Sprintf(SessionKeyPrefix, sessionID)
}

func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

// InvalidateUser drops the cached user row so that profile and ban changes
// are visible to the session guard on the next request.
func InvalidateUser(ctx context.Context, userID uint) {
	Invalidate(ctx, UserKey(userID))
}

// InvalidateSessionsOf deletes every stored session owned by one of userIDs.
// Session values hold the owning user id.
func InvalidateSessionsOf(ctx context.Context, userIDs ...uint) error {
	if client == nil || len(userIDs) == 0 {
		return nil
	}
	owners := make(map[string]struct{}, len(userIDs))
	for _, id := range userIDs {
		owners[strconv.FormatUint(uint64(id), 10)] = struct{}{}
	}

	iter := client.Scan(ctx, 0, SessionKey("*"), 100).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()
		owner, err := client.Get(ctx, key).Result()
		if err != nil {
			// expired between SCAN and GET
			continue
		}
		if _, ok := owners[owner]; ok {
			client.Del(ctx, key)
		}
	}
	return iter.Err()
}
