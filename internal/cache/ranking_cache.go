package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"skillscope/internal/ranking"
)

// RankingCache mirrors a job's latest ranking run into Redis: a ZSET of
// combined scores for fast top-N reads plus a JSON blob of the full rows.
type RankingCache interface {
	SetBoard(ctx context.Context, jobID string, rows []ranking.RankedCandidate) error
	GetBoard(ctx context.Context, jobID string) ([]ranking.RankedCandidate, error)
	Top(ctx context.Context, jobID string, limit int) ([]string, error)
}

type rankingCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRankingCache(client *redis.Client, ttl time.Duration) RankingCache {
	return &rankingCache{client: client, ttl: ttl}
}

func (c *rankingCache) zkey(jobID string) string {
	return fmt.Sprintf("job:%s:ranking", jobID)
}

func (c *rankingCache) blobKey(jobID string) string {
	return fmt.Sprintf("job:%s:ranking:rows", jobID)
}

func (c *rankingCache) SetBoard(ctx context.Context, jobID string, rows []ranking.RankedCandidate) error {
	members := make([]redis.Z, len(rows))
	for i, row := range rows {
		members[i] = redis.Z{Score: row.CombinedScore, Member: row.CandidateID}
	}

	pipe := c.client.TxPipeline()
	pipe.Del(ctx, c.zkey(jobID))
	if len(members) > 0 {
		pipe.ZAdd(ctx, c.zkey(jobID), members...)
	}
	pipe.Expire(ctx, c.zkey(jobID), c.ttl)

	data, err := json.Marshal(rows)
	if err != nil {
		return err
	}
	pipe.Set(ctx, c.blobKey(jobID), data, c.ttl)

	_, err = pipe.Exec(ctx)
	return err
}

func (c *rankingCache) GetBoard(ctx context.Context, jobID string) ([]ranking.RankedCandidate, error) {
	data, err := c.client.Get(ctx, c.blobKey(jobID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}
	var rows []ranking.RankedCandidate
	if err := json.Unmarshal([]byte(data), &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func (c *rankingCache) Top(ctx context.Context, jobID string, limit int) ([]string, error) {
	ids, err := c.client.ZRevRange(ctx, c.zkey(jobID), 0, int64(limit-1)).Result()
	if err != nil {
		return nil, err
	}
	return ids, nil
}
