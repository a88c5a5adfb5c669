package repository

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	journalKey = "oabi:confirmados"
	journalTTL = 30 * 24 * time.Hour
)

// Journal lembra quais IDs já foram confirmados, para reexecuções não
// reprocessarem registro já fechado.
type Journal struct {
	Client *redis.Client
}

func (j *Journal) Done(id string) bool {
	ctx := context.Background()

	ok, err := j.Client.SIsMember(ctx, journalKey, id).Result()
	if err != nil {
		return false
	}
	return ok
}

func (j *Journal) MarkDone(id string) error {
	ctx := context.Background()

	if err := j.Client.SAdd(ctx, journalKey, id).Err(); err != nil {
		return err
	}
	return j.Client.Expire(ctx, journalKey, journalTTL).Err()
}
