package service

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"general-ledger/internal/repository"
	"general-ledger/internal/utils"
)

const entrySeqKey = "ledger:journal_entry_seq"

// SequenceService assigns journal entry numbers ("JE-001", "JE-002", ...).
//
// When Redis is configured the number comes from an atomic INCR, which is
// safe under concurrent writers. Without Redis it degrades to a row-count
// scan, which two concurrent writers can race; the ledger resolves such a
// collision with a timestamp-derived number. The degraded mode is a
// documented weak guarantee (unique, not strictly sequential), acceptable
// for low write concurrency.
type SequenceService struct {
	journalRepo *repository.JournalRepository
	redis       *redis.Client // nil when Redis is unavailable
}

func NewSequenceService(journalRepo *repository.JournalRepository, redisClient *redis.Client) *SequenceService {
	return &SequenceService{journalRepo: journalRepo, redis: redisClient}
}

// NextEntryNumber returns the next advisory entry number. Callers must
// treat it as a candidate and fall back on collision.
func (s *SequenceService) NextEntryNumber() string {
	if s.redis != nil {
		n, err := s.redis.Incr(context.Background(), entrySeqKey).Result()
		if err == nil {
			return fmt.Sprintf("JE-%03d", n)
		}
		utils.ComponentLogger("sequence").WithError(err).Warn("redis counter unavailable, falling back to scan")
	}

	count, err := s.journalRepo.Count()
	if err != nil {
		return s.FallbackEntryNumber()
	}
	return fmt.Sprintf("JE-%03d", count+1)
}

// FallbackEntryNumber returns a unique, time-derived entry number used
// when the advisory number collides.
func (s *SequenceService) FallbackEntryNumber() string {
	return fmt.Sprintf("JE-%d", time.Now().UnixNano())
}
