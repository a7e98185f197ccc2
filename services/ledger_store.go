package services

import (
	"encoding/json"
	"fmt"
	"sort"
	"sync"

	"github.com/OtaoDavis/Tfit-app/models"

	"go.uber.org/zap"
)

// LedgerStore is the durable mapping from (user, metric-kind, date key)
// to that day's record. Each (user, kind) collection is loaded from the
// substrate once, kept resident, and flushed in full after every
// mutation; the collections are small (human-paced daily entries) so a
// whole-collection rewrite per upsert is fine.
//
// A single mutex serializes every read-modify-write, which covers the
// per-(kind, day) atomicity the aggregator relies on even though Gin
// runs handlers concurrently.
type LedgerStore struct {
	sub   Substrate
	prefs *GoalPrefs
	log   *zap.Logger

	mu     sync.Mutex
	cache  map[string]map[string]*models.DailyRecord // storage key → date key → record
	loaded map[string]bool
}

func NewLedgerStore(sub Substrate, prefs *GoalPrefs, log *zap.Logger) *LedgerStore {
	if log == nil {
		log = zap.NewNop()
	}
	return &LedgerStore{
		sub:    sub,
		prefs:  prefs,
		log:    log,
		cache:  make(map[string]map[string]*models.DailyRecord),
		loaded: make(map[string]bool),
	}
}

func ledgerKey(userID uint, kind models.MetricKind) string {
	return fmt.Sprintf("ledger:%d:%s", userID, kind)
}

// load decodes the stored collection for key on first access. Stored
// data that fails to parse is treated as absent rather than fatal.
func (s *LedgerStore) load(key string) map[string]*models.DailyRecord {
	if s.loaded[key] {
		return s.cache[key]
	}

	coll := make(map[string]*models.DailyRecord)
	raw, ok, err := s.sub.Read(key)
	if err != nil {
		s.log.Warn("ledger read failed, starting empty", zap.String("key", key), zap.Error(err))
	} else if ok {
		var records []*models.DailyRecord
		if uerr := json.Unmarshal([]byte(raw), &records); uerr != nil {
			s.log.Warn("discarding unparseable ledger collection", zap.String("key", key), zap.Error(uerr))
		} else {
			for _, rec := range records {
				if rec == nil || rec.Date == "" {
					continue
				}
				coll[rec.Date] = rec
			}
		}
	}

	s.cache[key] = coll
	s.loaded[key] = true
	return coll
}

// flush rewrites the whole collection for key, most recent day first.
// On failure the resident state is kept and an advisory PersistenceError
// is returned; the next successful flush reconciles the store.
func (s *LedgerStore) flush(key string, coll map[string]*models.DailyRecord) error {
	records := make([]*models.DailyRecord, 0, len(coll))
	for _, rec := range coll {
		records = append(records, rec)
	}
	sort.Slice(records, func(i, j int) bool { return records[i].Date > records[j].Date })

	raw, err := json.Marshal(records)
	if err != nil {
		return &PersistenceError{Key: key, Err: err}
	}
	if err := s.sub.Write(key, string(raw)); err != nil {
		s.log.Warn("ledger flush failed, keeping in-memory state", zap.String("key", key), zap.Error(err))
		return &PersistenceError{Key: key, Err: err}
	}
	return nil
}

// Get returns a copy of the record for the given day, or false when no
// record exists.
func (s *LedgerStore) Get(userID uint, kind models.MetricKind, dateKey string) (*models.DailyRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	coll := s.load(ledgerKey(userID, kind))
	rec, ok := coll[dateKey]
	if !ok {
		return nil, false
	}
	return rec.Clone(), true
}

// Upsert reads the existing record for the day, or constructs a fresh
// one carrying the user's currently active goal, then applies mutate and
// flushes. Creating a "second" record for an existing key is therefore
// impossible: writes always merge into the one record per day.
func (s *LedgerStore) Upsert(userID uint, kind models.MetricKind, dateKey string, mutate func(rec *models.DailyRecord)) (*models.DailyRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := ledgerKey(userID, kind)
	coll := s.load(key)

	rec, ok := coll[dateKey]
	if !ok {
		rec = &models.DailyRecord{Date: dateKey, Goal: s.prefs.Goal(userID, kind)}
		coll[dateKey] = rec
	}

	mutate(rec)

	if err := s.flush(key, coll); err != nil {
		return rec.Clone(), err
	}
	return rec.Clone(), nil
}

// SetGoalForDay patches the frozen goal on an existing record. Used only
// for "today" when the user changes their preference; absent records are
// left alone since they will pick up the new preference on first write.
func (s *LedgerStore) SetGoalForDay(userID uint, kind models.MetricKind, dateKey string, goal int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := ledgerKey(userID, kind)
	coll := s.load(key)
	rec, ok := coll[dateKey]
	if !ok || rec.Goal == goal {
		return nil
	}
	rec.Goal = goal
	return s.flush(key, coll)
}

// Remove prunes the record for a day entirely; used when deleting the
// last meal entry leaves an empty record behind.
func (s *LedgerStore) Remove(userID uint, kind models.MetricKind, dateKey string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := ledgerKey(userID, kind)
	coll := s.load(key)
	if _, ok := coll[dateKey]; !ok {
		return nil
	}
	delete(coll, dateKey)

	if len(coll) == 0 {
		if err := s.sub.Delete(key); err != nil {
			s.log.Warn("ledger delete failed", zap.String("key", key), zap.Error(err))
			return &PersistenceError{Key: key, Err: err}
		}
		return nil
	}
	return s.flush(key, coll)
}

// ListAll returns copies of every record for the kind, most recent date
// first.
func (s *LedgerStore) ListAll(userID uint, kind models.MetricKind) []*models.DailyRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	coll := s.load(ledgerKey(userID, kind))
	out := make([]*models.DailyRecord, 0, len(coll))
	for _, rec := range coll {
		out = append(out, rec.Clone())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date > out[j].Date })
	return out
}
