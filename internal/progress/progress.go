// Package progress tracks which courses have been completed on this device.
//
// The completion set is a JSON array of course IDs stored under
// common.CompletedCoursesKey. It is shared by every user of the device and
// survives logout.
package progress

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"slices"

	"github.com/dmitrijs2005/minilearn/internal/common"
	"github.com/dmitrijs2005/minilearn/internal/logging"
	"github.com/dmitrijs2005/minilearn/internal/storage"
)

// Stats summarises progress against a catalog of Total courses.
type Stats struct {
	Completed int
	Total     int
	Percent   int
}

type Store struct {
	store  storage.Store
	logger logging.Logger
}

func NewStore(store storage.Store, logger logging.Logger) *Store {
	if logger == nil {
		logger = logging.Nop()
	}
	return &Store{store: store, logger: logger.With("component", "progress")}
}

// Completed returns completed course IDs in the order they were completed.
// A payload that is not a JSON string array reads as empty.
func (s *Store) Completed(ctx context.Context) ([]string, error) {
	data, err := s.store.Get(ctx, common.CompletedCoursesKey)
	if err != nil {
		return nil, fmt.Errorf("failed to read completed courses: %w", err)
	}
	if data == nil {
		return []string{}, nil
	}

	var ids []string
	if err := json.Unmarshal(data, &ids); err != nil {
		s.logger.Warn(ctx, "ignoring malformed completed courses payload", "error", err)
		return []string{}, nil
	}
	if ids == nil {
		return []string{}, nil
	}
	return ids, nil
}

// MarkComplete appends courseID to the set. Nothing is written when the
// course is already there.
func (s *Store) MarkComplete(ctx context.Context, courseID string) error {
	ids, err := s.Completed(ctx)
	if err != nil {
		return err
	}
	if slices.Contains(ids, courseID) {
		return nil
	}

	data, err := json.Marshal(append(ids, courseID))
	if err != nil {
		return fmt.Errorf("failed to encode completed courses: %w", err)
	}
	if err := s.store.Set(ctx, common.CompletedCoursesKey, data); err != nil {
		return fmt.Errorf("failed to save completed courses: %w", err)
	}

	s.logger.Info(ctx, "course completed", "course_id", courseID)
	return nil
}

func (s *Store) IsCompleted(ctx context.Context, courseID string) (bool, error) {
	ids, err := s.Completed(ctx)
	if err != nil {
		return false, err
	}
	return slices.Contains(ids, courseID), nil
}

// Reset forgets every completion.
func (s *Store) Reset(ctx context.Context) error {
	if err := s.store.Delete(ctx, common.CompletedCoursesKey); err != nil {
		return fmt.Errorf("failed to reset completed courses: %w", err)
	}
	s.logger.Info(ctx, "progress reset")
	return nil
}

// Stats counts completions against total. IDs unknown to the catalog are
// still counted, so Percent may exceed 100 after the catalog shrinks.
func (s *Store) Stats(ctx context.Context, total int) (Stats, error) {
	ids, err := s.Completed(ctx)
	if err != nil {
		return Stats{}, err
	}
	return NewStats(len(ids), total), nil
}

// NewStats derives Percent, rounding half away from zero. Percent is 0 for
// an empty catalog.
func NewStats(completed, total int) Stats {
	st := Stats{Completed: completed, Total: total}
	if total > 0 {
		st.Percent = int(math.Round(float64(completed) / float64(total) * 100))
	}
	return st
}
