// Package store is the process-wide coordinator for a seller session. It
// holds the canonical profile, the dashboard stats and the editable draft,
// and wraps every gateway call so state updates and user notices happen
// atomically from the caller's perspective.
package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/artisanbay/sellerhub/internal/domain"
	"github.com/artisanbay/sellerhub/internal/draft"
	"github.com/artisanbay/sellerhub/internal/statscache"
	"golang.org/x/sync/singleflight"
)

// Gateway is the remote profile gateway consumed by the store. Exactly one
// network round trip per call; no automatic retries.
type Gateway interface {
	FetchProfile(ctx context.Context, sellerID string) (*domain.SellerProfile, error)
	UpdateProfile(ctx context.Context, sellerID string, patch domain.ProfilePatch) error
	FetchStats(ctx context.Context, sellerID string) (*domain.DashboardStats, error)
}

// Store coordinates profile, stats and draft state for one seller session.
// It is constructor-injected (no ambient singletons) so tests can
// instantiate isolated instances.
type Store struct {
	gw       Gateway
	cache    *statscache.Cache
	notifier domain.Notifier

	mu      sync.Mutex
	profile *domain.SellerProfile
	stats   *domain.DashboardStats
	d       draft.Draft

	// loading counts in-flight gateway calls; loadInFlight guards against
	// duplicate concurrent profile fetches.
	loading      int
	loadInFlight bool

	// seq is bumped on every locally applied mutation. A fetch response
	// issued before the latest mutation is discarded as stale.
	seq uint64

	statsFlight singleflight.Group
}

// New creates a store around the given collaborators.
func New(gw Gateway, cache *statscache.Cache, notifier domain.Notifier) *Store {
	return &Store{
		gw:       gw,
		cache:    cache,
		notifier: notifier,
		d:        draft.Draft{Errors: domain.FieldErrors{}},
	}
}

// LoadProfile fetches the canonical profile and rebuilds the draft from it.
// If a load is already in flight, the call is a no-op. A response that
// arrives after a local mutation, or after the caller's context was
// canceled, is dropped.
func (s *Store) LoadProfile(ctx context.Context, sellerID string) error {
	s.mu.Lock()
	if s.loadInFlight {
		s.mu.Unlock()
		return nil
	}
	s.loadInFlight = true
	s.loading++
	issued := s.seq
	s.mu.Unlock()

	profile, err := s.gw.FetchProfile(ctx, sellerID)

	s.mu.Lock()
	s.loadInFlight = false
	s.loading--

	if ctx.Err() != nil {
		// The caller went away while the request was in flight; drop the
		// result instead of applying a stale update.
		s.mu.Unlock()
		return ctx.Err()
	}
	if err != nil {
		s.mu.Unlock()
		s.notify(ctx, domain.NoticeError, "Failed to load profile")
		return fmt.Errorf("load profile: %w", err)
	}
	if s.seq != issued {
		// A mutation was applied while this fetch was in flight; the
		// response is older than local state.
		s.mu.Unlock()
		slog.Debug("Discarding stale profile fetch", "seller", sellerID)
		return nil
	}

	s.profile = profile
	s.d = draft.New(profile)
	s.mu.Unlock()
	return nil
}

// UpdateProfile merges the patch into the draft, validates, and submits.
// Validation failures block submission before any network call. On remote
// success the patch is merged locally without waiting for a re-fetch; on
// failure the draft keeps its unsaved edits.
func (s *Store) UpdateProfile(ctx context.Context, sellerID string, patch domain.ProfilePatch) error {
	s.mu.Lock()
	for name, value := range patch {
		if err := s.d.SetField(name, value); err != nil {
			s.mu.Unlock()
			return err
		}
	}
	working := s.d
	s.mu.Unlock()

	if fieldErrors := working.Validate(); fieldErrors.HasErrors() {
		s.mu.Lock()
		s.d.Errors = fieldErrors
		s.mu.Unlock()
		s.notify(ctx, domain.NoticeError, "Please fix the highlighted fields")
		return fmt.Errorf("update profile: %w", domain.ErrValidation)
	}

	s.mu.Lock()
	s.loading++
	s.mu.Unlock()

	err := s.gw.UpdateProfile(ctx, sellerID, patch)

	s.mu.Lock()
	s.loading--
	if err != nil {
		// No optimistic update on failure: the draft retains its unsaved
		// edits so the user does not lose input.
		s.mu.Unlock()
		if errors.Is(err, domain.ErrInvalidCredentials) {
			s.notify(ctx, domain.NoticeError, "Session expired, please log in again")
		} else {
			s.notify(ctx, domain.NoticeError, "Failed to save profile")
		}
		return fmt.Errorf("update profile: %w", err)
	}

	if s.profile != nil {
		patch.ApplyTo(s.profile)
	}
	s.seq++
	s.d = draft.New(s.profile)
	s.mu.Unlock()

	s.notify(ctx, domain.NoticeSuccess, "Profile updated")
	return nil
}

// RefreshStats fetches the dashboard stats. Concurrent refreshes for the
// same seller share a single fetch. On failure the cache fallback chain
// substitutes a stale copy (with a warning) or the zeroed placeholder
// (with an error notice); the substituted value is installed and returned.
func (s *Store) RefreshStats(ctx context.Context, sellerID string) *domain.DashboardStats {
	s.mu.Lock()
	s.loading++
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		s.loading--
		s.mu.Unlock()
	}()

	result, err, _ := s.statsFlight.Do(sellerID, func() (any, error) {
		return s.gw.FetchStats(ctx, sellerID)
	})

	if err == nil {
		stats := result.(*domain.DashboardStats)
		s.cache.Put(stats)
		s.mu.Lock()
		s.stats = stats
		s.mu.Unlock()
		return stats
	}

	fallback, state := s.cache.Fallback()
	s.mu.Lock()
	s.stats = fallback
	s.mu.Unlock()

	switch state {
	case statscache.StaleButUsable:
		s.notify(ctx, domain.NoticeWarning, "Showing recently cached stats; refresh failed")
	default:
		s.notify(ctx, domain.NoticeError, "Dashboard stats are unavailable")
	}
	return fallback
}

// SetDraftField updates one editable field and clears its validation error.
func (s *Store) SetDraftField(name string, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.d.SetField(name, value)
}

// ResetDraft discards edits and reinitializes from the canonical profile.
func (s *Store) ResetDraft() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.d.Reset(s.profile)
}

// Draft returns a snapshot of the current draft.
func (s *Store) Draft() draft.Draft {
	s.mu.Lock()
	defer s.mu.Unlock()
	snapshot := s.d
	snapshot.Errors = make(domain.FieldErrors, len(s.d.Errors))
	for k, v := range s.d.Errors {
		snapshot.Errors[k] = v
	}
	return snapshot
}

// DraftDirty reports whether the draft differs from the last-saved profile.
func (s *Store) DraftDirty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.d.Dirty(s.profile)
}

// Profile returns a copy of the canonical profile, or nil before a load.
func (s *Store) Profile() *domain.SellerProfile {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.profile == nil {
		return nil
	}
	copied := *s.profile
	return &copied
}

// Stats returns a copy of the current dashboard stats, or nil.
func (s *Store) Stats() *domain.DashboardStats {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stats == nil {
		return nil
	}
	copied := *s.stats
	return &copied
}

// IsLoading reports whether any gateway call is in flight.
func (s *Store) IsLoading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading > 0
}

func (s *Store) notify(ctx context.Context, level domain.NoticeLevel, text string) {
	if s.notifier == nil {
		return
	}
	if err := s.notifier.Notify(ctx, domain.Notice{Level: level, Text: text}); err != nil {
		slog.Warn("Failed to deliver notice", "level", level, "error", err)
	}
}
