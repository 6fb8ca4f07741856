package store

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/artisanbay/sellerhub/internal/domain"
	"github.com/artisanbay/sellerhub/internal/statscache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeGateway is a controllable in-memory Gateway.
type fakeGateway struct {
	mu          sync.Mutex
	profile     *domain.SellerProfile
	fetchErr    error
	updateErr   error
	stats       *domain.DashboardStats
	statsErr    error
	fetchCalls  int
	updateCalls int

	// onFetch, when set, runs while a profile fetch is "in flight".
	onFetch func()
}

func (g *fakeGateway) FetchProfile(ctx context.Context, sellerID string) (*domain.SellerProfile, error) {
	g.mu.Lock()
	g.fetchCalls++
	hook := g.onFetch
	g.onFetch = nil
	profile, err := g.profile, g.fetchErr
	g.mu.Unlock()

	if hook != nil {
		hook()
	}
	if err != nil {
		return nil, err
	}
	copied := *profile
	return &copied, nil
}

func (g *fakeGateway) UpdateProfile(ctx context.Context, sellerID string, patch domain.ProfilePatch) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.updateCalls++
	return g.updateErr
}

func (g *fakeGateway) FetchStats(ctx context.Context, sellerID string) (*domain.DashboardStats, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.statsErr != nil {
		return nil, g.statsErr
	}
	copied := *g.stats
	return &copied, nil
}

// recorder captures notices for assertions.
type recorder struct {
	mu      sync.Mutex
	notices []domain.Notice
}

func (r *recorder) Notify(ctx context.Context, n domain.Notice) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notices = append(r.notices, n)
	return nil
}

func (r *recorder) levels() []domain.NoticeLevel {
	r.mu.Lock()
	defer r.mu.Unlock()
	levels := make([]domain.NoticeLevel, len(r.notices))
	for i, n := range r.notices {
		levels[i] = n.Level
	}
	return levels
}

func ashaProfile() *domain.SellerProfile {
	return &domain.SellerProfile{
		UID:   "seller123",
		Name:  "Asha",
		Phone: "9876543210",
		BusinessInfo: domain.BusinessInfo{
			BusinessName: "Asha Crafts",
			Address: domain.Address{
				City:    "Pune",
				State:   "Maharashtra",
				Pincode: "411001",
			},
		},
	}
}

func newTestStore(gw *fakeGateway, cacheOpts ...statscache.Option) (*Store, *recorder) {
	rec := &recorder{}
	return New(gw, statscache.New(cacheOpts...), rec), rec
}

func TestLoadProfile_PopulatesProfileAndDraft(t *testing.T) {
	gw := &fakeGateway{profile: ashaProfile()}
	s, _ := newTestStore(gw)

	require.NoError(t, s.LoadProfile(context.Background(), "seller123"))

	profile := s.Profile()
	require.NotNil(t, profile)
	assert.Equal(t, "Asha", profile.Name)

	d := s.Draft()
	assert.Equal(t, "Asha Crafts", d.Form.BusinessName)
	assert.Equal(t, "Pune", d.Form.City)

	assert.False(t, s.IsLoading())
	assert.False(t, s.DraftDirty())
}

func TestLoadProfile_SecondCallWhileInFlightIsNoOp(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})

	gw := &fakeGateway{profile: ashaProfile()}
	gw.onFetch = func() {
		close(started)
		<-release
	}
	s, _ := newTestStore(gw)

	done := make(chan error, 1)
	go func() {
		done <- s.LoadProfile(context.Background(), "seller123")
	}()

	<-started
	assert.True(t, s.IsLoading())

	// The duplicate call must return immediately without another fetch.
	require.NoError(t, s.LoadProfile(context.Background(), "seller123"))

	close(release)
	require.NoError(t, <-done)
	assert.Equal(t, 1, gw.fetchCalls)
}

func TestLoadProfile_DiscardsResponseOlderThanLocalMutation(t *testing.T) {
	gw := &fakeGateway{profile: ashaProfile()}
	s, _ := newTestStore(gw)
	require.NoError(t, s.LoadProfile(context.Background(), "seller123"))

	// While the second fetch is in flight, a local mutation is applied.
	// Its response must be discarded rather than overwrite newer state.
	gw.onFetch = func() {
		require.NoError(t, s.UpdateProfile(context.Background(), "seller123",
			domain.ProfilePatch{"phone": "9999999999"}))
	}
	require.NoError(t, s.LoadProfile(context.Background(), "seller123"))

	profile := s.Profile()
	require.NotNil(t, profile)
	assert.Equal(t, "9999999999", profile.Phone)
}

func TestLoadProfile_FetchFailureNotifies(t *testing.T) {
	gw := &fakeGateway{fetchErr: domain.ErrUnavailable}
	s, rec := newTestStore(gw)

	err := s.LoadProfile(context.Background(), "seller123")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnavailable)
	assert.Nil(t, s.Profile())
	assert.Contains(t, rec.levels(), domain.NoticeError)
	assert.False(t, s.IsLoading())
}

func TestLoadProfile_DropsResultWhenContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	gw := &fakeGateway{profile: ashaProfile()}
	gw.onFetch = func() { cancel() }
	s, _ := newTestStore(gw)

	err := s.LoadProfile(ctx, "seller123")
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, s.Profile())
}

func TestUpdateProfile_OptimisticMergeWithoutRefetch(t *testing.T) {
	gw := &fakeGateway{profile: ashaProfile()}
	s, rec := newTestStore(gw)
	require.NoError(t, s.LoadProfile(context.Background(), "seller123"))

	err := s.UpdateProfile(context.Background(), "seller123",
		domain.ProfilePatch{"phone": "9999999999"})
	require.NoError(t, err)

	profile := s.Profile()
	require.NotNil(t, profile)
	assert.Equal(t, "9999999999", profile.Phone)
	assert.Equal(t, 1, gw.fetchCalls, "no re-fetch after a successful write")
	assert.Equal(t, 1, gw.updateCalls)
	assert.False(t, s.IsLoading())
	assert.False(t, s.DraftDirty(), "draft is rebuilt from the merged profile")
	assert.Contains(t, rec.levels(), domain.NoticeSuccess)
}

func TestUpdateProfile_ValidationBlocksSubmission(t *testing.T) {
	gw := &fakeGateway{profile: ashaProfile()}
	s, rec := newTestStore(gw)
	require.NoError(t, s.LoadProfile(context.Background(), "seller123"))

	err := s.UpdateProfile(context.Background(), "seller123",
		domain.ProfilePatch{"name": ""})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)

	// The gateway must never be reached.
	assert.Equal(t, 0, gw.updateCalls)
	assert.Contains(t, s.Draft().Errors, "name")
	assert.Contains(t, rec.levels(), domain.NoticeError)
}

func TestUpdateProfile_RemoteFailureKeepsUnsavedEdits(t *testing.T) {
	gw := &fakeGateway{profile: ashaProfile(), updateErr: domain.ErrUnavailable}
	s, rec := newTestStore(gw)
	require.NoError(t, s.LoadProfile(context.Background(), "seller123"))

	err := s.UpdateProfile(context.Background(), "seller123",
		domain.ProfilePatch{"phone": "9999999999"})
	require.Error(t, err)

	// No optimistic update happened, but the draft keeps the user's input.
	profile := s.Profile()
	require.NotNil(t, profile)
	assert.Equal(t, "9876543210", profile.Phone)
	assert.Equal(t, "9999999999", s.Draft().Form.Phone)
	assert.True(t, s.DraftDirty())
	assert.Contains(t, rec.levels(), domain.NoticeError)
}

func TestRefreshStats_FallbackChain(t *testing.T) {
	clock := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	gw := &fakeGateway{stats: &domain.DashboardStats{TotalOrders: 42, TotalRevenue: 15000}}
	s, rec := newTestStore(gw, statscache.WithClock(func() time.Time { return clock }))

	t.Run("fresh fetch is authoritative", func(t *testing.T) {
		stats := s.RefreshStats(context.Background(), "seller123")
		require.NotNil(t, stats)
		assert.Equal(t, 42, stats.TotalOrders)
		assert.False(t, stats.Cached)
		assert.False(t, stats.IsMockData)
	})

	t.Run("failure within the hour serves the cached copy", func(t *testing.T) {
		gw.mu.Lock()
		gw.statsErr = domain.ErrUnavailable
		gw.mu.Unlock()
		clock = clock.Add(30 * time.Minute)

		stats := s.RefreshStats(context.Background(), "seller123")
		require.NotNil(t, stats)
		assert.Equal(t, 42, stats.TotalOrders)
		assert.True(t, stats.Cached)
		assert.False(t, stats.IsMockData)
		assert.Contains(t, rec.levels(), domain.NoticeWarning)
		assert.NotContains(t, rec.levels(), domain.NoticeError)
	})

	t.Run("failure past the hour degrades to the placeholder", func(t *testing.T) {
		clock = clock.Add(60 * time.Minute)

		stats := s.RefreshStats(context.Background(), "seller123")
		require.NotNil(t, stats)
		assert.Zero(t, stats.TotalOrders)
		assert.True(t, stats.IsMockData)
		assert.Contains(t, rec.levels(), domain.NoticeError)
	})
}

func TestRefreshStats_SharesConcurrentFetches(t *testing.T) {
	gw := &fakeGateway{stats: &domain.DashboardStats{TotalOrders: 7}}
	s, _ := newTestStore(gw)

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			stats := s.RefreshStats(context.Background(), "seller123")
			assert.Equal(t, 7, stats.TotalOrders)
		}()
	}
	wg.Wait()
	assert.False(t, s.IsLoading())
}

func TestSetDraftFieldAndReset(t *testing.T) {
	gw := &fakeGateway{profile: ashaProfile()}
	s, _ := newTestStore(gw)
	require.NoError(t, s.LoadProfile(context.Background(), "seller123"))

	require.NoError(t, s.SetDraftField("tagline", "New tagline"))
	assert.True(t, s.DraftDirty())

	s.ResetDraft()
	assert.False(t, s.DraftDirty())
	assert.Empty(t, s.Draft().Errors)
}

func TestStoreIsolation(t *testing.T) {
	// Two stores must not share state: no ambient singletons.
	gw1 := &fakeGateway{profile: ashaProfile()}
	gw2 := &fakeGateway{fetchErr: errors.New("boom")}

	s1, _ := newTestStore(gw1)
	s2, _ := newTestStore(gw2)

	require.NoError(t, s1.LoadProfile(context.Background(), "seller123"))
	require.Error(t, s2.LoadProfile(context.Background(), "seller123"))

	assert.NotNil(t, s1.Profile())
	assert.Nil(t, s2.Profile())
}
