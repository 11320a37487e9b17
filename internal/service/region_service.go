package service

import (
	"context"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"heatwatch/internal/domain"
	"heatwatch/internal/geo"
	"heatwatch/internal/port"
)

const snapshotListLimit = 100

var (
	regionCacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "heatwatch_region_cache_hits_total",
		Help: "Region snapshots served from the cache.",
	})
	regionCacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "heatwatch_region_cache_misses_total",
		Help: "Region snapshots built from the database.",
	})
)

// RegionService answers questions about the monitored regions: the catalog,
// the nearest region to a point, the dashboard focus and per-region snapshots.
type RegionService interface {
	Regions() []geo.Region
	Nearest(p geo.Point) *geo.NearestMatch
	Focus(ctx context.Context, locator geo.Locator) geo.Focus
	Snapshot(ctx context.Context, name string) (*domain.RegionSnapshot, error)
	// Invalidate drops every cached snapshot.
	Invalidate()
}

type regionService struct {
	regions       []geo.Region
	heatwaveRepo  port.HeatwaveRepository
	recRepo       port.RecommendationRepository
	locateTimeout time.Duration
	cache         *expirable.LRU[string, *domain.RegionSnapshot]
	now           func() time.Time
}

// RegionServiceConfig holds the tunables of the region service.
type RegionServiceConfig struct {
	LocateTimeout time.Duration
	CacheSize     int
	CacheTTL      time.Duration
}

// NewRegionService creates a RegionService over regions. Snapshots are kept
// in an expiring LRU cache.
func NewRegionService(
	regions []geo.Region,
	heatwaveRepo port.HeatwaveRepository,
	recRepo port.RecommendationRepository,
	cfg RegionServiceConfig,
) RegionService {
	size := cfg.CacheSize
	if size <= 0 {
		size = 128
	}
	return &regionService{
		regions:       regions,
		heatwaveRepo:  heatwaveRepo,
		recRepo:       recRepo,
		locateTimeout: cfg.LocateTimeout,
		cache:         expirable.NewLRU[string, *domain.RegionSnapshot](size, nil, cfg.CacheTTL),
		now:           time.Now,
	}
}

func (s *regionService) Regions() []geo.Region {
	out := make([]geo.Region, len(s.regions))
	copy(out, s.regions)
	return out
}

func (s *regionService) Nearest(p geo.Point) *geo.NearestMatch {
	return geo.FindNearest(p, s.regions)
}

func (s *regionService) Focus(ctx context.Context, locator geo.Locator) geo.Focus {
	return geo.ResolveFocus(ctx, locator, s.regions, s.locateTimeout)
}

func (s *regionService) lookup(name string) (geo.Region, bool) {
	name = strings.TrimSpace(name)
	for _, r := range s.regions {
		if strings.EqualFold(r.Name, name) {
			return r, true
		}
	}
	return geo.Region{}, false
}

// Snapshot builds the current view of a region: the heatwaves active now in
// zones of that city and the recommendations published for it.
func (s *regionService) Snapshot(ctx context.Context, name string) (*domain.RegionSnapshot, error) {
	region, ok := s.lookup(name)
	if !ok {
		return nil, domain.ErrRegionNotFound
	}
	key := strings.ToLower(region.Name)
	if snap, ok := s.cache.Get(key); ok {
		regionCacheHits.Inc()
		return snap, nil
	}
	regionCacheMisses.Inc()

	now := s.now().UTC()
	waves, _, err := s.heatwaveRepo.List(ctx, port.HeatwaveFilter{City: region.Name, ActiveAt: &now}, 0, snapshotListLimit)
	if err != nil {
		return nil, err
	}
	recs, _, err := s.recRepo.List(ctx, port.RecommendationFilter{City: region.Name}, 0, snapshotListLimit)
	if err != nil {
		return nil, err
	}

	snap := &domain.RegionSnapshot{
		Region:          region.Name,
		Latitude:        region.Coordinate.Lat,
		Longitude:       region.Coordinate.Lng,
		GeneratedAt:     now,
		Level:           domain.AlertLevelNormal,
		ActiveHeatwaves: waves,
		Recommendations: recs,
	}
	if snap.ActiveHeatwaves == nil {
		snap.ActiveHeatwaves = []domain.Heatwave{}
	}
	if snap.Recommendations == nil {
		snap.Recommendations = []domain.Recommendation{}
	}
	for i := range waves {
		if i == 0 || waves[i].MaxTempC > snap.MaxTempC {
			snap.MaxTempC = waves[i].MaxTempC
			snap.HumidityPct = waves[i].HumidityPct
		}
	}
	if len(waves) > 0 {
		snap.Level = domain.AlertLevelFor(snap.MaxTempC)
	}

	s.cache.Add(key, snap)
	return snap, nil
}

func (s *regionService) Invalidate() {
	s.cache.Purge()
}
