package geo

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"
)

// ErrNoLocator is reported when no position provider is configured.
var ErrNoLocator = errors.New("no locator configured")

// Locator provides the device position. Locate must honour ctx cancellation.
type Locator interface {
	Locate(ctx context.Context) (Point, error)
}

// LocatorFunc adapts a function to Locator.
type LocatorFunc func(ctx context.Context) (Point, error)

// Locate calls f.
func (f LocatorFunc) Locate(ctx context.Context) (Point, error) { return f(ctx) }

// StaticLocator always reports the same point.
type StaticLocator Point

// Locate returns the stored point.
func (s StaticLocator) Locate(context.Context) (Point, error) { return Point(s), nil }

// Focus is where the map should be centered.
type Focus struct {
	Center              Point         `json:"center"`
	Zoom                int           `json:"zoom"`
	Nearest             *NearestMatch `json:"nearest"`
	LocationUnavailable bool          `json:"location_unavailable"`
	Reason              string        `json:"reason,omitempty"`
}

// ResolveFocus asks locator for a position once, bounded by timeout, and
// centers on it with the nearest region attached. If the position cannot be
// obtained the focus falls back to SenegalCenter with LocationUnavailable set.
// A non-positive timeout means only ctx bounds the request.
func ResolveFocus(ctx context.Context, locator Locator, regions []Region, timeout time.Duration) Focus {
	p, err := locate(ctx, locator, timeout)
	if err != nil {
		slog.Debug("location unavailable", slog.String("error", err.Error()))
		return Focus{
			Center:              SenegalCenter,
			Zoom:                CountryZoom,
			LocationUnavailable: true,
			Reason:              err.Error(),
		}
	}
	return Focus{
		Center:  p,
		Zoom:    RegionZoom,
		Nearest: FindNearest(p, regions),
	}
}

func locate(ctx context.Context, locator Locator, timeout time.Duration) (Point, error) {
	if locator == nil {
		return Point{}, ErrNoLocator
	}
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	type result struct {
		p   Point
		err error
	}
	ch := make(chan result, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				ch <- result{err: fmt.Errorf("locator panicked: %v", r)}
			}
		}()
		p, err := locator.Locate(ctx)
		ch <- result{p: p, err: err}
	}()

	select {
	case res := <-ch:
		if res.err != nil {
			return Point{}, fmt.Errorf("geo.locate: %w", res.err)
		}
		return res.p, nil
	case <-ctx.Done():
		return Point{}, fmt.Errorf("geo.locate: %w", ctx.Err())
	}
}
