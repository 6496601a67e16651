package holiday

import (
	"fmt"
	"sort"

	"go.uber.org/zap"
)

// CompositeProvider queries a primary provider and falls back to a
// secondary one when the primary fails or does not support the country.
// Typical wiring: embedded or API provider as primary, a local override
// file as fallback for uncovered countries.
type CompositeProvider struct {
	primary  Provider
	fallback Provider
	logger   *zap.Logger
}

// NewCompositeProvider creates a CompositeProvider.
func NewCompositeProvider(primary, fallback Provider, logger *zap.Logger) *CompositeProvider {
	return &CompositeProvider{
		primary:  primary,
		fallback: fallback,
		logger:   logger,
	}
}

// Holidays tries the primary provider first.
func (cp *CompositeProvider) Holidays(year int, country string) ([]Entry, error) {
	entries, err := cp.primary.Holidays(year, country)
	if err == nil {
		return entries, nil
	}

	cp.logger.Warn("Primary holiday provider failed, trying fallback",
		zap.Int("year", year),
		zap.String("country", country),
		zap.Error(err))

	entries, fallbackErr := cp.fallback.Holidays(year, country)
	if fallbackErr != nil {
		// Keep the primary error visible; it usually names the real cause.
		return nil, fmt.Errorf("primary: %w; fallback: %v", err, fallbackErr)
	}
	return entries, nil
}

// Countries returns the union of both providers' codes, sorted.
func (cp *CompositeProvider) Countries() ([]string, error) {
	primary, err := cp.primary.Countries()
	if err != nil {
		return nil, err
	}

	fallback, err := cp.fallback.Countries()
	if err != nil {
		cp.logger.Warn("Fallback provider country listing failed", zap.Error(err))
		fallback = nil
	}

	seen := make(map[string]struct{}, len(primary)+len(fallback))
	codes := make([]string, 0, len(primary)+len(fallback))
	for _, code := range append(primary, fallback...) {
		if _, ok := seen[code]; ok {
			continue
		}
		seen[code] = struct{}{}
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes, nil
}

// LoadFallback loads the fallback provider when it is file-backed.
func (cp *CompositeProvider) LoadFallback() error {
	if fp, ok := cp.fallback.(*FileProvider); ok {
		if err := fp.Load(); err != nil {
			return fmt.Errorf("failed to load holiday overrides: %w", err)
		}
		cp.logger.Info("Holiday overrides loaded")
	}
	return nil
}
