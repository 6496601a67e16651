package holiday

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/username/datecalc/pkg/civil"
)

const (
	defaultNagerBaseURL = "https://date.nager.at"
	defaultHTTPTimeout  = 10 * time.Second
	defaultCacheTTL     = 24 * time.Hour
)

// NagerProvider serves holidays from the Nager.Date public holiday API.
// Responses are cached in memory with a TTL so repeated lookups for the
// same (year, country) pair hit the network once.
type NagerProvider struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
	cacheTTL   time.Duration
	cacheMu    sync.RWMutex
	cache      map[string]*cachedHolidays
	countries  []string
}

type cachedHolidays struct {
	entries   []Entry
	fetchedAt time.Time
}

// nagerHoliday is a single item of the PublicHolidays response.
type nagerHoliday struct {
	Date      string `json:"date"` // YYYY-MM-DD
	LocalName string `json:"localName"`
	Name      string `json:"name"`
	Country   string `json:"countryCode"`
}

// nagerCountry is a single item of the AvailableCountries response.
type nagerCountry struct {
	CountryCode string `json:"countryCode"`
	Name        string `json:"name"`
}

// NewNagerProvider creates a NagerProvider. An empty baseURL selects the
// public API endpoint.
func NewNagerProvider(baseURL string, cacheTTL time.Duration, logger *zap.Logger) *NagerProvider {
	if baseURL == "" {
		baseURL = defaultNagerBaseURL
	}
	if cacheTTL == 0 {
		cacheTTL = defaultCacheTTL
	}

	return &NagerProvider{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: defaultHTTPTimeout,
		},
		logger:   logger,
		cacheTTL: cacheTTL,
		cache:    make(map[string]*cachedHolidays),
	}
}

// Holidays returns all public holidays for the country in the given
// year, sorted ascending.
func (p *NagerProvider) Holidays(year int, country string) ([]Entry, error) {
	code := NormalizeCountry(country)
	cacheKey := fmt.Sprintf("%d-%s", year, code)

	p.cacheMu.RLock()
	if cached, ok := p.cache[cacheKey]; ok {
		if time.Since(cached.fetchedAt) < p.cacheTTL {
			p.cacheMu.RUnlock()
			p.logger.Debug("Using cached holidays", zap.String("key", cacheKey))
			return cached.entries, nil
		}
	}
	p.cacheMu.RUnlock()

	entries, err := p.fetchHolidays(year, code)
	if err != nil {
		return nil, err
	}

	p.cacheMu.Lock()
	p.cache[cacheKey] = &cachedHolidays{entries: entries, fetchedAt: time.Now()}
	p.cacheMu.Unlock()

	return entries, nil
}

func (p *NagerProvider) fetchHolidays(year int, code string) ([]Entry, error) {
	url := fmt.Sprintf("%s/api/v3/PublicHolidays/%d/%s", p.baseURL, year, code)

	p.logger.Debug("Fetching holidays",
		zap.String("url", url),
		zap.Int("year", year),
		zap.String("country", code))

	resp, err := p.httpClient.Get(url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch holidays: %w", err)
	}
	defer resp.Body.Close()

	// The API answers 404 for country codes it has no calendar for.
	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%w: %q (use 'list' to see supported codes)", ErrUnsupportedCountry, code)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("holiday API returned status %d", resp.StatusCode)
	}

	var payload []nagerHoliday
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to parse holiday response: %w", err)
	}

	entries, err := entriesFromNager(payload)
	if err != nil {
		return nil, err
	}

	p.logger.Info("Holidays fetched",
		zap.Int("year", year),
		zap.String("country", code),
		zap.Int("count", len(entries)))

	return entries, nil
}

// entriesFromNager converts API items into sorted entries.
func entriesFromNager(payload []nagerHoliday) ([]Entry, error) {
	entries := make([]Entry, 0, len(payload))
	for _, item := range payload {
		var d civil.Date
		if err := d.UnmarshalText([]byte(item.Date)); err != nil {
			return nil, fmt.Errorf("holiday %q has malformed date %q: %w", item.Name, item.Date, err)
		}
		name := item.Name
		if name == "" {
			name = item.LocalName
		}
		entries = append(entries, Entry{Date: d, Name: name})
	}
	sortEntries(entries)
	return entries, nil
}

// Countries returns the country codes the API supports, fetched once per
// process.
func (p *NagerProvider) Countries() ([]string, error) {
	p.cacheMu.RLock()
	cached := p.countries
	p.cacheMu.RUnlock()
	if cached != nil {
		return cached, nil
	}

	url := p.baseURL + "/api/v3/AvailableCountries"
	resp, err := p.httpClient.Get(url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch supported countries: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("holiday API returned status %d", resp.StatusCode)
	}

	var payload []nagerCountry
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to parse countries response: %w", err)
	}

	codes := codesFromNager(payload)

	p.cacheMu.Lock()
	p.countries = codes
	p.cacheMu.Unlock()

	return codes, nil
}

func codesFromNager(payload []nagerCountry) []string {
	codes := make([]string, 0, len(payload))
	for _, c := range payload {
		if c.CountryCode != "" {
			codes = append(codes, NormalizeCountry(c.CountryCode))
		}
	}
	sort.Strings(codes)
	return codes
}

// ClearCache drops all cached responses.
func (p *NagerProvider) ClearCache() {
	p.cacheMu.Lock()
	defer p.cacheMu.Unlock()

	p.cache = make(map[string]*cachedHolidays)
	p.countries = nil
	p.logger.Info("Holiday cache cleared")
}
