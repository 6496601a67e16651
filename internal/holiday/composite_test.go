package holiday

import (
	"errors"
	"fmt"
	"testing"

	"go.uber.org/zap"

	"github.com/username/datecalc/pkg/civil"
)

type stubProvider struct {
	entries   map[string][]Entry
	countries []string
	err       error
}

func (s *stubProvider) Holidays(year int, country string) ([]Entry, error) {
	if s.err != nil {
		return nil, s.err
	}
	entries, ok := s.entries[NormalizeCountry(country)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedCountry, country)
	}
	return entries, nil
}

func (s *stubProvider) Countries() ([]string, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.countries, nil
}

func stubEntry(t *testing.T, iso, name string) Entry {
	t.Helper()
	var d civil.Date
	if err := d.UnmarshalText([]byte(iso)); err != nil {
		t.Fatalf("UnmarshalText(%q) error = %v", iso, err)
	}
	return Entry{Date: d, Name: name}
}

func TestCompositeProvider_PrimaryWins(t *testing.T) {
	logger, _ := zap.NewDevelopment()
	primary := &stubProvider{
		entries:   map[string][]Entry{"US": {stubEntry(t, "2025-07-04", "Independence Day")}},
		countries: []string{"US"},
	}
	fallback := &stubProvider{
		entries:   map[string][]Entry{"US": {stubEntry(t, "2025-07-04", "Wrong Source")}},
		countries: []string{"US", "TW"},
	}

	cp := NewCompositeProvider(primary, fallback, logger)

	entries, err := cp.Holidays(2025, "US")
	if err != nil {
		t.Fatalf("Holidays() error = %v", err)
	}
	if len(entries) != 1 || entries[0].Name != "Independence Day" {
		t.Errorf("Holidays() = %v, want primary's Independence Day", entries)
	}
}

func TestCompositeProvider_FallsBackForUncoveredCountry(t *testing.T) {
	logger, _ := zap.NewDevelopment()
	primary := &stubProvider{entries: map[string][]Entry{}}
	fallback := &stubProvider{
		entries: map[string][]Entry{"TW": {stubEntry(t, "2025-10-10", "National Day")}},
	}

	cp := NewCompositeProvider(primary, fallback, logger)

	entries, err := cp.Holidays(2025, "TW")
	if err != nil {
		t.Fatalf("Holidays() error = %v", err)
	}
	if len(entries) != 1 || entries[0].Name != "National Day" {
		t.Errorf("Holidays() = %v, want fallback's National Day", entries)
	}
}

func TestCompositeProvider_BothFail(t *testing.T) {
	logger, _ := zap.NewDevelopment()
	primary := &stubProvider{entries: map[string][]Entry{}}
	fallback := &stubProvider{entries: map[string][]Entry{}}

	cp := NewCompositeProvider(primary, fallback, logger)

	_, err := cp.Holidays(2025, "XX")
	if !errors.Is(err, ErrUnsupportedCountry) {
		t.Errorf("Holidays() error = %v, want ErrUnsupportedCountry", err)
	}
}

func TestCompositeProvider_CountriesUnion(t *testing.T) {
	logger, _ := zap.NewDevelopment()
	primary := &stubProvider{countries: []string{"DE", "US"}}
	fallback := &stubProvider{countries: []string{"TW", "US"}}

	cp := NewCompositeProvider(primary, fallback, logger)

	codes, err := cp.Countries()
	if err != nil {
		t.Fatalf("Countries() error = %v", err)
	}
	want := []string{"DE", "TW", "US"}
	if len(codes) != len(want) {
		t.Fatalf("Countries() = %v, want %v", codes, want)
	}
	for i := range want {
		if codes[i] != want[i] {
			t.Errorf("Countries()[%d] = %s, want %s", i, codes[i], want[i])
		}
	}
}
