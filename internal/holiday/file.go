package holiday

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/username/datecalc/pkg/civil"
)

// FileProvider serves holidays from a local text file, one holiday per
// line:
//
//	# comment
//	2025-01-01 TW Republic Day
//	2025-01-28 TW Lunar New Year's Eve
//
// It exists for countries the embedded rule library does not cover.
type FileProvider struct {
	filePath string
	logger   *zap.Logger
	data     map[string][]Entry // country code -> all entries, sorted
}

// NewFileProvider creates a FileProvider. Call Load before use.
func NewFileProvider(filePath string, logger *zap.Logger) *FileProvider {
	return &FileProvider{
		filePath: filePath,
		logger:   logger,
		data:     make(map[string][]Entry),
	}
}

// Load reads the holiday file. Malformed lines are logged and skipped so
// a single typo does not take the whole file down.
func (fp *FileProvider) Load() error {
	file, err := os.Open(fp.filePath)
	if err != nil {
		return fmt.Errorf("failed to open holiday file: %w", err)
	}
	defer file.Close()

	count := 0
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		// Format: YYYY-MM-DD CC Holiday name
		parts := strings.SplitN(line, " ", 3)
		if len(parts) < 3 {
			fp.logger.Warn("Invalid holiday line", zap.String("line", line))
			continue
		}

		var date civil.Date
		if err := date.UnmarshalText([]byte(parts[0])); err != nil {
			fp.logger.Warn("Failed to parse holiday date",
				zap.String("date", parts[0]),
				zap.Error(err))
			continue
		}

		code := NormalizeCountry(parts[1])
		if len(code) != 2 {
			fp.logger.Warn("Invalid country code", zap.String("code", parts[1]))
			continue
		}

		fp.data[code] = append(fp.data[code], Entry{Date: date, Name: parts[2]})
		count++
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("error reading holiday file: %w", err)
	}

	for code := range fp.data {
		sortEntries(fp.data[code])
	}

	fp.logger.Info("Holiday file loaded",
		zap.String("file", fp.filePath),
		zap.Int("countries", len(fp.data)),
		zap.Int("holidays", count))

	return nil
}

// Holidays returns the file's holidays for the country in the given
// year, sorted ascending.
func (fp *FileProvider) Holidays(year int, country string) ([]Entry, error) {
	code := NormalizeCountry(country)
	all, ok := fp.data[code]
	if !ok {
		return nil, fmt.Errorf("%w: %q not present in %s", ErrUnsupportedCountry, country, fp.filePath)
	}

	entries := make([]Entry, 0, len(all))
	for _, e := range all {
		if e.Date.Year == year {
			entries = append(entries, e)
		}
	}
	return entries, nil
}

// Countries returns the country codes present in the file, sorted.
func (fp *FileProvider) Countries() ([]string, error) {
	codes := make([]string, 0, len(fp.data))
	for code := range fp.data {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes, nil
}
