package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/username/datecalc/internal/config"
	"github.com/username/datecalc/internal/engine"
	"github.com/username/datecalc/internal/holiday"
	"github.com/username/datecalc/pkg/civil"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	configPath string
	logger     *zap.Logger
	out        io.Writer = os.Stdout
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "datecalc",
		Short: "Verified date and calendar calculations",
		Long:  "Weekday lookup, date arithmetic, ranges, differences and holiday calendars without guessing",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Load config to get log file path
			cfg, err := config.Load(configPath)
			if err == nil && cfg.Log.File != "" {
				logger, err = initFileLogger(cfg.Log.File, cfg.Log.Level)
				if err != nil {
					initLogger() // Fallback to console
				}
			} else {
				initLogger() // Default console logger
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file path")

	rootCmd.AddCommand(
		infoCmd(),
		weekdayCmd(),
		addCmd(),
		diffCmd(),
		rangeCmd(),
		relativeCmd(),
		holidaysCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func infoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <date>",
		Short: "Show everything about a date",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := initializeEngine()
			if err != nil {
				return err
			}

			d, err := eng.ParseDate(args[0])
			if err != nil {
				return err
			}

			info := eng.Info(d)
			printf("\nDate information for %s\n", info.Formatted)
			println40()
			printf("  date:          %s\n", info.Date)
			printf("  day of week:   %s (%d)\n", info.Weekday, int(info.Weekday))
			printf("  quarter:       Q%d\n", info.Quarter)
			printf("  week:          %d of %d\n", info.WeekNumber, info.WeekYear)
			printf("  day of year:   %d\n", info.DayOfYear)
			printf("  days in month: %d\n", info.DaysInMonth)
			printf("  leap year:     %v\n", info.IsLeapYear)
			printf("  weekend:       %v\n", info.IsWeekend)
			if info.Holiday != "" {
				printf("  holiday:       %s\n", info.Holiday)
			}
			printf("  relative:      %s\n", info.Relative)
			return nil
		},
	}
}

func weekdayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "weekday <date>",
		Short: "Show the day of week for a date",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := initializeEngine()
			if err != nil {
				return err
			}

			d, err := eng.ParseDate(args[0])
			if err != nil {
				return err
			}

			printf("%s is a %s\n", d, d.Weekday())
			return nil
		},
	}
}

func addCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <date> <amount> <unit>",
		Short: "Add days, weeks, months or years to a date (negative amounts subtract)",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := initializeEngine()
			if err != nil {
				return err
			}

			d, err := eng.ParseDate(args[0])
			if err != nil {
				return err
			}
			amount, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid amount %q: expected an integer", args[1])
			}
			unit, err := civil.ParseUnit(args[2])
			if err != nil {
				return err
			}

			result, err := eng.Add(d, amount, unit)
			if err != nil {
				return err
			}

			printf("%s %+d %s = %s\n", d, amount, unit, result)
			printf("   -> %s\n", result.Format())
			return nil
		},
	}
}

func diffCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "diff <date1> <date2>",
		Short: "Show the difference between two dates",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := initializeEngine()
			if err != nil {
				return err
			}

			a, err := eng.ParseDate(args[0])
			if err != nil {
				return err
			}
			b, err := eng.ParseDate(args[1])
			if err != nil {
				return err
			}

			result := eng.Diff(a, b)
			printf("\nDifference: %s -> %s\n", a, b)
			println40()
			printf("  total days:        %d\n", result.TotalDays)
			printf("  total weeks:       %.2f\n", result.TotalWeeks)
			printf("  weeks and days:    %d weeks, %d days\n", result.Weeks, result.RemainderDays)
			printf("  years/months/days: %d years, %d months, %d days\n", result.Years, result.Months, result.Days)
			printf("  calendar months:   %d\n", result.CalendarMonths)
			return nil
		},
	}
}

func rangeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "range <start> <end>",
		Short: "List every date between two bounds inclusive",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := initializeEngine()
			if err != nil {
				return err
			}

			a, err := eng.ParseDate(args[0])
			if err != nil {
				return err
			}
			b, err := eng.ParseDate(args[1])
			if err != nil {
				return err
			}

			entries := eng.Range(a, b)
			printf("\nDate range: %s to %s (%d days)\n", entries[0].Date, entries[len(entries)-1].Date, len(entries))
			println40()
			for _, entry := range entries {
				line := fmt.Sprintf("  %s (%s)", entry.Date, entry.Weekday.Abbrev())
				if entry.Holiday != "" {
					line += fmt.Sprintf(" [%s]", entry.Holiday)
				}
				if entry.Weekend {
					line += " [weekend]"
				}
				printf("%s\n", line)
			}
			return nil
		},
	}
}

func relativeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "relative <date>",
		Short: "Describe a date relative to today",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := initializeEngine()
			if err != nil {
				return err
			}

			d, err := eng.ParseDate(args[0])
			if err != nil {
				return err
			}

			printf("%s is %s\n", d.Format(), eng.Relative(d))
			return nil
		},
	}
}

func holidaysCmd() *cobra.Command {
	var country string

	cmd := &cobra.Command{
		Use:   "holidays [year]",
		Short: "List holidays for a year and country ('--country list' enumerates supported codes)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := initializeEngine()
			if err != nil {
				return err
			}

			// "list" is a country enumeration query, not a date query.
			if holiday.NormalizeCountry(country) == "LIST" {
				codes, err := eng.Countries()
				if err != nil {
					return err
				}
				printf("\nSupported countries (%d total)\n", len(codes))
				println40()
				for i := 0; i < len(codes); i += 8 {
					end := i + 8
					if end > len(codes) {
						end = len(codes)
					}
					line := ""
					for _, code := range codes[i:end] {
						line += "  " + code
					}
					printf("%s\n", line)
				}
				return nil
			}

			year := eng.Today().Year
			if len(args) == 1 {
				year, err = strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("invalid year %q: expected an integer", args[0])
				}
			}

			entries, err := eng.Holidays(year, country)
			if err != nil {
				return err
			}

			label := country
			if label == "" {
				label = "default country"
			}
			printf("\nHolidays in %s for %d\n", label, year)
			println40()
			if len(entries) == 0 {
				printf("  No holidays found\n")
				return nil
			}
			for _, entry := range entries {
				printf("  %s (%s): %s\n", entry.Date, entry.Date.Weekday().Abbrev(), entry.Name)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&country, "country", "C", "", "2-letter country code (default from config); use 'list' to see supported countries")

	return cmd
}

// initializeEngine wires the configured holiday provider, clock and
// logger into an Engine.
func initializeEngine() (*engine.Engine, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	cfg.ExpandEnvVars()

	var provider holiday.Provider

	switch cfg.Holidays.Provider {
	case "nager":
		logger.Info("Using Nager.Date holiday API")
		provider = holiday.NewNagerProvider(
			cfg.Holidays.NagerURL,
			cfg.Holidays.GetCacheTTL(),
			logger,
		)

	default:
		logger.Info("Using embedded holiday calendars")
		provider = holiday.NewEmbeddedProvider(logger)
	}

	if cfg.Holidays.OverridesFile != "" {
		composite := holiday.NewCompositeProvider(
			provider,
			holiday.NewFileProvider(cfg.Holidays.OverridesFile, logger),
			logger,
		)
		if err := composite.LoadFallback(); err != nil {
			logger.Warn("Failed to load holiday overrides, continuing without them",
				zap.Error(err))
		} else {
			provider = composite
		}
	}

	return engine.New(provider, cfg.Holidays.DefaultCountry, nil, logger), nil
}

func printf(format string, a ...interface{}) {
	fmt.Fprintf(out, format, a...)
}

func println40() {
	fmt.Fprintln(out, "----------------------------------------")
}

func initLogger() {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.OutputPaths = []string{"stderr"}

	var err error
	logger, err = config.Build()
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
}

func initFileLogger(logFile string, level string) (*zap.Logger, error) {
	// Setup lumberjack for log rotation
	logWriter := &lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    100,  // MB
		MaxBackups: 3,    // Keep max 3 old log files
		MaxAge:     28,   // days
		Compress:   true, // Compress old logs with gzip
	}

	// Setup encoder
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	// Parse log level
	var zapLevel zapcore.Level
	if err := zapLevel.UnmarshalText([]byte(level)); err != nil {
		zapLevel = zapcore.InfoLevel
	}

	// Create core with lumberjack writer
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.AddSync(logWriter),
		zapLevel,
	)

	return zap.New(core), nil
}
