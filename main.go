// Package main provides the launch date application
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/micutio/launchday/internal"
	"github.com/micutio/launchday/reportapp"
	"github.com/micutio/launchday/tuiapp"
	"github.com/spf13/pflag"
)

const (
	// thisAppName is the name of this application as shown on notifications.
	thisAppName = "launchday"
	// defaultDate is preselected in the TUI date inputs.
	defaultDate = "2000-01-01"
)

type arguments struct {
	isReport    bool
	isNotify    bool
	date        string
	pictureDate string
	configPath  string
	dataset     string
	latLon      []float64
}

func main() {
	var args arguments

	setupCommandLineFlags(&args)

	// Parse all arguments provided to the program on launch.
	pflag.Parse()

	if err := run(&args); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", thisAppName, err)
		os.Exit(1)
	}
}

func run(args *arguments) error {
	cfg, err := internal.LoadConfig(args.configPath)
	if err != nil {
		return err
	}

	applyFlags(cfg, args)
	if err = cfg.Validate(); err != nil {
		return err
	}

	logParams, closeLog, err := newLogParams(cfg, args.isReport)
	if err != nil {
		return err
	}
	defer closeLog()

	logger := internal.NewLogger(logParams)
	slog.SetDefault(logger)

	ctx := context.Background()

	dataset, err := internal.LoadDataset(ctx, internal.NewHTTPClient(cfg.GetHTTPTimeout()), cfg.DatasetSource())
	if err != nil {
		logger.Error("unable to load launch dataset, exiting", slog.Any("error", err))
		return err
	}

	logger.Info("launch dataset loaded",
		slog.String("source", dataset.Source),
		slog.Int("records", len(dataset.Records)),
		slog.Int("skipped", dataset.Skipped))

	launchpad := internal.NewLaunchpadFromConfig(cfg, dataset, logger)

	if args.isReport {
		if args.date == "" && args.pictureDate == "" {
			return fmt.Errorf("--report needs --date or --picture-date")
		}

		notify := internal.NewNotify(thisAppName, logParams.ConsoleOut)
		return reportapp.Run(ctx, launchpad, notify, logger, reportapp.Options{
			Date:        args.date,
			PictureDate: args.pictureDate,
			Notify:      args.isNotify,
		})
	}

	preselected := defaultDate
	if args.date != "" {
		preselected = args.date
	}

	key, err := internal.ParseDateKey(preselected)
	if err != nil {
		return err
	}

	return tuiapp.Run(thisAppName, launchpad, key)
}

// applyFlags lets explicitly set flags win over the config file.
func applyFlags(cfg *internal.Config, args *arguments) {
	if args.dataset != "" {
		cfg.SetDatasetSource(args.dataset)
	}

	if pflag.CommandLine.Changed("latlon") && len(args.latLon) == 2 { //nolint:mnd // lat,lon
		cfg.Observer.Lat = args.latLon[0]
		cfg.Observer.Lon = args.latLon[1]
	}
}

// newLogParams sends logs to stderr in report mode and to the log file in TUI mode.
func newLogParams(cfg *internal.Config, isReport bool) (internal.LogParams, func(), error) {
	if isReport {
		return internal.LogParams{
			ConsoleOut: os.Stdout,
			ErrorOut:   os.Stderr,
			Level:      cfg.GetLogLevel(),
		}, func() {}, nil
	}

	logFile, err := internal.OpenLogFile(cfg.LogFile)
	if err != nil {
		return internal.LogParams{}, nil, err
	}

	return internal.LogParams{
			ConsoleOut: io.Discard,
			ErrorOut:   logFile,
			Level:      cfg.GetLogLevel(),
		}, func() {
			_ = logFile.Close()
		}, nil
}

func setupCommandLineFlags(args *arguments) {
	// Whether to print a report or launch the TUI app.
	pflag.BoolVarP(
		&args.isReport,
		"report",
		"r",
		false,
		"print the report for --date on the command line without TUI")
	pflag.Lookup("report").NoOptDefVal = "true"

	pflag.BoolVarP(
		&args.isNotify,
		"notify",
		"n",
		false,
		"send a desktop notification naming the launches of the report")
	pflag.Lookup("notify").NoOptDefVal = "true"

	pflag.StringVarP(&args.date, "date", "d", "", "launch date as YYYY-MM-DD")
	pflag.StringVarP(&args.pictureDate, "picture-date", "p", "", "date of a picture-only lookup as YYYY-MM-DD")
	pflag.StringVarP(&args.configPath, "config", "c", "launchday.yaml", "path of the YAML config file")
	pflag.StringVar(&args.dataset, "dataset", "", "file path or URL of the launch CSV")

	// Location to measure launch site distances from, provided as lat,lon coordinates
	pflag.Float64SliceVarP(
		&args.latLon,
		"latlon",
		"l",
		[]float64{0, 0},
		"define the location to measure distances to launch sites from")
}
