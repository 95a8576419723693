package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"nagarsetu/internal/errors"
	"nagarsetu/internal/infra/routing/tour"
)

// Supported subcommands:
// - optimize: Order the stops in a CSV file into a collection route
// - validate: Check a stops file before handing it to crews

func main() {
	optimizeCmd := flag.NewFlagSet("optimize", flag.ExitOnError)
	validateCmd := flag.NewFlagSet("validate", flag.ExitOnError)

	// optimize parameters
	optimizeStops := optimizeCmd.String("stops", "", "CSV file with id,lat,lng[,address] columns")
	optimizeStartLat := optimizeCmd.Float64("start-lat", 0, "Latitude of the depot")
	optimizeStartLng := optimizeCmd.Float64("start-lng", 0, "Longitude of the depot")
	optimizeStartAddress := optimizeCmd.String("start-address", "", "Label for the depot (defaults to its coordinates)")
	optimizeSpeed := optimizeCmd.Float64("speed", tour.DefaultSpeedKmh, "Average vehicle speed in km/h")
	optimizeThreshold := optimizeCmd.Int("two-opt-threshold", tour.DefaultTwoOptThreshold, "Run 2-opt only above this many points")
	optimizeMaxPasses := optimizeCmd.Int("max-passes", tour.DefaultMaxPasses, "Cap on 2-opt passes, negative for no cap")
	optimizeBudget := optimizeCmd.Duration("time-budget", tour.DefaultTimeBudget, "Wall-clock budget for 2-opt, negative for none")
	optimizeOutput := optimizeCmd.String("output", "", "Write the ordered route CSV here instead of stdout")
	optimizeGeoJSON := optimizeCmd.String("geojson", "", "Also write the route as GeoJSON to this file")
	optimizeQRCode := optimizeCmd.String("qrcode", "", "Also write a navigation QR code PNG to this file")
	optimizeQRSize := optimizeCmd.Int("qrcode-size", 256, "QR code size in pixels")

	// validate parameters
	validateStops := validateCmd.String("stops", "", "CSV file to validate")

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	flags := routeplanFlags{
		Optimize: optimizeFlags{
			cmd:             optimizeCmd,
			stops:           optimizeStops,
			startLat:        optimizeStartLat,
			startLng:        optimizeStartLng,
			startAddress:    optimizeStartAddress,
			speed:           optimizeSpeed,
			twoOptThreshold: optimizeThreshold,
			maxPasses:       optimizeMaxPasses,
			timeBudget:      optimizeBudget,
			output:          optimizeOutput,
			geojson:         optimizeGeoJSON,
			qrcode:          optimizeQRCode,
			qrcodeSize:      optimizeQRSize,
		},
		Validate: validateFlags{
			cmd:   validateCmd,
			stops: validateStops,
		},
	}

	if err := runSubcommand(&flags); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type routeplanFlags struct {
	Optimize optimizeFlags
	Validate validateFlags
}

type optimizeFlags struct {
	cmd             *flag.FlagSet
	stops           *string
	startLat        *float64
	startLng        *float64
	startAddress    *string
	speed           *float64
	twoOptThreshold *int
	maxPasses       *int
	timeBudget      *time.Duration
	output          *string
	geojson         *string
	qrcode          *string
	qrcodeSize      *int
}

type validateFlags struct {
	cmd   *flag.FlagSet
	stops *string
}

func runSubcommand(flags *routeplanFlags) error {
	switch os.Args[1] {
	case "optimize":
		return handleOptimize(flags)
	case "validate":
		return handleValidate(flags)
	default:
		printUsage()

		return errors.New("unknown subcommand")
	}
}

func handleOptimize(flags *routeplanFlags) error {
	f := flags.Optimize
	if err := f.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse optimize flags")
	}

	if *f.stops == "" {
		return errors.New("--stops flag is required for optimize command")
	}

	startSet := false
	f.cmd.Visit(func(fl *flag.Flag) {
		if fl.Name == "start-lat" || fl.Name == "start-lng" {
			startSet = true
		}
	})
	if !startSet {
		return errors.New("--start-lat and --start-lng are required for optimize command")
	}

	return runOptimize(optimizeRequest{
		StopsPath:    *f.stops,
		StartLat:     *f.startLat,
		StartLng:     *f.startLng,
		StartAddress: *f.startAddress,
		Options: tour.Options{
			SpeedKmh:        *f.speed,
			TwoOptThreshold: *f.twoOptThreshold,
			Limits: tour.TwoOptLimits{
				MaxPasses:  *f.maxPasses,
				TimeBudget: *f.timeBudget,
			},
		},
		OutputPath:  *f.output,
		GeoJSONPath: *f.geojson,
		QRCodePath:  *f.qrcode,
		QRCodeSize:  *f.qrcodeSize,
	}, os.Stdout, os.Stderr)
}

func handleValidate(flags *routeplanFlags) error {
	if err := flags.Validate.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse validate flags")
	}

	if *flags.Validate.stops == "" {
		return errors.New("--stops flag is required for validate command")
	}

	return runValidate(*flags.Validate.stops, os.Stdout)
}

func printUsage() {
	fmt.Println("Usage: routeplan <command> [options]")
	fmt.Println("")
	fmt.Println("Commands:")
	fmt.Println("  optimize    Order stops into a collection route")
	fmt.Println("  validate    Validate a stops file")
	fmt.Println("")
	fmt.Println("Use 'routeplan <command> -h' for more information about a command.")
}
