package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"nagarsetu/internal/domain/entity"
	"nagarsetu/internal/errors"
	"nagarsetu/internal/infra/mapfeature"
	"nagarsetu/internal/infra/qrcode"
	"nagarsetu/internal/infra/routing/loader"
	"nagarsetu/internal/infra/routing/tour"
	"nagarsetu/internal/util"
)

const startPointID = "start"

type optimizeRequest struct {
	StopsPath    string
	StartLat     float64
	StartLng     float64
	StartAddress string
	Options      tour.Options

	OutputPath  string
	GeoJSONPath string
	QRCodePath  string
	QRCodeSize  int
}

// runOptimize writes the route CSV to OutputPath or stdout and a summary to summary.
func runOptimize(req optimizeRequest, stdout, summary io.Writer) error {
	stops, err := loader.LoadStops(req.StopsPath)
	if err != nil {
		return err
	}

	start := &entity.RoutePoint{
		ID:        startPointID,
		Latitude:  req.StartLat,
		Longitude: req.StartLng,
		IsStart:   true,
		Address:   req.StartAddress,
	}
	if start.Address == "" {
		start.Address = entity.CoordinateLabel(req.StartLat, req.StartLng)
	}

	route, err := tour.Optimize(start, stops, req.Options)
	if err != nil {
		return errors.Wrap(err, "failed to optimize route")
	}

	if err := writeRouteCSV(req.OutputPath, route, stdout); err != nil {
		return err
	}

	if req.GeoJSONPath != "" {
		if err := writeGeoJSON(req.GeoJSONPath, route); err != nil {
			return err
		}
	}

	if req.QRCodePath != "" {
		if err := writeQRCode(req.QRCodePath, req.QRCodeSize, route); err != nil {
			return err
		}
	}

	fmt.Fprintf(summary, "Stops:    %d\n", len(route.Stops()))
	fmt.Fprintf(summary, "Distance: %s\n", util.FormatDistance(route.TotalDistanceKm))
	fmt.Fprintf(summary, "Time:     %s\n", util.FormatTravelTime(route.EstimatedMinutes))
	if !route.Converged {
		fmt.Fprintf(summary, "Warning: 2-opt stopped after %d passes before converging\n", route.Passes)
	}

	return nil
}

func writeRouteCSV(path string, route *entity.Route, stdout io.Writer) error {
	if path == "" {
		return loader.WriteRoute(stdout, route)
	}

	file, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "failed to create route file")
	}
	defer file.Close()

	if err := loader.WriteRoute(file, route); err != nil {
		return err
	}

	return errors.WithStack(file.Close())
}

func writeGeoJSON(path string, route *entity.Route) error {
	data, err := json.MarshalIndent(mapfeature.RouteFeatureCollection(route), "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to encode GeoJSON")
	}

	return errors.Wrap(os.WriteFile(path, data, 0o644), "failed to write GeoJSON")
}

func writeQRCode(path string, size int, route *entity.Route) error {
	png, err := qrcode.NewQRCodeService(size, "M").GenerateRouteQR(route)
	if err != nil {
		return errors.Wrap(err, "failed to generate QR code")
	}

	return errors.Wrap(os.WriteFile(path, png, 0o644), "failed to write QR code")
}
