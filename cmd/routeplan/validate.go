package main

import (
	"fmt"
	"io"
	"os"

	"nagarsetu/internal/domain/entity"
	"nagarsetu/internal/errors"
	"nagarsetu/internal/infra/mapfeature"
	"nagarsetu/internal/infra/routing/loader"
	"nagarsetu/internal/infra/routing/tour"
	"nagarsetu/internal/util"
)

func runValidate(path string, out io.Writer) error {
	fmt.Fprintf(out, "Validating stops file: %s\n", path)

	info, err := os.Stat(path)
	if err != nil {
		return errors.Wrap(err, "stops file not accessible")
	}

	checksum, err := util.FileChecksum(path)
	if err != nil {
		return err
	}

	stops, err := loader.LoadStops(path)
	if err != nil {
		return err
	}

	// A placeholder start lets tour.Validate check stop IDs and coordinates.
	placeholder := &entity.RoutePoint{ID: startPointID, IsStart: true}
	if err := tour.Validate(placeholder, stops); err != nil {
		return errors.Wrap(err, "validation failed")
	}

	fmt.Fprintf(out, "  Size:     %s\n", util.FormatBytes(info.Size()))
	fmt.Fprintf(out, "  SHA-256:  %s\n", checksum)
	fmt.Fprintf(out, "  Stops:    %d\n", len(stops))

	if len(stops) > 0 {
		// Bounds only reads OrderedPoints.
		bound, _ := mapfeature.Bounds(&entity.Route{OrderedPoints: stops})
		fmt.Fprintf(out, "  Bounds:   lat [%.5f, %.5f], lng [%.5f, %.5f]\n",
			bound.Min.Lat(), bound.Max.Lat(), bound.Min.Lon(), bound.Max.Lon())
	}

	fmt.Fprintln(out, "Validation passed")

	return nil
}
