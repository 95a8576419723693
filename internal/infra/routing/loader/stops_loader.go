// Package loader reads and writes collection stops as CSV for offline planning.
package loader

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"

	"nagarsetu/internal/domain/entity"
	"nagarsetu/internal/errors"
	"nagarsetu/internal/infra/routing/tour"
)

// Expected CSV header: id,lat,lng[,address]. Columns may appear in any order.
const (
	columnID      = "id"
	columnLat     = "lat"
	columnLng     = "lng"
	columnAddress = "address"
)

// LoadStops reads stops from a CSV file.
func LoadStops(path string) ([]entity.RoutePoint, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	defer file.Close()

	stops, err := ReadStops(file)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}

	return stops, nil
}

// ReadStops parses stops from r. Rows are returned in file order; coordinate
// range and ID uniqueness are left to tour.Validate.
func ReadStops(r io.Reader) ([]entity.RoutePoint, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, errors.New("stops file is empty")
	}
	if err != nil {
		return nil, errors.WithStack(err)
	}

	columns, err := indexColumns(header)
	if err != nil {
		return nil, err
	}

	var stops []entity.RoutePoint
	lineNum := 1 // Start at 1 because we skipped header

	for {
		record, readErr := reader.Read()
		if errors.Is(readErr, io.EOF) {
			break
		}
		if readErr != nil {
			return nil, errors.WithStack(readErr)
		}
		lineNum++

		if isBlank(record) {
			continue
		}

		stop, parseErr := parseStop(record, columns, lineNum)
		if parseErr != nil {
			return nil, parseErr
		}

		stops = append(stops, stop)
	}

	return stops, nil
}

func indexColumns(header []string) (map[string]int, error) {
	columns := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\uFEFF")))
		columns[name] = i
	}

	for _, required := range []string{columnID, columnLat, columnLng} {
		if _, ok := columns[required]; !ok {
			return nil, errors.Errorf("stops header is missing the %q column", required)
		}
	}

	return columns, nil
}

func parseStop(record []string, columns map[string]int, lineNum int) (entity.RoutePoint, error) {
	field := func(name string) string {
		i, ok := columns[name]
		if !ok || i >= len(record) {
			return ""
		}

		return strings.TrimSpace(record[i])
	}

	id := field(columnID)
	if id == "" {
		return entity.RoutePoint{}, errors.Errorf("line %d: id is empty", lineNum)
	}

	lat, err := strconv.ParseFloat(field(columnLat), 64)
	if err != nil {
		return entity.RoutePoint{}, errors.Wrapf(err, "line %d: invalid lat", lineNum)
	}

	lng, err := strconv.ParseFloat(field(columnLng), 64)
	if err != nil {
		return entity.RoutePoint{}, errors.Wrapf(err, "line %d: invalid lng", lineNum)
	}

	return entity.RoutePoint{
		ID:        id,
		Latitude:  lat,
		Longitude: lng,
		Address:   field(columnAddress),
	}, nil
}

func isBlank(record []string) bool {
	for _, f := range record {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}

	return true
}

// WriteRoute writes the route in visiting order with the length of the leg
// that reaches each point.
func WriteRoute(w io.Writer, route *entity.Route) error {
	writer := csv.NewWriter(w)

	if err := writer.Write([]string{"order", columnID, columnLat, columnLng, columnAddress, "leg_km"}); err != nil {
		return errors.WithStack(err)
	}

	for i, p := range route.OrderedPoints {
		leg := 0.0
		if i > 0 {
			leg = tour.Distance(route.OrderedPoints[i-1], p)
		}

		if err := writer.Write([]string{
			strconv.Itoa(i),
			p.ID,
			strconv.FormatFloat(p.Latitude, 'f', -1, 64),
			strconv.FormatFloat(p.Longitude, 'f', -1, 64),
			p.Address,
			strconv.FormatFloat(leg, 'f', 2, 64),
		}); err != nil {
			return errors.WithStack(err)
		}
	}

	writer.Flush()

	return errors.WithStack(writer.Error())
}
