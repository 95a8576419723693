package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"nagarsetu/internal/infra/routing/tour"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const delhiStops = `id,lat,lng,address
A,28.7041,77.1025,Rohini
B,28.5355,77.3910,Noida
C,28.4595,77.0266,Gurugram
`

func writeStops(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "stops.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestRunOptimize_DelhiScenario(t *testing.T) {
	dir := t.TempDir()
	geojsonPath := filepath.Join(dir, "route.geojson")
	qrPath := filepath.Join(dir, "route.png")

	var stdout, summary bytes.Buffer
	err := runOptimize(optimizeRequest{
		StopsPath:   writeStops(t, delhiStops),
		StartLat:    28.6139,
		StartLng:    77.2090,
		Options:     tour.DefaultOptions(),
		GeoJSONPath: geojsonPath,
		QRCodePath:  qrPath,
		QRCodeSize:  128,
	}, &stdout, &summary)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(stdout.String()), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "order,id,lat,lng,address,leg_km", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "0,start,28.6139,77.209,"))
	assert.True(t, strings.HasPrefix(lines[2], "1,A,"))
	assert.True(t, strings.HasPrefix(lines[3], "2,C,"))
	assert.True(t, strings.HasPrefix(lines[4], "3,B,"))

	assert.Contains(t, summary.String(), "Stops:    3")
	assert.Contains(t, summary.String(), "79.23 km")
	assert.Contains(t, summary.String(), "2 h 39 min")
	assert.NotContains(t, summary.String(), "Warning")

	geojson, err := os.ReadFile(geojsonPath)
	require.NoError(t, err)
	assert.Contains(t, string(geojson), `"FeatureCollection"`)

	png, err := os.ReadFile(qrPath)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png[:4])
}

func TestRunOptimize_WritesOutputFile(t *testing.T) {
	output := filepath.Join(t.TempDir(), "route.csv")

	var stdout, summary bytes.Buffer
	err := runOptimize(optimizeRequest{
		StopsPath:    writeStops(t, delhiStops),
		StartLat:     28.6139,
		StartLng:     77.2090,
		StartAddress: "Depot",
		OutputPath:   output,
	}, &stdout, &summary)
	require.NoError(t, err)

	assert.Empty(t, stdout.String())
	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(data), "0,start,28.6139,77.209,Depot,0.00")
}

func TestRunOptimize_Errors(t *testing.T) {
	var stdout, summary bytes.Buffer

	err := runOptimize(optimizeRequest{StopsPath: filepath.Join(t.TempDir(), "missing.csv")}, &stdout, &summary)
	assert.Error(t, err)

	err = runOptimize(optimizeRequest{
		StopsPath: writeStops(t, delhiStops),
		StartLat:  91,
		StartLng:  77.2090,
	}, &stdout, &summary)
	require.Error(t, err)
	assert.ErrorIs(t, err, tour.ErrInvalidCoordinate)
}

func TestRunValidate(t *testing.T) {
	var out bytes.Buffer

	require.NoError(t, runValidate(writeStops(t, delhiStops), &out))
	assert.Contains(t, out.String(), "Stops:    3")
	assert.Contains(t, out.String(), "lat [28.45950, 28.70410]")
	assert.Contains(t, out.String(), "Validation passed")
}

func TestRunValidate_Failures(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{
			name:    "duplicate id",
			content: "id,lat,lng\nA,28.70,77.10\nA,28.53,77.39\n",
			wantErr: tour.ErrDuplicatePointID,
		},
		{
			name:    "coordinate out of range",
			content: "id,lat,lng\nA,128.70,77.10\n",
			wantErr: tour.ErrInvalidCoordinate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer

			err := runValidate(writeStops(t, tt.content), &out)

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.NotContains(t, out.String(), "Validation passed")
		})
	}
}
