package output

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/chrisdamba/transitsim/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var recordTime = time.Date(2024, time.May, 2, 17, 30, 0, 0, time.UTC)

const partition = "year=2024/month=05/day=02/hour=17"

func testRecord(id string) models.EstimateRecord {
	req := models.DeliveryRequest{
		ID:       id,
		Supplier: models.DefaultSuppliers[1],
		SiteName: "Avenue Kennedy",
		Site:     models.Location{Lat: 3.87, Lon: 11.51},
		Hour:     17,
		Season:   models.SeasonDry,
	}
	summary := models.SimulationSummary{
		AverageTime:  9,
		MinTime:      5,
		MaxTime:      22,
		Confidence95: models.ConfidenceInterval{Min: 1, Max: 17},
		Distance:     1.2,
		Simulations:  100,
		Matrix:       "urban_dry_peak",
	}
	return models.NewEstimateRecord(req, summary, nil, recordTime)
}

func TestConsoleOutput(t *testing.T) {
	var buf bytes.Buffer
	out := NewConsoleOutput(&buf)

	require.NoError(t, WriteRecord(out, testRecord("a1")))
	require.NoError(t, out.Close())

	line := buf.String()
	assert.True(t, strings.HasPrefix(line, "[trip_estimates] {"))
	assert.Contains(t, line, `"requestId":"a1"`)
}

func TestJSONOutput(t *testing.T) {
	dir := t.TempDir()
	out := NewJSONOutput(dir, "estimates")

	require.NoError(t, WriteRecord(out, testRecord("a1")))
	require.NoError(t, WriteRecord(out, testRecord("a2")))
	require.NoError(t, out.Close())

	data, err := os.ReadFile(filepath.Join(dir, "estimates", models.TopicTripEstimates, partition, "data.json"))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)

	var rec models.EstimateRecord
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &rec))
	assert.Equal(t, testRecord("a2"), rec)
}

func TestCSVOutput(t *testing.T) {
	dir := t.TempDir()
	out := NewCSVOutput(dir, "estimates")

	require.NoError(t, WriteRecord(out, testRecord("a1")))
	require.NoError(t, out.Close())

	f, err := os.Open(filepath.Join(dir, "estimates", models.TopicTripEstimates, partition, "data.csv"))
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)

	row := make(map[string]string)
	for i, header := range rows[0] {
		row[header] = rows[1][i]
	}
	assert.Equal(t, "a1", row["requestId"])
	assert.Equal(t, "1714671000", row["timestamp"])
	assert.Equal(t, "1.2", row["distance"])
	assert.Equal(t, "9", row["averageTime"])
}

func TestParquetOutput(t *testing.T) {
	dir := t.TempDir()
	out := NewParquetOutput(dir, "estimates")

	require.NoError(t, WriteRecord(out, testRecord("a1")))
	require.NoError(t, WriteRecord(out, testRecord("a2")))
	require.NoError(t, out.Close())

	info, err := os.Stat(filepath.Join(dir, "estimates", models.TopicTripEstimates, partition, "data.parquet"))
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestUnknownTopic(t *testing.T) {
	out := NewParquetOutput(t.TempDir(), "estimates")
	err := out.WriteMessage("orders", []byte(`{"timestamp": 1714671000}`))
	assert.ErrorContains(t, err, "unknown topic")
}

func TestNew(t *testing.T) {
	cfg := models.DefaultConfig()
	out, err := New(cfg)
	require.NoError(t, err)
	assert.IsType(t, &ConsoleOutput{}, out)

	cfg.OutputFormat = models.OutputFormatParquet
	_, err = New(cfg)
	assert.Error(t, err)

	cfg.OutputPath = t.TempDir()
	out, err = New(cfg)
	require.NoError(t, err)
	assert.IsType(t, &ParquetOutput{}, out)
}
