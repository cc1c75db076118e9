package simulator

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/chrisdamba/transitsim/internal/models"
)

const rowSumTolerance = 1e-9

// TransitionMatrix is a 6x6 row-stochastic matrix indexed by models.States.
type TransitionMatrix struct {
	name string
	rows [models.NumStates][models.NumStates]float64
	// cumulative[i][j] is the running sum of rows[i][0..j] in canonical order
	cumulative [models.NumStates][models.NumStates]float64
}

// NewTransitionMatrix validates shape, entries and row sums.
func NewTransitionMatrix(name string, rows [][]float64) (*TransitionMatrix, error) {
	if len(rows) != models.NumStates {
		return nil, fmt.Errorf("%w %q: expected %d rows, got %d", models.ErrInvalidMatrix, name, models.NumStates, len(rows))
	}
	m := &TransitionMatrix{name: name}
	for i, row := range rows {
		if len(row) != models.NumStates {
			return nil, fmt.Errorf("%w %q: row %d has %d columns, want %d", models.ErrInvalidMatrix, name, i, len(row), models.NumStates)
		}
		sum := 0.0
		for j, p := range row {
			if p < 0 || math.IsNaN(p) {
				return nil, fmt.Errorf("%w %q: entry [%d][%d] = %v is not a probability", models.ErrInvalidMatrix, name, i, j, p)
			}
			m.rows[i][j] = p
			sum += p
			m.cumulative[i][j] = sum
		}
		if math.Abs(sum-1) > rowSumTolerance {
			return nil, fmt.Errorf("%w %q: row %d sums to %v", models.ErrInvalidMatrix, name, i, sum)
		}
	}
	return m, nil
}

func (m *TransitionMatrix) Name() string { return m.name }

// Probability of moving from one state to another over one segment.
func (m *TransitionMatrix) Probability(from, to models.TrafficWeatherState) float64 {
	return m.rows[from][to]
}

// Row returns a copy of the distribution over next states.
func (m *TransitionMatrix) Row(from models.TrafficWeatherState) []float64 {
	row := make([]float64, models.NumStates)
	copy(row, m.rows[from][:])
	return row
}

// MatrixKey identifies the conditions a matrix applies to. Rural keys carry
// no season or period: the rural matrix applies to every rural trip.
type MatrixKey struct {
	Zone   models.Zone
	Season models.Season
	Period models.Period
}

var ruralKey = MatrixKey{Zone: models.ZoneRural}

// String renders the key as a matrix name, e.g. "urban_dry_peak" or "rural".
func (k MatrixKey) String() string {
	if k.Zone == models.ZoneRural {
		return string(models.ZoneRural)
	}
	return fmt.Sprintf("%s_%s_%s", k.Zone, k.Season, k.Period)
}

// AllMatrixKeys lists every combination a trip can resolve to.
func AllMatrixKeys() []MatrixKey {
	keys := []MatrixKey{ruralKey}
	for _, season := range models.Seasons {
		for _, period := range models.Periods {
			keys = append(keys, MatrixKey{Zone: models.ZoneUrban, Season: season, Period: period})
		}
	}
	return keys
}

// ParseMatrixKey is the inverse of MatrixKey.String.
func ParseMatrixKey(name string) (MatrixKey, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, key := range AllMatrixKeys() {
		if key.String() == name {
			return key, nil
		}
	}
	return MatrixKey{}, fmt.Errorf("%w: unknown matrix name %q", models.ErrInvalidMatrix, name)
}

// DefaultMatrixDefinitions returns the built-in matrices. No urban matrices
// exist for the rainy season.
func DefaultMatrixDefinitions() map[string][][]float64 {
	return map[string][][]float64{
		"urban_dry_peak": {
			{0.7, 0.25, 0.05, 0.0, 0.0, 0.0},
			{0.3, 0.5, 0.2, 0.0, 0.0, 0.0},
			{0.1, 0.3, 0.6, 0.0, 0.0, 0.0},
			{0.0, 0.0, 0.0, 0.8, 0.15, 0.05},
			{0.0, 0.0, 0.0, 0.2, 0.6, 0.2},
			{0.0, 0.0, 0.0, 0.05, 0.25, 0.7},
		},
		"urban_dry_offpeak": {
			{0.85, 0.15, 0.0, 0.0, 0.0, 0.0},
			{0.4, 0.55, 0.05, 0.0, 0.0, 0.0},
			{0.2, 0.4, 0.4, 0.0, 0.0, 0.0},
			{0.0, 0.0, 0.0, 0.9, 0.1, 0.0},
			{0.0, 0.0, 0.0, 0.3, 0.6, 0.1},
			{0.0, 0.0, 0.0, 0.1, 0.3, 0.6},
		},
		"rural": {
			{0.9, 0.1, 0.0, 0.0, 0.0, 0.0},
			{0.5, 0.45, 0.05, 0.0, 0.0, 0.0},
			{0.3, 0.5, 0.2, 0.0, 0.0, 0.0},
			{0.0, 0.0, 0.0, 0.85, 0.15, 0.0},
			{0.0, 0.0, 0.0, 0.4, 0.55, 0.05},
			{0.0, 0.0, 0.0, 0.2, 0.4, 0.4},
		},
	}
}

// MatrixSet holds the validated matrices keyed by zone, season and period.
type MatrixSet struct {
	matrices map[MatrixKey]*TransitionMatrix
}

// NewMatrixSet builds the default matrices and applies overrides by name on top.
func NewMatrixSet(overrides map[string][][]float64) (*MatrixSet, error) {
	defs := DefaultMatrixDefinitions()
	for name, rows := range overrides {
		defs[strings.ToLower(strings.TrimSpace(name))] = rows
	}

	set := &MatrixSet{matrices: make(map[MatrixKey]*TransitionMatrix, len(defs))}
	for name, rows := range defs {
		key, err := ParseMatrixKey(name)
		if err != nil {
			return nil, err
		}
		m, err := NewTransitionMatrix(key.String(), rows)
		if err != nil {
			return nil, err
		}
		set.matrices[key] = m
	}
	return set, nil
}

// Missing lists the keys no matrix is configured for, in AllMatrixKeys order.
func (ms *MatrixSet) Missing() []MatrixKey {
	var missing []MatrixKey
	for _, key := range AllMatrixKeys() {
		if _, ok := ms.matrices[key]; !ok {
			missing = append(missing, key)
		}
	}
	return missing
}

// Names returns the configured matrix names in sorted order.
func (ms *MatrixSet) Names() []string {
	names := make([]string, 0, len(ms.matrices))
	for key := range ms.matrices {
		names = append(names, key.String())
	}
	sort.Strings(names)
	return names
}

func (ms *MatrixSet) Lookup(key MatrixKey) (*TransitionMatrix, error) {
	m, ok := ms.matrices[key]
	if !ok {
		return nil, &models.MissingTransitionMatrixError{Zone: key.Zone, Season: key.Season, Period: key.Period}
	}
	return m, nil
}

// Select picks the matrix for a trip. If either end is rural the rural matrix
// applies regardless of season and hour; otherwise the urban matrix for the
// season and departure period.
func (ms *MatrixSet) Select(zones ZoneClassifier, supplier, destination models.Location, hour int, season models.Season) (*TransitionMatrix, error) {
	if zones.Classify(supplier) == models.ZoneRural || zones.Classify(destination) == models.ZoneRural {
		return ms.Lookup(ruralKey)
	}
	return ms.Lookup(MatrixKey{Zone: models.ZoneUrban, Season: season, Period: ClassifyPeriod(hour)})
}
