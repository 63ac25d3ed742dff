package importer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(f float64) *float64 { return &f }
func intPtr(i int) *int           { return &i }

func validPool() *PoolSchema {
	return &PoolSchema{
		Source: "city guide export",
		Venues: []VenueImport{
			{
				ID:          "v-1",
				Name:        "Taberna do Largo",
				Rating:      floatPtr(4.6),
				ReviewCount: intPtr(900),
				Price:       "$$",
				Categories:  []string{"portuguese", "wine_bar"},
				Lat:         floatPtr(38.7108),
				Lon:         floatPtr(-9.1427),
				Hours: []HoursImport{
					{Weekday: "friday", OpenMin: 18 * 60, CloseMin: 90},
				},
				Transactions: []string{"reservation"},
			},
			{
				ID:   "v-2",
				Name: "Jardim da Estrela",
			},
		},
	}
}

func TestValidatePool_AcceptsValidSchema(t *testing.T) {
	errs := ValidatePool(validPool())
	assert.Empty(t, errs)
}

func TestValidatePool_EmptyPool(t *testing.T) {
	errs := ValidatePool(&PoolSchema{})
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "no venues")
}

func TestValidatePool_FieldErrors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*PoolSchema)
		message string
	}{
		{
			name:    "missing id",
			mutate:  func(p *PoolSchema) { p.Venues[0].ID = "" },
			message: "venues[0].id is required",
		},
		{
			name:    "duplicate id",
			mutate:  func(p *PoolSchema) { p.Venues[1].ID = "v-1" },
			message: "duplicate id",
		},
		{
			name:    "missing name",
			mutate:  func(p *PoolSchema) { p.Venues[1].Name = "" },
			message: "venues[1].name is required",
		},
		{
			name:    "rating out of range",
			mutate:  func(p *PoolSchema) { p.Venues[0].Rating = floatPtr(5.5) },
			message: "rating",
		},
		{
			name:    "negative review count",
			mutate:  func(p *PoolSchema) { p.Venues[0].ReviewCount = intPtr(-1) },
			message: "review_count",
		},
		{
			name:    "unknown price band",
			mutate:  func(p *PoolSchema) { p.Venues[0].Price = "$$$$$" },
			message: "unknown band",
		},
		{
			name:    "lat without lon",
			mutate:  func(p *PoolSchema) { p.Venues[0].Lon = nil },
			message: "lat and lon must be given together",
		},
		{
			name:    "latitude off the globe",
			mutate:  func(p *PoolSchema) { p.Venues[0].Lat = floatPtr(95) },
			message: "out of range [-90, 90]",
		},
		{
			name:    "unknown weekday",
			mutate:  func(p *PoolSchema) { p.Venues[0].Hours[0].Weekday = "funday" },
			message: "unknown weekday",
		},
		{
			name:    "zero-length span",
			mutate:  func(p *PoolSchema) { p.Venues[0].Hours[0].CloseMin = p.Venues[0].Hours[0].OpenMin },
			message: "open_min and close_min are both",
		},
		{
			name:    "unknown transaction type",
			mutate:  func(p *PoolSchema) { p.Venues[0].Transactions = []string{"walk_in"} },
			message: "unknown type",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pool := validPool()
			tt.mutate(pool)
			errs := ValidatePool(pool)
			require.NotEmpty(t, errs)

			found := false
			for _, err := range errs {
				if strings.Contains(err.Error(), tt.message) {
					found = true
				}
			}
			assert.True(t, found, "expected an error containing %q, got %v", tt.message, errs)
		})
	}
}

func TestValidatePool_OvernightSpanIsAllowed(t *testing.T) {
	pool := validPool()
	pool.Venues[0].Hours = []HoursImport{{Weekday: "saturday", OpenMin: 22 * 60, CloseMin: 120}}

	assert.Empty(t, ValidatePool(pool))
}

func TestLoadPool(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pool.json")
	content := `{"source":"export","venues":[{"id":"v-1","name":"Ramiro","price":"$$"}]}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	pool, err := LoadPool(path)
	require.NoError(t, err)
	require.Len(t, pool.Venues, 1)
	assert.Equal(t, "Ramiro", pool.Venues[0].Name)
}

func TestLoadPool_BadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pool.json")
	require.NoError(t, os.WriteFile(path, []byte("{nope"), 0o644))

	_, err := LoadPool(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing pool file")
}
