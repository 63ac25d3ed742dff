package importer

import (
	"time"

	"github.com/alexanderramin/wayfare/internal/domain"
)

var weekdayNames = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// Convert transforms a validated PoolSchema into candidates ready for the
// decision engine. Call ValidatePool first; Convert assumes the schema is
// valid. Missing ratings and review counts become zero, which the scorer
// treats as a venue with no track record.
func Convert(schema *PoolSchema) []domain.Candidate {
	out := make([]domain.Candidate, 0, len(schema.Venues))
	for _, v := range schema.Venues {
		c := domain.Candidate{
			ID:         v.ID,
			Name:       v.Name,
			Price:      domain.PriceBand(v.Price),
			Categories: v.Categories,
		}
		if v.Rating != nil {
			c.Rating = *v.Rating
		}
		if v.ReviewCount != nil {
			c.ReviewCount = *v.ReviewCount
		}
		if v.Lat != nil && v.Lon != nil {
			c.Coord = domain.Coordinates{Lat: *v.Lat, Lon: *v.Lon}
		}
		if len(v.Hours) > 0 {
			c.Hours = convertHours(v.Hours)
		}
		for _, t := range v.Transactions {
			c.Transactions = append(c.Transactions, domain.TransactionType(t))
		}
		out = append(out, c)
	}
	return out
}

func convertHours(hours []HoursImport) domain.OperatingHours {
	h := make(domain.OperatingHours)
	for _, span := range hours {
		day, ok := weekdayNames[span.Weekday]
		if !ok {
			continue
		}
		h[day] = append(h[day], domain.HoursSpan{OpenMin: span.OpenMin, CloseMin: span.CloseMin})
	}
	return h
}
