package importer

import (
	"fmt"
	"math"

	"github.com/alexanderramin/wayfare/internal/domain"
)

var validWeekdays = map[string]bool{
	"sunday": true, "monday": true, "tuesday": true, "wednesday": true,
	"thursday": true, "friday": true, "saturday": true,
}

var validTransactions = map[string]bool{
	string(domain.TransactionReservation): true,
	string(domain.TransactionDelivery):    true,
	string(domain.TransactionPickup):      true,
}

// ValidatePool checks the pool schema for errors before conversion.
// Returns a slice of all validation errors found.
func ValidatePool(schema *PoolSchema) []error {
	var errs []error

	if len(schema.Venues) == 0 {
		errs = append(errs, fmt.Errorf("pool has no venues"))
	}

	ids := make(map[string]bool)
	for i, v := range schema.Venues {
		prefix := fmt.Sprintf("venues[%d]", i)

		if v.ID == "" {
			errs = append(errs, fmt.Errorf("%s.id is required", prefix))
		} else if ids[v.ID] {
			errs = append(errs, fmt.Errorf("%s.id: duplicate id %q", prefix, v.ID))
		} else {
			ids[v.ID] = true
		}

		if v.Name == "" {
			errs = append(errs, fmt.Errorf("%s.name is required", prefix))
		}
		if v.Rating != nil && (*v.Rating < 0 || *v.Rating > 5) {
			errs = append(errs, fmt.Errorf("%s.rating: %.2f out of range [0, 5]", prefix, *v.Rating))
		}
		if v.ReviewCount != nil && *v.ReviewCount < 0 {
			errs = append(errs, fmt.Errorf("%s.review_count must not be negative", prefix))
		}
		if v.Price != "" && !domain.ValidPriceBands[v.Price] {
			errs = append(errs, fmt.Errorf("%s.price: unknown band %q", prefix, v.Price))
		}

		if (v.Lat == nil) != (v.Lon == nil) {
			errs = append(errs, fmt.Errorf("%s: lat and lon must be given together", prefix))
		}
		if v.Lat != nil && math.Abs(*v.Lat) > 90 {
			errs = append(errs, fmt.Errorf("%s.lat: %.4f out of range [-90, 90]", prefix, *v.Lat))
		}
		if v.Lon != nil && math.Abs(*v.Lon) > 180 {
			errs = append(errs, fmt.Errorf("%s.lon: %.4f out of range [-180, 180]", prefix, *v.Lon))
		}

		errs = append(errs, validateHours(prefix, v.Hours)...)

		for j, t := range v.Transactions {
			if !validTransactions[t] {
				errs = append(errs, fmt.Errorf("%s.transactions[%d]: unknown type %q", prefix, j, t))
			}
		}
	}

	return errs
}

func validateHours(prefix string, hours []HoursImport) []error {
	var errs []error

	for j, h := range hours {
		hp := fmt.Sprintf("%s.hours[%d]", prefix, j)

		if !validWeekdays[h.Weekday] {
			errs = append(errs, fmt.Errorf("%s.weekday: unknown weekday %q", hp, h.Weekday))
		}
		if h.OpenMin < 0 || h.OpenMin >= 1440 {
			errs = append(errs, fmt.Errorf("%s.open_min: %d out of range [0, 1440)", hp, h.OpenMin))
		}
		if h.CloseMin < 0 || h.CloseMin > 1440 {
			errs = append(errs, fmt.Errorf("%s.close_min: %d out of range [0, 1440]", hp, h.CloseMin))
		}
		if h.OpenMin == h.CloseMin {
			errs = append(errs, fmt.Errorf("%s: open_min and close_min are both %d", hp, h.OpenMin))
		}
	}

	return errs
}
