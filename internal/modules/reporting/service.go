package reporting

import (
	"context"
	"fmt"
	"time"

	"skiresort/internal/domain"
)

const dayLayout = "2006-01-02"

// Service derives read-only views from the journal and the per-module
// tallies. It never writes anything.
type Service struct {
	journal  JournalReader
	bookings BookingCounter
	rentals  RentalCounter
	lessons  LessonCounter

	now func() time.Time
}

func NewService(journal JournalReader, bookings BookingCounter, rentals RentalCounter, lessons LessonCounter) *Service {
	return &Service{
		journal:  journal,
		bookings: bookings,
		rentals:  rentals,
		lessons:  lessons,
		now:      time.Now,
	}
}

// Summary is one renter's activity at a glance.
type Summary struct {
	Username      string  `json:"username"`
	Bookings      int64   `json:"bookings"`
	ActiveRentals int64   `json:"active_rentals"`
	Lessons       int64   `json:"lessons"`
	Balance       float64 `json:"balance"`
}

// DailyRevenue is the summed display amount of one day's entries.
type DailyRevenue struct {
	Day     string  `json:"day"`
	Revenue float64 `json:"revenue"`
}

// MonthlyReport groups the current month's entries into the categories
// shown on the resort's statement.
type MonthlyReport struct {
	Month            string  `json:"month"`
	Bookings         float64 `json:"bookings"`
	EquipmentRentals float64 `json:"equipment_rentals"`
	Lessons          float64 `json:"lessons"`
	Cancellations    float64 `json:"cancellations"`
	Total            float64 `json:"total"`
}

func (s *Service) SummaryFor(ctx context.Context, username string) (*Summary, error) {
	bookings, err := s.bookings.CountFor(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("count bookings: %w", err)
	}
	rentals, err := s.rentals.CountRentalsFor(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("count rentals: %w", err)
	}
	lessons, err := s.lessons.CountFor(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("count lessons: %w", err)
	}
	balance, err := s.journal.BalanceFor(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("balance: %w", err)
	}

	return &Summary{
		Username:      username,
		Bookings:      bookings,
		ActiveRentals: rentals,
		Lessons:       lessons,
		Balance:       balance,
	}, nil
}

// WeeklyRevenue returns one row per day for the last seven days,
// including days with no entries.
func (s *Service) WeeklyRevenue(ctx context.Context) ([]DailyRevenue, error) {
	entries, err := s.journal.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list journal: %w", err)
	}

	today := s.now().UTC().Truncate(24 * time.Hour)
	start := today.AddDate(0, 0, -6)

	byDay := make(map[string]float64, 7)
	for _, e := range entries {
		day := e.Time.UTC().Truncate(24 * time.Hour)
		if day.Before(start) || day.After(today) {
			continue
		}
		byDay[day.Format(dayLayout)] += e.Kind.DisplayAmount()
	}

	out := make([]DailyRevenue, 0, 7)
	for d := start; !d.After(today); d = d.AddDate(0, 0, 1) {
		key := d.Format(dayLayout)
		out = append(out, DailyRevenue{Day: key, Revenue: byDay[key]})
	}
	return out, nil
}

// MonthlyCategories totals the current month's entries per category.
func (s *Service) MonthlyCategories(ctx context.Context) (*MonthlyReport, error) {
	entries, err := s.journal.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list journal: %w", err)
	}

	now := s.now().UTC()
	report := &MonthlyReport{Month: now.Format("2006-01")}

	for _, e := range entries {
		t := e.Time.UTC()
		if t.Year() != now.Year() || t.Month() != now.Month() {
			continue
		}

		amount := e.Kind.DisplayAmount()
		switch e.Kind {
		case domain.KindBooking:
			report.Bookings += amount
		case domain.KindRentEquipment, domain.KindReturnEq:
			report.EquipmentRentals += amount
		case domain.KindLesson:
			report.Lessons += amount
		case domain.KindCancelBooking:
			report.Cancellations += amount
		}
		report.Total += amount
	}
	return report, nil
}
