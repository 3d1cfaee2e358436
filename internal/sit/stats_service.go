package sit

import (
	"context"
	"time"

	"github.com/vickris/opensit/internal/common"
	"github.com/vickris/opensit/internal/dbmysql"
)

// MonthlyStats is one month of activity, composed from the day and
// duration primitives.
type MonthlyStats struct {
	Year         int
	Month        time.Month
	DaysActive   int
	TotalMinutes int
	EntryCount   int
}

// JournalMonth is one non-empty month in a user's journal walk. YearTotal
// is set on the first month reported for each year, walking backward from
// the present.
type JournalMonth struct {
	Year      int
	Month     time.Month
	Count     int
	YearTotal int
}

// StatsService computes streaks and date-bucketed totals over one user's
// sit timestamps. All day arithmetic is calendar-day granular against the
// injected clock.
type StatsService struct {
	sits  SitRepository
	clock common.Clock
}

func NewStatsService(sits SitRepository, clock common.Clock) *StatsService {
	return &StatsService{sits: sits, clock: clock}
}

// DaysSatInRange counts distinct calendar days with at least one sit in
// [from, to], inclusive. Multiple sits on one day count once.
func (s *StatsService) DaysSatInRange(ctx context.Context, userID uint64, from, to time.Time) (int, error) {
	sits, err := s.sitsInDayRange(ctx, userID, from, to)
	if err != nil {
		return 0, err
	}

	days := make(map[time.Time]bool)
	for _, sit := range sits {
		days[dateOf(sit.CreatedAt)] = true
	}
	return len(days), nil
}

// DaysSatForMinMinutes counts distinct days in [from, to] whose summed
// durations reach minMinutes.
func (s *StatsService) DaysSatForMinMinutes(ctx context.Context, userID uint64, from, to time.Time, minMinutes int) (int, error) {
	sits, err := s.sitsInDayRange(ctx, userID, from, to)
	if err != nil {
		return 0, err
	}

	perDay := make(map[time.Time]int)
	for _, sit := range sits {
		perDay[dateOf(sit.CreatedAt)] += sit.Duration
	}

	count := 0
	for _, total := range perDay {
		if total >= minMinutes {
			count++
		}
	}
	return count, nil
}

// TimeSatOnDate returns total minutes sat on one calendar day.
func (s *StatsService) TimeSatOnDate(ctx context.Context, userID uint64, date time.Time) (int, error) {
	day := dateOf(date)
	return s.sits.SumDurationInRange(ctx, userID, day, day.AddDate(0, 0, 1))
}

// TimeSatInMonth returns total minutes sat in one calendar month.
func (s *StatsService) TimeSatInMonth(ctx context.Context, userID uint64, year int, month time.Month) (int, error) {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return s.sits.SumDurationInRange(ctx, userID, first, first.AddDate(0, 1, 0))
}

func (s *StatsService) SitsByMonth(ctx context.Context, userID uint64, year int, month time.Month) (int, error) {
	return s.sits.CountByMonth(ctx, userID, year, month)
}

func (s *StatsService) SitsByYear(ctx context.Context, userID uint64, year int) (int, error) {
	return s.sits.CountByYear(ctx, userID, year)
}

// Streak counts consecutive sitting days ending today. Walking the user's
// distinct sit days newest first, each gap of exactly one day extends the
// run and a larger gap ends it. A run only counts when the user sat
// yesterday, and without a sit today it collapses to zero.
func (s *StatsService) Streak(ctx context.Context, userID uint64) (int, error) {
	stamps, err := s.sits.TimestampsDesc(ctx, userID)
	if err != nil {
		return 0, err
	}
	days := distinctDaysDesc(stamps)
	if len(days) == 0 {
		return 0, nil
	}

	today := dateOf(s.clock.Now())
	yesterday := today.AddDate(0, 0, -1)

	satYesterday := false
	for _, d := range days {
		if d.Equal(yesterday) {
			satYesterday = true
		}
		if d.Before(yesterday) {
			break
		}
	}
	if !satYesterday {
		return 0, nil
	}

	streak := 0
	for i := 0; i+1 < len(days); i++ {
		if daysBetween(days[i+1], days[i]) == 1 {
			streak++
		} else {
			break
		}
	}

	if streak > 0 {
		if days[0].Equal(today) {
			streak++
		} else {
			streak = 0
		}
	}
	return streak, nil
}

// MonthlyStats composes the day, duration and count primitives for one
// month.
func (s *StatsService) MonthlyStats(ctx context.Context, userID uint64, year int, month time.Month) (*MonthlyStats, error) {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)

	daysActive, err := s.DaysSatInRange(ctx, userID, first, last)
	if err != nil {
		return nil, err
	}
	totalMinutes, err := s.sits.SumDurationInRange(ctx, userID, first, first.AddDate(0, 1, 0))
	if err != nil {
		return nil, err
	}
	entryCount, err := s.sits.CountByMonth(ctx, userID, year, month)
	if err != nil {
		return nil, err
	}

	return &MonthlyStats{
		Year:         year,
		Month:        month,
		DaysActive:   daysActive,
		TotalMinutes: totalMinutes,
		EntryCount:   entryCount,
	}, nil
}

// JournalRange walks every month from the current month back to the
// user's first sit. Empty months are skipped in the output but still
// consume a step. The first month reported for each year carries that
// year's total entry count.
func (s *StatsService) JournalRange(ctx context.Context, userID uint64) ([]JournalMonth, error) {
	firstSit, err := s.sits.FirstSitTime(ctx, userID)
	if err != nil {
		if common.IsNotFound(err) {
			return []JournalMonth{}, nil
		}
		return nil, err
	}

	cursor := time.Date(s.clock.Now().Year(), s.clock.Now().Month(), 1, 0, 0, 0, 0, time.UTC)
	floor := time.Date(firstSit.Year(), firstSit.Month(), 1, 0, 0, 0, 0, time.UTC)

	var months []JournalMonth
	annotatedYears := make(map[int]bool)
	for !cursor.Before(floor) {
		count, err := s.sits.CountByMonth(ctx, userID, cursor.Year(), cursor.Month())
		if err != nil {
			return nil, err
		}
		if count > 0 {
			m := JournalMonth{Year: cursor.Year(), Month: cursor.Month(), Count: count}
			if !annotatedYears[m.Year] {
				annotatedYears[m.Year] = true
				total, err := s.sits.CountByYear(ctx, userID, m.Year)
				if err != nil {
					return nil, err
				}
				m.YearTotal = total
			}
			months = append(months, m)
		}
		cursor = cursor.AddDate(0, -1, 0)
	}
	return months, nil
}

func (s *StatsService) TotalHoursSat(ctx context.Context, userID uint64) (int, error) {
	minutes, err := s.sits.TotalDuration(ctx, userID)
	if err != nil {
		return 0, err
	}
	return minutes / 60, nil
}

func (s *StatsService) LatestSit(ctx context.Context, userID uint64) (*dbmysql.Sit, error) {
	return s.sits.LatestByUser(ctx, userID)
}

// LastUpdate is the timestamp of the user's newest sit.
func (s *StatsService) LastUpdate(ctx context.Context, userID uint64) (time.Time, error) {
	sit, err := s.sits.LatestByUser(ctx, userID)
	if err != nil {
		return time.Time{}, err
	}
	return sit.CreatedAt, nil
}

func (s *StatsService) sitsInDayRange(ctx context.Context, userID uint64, from, to time.Time) ([]dbmysql.Sit, error) {
	fromDay := dateOf(from)
	toDay := dateOf(to)
	if fromDay.After(toDay) {
		return nil, &common.ValidationError{Field: "range", Reason: "from is after to"}
	}
	return s.sits.ListInRange(ctx, userID, fromDay, toDay.AddDate(0, 0, 1))
}

// dateOf truncates a timestamp to its calendar day.
func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func daysBetween(earlier, later time.Time) int {
	return int(later.Sub(earlier).Hours() / 24)
}

func distinctDaysDesc(stamps []time.Time) []time.Time {
	var days []time.Time
	for _, t := range stamps {
		d := dateOf(t)
		if len(days) > 0 && days[len(days)-1].Equal(d) {
			continue
		}
		days = append(days, d)
	}
	return days
}
