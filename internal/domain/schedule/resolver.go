package schedule

import (
	"time"

	"go.uber.org/zap"

	"github.com/matheusvf/barber-agenda/internal/models"
)

// DayPlan is the effective working time for one barber on one date: the
// working window with breaks already subtracted. An empty Open list means
// the barber is closed that date.
type DayPlan struct {
	Open []Interval
}

func (p DayPlan) Closed() bool {
	return len(p.Open) == 0
}

type Resolver struct {
	log *zap.Logger
}

func NewResolver(log *zap.Logger) *Resolver {
	return &Resolver{log: log}
}

// Resolve applies override-over-default precedence: an exception for the
// date wins outright (day_off closes the day, custom_hours replaces the
// weekly row), otherwise the weekly entry for the date's weekday applies,
// otherwise closed. Malformed schedule data is a configuration defect: it
// is logged and the day resolves as closed instead of failing the query.
func (r *Resolver) Resolve(
	date time.Time,
	weekly []models.DaySchedule,
	exceptions []models.ScheduleException,
) DayPlan {

	for _, exc := range exceptions {
		if !sameDate(exc.Date, date) {
			continue
		}
		if exc.Kind == models.ExceptionDayOff {
			return DayPlan{}
		}
		return r.buildPlan(date, exc.StartTime, exc.EndTime, exc.Breaks)
	}

	weekday := int(date.Weekday())
	for _, ds := range weekly {
		if ds.Weekday == weekday {
			return r.buildPlan(date, ds.StartTime, ds.EndTime, ds.Breaks)
		}
	}

	return DayPlan{}
}

func (r *Resolver) buildPlan(
	date time.Time,
	start, end string,
	breaks []models.ScheduleBreak,
) DayPlan {

	if start == "" || end == "" {
		return DayPlan{}
	}

	window, err := ParseInterval(start, end)
	if err != nil {
		r.log.Warn("invalid working window, resolving day as closed",
			zap.String("date", date.Format("2006-01-02")),
			zap.String("start", start),
			zap.String("end", end),
			zap.Error(err),
		)
		return DayPlan{}
	}
	if !window.Valid() {
		r.log.Warn("inverted working window, resolving day as closed",
			zap.String("date", date.Format("2006-01-02")),
			zap.String("window", window.String()),
		)
		return DayPlan{}
	}

	var brs []Interval
	for _, b := range breaks {
		iv, err := ParseInterval(b.StartTime, b.EndTime)
		if err != nil {
			r.log.Warn("invalid break, resolving day as closed",
				zap.String("date", date.Format("2006-01-02")),
				zap.String("start", b.StartTime),
				zap.String("end", b.EndTime),
				zap.Error(err),
			)
			return DayPlan{}
		}
		if !window.Contains(iv) {
			r.log.Warn("break outside working window, resolving day as closed",
				zap.String("date", date.Format("2006-01-02")),
				zap.String("window", window.String()),
				zap.String("break", iv.String()),
			)
			return DayPlan{}
		}
		brs = append(brs, iv)
	}

	return DayPlan{Open: Subtract(window, brs)}
}

func sameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
