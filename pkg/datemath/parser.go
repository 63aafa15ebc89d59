package datemath

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// weekdays maps every accepted pt-BR spelling to Monday=0 … Sunday=6.
// Accented and unaccented forms are listed explicitly.
var weekdays = map[string]int{
	"segunda":       0,
	"segunda-feira": 0,
	"terça":         1,
	"terca":         1,
	"terça-feira":   1,
	"terca-feira":   1,
	"quarta":        2,
	"quarta-feira":  2,
	"quinta":        3,
	"quinta-feira":  3,
	"sexta":         4,
	"sexta-feira":   4,
	"sábado":        5,
	"sabado":        5,
	"domingo":       6,
}

// rule pairs a date-expression family with its matcher and resolver.
// The resolver receives the submatches of re and the reference instant.
type rule struct {
	kind    RuleKind
	re      *regexp.Regexp
	resolve func(m []string, now time.Time) time.Time
}

// rules is evaluated top to bottom; the first match wins.
var rules = []rule{
	{
		kind:    RuleTomorrow,
		re:      regexp.MustCompile(`amanh[ãa]`),
		resolve: func(_ []string, now time.Time) time.Time { return addDays(now, 1) },
	},
	{
		kind:    RuleToday,
		re:      regexp.MustCompile(`hoje`),
		resolve: func(_ []string, now time.Time) time.Time { return startOfDay(now) },
	},
	{
		kind:    RuleNextWeek,
		re:      regexp.MustCompile(`(pr[óo]xima\s+semana)|(semana\s+que\s+vem)`),
		resolve: func(_ []string, now time.Time) time.Time { return addDays(now, 7) },
	},
	{
		kind:    RuleInDays,
		re:      regexp.MustCompile(`(em|daqui\s+a)\s+(\d+)\s+dias?`),
		resolve: resolveInDays,
	},
	{
		kind:    RuleWeekday,
		re:      regexp.MustCompile(`(segunda|ter[çc]a|quarta|quinta|sexta|s[áa]bado|domingo)(\s*-feira)?`),
		resolve: resolveWeekday,
	},
	{
		kind:    RuleExplicit,
		re:      regexp.MustCompile(`(\d{1,2})[/.-](\d{1,2})(?:[/.-](\d{2,4}))?`),
		resolve: resolveExplicit,
	},
}

// clockPattern matches "15h", "15h30", "14:30", "3:15pm", "12h am".
var clockPattern = regexp.MustCompile(`(\d{1,2})[h:](\d{0,2})(?:\s*(am|pm))?`)

// ResolveDate returns midnight of the calendar day the text refers to,
// relative to now. Unrecognized or invalid expressions resolve to now's day.
func ResolveDate(text string, now time.Time) time.Time {
	date, _, _ := resolveDate(strings.ToLower(text), now)
	return date
}

// ResolveTime sets base's time-of-day from the first clock expression in
// text, or to 09:00 when there is none. The date part of base is kept.
func ResolveTime(text string, base time.Time) time.Time {
	hour, minute, _, ok := resolveClock(strings.ToLower(text))
	if !ok {
		hour, minute = DefaultHour, DefaultMinute
	}
	return time.Date(base.Year(), base.Month(), base.Day(), hour, minute, 0, 0, base.Location())
}

// ExtractTaskInfo resolves the due date of text relative to now and keeps
// text verbatim as the title.
func ExtractTaskInfo(text string, now time.Time) TaskInfo {
	return TaskInfo{
		Title:   text,
		DueDate: ResolveTime(text, ResolveDate(text, now)),
	}
}

// Explain runs the same resolution as ExtractTaskInfo and reports which
// clauses were used.
func Explain(text string, now time.Time) Resolution {
	normalized := strings.ToLower(text)
	date, kind, dateClause := resolveDate(normalized, now)

	res := Resolution{
		Kind:       kind,
		DateClause: dateClause,
		Date:       date,
	}

	hour, minute, timeClause, ok := resolveClock(normalized)
	if !ok {
		hour, minute = DefaultHour, DefaultMinute
		res.DefaultTime = true
	} else {
		res.TimeClause = timeClause
	}
	res.DueDate = time.Date(date.Year(), date.Month(), date.Day(), hour, minute, 0, 0, date.Location())

	return res
}

func resolveDate(normalized string, now time.Time) (time.Time, RuleKind, string) {
	for _, r := range rules {
		m := r.re.FindStringSubmatch(normalized)
		if m == nil {
			continue
		}
		return r.resolve(m, now), r.kind, m[0]
	}
	return startOfDay(now), RuleFallback, ""
}

// resolveInDays handles "em 3 dias" and "daqui a 10 dias".
func resolveInDays(m []string, now time.Time) time.Time {
	days, err := strconv.Atoi(m[2])
	if err != nil {
		return startOfDay(now)
	}
	return addDays(now, days)
}

// resolveWeekday returns the next occurrence of the named weekday, never today.
func resolveWeekday(m []string, now time.Time) time.Time {
	name := m[1]
	if m[2] != "" {
		name += "-feira"
	}
	target, ok := weekdays[name]
	if !ok {
		if target, ok = weekdays[m[1]]; !ok {
			return startOfDay(now)
		}
	}

	daysAhead := ((target-mondayOrdinal(now))%7 + 7) % 7
	if daysAhead == 0 {
		daysAhead = 7
	}
	return addDays(now, daysAhead)
}

// resolveExplicit handles D/M[/Y] with "/", "." or "-" separators.
func resolveExplicit(m []string, now time.Time) time.Time {
	day, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])

	yearGiven := m[3] != ""
	year := now.Year()
	if yearGiven {
		year, _ = strconv.Atoi(m[3])
		if year < 100 {
			year += 2000
		}
	}

	date, ok := calendarDate(year, month, day, now.Location())
	if !ok {
		return startOfDay(now)
	}

	// Without a year, a date already behind now means next year's occurrence.
	if !yearGiven && date.Before(now) {
		if date, ok = calendarDate(year+1, month, day, now.Location()); !ok {
			return startOfDay(now)
		}
	}
	return date
}

// resolveClock extracts hour and minute in 24-hour form. A clock outside
// 00:00–23:59 counts as absent.
func resolveClock(normalized string) (hour, minute int, clause string, ok bool) {
	m := clockPattern.FindStringSubmatch(normalized)
	if m == nil {
		return 0, 0, "", false
	}

	hour, _ = strconv.Atoi(m[1])
	if m[2] != "" {
		minute, _ = strconv.Atoi(m[2])
	}

	switch m[3] {
	case "pm":
		if hour >= 1 && hour <= 11 {
			hour += 12
		}
	case "am":
		if hour == 12 {
			hour = 0
		}
	}

	if hour > 23 || minute > 59 {
		return 0, 0, "", false
	}
	return hour, minute, m[0], true
}

// calendarDate builds midnight of year-month-day, rejecting dates that
// time.Date would normalize (31/02, 00/05, 10/13).
func calendarDate(year, month, day int, loc *time.Location) (time.Time, bool) {
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, false
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, loc)
	if t.Year() != year || int(t.Month()) != month || t.Day() != day {
		return time.Time{}, false
	}
	return t, true
}

// mondayOrdinal converts Go's Sunday-first weekday to Monday=0 … Sunday=6.
func mondayOrdinal(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

func addDays(t time.Time, days int) time.Time {
	return startOfDay(t.AddDate(0, 0, days))
}

// startOfDay returns midnight at the start of t's day in t's location.
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
