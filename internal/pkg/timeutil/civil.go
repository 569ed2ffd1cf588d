package timeutil

import "time"

// All schedule math runs against the cluster's civil calendar, which is
// fixed at UTC+7 (WIB) with no DST transitions. A FixedZone keeps the
// conversion independent of the host's tzdata.
var ClusterZone = time.FixedZone("WIB", 7*60*60)

// ToLocalCivil projects an absolute instant into the cluster's civil calendar.
func ToLocalCivil(t time.Time) time.Time {
	return t.In(ClusterZone)
}

// StartOfCivilDay returns the absolute instant of 00:00:00.000 local civil
// time of the civil day containing t.
func StartOfCivilDay(t time.Time) time.Time {
	local := t.In(ClusterZone)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, ClusterZone)
}

// EndOfCivilDay returns the absolute instant of 23:59:59.999 local civil
// time of the civil day containing t.
func EndOfCivilDay(t time.Time) time.Time {
	local := t.In(ClusterZone)
	return time.Date(local.Year(), local.Month(), local.Day(), 23, 59, 59, 999_000_000, ClusterZone)
}

// CivilDaysBetween returns the number of whole civil days from a to b.
// Negative when b falls on an earlier civil day than a. Counting happens on
// day-start boundaries, so sub-day components of either instant never shift
// the result.
func CivilDaysBetween(a, b time.Time) int {
	startA := StartOfCivilDay(a)
	startB := StartOfCivilDay(b)
	return int(startB.Sub(startA).Hours() / 24)
}

// CivilWeekday returns the weekday of the civil day containing t.
func CivilWeekday(t time.Time) time.Weekday {
	return t.In(ClusterZone).Weekday()
}

// CivilDate formats the civil day containing t as YYYY-MM-DD.
func CivilDate(t time.Time) string {
	return t.In(ClusterZone).Format("2006-01-02")
}
