package workout

import "time"

const (
	weeksPerPhase = 4
	phasesInCycle = 3
	daysPerWeek   = 7
	daysPerCycle  = weeksPerPhase * phasesInCycle * daysPerWeek
)

//nolint:gochecknoglobals // fixed cycle order.
var cycleOrder = [phasesInCycle]CyclePhase{CycleEccentric, CycleIsometric, CycleConcentric}

// CurrentCycle locates today within the 12-week cycle anchored at start. A start date in the future counts as
// day zero so the athlete begins in the first eccentric week.
func CurrentCycle(start, today time.Time) TrainingCycle {
	elapsed := max(daysBetween(start, today), 0)

	weekInCycle := (elapsed % daysPerCycle) / daysPerWeek
	return TrainingCycle{
		Phase:       cycleOrder[weekInCycle/weeksPerPhase],
		WeekInPhase: weekInCycle%weeksPerPhase + 1,
		CycleNumber: elapsed/daysPerCycle + 1,
	}
}

// cycleFor resolves the profile's cycle. Without a program start date the athlete is in week one of the
// eccentric block.
func cycleFor(p PlayerProfile, today time.Time) (TrainingCycle, bool) {
	start, ok := parseDate(p.ProgramStartDate)
	if !ok {
		return TrainingCycle{Phase: CycleEccentric, WeekInPhase: 1, CycleNumber: 1}, false
	}
	return CurrentCycle(start, today), true
}

// daysUntilTournament returns nil when no usable tournament date is set.
func daysUntilTournament(p PlayerProfile, today time.Time) *int {
	date, ok := parseDate(p.NextTournamentDate)
	if !ok {
		return nil
	}
	days := daysBetween(today, date)
	return &days
}
