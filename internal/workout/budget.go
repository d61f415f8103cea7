package workout

import (
	"fmt"
	"math"
	"strings"
)

// TimeBudget bounds session length. TargetMinutes is scaled by the session length multiplier to get the soft
// limit; HardMaxMinutes caps both the limit and the reported estimate.
type TimeBudget struct {
	TargetMinutes  int
	HardMaxMinutes int
}

// DefaultTimeBudget is a one hour session that may stretch to 75 minutes.
//
//nolint:gochecknoglobals // default configuration.
var DefaultTimeBudget = TimeBudget{TargetMinutes: 60, HardMaxMinutes: 75}

func (b TimeBudget) sanitized() TimeBudget {
	if b.HardMaxMinutes <= 0 {
		b.HardMaxMinutes = DefaultTimeBudget.HardMaxMinutes
	}
	if b.TargetMinutes <= 0 {
		b.TargetMinutes = DefaultTimeBudget.TargetMinutes
	}
	b.TargetMinutes = min(b.TargetMinutes, b.HardMaxMinutes)
	return b
}

const (
	sessionOverheadMinutes  = 5.0
	accessorySetMinutes     = 1.5
	minAccessorySets        = 2
	maxAccessorySetTrim     = 3
	overBudgetPerTrimMinute = 10.0
)

// kindMinutes is the fixed time weighting per exercise of each kind.
func kindMinutes(k SlotKind) float64 {
	switch k {
	case KindActivation:
		return 3
	case KindPrimary:
		return 10
	case KindSecondary:
		return 7
	case KindAccessory:
		return 5
	case KindConditioning:
		return 6
	case KindCore:
		return 3
	default:
		return 5
	}
}

// Tally counts exercises per kind. It is a value: [Tally.With] returns a new tally.
type Tally struct {
	Activation   int
	Primary      int
	Secondary    int
	Accessory    int
	Conditioning int
	Core         int
}

// With returns a copy of t with delta added to kind k.
func (t Tally) With(k SlotKind, delta int) Tally {
	switch k {
	case KindActivation:
		t.Activation += delta
	case KindPrimary:
		t.Primary += delta
	case KindSecondary:
		t.Secondary += delta
	case KindAccessory:
		t.Accessory += delta
	case KindConditioning:
		t.Conditioning += delta
	case KindCore:
		t.Core += delta
	}
	return t
}

// EstimateMinutes is session overhead plus the per-kind weighting of each exercise.
func EstimateMinutes(t Tally) float64 {
	return sessionOverheadMinutes +
		float64(t.Activation)*kindMinutes(KindActivation) +
		float64(t.Primary)*kindMinutes(KindPrimary) +
		float64(t.Secondary)*kindMinutes(KindSecondary) +
		float64(t.Accessory)*kindMinutes(KindAccessory) +
		float64(t.Conditioning)*kindMinutes(KindConditioning) +
		float64(t.Core)*kindMinutes(KindCore)
}

// assembledSection is a processed section with the slot of each surviving exercise.
type assembledSection struct {
	section Section
	kind    SectionKind
	slots   []SlotCategory
}

// budgetResult is what the enforcer reports back to the assembler.
type budgetResult struct {
	minutes int
	note    string
}

// enforceBudget trims sections in place until the estimate fits the soft limit: first trailing accessory sets,
// then conditioning exercises. The reported minutes never exceed the hard maximum.
func enforceBudget(sections []assembledSection, tally Tally, sessionLength float64, budget TimeBudget) budgetResult {
	budget = budget.sanitized()
	limit := min(float64(budget.TargetMinutes)*sessionLength, float64(budget.HardMaxMinutes))
	estimate := EstimateMinutes(tally)

	var notes []string
	if estimate > limit {
		if trimmed := trimAccessorySets(sections, accessoryTrimCount(estimate-limit)); trimmed > 0 {
			estimate -= float64(trimmed) * accessorySetMinutes
			notes = append(notes, fmt.Sprintf("Trimmed %d accessory sets to fit the time budget.", trimmed))
		}
	}
	if estimate > limit {
		if saved, kept := shrinkConditioning(sections, limit/estimate); saved > 0 {
			estimate -= saved
			notes = append(notes, fmt.Sprintf("Shortened conditioning to %d exercises.", kept))
		}
	}

	minutes := int(math.Round(estimate))
	if minutes > budget.HardMaxMinutes {
		notes = append(notes, fmt.Sprintf("Session is long; aim to finish within %d minutes.", budget.HardMaxMinutes))
		minutes = budget.HardMaxMinutes
	}
	return budgetResult{minutes: max(minutes, 0), note: strings.Join(notes, " ")}
}

// accessoryTrimCount scales the number of sets removed per accessory exercise with the overrun.
func accessoryTrimCount(overMinutes float64) int {
	return min(max(int(math.Ceil(overMinutes/overBudgetPerTrimMinute)), 1), maxAccessorySetTrim)
}

func trimAccessorySets(sections []assembledSection, perExercise int) int {
	trimmed := 0
	for i := range sections {
		for j, slot := range sections[i].slots {
			if slot.Kind() != KindAccessory {
				continue
			}
			ex := &sections[i].section.Exercises[j]
			if len(ex.Sets) <= minAccessorySets {
				continue
			}
			cut := min(perExercise, len(ex.Sets)-minAccessorySets)
			ex.Sets = ex.Sets[:len(ex.Sets)-cut]
			trimmed += cut
		}
	}
	return trimmed
}

// shrinkConditioning keeps the leading ratio of each conditioning section, at least one exercise, and
// returns the minutes saved and the number of conditioning exercises left.
func shrinkConditioning(sections []assembledSection, ratio float64) (float64, int) {
	var (
		saved float64
		kept  int
	)
	for i := range sections {
		s := &sections[i]
		if s.kind != SectionConditioning || len(s.section.Exercises) == 0 {
			continue
		}
		n := len(s.section.Exercises)
		keep := min(max(int(math.Floor(float64(n)*ratio)), 1), n)
		for _, slot := range s.slots[keep:] {
			saved += kindMinutes(slot.Kind())
		}
		s.section.Exercises = s.section.Exercises[:keep]
		s.slots = s.slots[:keep]
		kept += keep
	}
	return saved, kept
}
