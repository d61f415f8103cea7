package workout

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

const (
	maxSetsPerExercise = 6
	primarySetFloor    = 2
	restRounding       = 5
)

// TargetSets scales a template set count by volume and slot emphasis. Primary lifts keep at least two sets
// (or the template count if that is lower) and no exercise goes above six. Activation work is never scaled.
func TargetSets(base int, slot SlotCategory, mods WorkoutModifiers, cm CombinedModifiers) int {
	if base <= 0 {
		return 0
	}
	if slot.Kind() == KindActivation {
		return base
	}

	raw := float64(base) * mods.VolumeMultiplier * slotVolumeFactor(slot, cm.Position, cm.SideBias)
	n := int(math.Round(raw))

	floor := 1
	if slot.Kind() == KindPrimary {
		floor = min(primarySetFloor, base)
	}
	return min(max(n, floor), maxSetsPerExercise)
}

//nolint:gochecknoglobals // compiled once.
var (
	repRangePattern  = regexp.MustCompile(`^\s*(\d+)\s*[-–]\s*(\d+)\s*$`)
	repSinglePattern = regexp.MustCompile(`^\s*(\d+)\s*$`)
)

// TargetReps rewrites rep text for the cycle phase. Ranges ("8-12") and single numbers scale with the phase's
// rep multiplier on primary and secondary lifts; anything else ("AMRAP", "Max", "30s") passes through unchanged.
func TargetReps(reps string, slot SlotCategory, cm CombinedModifiers) string {
	kind := slot.Kind()
	if kind != KindPrimary && kind != KindSecondary {
		return reps
	}
	mult := PhaseRuleFor(cm.Phase.Phase).RepMultiplier
	if mult == 1.0 {
		return reps
	}

	if m := repRangePattern.FindStringSubmatch(reps); m != nil {
		lo := scaleReps(m[1], mult)
		hi := max(scaleReps(m[2], mult), lo)
		if lo == hi {
			return strconv.Itoa(lo)
		}
		return strconv.Itoa(lo) + "-" + strconv.Itoa(hi)
	}
	if m := repSinglePattern.FindStringSubmatch(reps); m != nil {
		return strconv.Itoa(scaleReps(m[1], mult))
	}
	return reps
}

func scaleReps(s string, mult float64) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 1
	}
	return max(int(math.Round(float64(n)*mult)), 1)
}

// scaleRest applies the rest multiplier and rounds to the nearest 5 seconds.
func scaleRest(seconds int, mult float64) int {
	if seconds <= 0 {
		return seconds
	}
	return int(math.Round(float64(seconds)*mult/restRounding)) * restRounding
}

// modifyExercise returns ex with its sets rewritten for the slot. Weight is left exactly as supplied. A tempo
// annotation goes on the first set only; sets added beyond the template copy the last set without completion
// or note.
func modifyExercise(ex WorkoutExercise, slot SlotCategory, mods WorkoutModifiers, cm CombinedModifiers) WorkoutExercise {
	ex = ex.clone()
	target := TargetSets(len(ex.Sets), slot, mods, cm)

	for i := range ex.Sets {
		ex.Sets[i].Reps = TargetReps(ex.Sets[i].Reps, slot, cm)
		ex.Sets[i].RestSeconds = scaleRest(ex.Sets[i].RestSeconds, mods.RestMultiplier)
	}
	if tempo := TempoFor(slot, cm); tempo != "" && len(ex.Sets) > 0 {
		ex.Sets[0].Note = joinNotes(tempo, ex.Sets[0].Note)
	}

	switch {
	case target < len(ex.Sets):
		ex.Sets = ex.Sets[:target]
	case target > len(ex.Sets):
		last := ex.Sets[len(ex.Sets)-1]
		last.Completed = false
		last.Note = ""
		for len(ex.Sets) < target {
			dup := last
			if last.WeightKg != nil {
				w := *last.WeightKg
				dup.WeightKg = &w
			}
			ex.Sets = append(ex.Sets, dup)
		}
	}
	return ex
}

func joinNotes(notes ...string) string {
	parts := make([]string, 0, len(notes))
	for _, n := range notes {
		if n = strings.TrimSpace(n); n != "" {
			parts = append(parts, n)
		}
	}
	return strings.Join(parts, "; ")
}
