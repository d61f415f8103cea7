package workout

import (
	"fmt"
	"slices"
	"strings"
	"time"
)

const (
	// minActivationRelevance is the combined position and side relevance an activation drill needs to stay.
	minActivationRelevance = 6
	// activationFloor is how many leading drills survive when the relevance filter would empty a section.
	activationFloor = 3
)

// Assembler personalizes template days. It holds no mutable state and is safe for concurrent use.
type Assembler struct {
	catalog  Catalog
	selector *Selector
	budget   TimeBudget
}

// NewAssembler constructs an Assembler over catalog. A zero budget falls back to [DefaultTimeBudget].
func NewAssembler(catalog Catalog, budget TimeBudget) *Assembler {
	return &Assembler{
		catalog:  catalog,
		selector: NewSelector(catalog),
		budget:   budget.sanitized(),
	}
}

// Selector returns the selector the assembler uses to fill empty exercise slots.
func (a *Assembler) Selector() *Selector {
	return a.selector
}

// Assemble returns a personalized copy of day for profile as of now. The input day is never modified and the
// result depends only on the arguments and the catalog.
func (a *Assembler) Assemble(day WorkoutDay, profile PlayerProfile, now time.Time) AssembledWorkout {
	p := profile.normalized()
	today := normalizeDate(now)
	experience := ExperienceFor(p)
	cycle, _ := cycleFor(p, today)
	days := daysUntilTournament(p, today)
	mods := CalculateModifiers(p.Phase, experience, days, &cycle)
	cm := CombinedModifiers{Phase: cycle, Position: p.Position, SideBias: p.SideBias, DaysUntilTournament: days}
	mode := TournamentModeFor(days)

	out := day.clone()
	used := usedExerciseIDs(out)

	var (
		sections = make([]assembledSection, 0, len(out.Sections))
		tally    Tally
	)
	for _, section := range out.Sections {
		kind := SectionKindFor(section.Name)
		exercises := make([]WorkoutExercise, 0, len(section.Exercises))
		for _, ex := range section.Exercises {
			if ex.ExerciseID == "" {
				ex, used = a.autoSelect(section.Name, ex, p, used)
			}
			exercises = append(exercises, ex)
		}

		switch kind {
		case SectionActivation:
			exercises = a.filterActivation(exercises, p)
		case SectionConditioning:
			exercises = a.filterConditioning(section.Name, exercises, p, mode)
		case SectionStrength:
		}

		built := assembledSection{
			section: Section{Name: section.Name, Exercises: make([]WorkoutExercise, 0, len(exercises))},
			kind:    kind,
			slots:   make([]SlotCategory, 0, len(exercises)),
		}
		for _, ex := range exercises {
			tag, slot := a.resolve(section.Name, ex)
			if tagComplexity(tag) > mods.MaxComplexity {
				continue
			}
			built.section.Exercises = append(built.section.Exercises, modifyExercise(ex, slot, mods, cm))
			built.slots = append(built.slots, slot)
			tally = tally.With(slot.Kind(), 1)
		}
		sections = append(sections, built)
	}

	budget := enforceBudget(sections, tally, mods.SessionLengthMultiplier, a.budget)

	out.Sections = make([]Section, len(sections))
	for i, s := range sections {
		out.Sections[i] = s.section
	}

	rule := PhaseRuleFor(cycle.Phase)
	return AssembledWorkout{
		Day:       out,
		Modifiers: mods,
		Context: PlayerContext{
			Position:            p.Position,
			SideBias:            p.SideBias,
			Phase:               p.Phase,
			Experience:          experience,
			Cycle:               cycle,
			DaysUntilTournament: days,
			TournamentMode:      mode,
			FocusAreas:          focusAreas(cm),
		},
		Info: TrainingInfo{
			Tempo:            rule.Tempo,
			LoadSuggestion:   LoadSuggestion(cycle.Phase, days),
			PhaseDescription: phaseDescription(p.Phase, cycle, rule),
			EstimatedMinutes: budget.minutes,
			TimeNote:         budget.note,
		},
	}
}

// resolve returns the effective tag and slot of an exercise. Untagged exercises get a default tag derived from
// their slot so that every downstream rule has something to work with.
func (a *Assembler) resolve(sectionName string, ex WorkoutExercise) (ExerciseTag, SlotCategory) {
	if tag, ok := a.catalog.Tag(ex.ExerciseID); ok {
		return tag, ClassifySlot(sectionName, ex, &tag)
	}
	slot := ClassifySlot(sectionName, ex, nil)
	return defaultTagFor(slot), slot
}

// defaultTagFor is the fallback mapping for exercises the catalog does not tag: neutral relevance, simplest
// complexity and the energy system the slot usually trains.
func defaultTagFor(slot SlotCategory) ExerciseTag {
	var pattern MovementPattern
	if patterns := slotPatterns(slot); len(patterns) > 0 {
		pattern = patterns[0]
	}
	energy := EnergyOxidative
	switch slot {
	case SlotSprint, SlotPlyometric:
		energy = EnergyPhosphagen
	case SlotConditioning, SlotLoadedCarry:
		energy = EnergyGlycolytic
	default:
	}
	return ExerciseTag{
		Pattern:           pattern,
		Plane:             PlaneSagittal,
		EnergySystem:      energy,
		Complexity:        1,
		PositionRelevance: nil,
		SideRelevance:     nil,
	}
}

// autoSelect fills an empty exercise id from the catalog. The entry is left as is when nothing qualifies.
func (a *Assembler) autoSelect(
	sectionName string,
	ex WorkoutExercise,
	p PlayerProfile,
	used []string,
) (WorkoutExercise, []string) {
	slot := ClassifySlot(sectionName, ex, nil)
	rec := a.selector.Select(string(slot), p, used)
	if rec == nil {
		return ex, used
	}
	ex.ExerciseID = rec.ExerciseID
	if ex.CategorySlot == "" {
		ex.CategorySlot = string(slot)
	}
	return ex, append(used, rec.ExerciseID)
}

func usedExerciseIDs(day WorkoutDay) []string {
	var ids []string
	for _, s := range day.Sections {
		for _, ex := range s.Exercises {
			if ex.ExerciseID != "" && !slices.Contains(ids, ex.ExerciseID) {
				ids = append(ids, ex.ExerciseID)
			}
		}
	}
	return ids
}

// filterActivation keeps drills relevant to the player's position and side. If nothing would survive, the
// first few drills of the template are kept instead.
func (a *Assembler) filterActivation(exercises []WorkoutExercise, p PlayerProfile) []WorkoutExercise {
	kept := slices.DeleteFunc(slices.Clone(exercises), func(ex WorkoutExercise) bool {
		tag, _ := a.catalog.Tag(ex.ExerciseID)
		return tag.positionScore(p.Position)+tag.sideScore(p.SideBias) < minActivationRelevance
	})
	if len(kept) == 0 && len(exercises) > 0 {
		return exercises[:min(activationFloor, len(exercises))]
	}
	return kept
}

// filterConditioning applies the tournament mode and then the position's energy systems. The position filter
// is skipped when it would remove every exercise.
func (a *Assembler) filterConditioning(
	sectionName string,
	exercises []WorkoutExercise,
	p PlayerProfile,
	mode TournamentMode,
) []WorkoutExercise {
	switch mode {
	case TournamentRemoved:
		return nil
	case TournamentAlacticOnly:
		exercises = slices.DeleteFunc(slices.Clone(exercises), func(ex WorkoutExercise) bool {
			tag, _ := a.resolve(sectionName, ex)
			return tag.EnergySystem != EnergyPhosphagen
		})
	case TournamentNormal:
	}

	preferred := preferredEnergySystems(p.Position)
	byPosition := slices.DeleteFunc(slices.Clone(exercises), func(ex WorkoutExercise) bool {
		tag, _ := a.resolve(sectionName, ex)
		return !slices.Contains(preferred, tag.EnergySystem)
	})
	if len(byPosition) == 0 {
		return exercises
	}
	return byPosition
}

func phaseDescription(phase SeasonPhase, cycle TrainingCycle, rule PhaseRule) string {
	season := strings.ReplaceAll(string(phase), "_", "-")
	return fmt.Sprintf("%s, cycle %d week %d of the %s block. %s",
		strings.ToUpper(season[:1])+season[1:], cycle.CycleNumber, cycle.WeekInPhase, cycle.Phase, rule.Description)
}
