package workout

import (
	"strings"
	"time"
)

// Position is the athlete's primary field position.
type Position string

const (
	PositionFront Position = "front"
	PositionMid   Position = "mid"
	PositionBack  Position = "back"
)

// IsValid reports whether p is one of the known positions.
func (p Position) IsValid() bool {
	switch p {
	case PositionFront, PositionMid, PositionBack:
		return true
	default:
		return false
	}
}

// SideBias is the side of the field the athlete prefers to play.
type SideBias string

const (
	SideSnake  SideBias = "snake"
	SideDorito SideBias = "dorito"
	SideBoth   SideBias = "both"
)

// IsValid reports whether s is one of the known side biases.
func (s SideBias) IsValid() bool {
	switch s {
	case SideSnake, SideDorito, SideBoth:
		return true
	default:
		return false
	}
}

// SeasonPhase is the athlete's current phase intent in the competitive calendar.
type SeasonPhase string

const (
	PhaseOffSeason     SeasonPhase = "off_season"
	PhaseInSeason      SeasonPhase = "in_season"
	PhasePreTournament SeasonPhase = "pre_tournament"
)

// IsValid reports whether p is one of the known season phases.
func (p SeasonPhase) IsValid() bool {
	switch p {
	case PhaseOffSeason, PhaseInSeason, PhasePreTournament:
		return true
	default:
		return false
	}
}

// ExperienceLevel is the experience band derived from years played or division.
type ExperienceLevel string

const (
	ExperienceBeginner     ExperienceLevel = "beginner"
	ExperienceIntermediate ExperienceLevel = "intermediate"
	ExperienceAdvanced     ExperienceLevel = "advanced"
)

// CyclePhase is the contraction focus of the current 4-week block.
type CyclePhase string

const (
	CycleEccentric  CyclePhase = "eccentric"
	CycleIsometric  CyclePhase = "isometric"
	CycleConcentric CyclePhase = "concentric"
)

// MovementPattern is the catalog's movement classification of an exercise.
type MovementPattern string

const (
	PatternSquat        MovementPattern = "squat"
	PatternHinge        MovementPattern = "hinge"
	PatternLunge        MovementPattern = "lunge"
	PatternPush         MovementPattern = "push"
	PatternPull         MovementPattern = "pull"
	PatternCore         MovementPattern = "core"
	PatternCarry        MovementPattern = "carry"
	PatternPlyometric   MovementPattern = "plyometric"
	PatternSprint       MovementPattern = "sprint"
	PatternConditioning MovementPattern = "conditioning"
	PatternMobility     MovementPattern = "mobility"
)

// Plane is the dominant plane of motion.
type Plane string

const (
	PlaneSagittal   Plane = "sagittal"
	PlaneFrontal    Plane = "frontal"
	PlaneTransverse Plane = "transverse"
)

// EnergySystem is the dominant energy system. Phosphagen is the shortest-duration (alactic) system.
type EnergySystem string

const (
	EnergyPhosphagen EnergySystem = "phosphagen"
	EnergyGlycolytic EnergySystem = "glycolytic"
	EnergyOxidative  EnergySystem = "oxidative"
)

// TournamentMode controls how conditioning is treated as an event approaches.
type TournamentMode string

const (
	TournamentNormal      TournamentMode = "normal"
	TournamentAlacticOnly TournamentMode = "alactic_only"
	TournamentRemoved     TournamentMode = "removed"
)

// PlayerProfile is the athlete input to an assembly call. Dates are ISO dates (2006-01-02) or RFC 3339
// timestamps; empty or malformed dates mean "not set".
type PlayerProfile struct {
	Position           Position    `json:"position"             yaml:"position"`
	SideBias           SideBias    `json:"side_bias"            yaml:"side_bias"`
	Phase              SeasonPhase `json:"phase"                yaml:"phase"`
	Division           string      `json:"division"             yaml:"division"`
	YearsExperience    int         `json:"years_experience"     yaml:"years_experience"`
	NextTournamentDate string      `json:"next_tournament_date" yaml:"next_tournament_date"`
	ProgramStartDate   string      `json:"program_start_date"   yaml:"program_start_date"`
}

// normalized returns a copy with unknown enumeration values replaced by neutral defaults.
func (p PlayerProfile) normalized() PlayerProfile {
	if !p.Position.IsValid() {
		p.Position = PositionMid
	}
	if !p.SideBias.IsValid() {
		p.SideBias = SideBoth
	}
	if !p.Phase.IsValid() {
		p.Phase = PhaseOffSeason
	}
	return p
}

// ExperienceFor maps years played to an experience band. Division only decides when years are unknown.
func ExperienceFor(p PlayerProfile) ExperienceLevel {
	if p.YearsExperience <= 0 && p.Division != "" {
		switch strings.ToLower(strings.TrimSpace(p.Division)) {
		case "pro", "d1":
			return ExperienceAdvanced
		case "d2", "d3":
			return ExperienceIntermediate
		default:
			return ExperienceBeginner
		}
	}
	switch {
	case p.YearsExperience < 2: //nolint:mnd // years
		return ExperienceBeginner
	case p.YearsExperience < 5: //nolint:mnd // years
		return ExperienceIntermediate
	default:
		return ExperienceAdvanced
	}
}

// parseDate accepts ISO dates and RFC 3339 timestamps and reports whether s held a usable date.
func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, true
	}
	return time.Time{}, false
}

// normalizeDate normalizes a date to midnight UTC.
func normalizeDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// daysBetween counts calendar days from a to b, negative when b is before a.
func daysBetween(a, b time.Time) int {
	return int(normalizeDate(b).Sub(normalizeDate(a)).Hours() / 24) //nolint:mnd // hours per day
}

// Set is a single prescribed set. WeightKg is athlete-determined and is never scaled by the engine.
type Set struct {
	Reps        string   `json:"reps"                yaml:"reps"`
	WeightKg    *float64 `json:"weight_kg,omitempty" yaml:"weight_kg,omitempty"`
	RestSeconds int      `json:"rest_seconds"        yaml:"rest_seconds"`
	Completed   bool     `json:"completed"           yaml:"completed"`
	Note        string   `json:"note,omitempty"      yaml:"note,omitempty"`
}

// WorkoutExercise is a template exercise entry. An empty ExerciseID asks the assembler to pick one for
// CategorySlot.
type WorkoutExercise struct {
	ExerciseID    string `json:"exercise_id"              yaml:"exercise_id"`
	Slot          string `json:"slot"                     yaml:"slot"`
	CategorySlot  string `json:"category_slot"            yaml:"category_slot"`
	Sets          []Set  `json:"sets"                     yaml:"sets"`
	SupersetGroup string `json:"superset_group,omitempty" yaml:"superset_group,omitempty"`
	PerSide       bool   `json:"per_side,omitempty"       yaml:"per_side,omitempty"`
}

// Section is a named, ordered group of exercises such as "Warm-up" or "Conditioning".
type Section struct {
	Name      string            `json:"name"      yaml:"name"`
	Exercises []WorkoutExercise `json:"exercises" yaml:"exercises"`
}

// WorkoutDay is one day of an authored program template.
type WorkoutDay struct {
	ID       string    `json:"id"       yaml:"id"`
	Name     string    `json:"name"     yaml:"name"`
	Sections []Section `json:"sections" yaml:"sections"`
}

// clone deep-copies the day so that assembly never mutates template data.
func (d WorkoutDay) clone() WorkoutDay {
	out := WorkoutDay{ID: d.ID, Name: d.Name, Sections: make([]Section, len(d.Sections))}
	for i, s := range d.Sections {
		out.Sections[i] = Section{Name: s.Name, Exercises: make([]WorkoutExercise, len(s.Exercises))}
		for j, ex := range s.Exercises {
			out.Sections[i].Exercises[j] = ex.clone()
		}
	}
	return out
}

func (e WorkoutExercise) clone() WorkoutExercise {
	sets := make([]Set, len(e.Sets))
	for i, s := range e.Sets {
		if s.WeightKg != nil {
			w := *s.WeightKg
			s.WeightKg = &w
		}
		sets[i] = s
	}
	e.Sets = sets
	return e
}

// Exercise is a catalog row.
type Exercise struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
}

// ExerciseTag is the catalog's descriptive tag for an exercise. Relevance scores run from 1 to 5; missing
// entries count as the neutral value 3.
type ExerciseTag struct {
	Pattern           MovementPattern
	Plane             Plane
	EnergySystem      EnergySystem
	Complexity        int
	PositionRelevance map[Position]int
	SideRelevance     map[SideBias]int
}

// neutralRelevance is used for relevance scores missing from a tag, and for untagged exercises.
const neutralRelevance = 3

func (t ExerciseTag) positionScore(p Position) int {
	if v, ok := t.PositionRelevance[p]; ok {
		return v
	}
	return neutralRelevance
}

func (t ExerciseTag) sideScore(s SideBias) int {
	if v, ok := t.SideRelevance[s]; ok {
		return v
	}
	return neutralRelevance
}

// TrainingCycle locates a day within the repeating 12-week periodization cycle.
type TrainingCycle struct {
	Phase       CyclePhase `json:"phase"`
	WeekInPhase int        `json:"week_in_phase"`
	CycleNumber int        `json:"cycle_number"`
}

// WorkoutModifiers is the flat multiplier set produced by [CalculateModifiers].
type WorkoutModifiers struct {
	VolumeMultiplier        float64     `json:"volume_multiplier"`
	IntensityMultiplier     float64     `json:"intensity_multiplier"`
	RestMultiplier          float64     `json:"rest_multiplier"`
	SessionLengthMultiplier float64     `json:"session_length_multiplier"`
	MaxComplexity           int         `json:"max_complexity"`
	ExerciseVariety         int         `json:"exercise_variety"`
	CyclePhase              *CyclePhase `json:"cycle_phase,omitempty"`
	TempoFocus              string      `json:"tempo_focus,omitempty"`
	PrimaryExerciseEmphasis string      `json:"primary_exercise_emphasis,omitempty"`
}

// CombinedModifiers is what the rule tables need to prescribe sets, reps and tempo for a slot.
type CombinedModifiers struct {
	Phase               TrainingCycle
	Position            Position
	SideBias            SideBias
	DaysUntilTournament *int
}

// PlayerContext is the resolved athlete context reported alongside an assembled workout.
type PlayerContext struct {
	Position            Position        `json:"position"`
	SideBias            SideBias        `json:"side_bias"`
	Phase               SeasonPhase     `json:"phase"`
	Experience          ExperienceLevel `json:"experience"`
	Cycle               TrainingCycle   `json:"cycle"`
	DaysUntilTournament *int            `json:"days_until_tournament,omitempty"`
	TournamentMode      TournamentMode  `json:"tournament_mode"`
	FocusAreas          []string        `json:"focus_areas"`
}

// TrainingInfo is the headline prescription for the day.
type TrainingInfo struct {
	Tempo            string `json:"tempo"`
	LoadSuggestion   string `json:"load_suggestion"`
	PhaseDescription string `json:"phase_description"`
	EstimatedMinutes int    `json:"estimated_minutes"`
	TimeNote         string `json:"time_note,omitempty"`
}

// AssembledWorkout is the personalized day. It is built fresh on every call.
type AssembledWorkout struct {
	Day       WorkoutDay       `json:"day"`
	Modifiers WorkoutModifiers `json:"modifiers"`
	Context   PlayerContext    `json:"context"`
	Info      TrainingInfo     `json:"info"`
}

// ExerciseRecommendation is a scored candidate for a slot.
type ExerciseRecommendation struct {
	ExerciseID string   `json:"exercise_id"`
	Exercise   Exercise `json:"exercise"`
	Score      float64  `json:"score"`
	Reasons    []string `json:"reasons"`
}
