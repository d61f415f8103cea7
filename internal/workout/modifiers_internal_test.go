package workout

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestCalculateModifiers(t *testing.T) {
	t.Parallel()
	eccentric := CycleEccentric
	concentric := CycleConcentric
	approx := cmpopts.EquateApprox(0, 1e-9)

	tests := []struct {
		name  string
		phase SeasonPhase
		days  *int
		cycle *TrainingCycle
		want  WorkoutModifiers
	}{
		{
			name:  "off-season without cycle",
			phase: PhaseOffSeason,
			want: WorkoutModifiers{
				VolumeMultiplier:        1.2,
				IntensityMultiplier:     0.85,
				RestMultiplier:          1.0,
				SessionLengthMultiplier: 1.1,
				MaxComplexity:           3,
				ExerciseVariety:         2,
			},
		},
		{
			name:  "in-season ignores tournament taper",
			phase: PhaseInSeason,
			days:  intPtr(2),
			want: WorkoutModifiers{
				VolumeMultiplier:        0.8,
				IntensityMultiplier:     0.9,
				RestMultiplier:          1.0,
				SessionLengthMultiplier: 0.85,
				MaxComplexity:           3,
				ExerciseVariety:         2,
			},
		},
		{
			name:  "pre-tournament two days out",
			phase: PhasePreTournament,
			days:  intPtr(2),
			cycle: &TrainingCycle{Phase: CycleEccentric, WeekInPhase: 1, CycleNumber: 1},
			want: WorkoutModifiers{
				VolumeMultiplier:        0.21,
				IntensityMultiplier:     0.95,
				RestMultiplier:          1.2 * 1.15,
				SessionLengthMultiplier: 0.75,
				MaxComplexity:           3,
				ExerciseVariety:         2,
				CyclePhase:              &eccentric,
				TempoFocus:              "4-0-1-0",
				PrimaryExerciseEmphasis: PhaseRuleFor(CycleEccentric).Emphasis,
			},
		},
		{
			name:  "concentric block lengthens rest",
			phase: PhaseOffSeason,
			cycle: &TrainingCycle{Phase: CycleConcentric, WeekInPhase: 2, CycleNumber: 3},
			want: WorkoutModifiers{
				VolumeMultiplier:        1.2,
				IntensityMultiplier:     0.85,
				RestMultiplier:          1.25,
				SessionLengthMultiplier: 1.1,
				MaxComplexity:           3,
				ExerciseVariety:         2,
				CyclePhase:              &concentric,
				TempoFocus:              "1-0-X-0",
				PrimaryExerciseEmphasis: PhaseRuleFor(CycleConcentric).Emphasis,
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := CalculateModifiers(tt.phase, ExperienceBeginner, tt.days, tt.cycle)
			if diff := cmp.Diff(tt.want, got, approx); diff != "" {
				t.Errorf("CalculateModifiers() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCalculateModifiers_experienceDoesNotChangeModifiers(t *testing.T) {
	t.Parallel()
	cycle := &TrainingCycle{Phase: CycleIsometric, WeekInPhase: 1, CycleNumber: 1}
	beginner := CalculateModifiers(PhaseInSeason, ExperienceBeginner, nil, cycle)
	advanced := CalculateModifiers(PhaseInSeason, ExperienceAdvanced, nil, cycle)
	if diff := cmp.Diff(beginner, advanced); diff != "" {
		t.Errorf("modifiers depend on experience (-beginner +advanced):\n%s", diff)
	}
}

func TestCalculateModifiers_taperIsMonotonic(t *testing.T) {
	t.Parallel()
	prev := 0.0
	for d := range 30 {
		v := CalculateModifiers(PhasePreTournament, ExperienceIntermediate, intPtr(d), nil).VolumeMultiplier
		if v < prev-1e-12 {
			t.Errorf("volume at %d days (%v) is below volume at %d days (%v)", d, v, d-1, prev)
		}
		prev = v
	}
	if got := CalculateModifiers(PhasePreTournament, ExperienceIntermediate, nil, nil).VolumeMultiplier; math.Abs(got-0.7) > 1e-9 {
		t.Errorf("no tournament volume = %v, want 0.7", got)
	}
}

func TestExperienceFor(t *testing.T) {
	t.Parallel()
	tests := []struct {
		profile PlayerProfile
		want    ExperienceLevel
	}{
		{PlayerProfile{}, ExperienceBeginner},
		{PlayerProfile{YearsExperience: 1}, ExperienceBeginner},
		{PlayerProfile{YearsExperience: 2}, ExperienceIntermediate},
		{PlayerProfile{YearsExperience: 4}, ExperienceIntermediate},
		{PlayerProfile{YearsExperience: 5}, ExperienceAdvanced},
		{PlayerProfile{Division: "Pro"}, ExperienceAdvanced},
		{PlayerProfile{Division: "D3"}, ExperienceIntermediate},
		{PlayerProfile{Division: "D5"}, ExperienceBeginner},
		{PlayerProfile{Division: "pro", YearsExperience: 1}, ExperienceBeginner},
	}
	for _, tt := range tests {
		if got := ExperienceFor(tt.profile); got != tt.want {
			t.Errorf("ExperienceFor(%+v) = %s, want %s", tt.profile, got, tt.want)
		}
	}
}
