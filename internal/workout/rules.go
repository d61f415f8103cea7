package workout

// seasonBase is the per-phase starting point for [CalculateModifiers].
type seasonBase struct {
	volume        float64
	intensity     float64
	rest          float64
	sessionLength float64
}

func seasonBaseFor(phase SeasonPhase) seasonBase {
	switch phase {
	case PhaseOffSeason:
		return seasonBase{volume: 1.2, intensity: 0.85, rest: 1.0, sessionLength: 1.1}
	case PhaseInSeason:
		return seasonBase{volume: 0.8, intensity: 0.9, rest: 1.0, sessionLength: 0.85}
	case PhasePreTournament:
		return seasonBase{volume: 0.7, intensity: 0.95, rest: 1.2, sessionLength: 0.75}
	default:
		return seasonBase{volume: 1.0, intensity: 0.85, rest: 1.0, sessionLength: 1.0}
	}
}

// TaperMultiplier scales volume down as an event approaches. Unset or past events do not taper.
func TaperMultiplier(days *int) float64 {
	switch {
	case days == nil || *days < 0:
		return 1.0
	case *days <= 3: //nolint:mnd // days
		return 0.3
	case *days <= 7: //nolint:mnd // days
		return 0.5
	case *days <= 14: //nolint:mnd // days
		return 0.75
	default:
		return 1.0
	}
}

// TournamentModeFor decides how conditioning is handled given the days left before the event.
func TournamentModeFor(days *int) TournamentMode {
	switch {
	case days == nil || *days < 0:
		return TournamentNormal
	case *days <= 3: //nolint:mnd // days
		return TournamentRemoved
	case *days <= 7: //nolint:mnd // days
		return TournamentAlacticOnly
	default:
		return TournamentNormal
	}
}

// tournamentIsNear reports whether the event is close enough to drop tempo work and cap load.
func tournamentIsNear(days *int) bool {
	return days != nil && *days >= 0 && *days <= 7
}

// PhaseRule is the prescription attached to a cycle phase.
type PhaseRule struct {
	Tempo          string
	RestMultiplier float64
	RepMultiplier  float64
	LoadSuggestion string
	Emphasis       string
	Description    string
}

// PhaseRuleFor returns the rule table entry for a cycle phase.
func PhaseRuleFor(phase CyclePhase) PhaseRule {
	switch phase {
	case CycleEccentric:
		return PhaseRule{
			Tempo:          "4-0-1-0",
			RestMultiplier: 1.15,
			RepMultiplier:  1.0,
			LoadSuggestion: "RPE 6-7 (65-75% 1RM)",
			Emphasis:       "controlled lowering, tendon resilience",
			Description:    "Eccentric block: slow 4-second lowering on main lifts to build tissue capacity.",
		}
	case CycleIsometric:
		return PhaseRule{
			Tempo:          "2-3-1-0",
			RestMultiplier: 1.0,
			RepMultiplier:  0.8,
			LoadSuggestion: "RPE 7-8 (70-80% 1RM)",
			Emphasis:       "positional strength, pause at the sticking point",
			Description:    "Isometric block: 3-second pauses in the hardest position of each rep.",
		}
	case CycleConcentric:
		return PhaseRule{
			Tempo:          "1-0-X-0",
			RestMultiplier: 1.25,
			RepMultiplier:  0.7,
			LoadSuggestion: "RPE 8-9 (75-85% 1RM)",
			Emphasis:       "bar speed, rate of force development",
			Description:    "Concentric block: move every rep as fast as possible, full rest between sets.",
		}
	default:
		return PhaseRuleFor(CycleEccentric)
	}
}

// LoadSuggestion returns the RPE/percentage guidance for the day.
func LoadSuggestion(phase CyclePhase, days *int) string {
	if tournamentIsNear(days) {
		return "RPE 6, stop 3+ reps short of failure"
	}
	return PhaseRuleFor(phase).LoadSuggestion
}

// TempoFor returns the tempo note for a slot, or "" if the slot carries none. Only primary lifts in the
// eccentric and isometric blocks are tempo-prescribed, and never in the final week before an event.
func TempoFor(slot SlotCategory, cm CombinedModifiers) string {
	if slot.Kind() != KindPrimary || tournamentIsNear(cm.DaysUntilTournament) {
		return ""
	}
	switch cm.Phase.Phase {
	case CycleEccentric:
		return "Tempo " + PhaseRuleFor(CycleEccentric).Tempo + " (4s lowering)"
	case CycleIsometric:
		return "Tempo " + PhaseRuleFor(CycleIsometric).Tempo + " (3s pause)"
	case CycleConcentric:
		return ""
	default:
		return ""
	}
}

// preferredEnergySystems lists the conditioning energy systems that suit a position.
func preferredEnergySystems(p Position) []EnergySystem {
	switch p {
	case PositionFront:
		return []EnergySystem{EnergyPhosphagen, EnergyGlycolytic}
	case PositionMid:
		return []EnergySystem{EnergyPhosphagen, EnergyGlycolytic, EnergyOxidative}
	case PositionBack:
		return []EnergySystem{EnergyPhosphagen, EnergyOxidative}
	default:
		return []EnergySystem{EnergyPhosphagen, EnergyGlycolytic, EnergyOxidative}
	}
}

// preferredPlane is the plane of motion that carries over best to a side bias. Snake players live low and
// linear; dorito players shuffle laterally.
func preferredPlane(s SideBias) (Plane, bool) {
	switch s {
	case SideSnake:
		return PlaneSagittal, true
	case SideDorito:
		return PlaneFrontal, true
	case SideBoth:
		return "", false
	default:
		return "", false
	}
}

const (
	positionEmphasis = 1.15
	sideEmphasis     = 1.10
)

// slotVolumeFactor scales a slot's set count for the athlete's position and side bias.
func slotVolumeFactor(slot SlotCategory, p Position, s SideBias) float64 {
	factor := 1.0
	switch p {
	case PositionFront:
		if slot == SlotSprint || slot == SlotPlyometric || slot == SlotUnilateralSquat {
			factor *= positionEmphasis
		}
	case PositionMid:
		if slot == SlotConditioning || slot == SlotLoadedCarry || slot == SlotAntiRotation {
			factor *= positionEmphasis
		}
	case PositionBack:
		if slot == SlotIsoHold || slot == SlotCoreVariation || slot == SlotVerticalPress {
			factor *= positionEmphasis
		}
	}
	switch s {
	case SideSnake:
		if slot == SlotUnilateralSquat || slot == SlotMobility || slot == SlotIsoHold {
			factor *= sideEmphasis
		}
	case SideDorito:
		if slot == SlotUnilateralHinge || slot == SlotAntiRotation || slot == SlotUnilateralPress {
			factor *= sideEmphasis
		}
	case SideBoth:
	}
	return factor
}

// focusAreas summarizes what the day emphasizes for downstream explanation copy.
func focusAreas(cm CombinedModifiers) []string {
	var areas []string
	switch cm.Position {
	case PositionFront:
		areas = append(areas, "acceleration", "reactive power")
	case PositionMid:
		areas = append(areas, "repeat-sprint capacity", "trunk stability")
	case PositionBack:
		areas = append(areas, "isometric strength", "aerobic base")
	}
	switch cm.SideBias {
	case SideSnake:
		areas = append(areas, "low hip mobility")
	case SideDorito:
		areas = append(areas, "lateral stability")
	case SideBoth:
	}
	return append(areas, PhaseRuleFor(cm.Phase.Phase).Emphasis)
}
