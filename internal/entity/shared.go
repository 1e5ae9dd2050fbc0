package entity

import "strings"

// Motivation is the user's primary reason for learning a language.
type Motivation string

const (
	MotivationCareer   Motivation = "career"
	MotivationTravel   Motivation = "travel"
	MotivationCulture  Motivation = "culture"
	MotivationAcademic Motivation = "academic"
	MotivationGeneral  Motivation = "general"
)

// ParseMotivation converts an arbitrary survey answer into a Motivation.
// Unknown values fall back to MotivationGeneral.
func ParseMotivation(raw string) Motivation {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "career", "career_development", "business":
		return MotivationCareer
	case "travel", "travel_communication":
		return MotivationTravel
	case "culture", "cultural_interest":
		return MotivationCulture
	case "academic", "academic_study":
		return MotivationAcademic
	default:
		return MotivationGeneral
	}
}

// TimeCommitment is the user's per-day study budget bucket.
type TimeCommitment string

const (
	CommitmentCasual    TimeCommitment = "casual"
	CommitmentRegular   TimeCommitment = "regular"
	CommitmentIntensive TimeCommitment = "intensive"
)

// ParseTimeCommitment maps raw daily-time answers onto a commitment bucket.
// "light" and "irregular" are legacy survey values for casual.
func ParseTimeCommitment(raw string) TimeCommitment {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "intensive":
		return CommitmentIntensive
	case "casual", "light", "irregular":
		return CommitmentCasual
	default:
		return CommitmentRegular
	}
}

// DailyMinutes returns the study minutes per day implied by the bucket.
func (tc TimeCommitment) DailyMinutes() int {
	switch tc {
	case CommitmentIntensive:
		return 120
	case CommitmentCasual:
		return 30
	default:
		return 60
	}
}

// Timeline is the user's declared total time budget.
type Timeline string

const (
	Timeline3Months Timeline = "3months"
	Timeline6Months Timeline = "6months"
	Timeline1Year   Timeline = "1year"
	Timeline2Years  Timeline = "2years"
	TimelineNoRush  Timeline = "no_rush"
)

// ParseTimeline normalizes raw timeline answers, tolerating the survey
// page's underscore variants ("6_months", "1_year_plus").
func ParseTimeline(raw string) Timeline {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "3months", "3_months", "1_3_months":
		return Timeline3Months
	case "6months", "6_months":
		return Timeline6Months
	case "1year", "1_year", "1_year_plus":
		return Timeline1Year
	case "2years", "2_years":
		return Timeline2Years
	case "no_rush", "no_specific_time":
		return TimelineNoRush
	default:
		return Timeline1Year
	}
}

// BudgetDays converts the timeline into an available-day budget.
func (t Timeline) BudgetDays() int {
	switch t {
	case Timeline3Months:
		return 90
	case Timeline6Months:
		return 180
	case Timeline2Years:
		return 730
	case TimelineNoRush:
		return 1095
	default:
		return 365
	}
}

// Region is a cultural-interest region key from the survey.
type Region string

const (
	RegionEastAsia      Region = "east_asia"
	RegionSoutheastAsia Region = "southeast_asia"
	RegionEurope        Region = "europe"
	RegionLatinAmerica  Region = "latin_america"
	RegionMiddleEast    Region = "middle_east"
	RegionAfrica        Region = "africa"
	RegionNorthAmerica  Region = "north_america"
	RegionOceania       Region = "oceania"
)

// KnownRegions lists every recognized cultural-interest region.
var KnownRegions = map[Region]struct{}{
	RegionEastAsia:      {},
	RegionSoutheastAsia: {},
	RegionEurope:        {},
	RegionLatinAmerica:  {},
	RegionMiddleEast:    {},
	RegionAfrica:        {},
	RegionNorthAmerica:  {},
	RegionOceania:       {},
}

// ParseRegion converts a raw interest answer into a Region key, tolerating
// the hyphenated variants older survey pages emitted. The boolean reports
// whether the value named a recognized region.
func ParseRegion(raw string) (Region, bool) {
	key := Region(strings.ReplaceAll(strings.ToLower(strings.TrimSpace(raw)), "-", "_"))
	_, ok := KnownRegions[key]
	return key, ok
}
