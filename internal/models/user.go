package models

// FitnessLevel is the user's self-reported training background
type FitnessLevel string

const (
	FitnessBeginner     FitnessLevel = "beginner"
	FitnessIntermediate FitnessLevel = "intermediate"
	FitnessAdvanced     FitnessLevel = "advanced"
)

// UserStats holds the optional profile measurements collected during
// onboarding.
type UserStats struct {
	Age                 int          `json:"age,omitempty"`
	WeightKg            float64      `json:"weight_kg,omitempty"`
	HeightCm            float64      `json:"height_cm,omitempty"`
	FitnessLevel        FitnessLevel `json:"fitness_level,omitempty"`
	Goals               []string     `json:"goals,omitempty"`
	WeeklyActivityLevel int          `json:"weekly_activity_level,omitempty"` // days per week
}

// User is the single local profile that owns every tracked entity.
type User struct {
	ID    string     `json:"id"`
	Name  string     `json:"name"`
	Email string     `json:"email,omitempty"`
	Stats *UserStats `json:"stats,omitempty"`
}
