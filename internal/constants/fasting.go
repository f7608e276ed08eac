package constants

// FastingWindow is a named fasting protocol offered when starting a fast
type FastingWindow struct {
	Label string
	Hours int
}

// FastingWindows are the preset protocols, longest eating window first
var FastingWindows = []FastingWindow{
	{Label: "16:8", Hours: 16},
	{Label: "18:6", Hours: 18},
	{Label: "20:4", Hours: 20},
	{Label: "24h", Hours: 24},
}

const (
	// DefaultChallengeDurationDays is used when a challenge is started
	// without an explicit required day count
	DefaultChallengeDurationDays = 30

	// Reminder copy sent through the notifier
	ReminderHalfwayTitle   = "Halfway There!"
	ReminderHalfwayBody    = "You're halfway through your fast. Keep going strong!"
	ReminderOneHourTitle   = "Almost Done!"
	ReminderOneHourBody    = "Just 1 hour left in your fast."
	ReminderCompleteTitle  = "Fasting Complete!"
	ReminderCompleteBody   = "Congratulations! You have successfully completed your fast."
	ReminderRitualTemplate = "Time for your ritual: %s"
)
