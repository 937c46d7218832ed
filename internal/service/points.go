package service

const (
	// Streak bonus on positive check-ins: +5 per day of streak, capped at 50
	streakBonusPerDay = 5
	streakBonusCap    = 50

	// Extra ledger entry each time a streak advances to a multiple of 7
	milestoneInterval = 7
	milestonePoints   = 50

	defaultBasePoints = 10

	habitCreatedPoints = 25

	betWonPoints  = 100
	betLostPoints = 25
)

// ComputePoints returns base plus the streak bonus. The bonus never
// amplifies penalty actions: it only applies when base is positive.
func ComputePoints(base, currentStreak int) int {
	if base <= 0 {
		return base
	}
	bonus := currentStreak * streakBonusPerDay
	if bonus > streakBonusCap {
		bonus = streakBonusCap
	}
	return base + bonus
}
