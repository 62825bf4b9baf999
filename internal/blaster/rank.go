package blaster

// Rank is the title awarded for a final score.
func Rank(score int) string {
	switch {
	case score < 100:
		return "ROOKIE"
	case score < 500:
		return "NOVICE"
	case score < 1000:
		return "SHARP SHOOTER"
	case score < 2000:
		return "MASTER BLASTER"
	}
	return "LEGENDARY"
}
