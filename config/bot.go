package config

// BotDifficulty affects reaction time and decision quality of the autopilot
// that drives headless runs.
type BotDifficulty int

const (
	BotDifficultyEasy BotDifficulty = iota
	BotDifficultyNormal
	BotDifficultyHard
)

func (d BotDifficulty) String() string {
	switch d {
	case BotDifficultyEasy:
		return "easy"
	case BotDifficultyNormal:
		return "normal"
	case BotDifficultyHard:
		return "hard"
	}
	return "unknown"
}

// ParseBotDifficulty maps a flag value to a difficulty.
func ParseBotDifficulty(s string) (BotDifficulty, bool) {
	for d := BotDifficultyEasy; d <= BotDifficultyHard; d++ {
		if d.String() == s {
			return d, true
		}
	}
	return BotDifficultyNormal, false
}

// BotDifficultyConfig holds tuning values for the autopilot at a specific difficulty
type BotDifficultyConfig struct {
	ReactionDelay    int     // Frames between target decisions
	AttackRange      float64 // Distance to start shooting at a hostile
	ChaseRange       float64 // Distance to walk toward a hostile instead of the door
	RetreatThreshold float64 // Health fraction to start backing away from hostiles
	JumpLookahead    float64 // How far ahead of its body the bot looks for walls and gaps
}

// BotConfigData holds all autopilot configuration
type BotConfigData struct {
	Difficulties map[BotDifficulty]BotDifficultyConfig
}

// Bot holds autopilot configuration
var Bot BotConfigData

func init() {
	Bot = BotConfigData{
		Difficulties: map[BotDifficulty]BotDifficultyConfig{
			BotDifficultyEasy: {
				ReactionDelay:    30, // 0.5 second reaction time
				AttackRange:      300.0,
				ChaseRange:       500.0,
				RetreatThreshold: 0.2,
				JumpLookahead:    16.0,
			},
			BotDifficultyNormal: {
				ReactionDelay:    15,
				AttackRange:      500.0,
				ChaseRange:       800.0,
				RetreatThreshold: 0.3,
				JumpLookahead:    24.0,
			},
			BotDifficultyHard: {
				ReactionDelay:    5, // Near-instant reaction
				AttackRange:      700.0,
				ChaseRange:       1000.0,
				RetreatThreshold: 0.15,
				JumpLookahead:    32.0,
			},
		},
	}
}
