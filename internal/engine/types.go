package engine

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// DefaultDifficulty is used when a task is created without one.
const DefaultDifficulty = DifficultyMedium

// DifficultyInfo is everything a component needs to know about a difficulty.
type DifficultyInfo struct {
	Difficulty Difficulty
	XP         int
	Label      string
	// Style is a semantic tone: success, warning or danger.
	Style string
	Icon  string
}

var difficulties = map[Difficulty]DifficultyInfo{
	DifficultyEasy:   {Difficulty: DifficultyEasy, XP: 10, Label: "Easy", Style: "success", Icon: "🙂"},
	DifficultyMedium: {Difficulty: DifficultyMedium, XP: 25, Label: "Medium", Style: "warning", Icon: "😐"},
	DifficultyHard:   {Difficulty: DifficultyHard, XP: 50, Label: "Hard", Style: "danger", Icon: "🔥"},
}

// Difficulties lists the difficulties from easiest to hardest.
func Difficulties() []Difficulty {
	return []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}
}

func (d Difficulty) IsValid() bool {
	_, ok := difficulties[d]
	return ok
}

// Info returns the table entry for d. Unknown difficulties display as medium but are worth 0 XP.
func (d Difficulty) Info() DifficultyInfo {
	if info, ok := difficulties[d]; ok {
		return info
	}
	info := difficulties[DefaultDifficulty]
	info.Difficulty = d
	info.XP = 0
	return info
}

// XPReward is the experience granted for completing a task of difficulty d.
func XPReward(d Difficulty) int {
	if info, ok := difficulties[d]; ok {
		return info.XP
	}
	return 0
}
