package types

import "fmt"

// CardIdentity is one distinct card face served by the card source.
type CardIdentity struct {
	ID   int32  `json:"id"`
	Name string `json:"name"`
	// Token is what the face shows: an emoji, a character or a sound reference.
	Token string `json:"token"`
}

type FaceState string

const (
	FaceStateHidden   FaceState = "hidden"
	FaceStateRevealed FaceState = "revealed"
	FaceStateMatched  FaceState = "matched"
)

// DeckCard is a CardIdentity placed at a position in the deck.
// Every identity appears on exactly two cards.
type DeckCard struct {
	Position int          `json:"position"`
	Identity CardIdentity `json:"identity"`
	State    FaceState    `json:"state"`
}

type Mode string

const (
	ModeSingle Mode = "single"
	ModeMulti  Mode = "multi"
)

func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeSingle, ModeMulti:
		return Mode(s), nil
	case "":
		return ModeSingle, nil
	default:
		return "", fmt.Errorf("unknown mode: %s", s)
	}
}

type Difficulty string

const (
	DifficultyEasy      Difficulty = "easy"
	DifficultyMedium    Difficulty = "medium"
	DifficultyHard      Difficulty = "hard"
	DifficultyUltraHard Difficulty = "ultrahard"
)

// Difficulties lists every difficulty from easiest to hardest.
var Difficulties = []Difficulty{
	DifficultyEasy,
	DifficultyMedium,
	DifficultyHard,
	DifficultyUltraHard,
}

func ParseDifficulty(s string) (Difficulty, error) {
	if s == "" {
		return DifficultyEasy, nil
	}
	for _, d := range Difficulties {
		if Difficulty(s) == d {
			return d, nil
		}
	}
	return "", fmt.Errorf("unknown difficulty: %s", s)
}

// Rank orders difficulties from 0 (easiest) upwards. Unknown difficulties rank -1.
func (d Difficulty) Rank() int {
	for i, known := range Difficulties {
		if d == known {
			return i
		}
	}
	return -1
}

type Phase string

const (
	PhaseIdle    Phase = "idle"
	PhaseActive  Phase = "active"
	PhaseVictory Phase = "victory"
	PhaseDefeat  Phase = "defeat"
)

func (p Phase) IsTerminal() bool {
	return p == PhaseVictory || p == PhaseDefeat
}

// Player is one side of a two-player battle.
type Player struct {
	Name         string `json:"name"`
	RevealCount  int    `json:"revealCount"`
	MatchedCount int    `json:"matchedCount"`
}

// SessionConfig holds the choices made when a session starts.
type SessionConfig struct {
	Mode       Mode       `json:"mode"`
	Difficulty Difficulty `json:"difficulty"`
	Theme      string     `json:"theme"`
	// PlayerNames holds the solo player's name (optional) or both battle players' names.
	PlayerNames []string `json:"playerNames"`
	// MaxReveals is derived at start; zero means unlimited.
	MaxReveals int `json:"maxReveals"`
}
