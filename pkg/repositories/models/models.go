package models

import "time"

type Card struct {
	ID    int32  `json:"id"`
	Name  string `json:"name"`
	Emoji string `json:"emoji"`
}

// SoloResult is a hall-of-fame entry.
type SoloResult struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Difficulty  string    `json:"difficulty"`
	TimeSeconds int       `json:"time_seconds"`
	Reveals     int       `json:"reveals"`
	CreatedAt   time.Time `json:"created_at"`
}

type BattleResult struct {
	ID           int64     `json:"id"`
	Player1      string    `json:"player1"`
	Player2      string    `json:"player2"`
	Player1Score int       `json:"player1_score"`
	Player2Score int       `json:"player2_score"`
	Winner       string    `json:"winner"`
	Difficulty   string    `json:"difficulty"`
	CreatedAt    time.Time `json:"created_at"`
}
