package models

// GameEvent is a random daily event rolled at morning. Apply runs once
// against a fresh snapshot clone, immediately after the roll.
type GameEvent struct {
	ID          string             `json:"id"`
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Apply       func(s *GameState) `json:"-"`
}
