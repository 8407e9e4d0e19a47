package entity

// Session is the snapshot of a live single-player session: the current board and the score.
type Session struct {
	ID    string          `json:"id"`
	Board [BoardSize]Cell `json:"board"`
	Score int             `json:"score"`
}
