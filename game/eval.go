package game

const (
	RedWeight  = 2
	BlueWeight = 3
)

// Evaluate scores the position as red*2 + blue*3. The same score is used
// for finished games and for positions cut off by the search depth.
func (gs *GameState) Evaluate() int {
	return gs.red*RedWeight + gs.blue*BlueWeight
}
