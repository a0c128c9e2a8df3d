package rules

// Neighbor counts of the B3/S23 rule.
const (
	BirthNeighbors      = 3
	MinSurviveNeighbors = 2
	MaxSurviveNeighbors = 3
)

/*
ApplyConwayRules applies Conway's Game of Life rules to determine the next state of a cell.

A dead cell becomes alive with exactly 3 living neighbors.
A living cell stays alive with 2 or 3 living neighbors and dies otherwise.
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	if alive {
		return neighbors >= MinSurviveNeighbors && neighbors <= MaxSurviveNeighbors
	}
	return neighbors == BirthNeighbors
}
