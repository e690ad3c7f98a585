package gridgraph

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// String returns "conn4" or "conn8".
func (c Connectivity) String() string {
	if c == Conn4 {
		return "conn4"
	}
	return "conn8"
}

// Default option values.
const (
	DefaultMarker    = '@'
	DefaultThreshold = 4
)

// GridOptions contains tunable parameters for grid construction and eviction.
type GridOptions struct {
	// Marker is the rune that marks a live cell in the input text.
	Marker rune
	// Threshold is the minimum number of live neighbors a cell needs to survive a round.
	Threshold int
	// Conn chooses 4- or 8-directional neighborhoods.
	Conn Connectivity
}

// DefaultGridOptions returns a GridOptions with default settings:
// Marker='@', Threshold=4, Conn=Conn8.
func DefaultGridOptions() GridOptions {
	return GridOptions{
		Marker:    DefaultMarker,
		Threshold: DefaultThreshold,
		Conn:      Conn8,
	}
}

// GridGraph is a mutable occupancy grid with cached neighbor counts.
// Width and Height define dimensions; cells holds, per row-major index,
// 0 for an empty/evicted cell and neighborCount+1 for a live one.
// A GridGraph has a single owner and is not safe for concurrent mutation.
type GridGraph struct {
	Width, Height   int
	Conn            Connectivity
	Threshold       int
	marker          rune
	cells           []uint8
	live            int
	rounds          int
	neighborOffsets [][2]int
}
