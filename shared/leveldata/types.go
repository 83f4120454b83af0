// Package leveldata parses the demo world from TMX files into plain data.
// It has no dependencies on ebitengine, donburi, or resolv.
package leveldata

// World holds everything the demo scene needs from a TMX map.
// Positions and sizes are in world units; one tile is one unit.
type World struct {
	Layers      []TileLayer
	SpawnPoints []SpawnPoint
	Width       int // tiles
	Height      int // tiles
	TileSize    int // source pixels per tile
}

// TileLayer is one Tiled tile layer.
type TileLayer struct {
	Name string
	// Depth is the distance from the camera used in perspective mode.
	Depth float64
	// Solid layers produce collision rectangles.
	Solid bool
	Tiles []Tile
}

// Tile is a non-empty cell of a layer.
type Tile struct {
	X, Y float64
	ID   uint32
}

// SpawnPoint is a player spawn location.
type SpawnPoint struct {
	X, Y  float64
	Index int
}
