package realm

// Biome is the terrain class of a map quad. It also picks the name pool a new
// settlement draws from.
type Biome string

const (
	Desert   Biome = "desert"
	Forest   Biome = "forest"
	Sea      Biome = "sea"
	Mountain Biome = "mountain"
)

// AllBiomes returns every biome in a stable order.
func AllBiomes() []Biome {
	return []Biome{Desert, Forest, Sea, Mountain}
}

// Quad is a single map cell.
type Quad struct {
	Biome    Biome
	Location Location
}
