package domain

// Location identifies a node in the tree and the asset used to display it
type Location struct {
	Path  string `json:"path" yaml:"path"`   // Hierarchical identifier like "/Rooms/AV Room"
	Image string `json:"image" yaml:"image"` // Display asset file name like "av_room.png"
}
