package domain

// Container is a named location that may hold items and nested containers
type Container struct {
	ContainerName        string      `json:"containerName" yaml:"containerName"`
	ContainerLocation    Location    `json:"containerLocation" yaml:"containerLocation"`
	AdditionalContainers []Container `json:"additionalContainers,omitempty" yaml:"additionalContainers,omitempty"`
	Items                []Item      `json:"items,omitempty" yaml:"items,omitempty"`
	IsOpen               bool        `json:"isOpen,omitempty" yaml:"isOpen,omitempty"`   // Accordion state of the UI that lists the tree
	HasInfo              bool        `json:"hasInfo,omitempty" yaml:"hasInfo,omitempty"` // Supplementary info exists for this node
}

// Path returns the container's location path
func (c Container) Path() string {
	return c.ContainerLocation.Path
}
