// Package catalog holds the authored inventory of the trailers.
package catalog

import "trailers/inventory/internal/domain"

// Roots returns the top-level containers of the inventory. The tree is
// rebuilt on every call, so callers are free to modify what they get.
func Roots() []domain.Container {
	return []domain.Container{
		{
			ContainerName:     "Trailers",
			ContainerLocation: domain.Location{Path: "/Trailers", Image: "trailers.png"},
			AdditionalContainers: []domain.Container{
				rooms(),
			},
		},
	}
}

func rooms() domain.Container {
	return domain.Container{
		ContainerName:     "Rooms",
		ContainerLocation: domain.Location{Path: "/Rooms", Image: "rooms.png"},
		AdditionalContainers: []domain.Container{
			{
				ContainerName:     "AV Room",
				ContainerLocation: domain.Location{Path: "/Rooms/AV Room", Image: "av_room.png"},
			},
			{
				ContainerName:     "May's Room",
				ContainerLocation: domain.Location{Path: "/Rooms/May's Room", Image: "may_room.png"},
			},
			kearnysRoom(),
		},
	}
}

func kearnysRoom() domain.Container {
	const room = "/Rooms/Kearny's Room"

	return domain.Container{
		ContainerName:     "Kearny's Room",
		ContainerLocation: domain.Location{Path: room, Image: "kearny_room.png"},
		AdditionalContainers: []domain.Container{
			{
				ContainerName:     "Kearny's Desk",
				ContainerLocation: domain.Location{Path: room + "/Kearny's Desk", Image: "desk.png"},
				HasInfo:           true,
			},
			{
				ContainerName:     "Back Corner Shelf",
				ContainerLocation: domain.Location{Path: room + "/Back Corner Shelf", Image: "shelf.png"},
				HasInfo:           true,
			},
			{
				ContainerName:     "Big Cabinet",
				ContainerLocation: domain.Location{Path: room + "/Big Cabinet", Image: "big_cabinet.png"},
				AdditionalContainers: []domain.Container{
					box(room+"/Big Cabinet", "Box 1", true),
					box(room+"/Big Cabinet", "Box 2", true),
					box(room+"/Big Cabinet", "Box 3", false),
				},
			},
			{
				ContainerName:     "Small Cabinet",
				ContainerLocation: domain.Location{Path: room + "/Small Cabinet", Image: "small_cabinet.png"},
				HasInfo:           true,
				AdditionalContainers: []domain.Container{
					box(room+"/Small Cabinet", "Box 1", true),
					box(room+"/Small Cabinet", "Box 2", false),
				},
			},
		},
	}
}

func box(parent, name string, hasInfo bool) domain.Container {
	return domain.Container{
		ContainerName:     name,
		ContainerLocation: domain.Location{Path: parent + "/" + name, Image: "box.png"},
		HasInfo:           hasInfo,
	}
}
