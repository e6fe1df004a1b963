package domain

// VisitFunc is called for every container in pre-order. Parent is nil for roots.
type VisitFunc func(parent, c *Container)

// Walk visits roots and their descendants depth-first, in authored order
func Walk(roots []Container, fn VisitFunc) {
	for i := range roots {
		walk(nil, &roots[i], fn)
	}
}

func walk(parent, c *Container, fn VisitFunc) {
	fn(parent, c)
	for i := range c.AdditionalContainers {
		walk(c, &c.AdditionalContainers[i], fn)
	}
}

// Images returns the distinct image references of every container and item,
// in first-seen order
func Images(roots []Container) []string {
	seen := make(map[string]struct{})
	images := make([]string, 0)

	add := func(image string) {
		if image == "" {
			return
		}
		if _, ok := seen[image]; ok {
			return
		}
		seen[image] = struct{}{}
		images = append(images, image)
	}

	Walk(roots, func(_, c *Container) {
		add(c.ContainerLocation.Image)
		for _, item := range c.Items {
			add(item.ItemLocation.Image)
		}
	})

	return images
}
