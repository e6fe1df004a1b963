// Package validate checks the authoring conventions of an inventory tree:
// every path is unique and every child path is nested under its parent.
package validate

import (
	"strings"

	"trailers/inventory/internal/domain"
)

// Tree validates roots and returns an *AggregateError with every finding,
// in pre-order, or nil if the tree is clean.
func Tree(roots []domain.Container) error {
	var errs []error
	owners := make(map[string]string)

	claim := func(path, name string) {
		if first, ok := owners[path]; ok {
			errs = append(errs, &DuplicatePathError{Path: path, First: first, Second: name})
			return
		}
		owners[path] = name
	}

	domain.Walk(roots, func(parent, c *domain.Container) {
		claim(c.Path(), c.ContainerName)

		if parent != nil && !nested(parent.Path(), c.Path()) {
			errs = append(errs, &PathHierarchyMismatchError{
				ParentPath: parent.Path(),
				ChildPath:  c.Path(),
			})
		}

		for _, item := range c.Items {
			claim(item.ItemLocation.Path, item.ItemName)
			if !nested(c.Path(), item.ItemLocation.Path) {
				errs = append(errs, &PathHierarchyMismatchError{
					ParentPath: c.Path(),
					ChildPath:  item.ItemLocation.Path,
				})
			}
		}
	})

	if len(errs) > 0 {
		return &AggregateError{Errors: errs}
	}

	return nil
}

func nested(parent, child string) bool {
	return strings.HasPrefix(child, strings.TrimSuffix(parent, "/")+"/")
}
