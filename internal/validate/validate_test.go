package validate

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trailers/inventory/internal/catalog"
	"trailers/inventory/internal/domain"
)

func node(name, path string, children ...domain.Container) domain.Container {
	return domain.Container{
		ContainerName:        name,
		ContainerLocation:    domain.Location{Path: path, Image: "x.png"},
		AdditionalContainers: children,
	}
}

func TestTree_Clean(t *testing.T) {
	roots := []domain.Container{
		node("Shed", "/Shed",
			node("Shelf", "/Shed/Shelf", node("Bin", "/Shed/Shelf/Bin")),
			node("Floor", "/Shed/Floor"),
		),
		node("Garage", "/Garage"),
	}

	assert.NoError(t, Tree(roots))
	assert.NoError(t, Tree(nil))
}

func TestTree_DuplicatePath(t *testing.T) {
	roots := []domain.Container{
		node("Shed", "/Shed", node("Bin", "/Shed/Bin"), node("Other Bin", "/Shed/Bin")),
	}

	err := Tree(roots)
	require.Error(t, err)

	errs := Errors(err)
	require.Len(t, errs, 1)

	var dup *DuplicatePathError
	require.True(t, errors.As(errs[0], &dup))
	assert.Equal(t, "/Shed/Bin", dup.Path)
	assert.Equal(t, "Bin", dup.First)
	assert.Equal(t, "Other Bin", dup.Second)
}

func TestTree_HierarchyMismatch(t *testing.T) {
	roots := []domain.Container{
		node("Shed", "/Shed", node("Bin", "/Garage/Bin"), node("Shedding", "/Shedding")),
	}

	errs := Errors(Tree(roots))
	require.Len(t, errs, 2)

	for i, child := range []string{"/Garage/Bin", "/Shedding"} {
		var mismatch *PathHierarchyMismatchError
		require.True(t, errors.As(errs[i], &mismatch))
		assert.Equal(t, "/Shed", mismatch.ParentPath)
		assert.Equal(t, child, mismatch.ChildPath)
	}
}

func TestTree_ItemPaths(t *testing.T) {
	shed := node("Shed", "/Shed")
	shed.Items = []domain.Item{
		{ItemName: "Drill", ItemLocation: domain.Location{Path: "/Shed/Drill"}},
		{ItemName: "Saw", ItemLocation: domain.Location{Path: "/Saw"}},
		{ItemName: "Drill Copy", ItemLocation: domain.Location{Path: "/Shed/Drill"}},
	}

	errs := Errors(Tree([]domain.Container{shed}))
	require.Len(t, errs, 2)
	assert.IsType(t, &PathHierarchyMismatchError{}, errs[0])
	assert.IsType(t, &DuplicatePathError{}, errs[1])
}

func TestTree_AuthoredCatalog(t *testing.T) {
	err := Tree(catalog.Roots())
	require.Error(t, err)

	// Paths are unique; only the /Rooms edge under /Trailers breaks nesting.
	var mismatch *PathHierarchyMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, "/Trailers", mismatch.ParentPath)
	assert.Equal(t, "/Rooms", mismatch.ChildPath)

	var dup *DuplicatePathError
	assert.False(t, errors.As(err, &dup))
	assert.Len(t, Errors(err), 1)
}

func TestAggregateError_Message(t *testing.T) {
	single := &AggregateError{Errors: []error{&PathHierarchyMismatchError{ParentPath: "/a", ChildPath: "/b"}}}
	assert.Equal(t, `path "/b" is not nested under parent "/a"`, single.Error())

	multi := &AggregateError{Errors: []error{
		&PathHierarchyMismatchError{ParentPath: "/a", ChildPath: "/b"},
		&DuplicatePathError{Path: "/a/c", First: "c", Second: "d"},
	}}
	assert.Contains(t, multi.Error(), "2 validation errors:")
	assert.Contains(t, multi.Error(), `2. duplicate path "/a/c": used by "c" and "d"`)
}

func TestErrors_NonAggregate(t *testing.T) {
	assert.Nil(t, Errors(nil))
	assert.Nil(t, Errors(errors.New("boom")))
}
