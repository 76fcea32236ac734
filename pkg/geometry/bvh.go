package geometry

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

var (
	// ErrEmptyBVH is returned when building a BVH from no objects
	ErrEmptyBVH = errors.New("no objects in BVH")
	// ErrUnboundedObject is returned when an object has no bounding box
	ErrUnboundedObject = errors.New("object has no bounding box")
)

// BVHNode represents a node in the Bounding Volume Hierarchy. Leaf nodes
// hold exactly one object; internal nodes hold two children.
type BVHNode struct {
	Box    core.AABB
	Left   *BVHNode
	Right  *BVHNode
	Object Hittable // Set for leaf nodes only
}

// BVH represents a Bounding Volume Hierarchy for fast ray-object intersection
type BVH struct {
	Root *BVHNode
}

// bvhEntry pairs an object with its box so construction queries each box once
type bvhEntry struct {
	object Hittable
	box    core.AABB
}

// NewBVH constructs a BVH over objects for the shutter interval [time0, time1].
// The caller's slice is not modified.
func NewBVH(objects []Hittable, time0, time1 float64) (*BVH, error) {
	if len(objects) == 0 {
		return nil, ErrEmptyBVH
	}

	entries := make([]bvhEntry, len(objects))
	for i, object := range objects {
		box, ok := object.BoundingBox(time0, time1)
		if !ok {
			return nil, fmt.Errorf("building BVH: object %d (%T): %w", i, object, ErrUnboundedObject)
		}
		entries[i] = bvhEntry{object: object, box: box}
	}

	return &BVH{Root: buildBVH(entries)}, nil
}

// MustNewBVH is like NewBVH but panics on error. Scene builders use it for
// object sets known at compile time.
func MustNewBVH(objects []Hittable, time0, time1 float64) *BVH {
	bvh, err := NewBVH(objects, time0, time1)
	if err != nil {
		panic(err)
	}
	return bvh
}

// buildBVH recursively splits entries at the midpoint after sorting by box
// minimum along a random axis
func buildBVH(entries []bvhEntry) *BVHNode {
	if len(entries) == 1 {
		return &BVHNode{Box: entries[0].box, Object: entries[0].object}
	}

	// rand.Intn draws from the goroutine-safe global source
	axis := rand.Intn(3)
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].box.Min.Axis(axis) < entries[j].box.Min.Axis(axis)
	})

	mid := len(entries) / 2
	left := buildBVH(entries[:mid])
	right := buildBVH(entries[mid:])

	return &BVHNode{
		Box:   core.SurroundingBox(left.Box, right.Box),
		Left:  left,
		Right: right,
	}
}

// Hit tests if a ray intersects any object in the BVH
func (bvh *BVH) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	if bvh.Root == nil {
		return nil, false
	}
	return bvh.Root.hit(ray, tMin, tMax)
}

// hit recursively tests ray intersection with BVH nodes
func (node *BVHNode) hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	if node.Object != nil {
		return node.Object.Hit(ray, tMin, tMax)
	}

	if !node.Box.Hit(ray, tMin, tMax) {
		return nil, false
	}

	leftHit, hitLeft := node.Left.hit(ray, tMin, tMax)

	// The right child only needs to beat the left hit
	rightMax := tMax
	if hitLeft {
		rightMax = leftHit.T
	}
	if rightHit, hitRight := node.Right.hit(ray, tMin, rightMax); hitRight {
		return rightHit, true
	}

	return leftHit, hitLeft
}

// BoundingBox returns the root box computed at construction, regardless of time
func (bvh *BVH) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	if bvh.Root == nil {
		return core.AABB{}, false
	}
	return bvh.Root.Box, true
}

// BVHStats contains statistics about the BVH structure
type BVHStats struct {
	TotalNodes   int
	LeafNodes    int
	MaxDepth     int
	AvgDepth     float64
	TotalObjects int
}

// Stats returns statistics about the BVH structure
func (bvh *BVH) Stats() BVHStats {
	if bvh.Root == nil {
		return BVHStats{}
	}

	stats := BVHStats{}
	bvh.collectStats(bvh.Root, 0, &stats)

	// Calculate average depth after collecting all data
	if stats.LeafNodes > 0 {
		stats.AvgDepth = stats.AvgDepth / float64(stats.LeafNodes)
	}

	return stats
}

// collectStats recursively collects statistics about the BVH
func (bvh *BVH) collectStats(node *BVHNode, depth int, stats *BVHStats) {
	stats.TotalNodes++

	if depth > stats.MaxDepth {
		stats.MaxDepth = depth
	}

	if node.Object != nil {
		stats.LeafNodes++
		stats.TotalObjects++
		stats.AvgDepth += float64(depth) // Accumulate depth for average calculation
		return
	}

	bvh.collectStats(node.Left, depth+1, stats)
	bvh.collectStats(node.Right, depth+1, stats)
}
