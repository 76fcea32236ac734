package geometry

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// HittableList is a flat collection of objects searched linearly
type HittableList struct {
	Objects []Hittable
}

// NewHittableList creates a list from the given objects
func NewHittableList(objects ...Hittable) *HittableList {
	return &HittableList{Objects: objects}
}

// Add appends an object to the list
func (l *HittableList) Add(object Hittable) {
	l.Objects = append(l.Objects, object)
}

// Len returns the number of objects in the list
func (l *HittableList) Len() int {
	return len(l.Objects)
}

// Hit returns the closest hit among all objects
func (l *HittableList) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	var closest *material.HitRecord
	closestSoFar := tMax

	for _, object := range l.Objects {
		if hit, ok := object.Hit(ray, tMin, closestSoFar); ok {
			closest = hit
			closestSoFar = hit.T
		}
	}

	return closest, closest != nil
}

// BoundingBox returns the union of all object boxes. An empty list, or one
// holding an unbounded object, has no box.
func (l *HittableList) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	if len(l.Objects) == 0 {
		return core.AABB{}, false
	}

	var box core.AABB
	for i, object := range l.Objects {
		objectBox, ok := object.BoundingBox(time0, time1)
		if !ok {
			return core.AABB{}, false
		}
		if i == 0 {
			box = objectBox
		} else {
			box = core.SurroundingBox(box, objectBox)
		}
	}
	return box, true
}
