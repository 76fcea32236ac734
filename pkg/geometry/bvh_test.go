package geometry

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// unboundedShape has no bounding box, like an infinite plane
type unboundedShape struct{}

func (unboundedShape) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	return nil, false
}

func (unboundedShape) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return core.AABB{}, false
}

func randomSpheres(random *rand.Rand, n int) []Hittable {
	objects := make([]Hittable, n)
	for i := range objects {
		center := core.NewVec3(random.Float64()*20-10, random.Float64()*20-10, random.Float64()*20-10)
		objects[i] = NewSphere(center, 0.1+random.Float64()*0.8, nil)
	}
	return objects
}

func TestBVH_MatchesLinearScan(t *testing.T) {
	for _, n := range []int{1, 2, 3, 50, 500} {
		random := rand.New(rand.NewSource(int64(n)))
		objects := randomSpheres(random, n)

		bvh, err := NewBVH(objects, 0, 1)
		if err != nil {
			t.Fatalf("n=%d: unexpected error: %v", n, err)
		}
		list := NewHittableList(objects...)

		for i := 0; i < 2000; i++ {
			origin := core.NewVec3(random.Float64()*30-15, random.Float64()*30-15, random.Float64()*30-15)
			direction := core.RandomUnitVector(core.NewRandomSampler(random))
			ray := core.NewRay(origin, direction)

			bvhHit, bvhOk := bvh.Hit(ray, 0.001, math.Inf(1))
			listHit, listOk := list.Hit(ray, 0.001, math.Inf(1))

			if bvhOk != listOk {
				t.Fatalf("n=%d ray %d: BVH hit=%t, linear hit=%t", n, i, bvhOk, listOk)
			}
			if bvhOk && math.Abs(bvhHit.T-listHit.T) > 1e-12 {
				t.Fatalf("n=%d ray %d: BVH t=%f, linear t=%f", n, i, bvhHit.T, listHit.T)
			}
		}
	}
}

func TestBVH_Errors(t *testing.T) {
	if _, err := NewBVH(nil, 0, 1); !errors.Is(err, ErrEmptyBVH) {
		t.Errorf("Expected ErrEmptyBVH, got %v", err)
	}

	objects := []Hittable{NewSphere(core.Vec3{}, 1, nil), unboundedShape{}}
	if _, err := NewBVH(objects, 0, 1); !errors.Is(err, ErrUnboundedObject) {
		t.Errorf("Expected ErrUnboundedObject, got %v", err)
	}
}

func TestMustNewBVH_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected panic for empty object list")
		}
	}()
	MustNewBVH(nil, 0, 1)
}

func TestBVH_Structure(t *testing.T) {
	random := rand.New(rand.NewSource(42))
	objects := randomSpheres(random, 37)
	original := make([]Hittable, len(objects))
	copy(original, objects)

	bvh := MustNewBVH(objects, 0, 1)

	for i := range objects {
		if objects[i] != original[i] {
			t.Fatal("NewBVH must not reorder the caller's slice")
		}
	}

	stats := bvh.Stats()
	if stats.LeafNodes != len(objects) || stats.TotalObjects != len(objects) {
		t.Errorf("Expected %d leaves, got %d", len(objects), stats.LeafNodes)
	}
	if stats.TotalNodes != 2*len(objects)-1 {
		t.Errorf("Expected %d nodes in a binary tree, got %d", 2*len(objects)-1, stats.TotalNodes)
	}
	// Midpoint splits give a balanced tree
	if stats.MaxDepth > int(math.Ceil(math.Log2(float64(len(objects))))) {
		t.Errorf("Max depth %d too deep for %d objects", stats.MaxDepth, len(objects))
	}

	var check func(node *BVHNode)
	check = func(node *BVHNode) {
		if node.Object != nil {
			return
		}
		if !node.Box.Contains(node.Left.Box) || !node.Box.Contains(node.Right.Box) {
			t.Fatalf("Node box %v does not contain its children", node.Box)
		}
		check(node.Left)
		check(node.Right)
	}
	check(bvh.Root)

	box, ok := bvh.BoundingBox(0, 1)
	if !ok {
		t.Fatal("BVH should have a bounding box")
	}
	for _, object := range objects {
		objectBox, _ := object.BoundingBox(0, 1)
		if !box.Contains(objectBox) {
			t.Fatalf("Root box %v does not contain %v", box, objectBox)
		}
	}
}

func TestBVH_SingleObject(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, -2), 0.5, nil)
	bvh := MustNewBVH([]Hittable{sphere}, 0, 1)

	if bvh.Root.Object != sphere {
		t.Fatal("Single object BVH should be a leaf")
	}
	hit, ok := bvh.Hit(core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1)), 0.001, math.Inf(1))
	if !ok || math.Abs(hit.T-1.5) > 1e-12 {
		t.Errorf("Expected hit at t=1.5, got %v %v", hit, ok)
	}
}

func TestBVH_NestedComposites(t *testing.T) {
	inner := MustNewBVH([]Hittable{
		NewSphere(core.NewVec3(0, 0, -5), 1, nil),
		NewBox(core.NewVec3(2, -1, -6), core.NewVec3(4, 1, -4), nil),
	}, 0, 1)
	outer := MustNewBVH([]Hittable{
		inner,
		NewTranslate(NewSphere(core.Vec3{}, 1, nil), core.NewVec3(-3, 0, -5)),
	}, 0, 1)

	for _, tt := range []struct {
		x       float64
		expectT float64
	}{{0, 4}, {3, 4}, {-3, 4}} {
		hit, ok := outer.Hit(core.NewRay(core.NewVec3(tt.x, 0, 0), core.NewVec3(0, 0, -1)), 0.001, math.Inf(1))
		if !ok || math.Abs(hit.T-tt.expectT) > 1e-9 {
			t.Errorf("x=%f: expected hit at t=%f, got %v %v", tt.x, tt.expectT, hit, ok)
		}
	}
}
