package material

import (
	"math"
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
)

const perlinPointCount = 256

// Perlin is a gradient-noise generator over a 256-entry lattice of random
// unit vectors, with independent permutation tables per axis
type Perlin struct {
	randVecs [perlinPointCount]core.Vec3
	permX    [perlinPointCount]int
	permY    [perlinPointCount]int
	permZ    [perlinPointCount]int
}

// NewPerlin builds the lattice and permutations from random
func NewPerlin(random *rand.Rand) *Perlin {
	p := &Perlin{}
	for i := range p.randVecs {
		p.randVecs[i] = core.NewVec3(
			-1+2*random.Float64(),
			-1+2*random.Float64(),
			-1+2*random.Float64(),
		).Normalize()
	}
	generatePerm(&p.permX, random)
	generatePerm(&p.permY, random)
	generatePerm(&p.permZ, random)
	return p
}

func generatePerm(perm *[perlinPointCount]int, random *rand.Rand) {
	for i := range perm {
		perm[i] = i
	}
	for i := perlinPointCount - 1; i > 0; i-- {
		target := random.Intn(i + 1)
		perm[i], perm[target] = perm[target], perm[i]
	}
}

// Noise returns smooth noise in roughly [-1, 1] at point
func (p *Perlin) Noise(point core.Vec3) float64 {
	fx, fy, fz := math.Floor(point.X), math.Floor(point.Y), math.Floor(point.Z)
	u, v, w := point.X-fx, point.Y-fy, point.Z-fz
	i, j, k := int(fx), int(fy), int(fz)

	var c [2][2][2]core.Vec3
	for di := 0; di < 2; di++ {
		for dj := 0; dj < 2; dj++ {
			for dk := 0; dk < 2; dk++ {
				c[di][dj][dk] = p.randVecs[p.permX[(i+di)&(perlinPointCount-1)]^
					p.permY[(j+dj)&(perlinPointCount-1)]^
					p.permZ[(k+dk)&(perlinPointCount-1)]]
			}
		}
	}

	return perlinInterpolate(&c, u, v, w)
}

// Turbulence sums depth octaves of noise with halving weights
func (p *Perlin) Turbulence(point core.Vec3, depth int) float64 {
	accum := 0.0
	weight := 1.0
	for i := 0; i < depth; i++ {
		accum += weight * p.Noise(point)
		weight *= 0.5
		point = point.Multiply(2)
	}
	return math.Abs(accum)
}

// perlinInterpolate blends the corner gradients with Hermite smoothing
func perlinInterpolate(c *[2][2][2]core.Vec3, u, v, w float64) float64 {
	uu := u * u * (3 - 2*u)
	vv := v * v * (3 - 2*v)
	ww := w * w * (3 - 2*w)

	accum := 0.0
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			for k := 0; k < 2; k++ {
				fi, fj, fk := float64(i), float64(j), float64(k)
				weight := core.NewVec3(u-fi, v-fj, w-fk)
				accum += (fi*uu + (1-fi)*(1-uu)) *
					(fj*vv + (1-fj)*(1-vv)) *
					(fk*ww + (1-fk)*(1-ww)) *
					c[i][j][k].Dot(weight)
			}
		}
	}
	return accum
}
