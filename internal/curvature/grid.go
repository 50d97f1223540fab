package curvature

import "solar-sim/internal/physics"

// Segment is one grid line from A to B in scene units.
type Segment struct {
	A, B [3]float32
}

// Grid samples a Field on a regular lattice and displaces the lattice by the sampled value.
// The 2D sheet lies below the orbital plane and sinks along -Z; the 3D lattice is centered
// on the origin and sinks along -Y.
type Grid struct {
	Field Field

	Size         int     // points per side of the 2D sheet
	Spacing      float32 // distance between 2D points
	PlaneOffset  float32 // Z of the undisplaced sheet
	Displacement float32 // 2D curvature multiplier

	Size3D            int
	Spacing3D         float32
	Displacement3D    float32 // multiplier for X and Y neighbour lines
	DisplacementDepth float32 // multiplier for Z neighbour lines
}

// DefaultGrid returns the grid tuning used by the presets.
func DefaultGrid() Grid {
	return Grid{
		Field:             DefaultField(),
		Size:              100,
		Spacing:           50,
		PlaneOffset:       -200,
		Displacement:      500,
		Size3D:            20,
		Spacing3D:         40,
		Displacement3D:    50,
		DisplacementDepth: 500,
	}
}

// Segments returns the 3D lattice when threeD is set and the 2D sheet otherwise.
func (g Grid) Segments(threeD bool, primary *physics.Body, bodies []*physics.Body) []Segment {
	if threeD {
		return g.Segments3D(primary, bodies)
	}
	return g.Segments2D(primary, bodies)
}

func (g Grid) coord(i, size int, spacing float32) float32 {
	return float32(i-size/2) * spacing
}

// Segments2D samples the XY plane (z = 0) and draws the sheet at PlaneOffset, each point
// pushed down by its curvature times Displacement.
func (g Grid) Segments2D(primary *physics.Body, bodies []*physics.Body) []Segment {
	n := g.Size
	if n <= 0 {
		return nil
	}
	depth := make([]float32, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			p := [3]float32{g.coord(i, n, g.Spacing), g.coord(j, n, g.Spacing), 0}
			depth[i*n+j] = g.PlaneOffset - g.Field.At(p, primary, bodies)*g.Displacement
		}
	}

	out := make([]Segment, 0, 2*n*(n-1))
	for i := 0; i < n; i++ {
		x := g.coord(i, n, g.Spacing)
		for j := 0; j < n; j++ {
			y := g.coord(j, n, g.Spacing)
			a := [3]float32{x, y, depth[i*n+j]}
			if i < n-1 {
				out = append(out, Segment{A: a, B: [3]float32{x + g.Spacing, y, depth[(i+1)*n+j]}})
			}
			if j < n-1 {
				out = append(out, Segment{A: a, B: [3]float32{x, y + g.Spacing, depth[i*n+j+1]}})
			}
		}
	}
	return out
}

// Segments3D samples a cubic lattice. X and Y neighbour lines are drawn from points where
// i+j+k is even, Z lines where it is a multiple of three, to thin the lattice out.
func (g Grid) Segments3D(primary *physics.Body, bodies []*physics.Body) []Segment {
	n := g.Size3D
	if n <= 0 {
		return nil
	}
	idx := func(i, j, k int) int { return (i*n+j)*n + k }
	curv := make([]float32, n*n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			for k := 0; k < n; k++ {
				p := [3]float32{g.coord(i, n, g.Spacing3D), g.coord(j, n, g.Spacing3D), g.coord(k, n, g.Spacing3D)}
				curv[idx(i, j, k)] = g.Field.At(p, primary, bodies)
			}
		}
	}

	var out []Segment
	for i := 0; i < n; i++ {
		x := g.coord(i, n, g.Spacing3D)
		for j := 0; j < n; j++ {
			y := g.coord(j, n, g.Spacing3D)
			for k := 0; k < n; k++ {
				z := g.coord(k, n, g.Spacing3D)
				a := [3]float32{x, y - curv[idx(i, j, k)]*g.Displacement3D, z}
				even := (i+j+k)%2 == 0
				if i < n-1 && even {
					out = append(out, Segment{A: a, B: [3]float32{x + g.Spacing3D, y - curv[idx(i+1, j, k)]*g.Displacement3D, z}})
				}
				if j < n-1 && even {
					y2 := y + g.Spacing3D
					out = append(out, Segment{A: a, B: [3]float32{x, y2 - curv[idx(i, j+1, k)]*g.Displacement3D, z}})
				}
				if k < n-1 && (i+j+k)%3 == 0 {
					out = append(out, Segment{A: a, B: [3]float32{x, y - curv[idx(i, j, k+1)]*g.DisplacementDepth, z + g.Spacing3D}})
				}
			}
		}
	}
	return out
}
