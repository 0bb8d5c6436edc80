package mesh

// appendGrid triangulates a w x h vertex grid starting at base, row-major.
// Unflipped quads wind (a,c,b),(b,c,d) where a is the cell's top-left vertex,
// b its right neighbour and c the vertex one row down. With wrapX the last
// column is joined back to column 0.
func appendGrid(indices []uint32, base uint32, w, h int, wrapX, flip bool) []uint32 {
	cols := w - 1
	if wrapX {
		cols = w
	}
	for y := 0; y < h-1; y++ {
		for x := 0; x < cols; x++ {
			x1 := (x + 1) % w
			a := base + uint32(y*w+x)
			b := base + uint32(y*w+x1)
			c := base + uint32((y+1)*w+x)
			d := base + uint32((y+1)*w+x1)
			if flip {
				indices = append(indices, a, b, c, b, d, c)
			} else {
				indices = append(indices, a, c, b, b, c, d)
			}
		}
	}
	return indices
}

// appendWall stitches two parallel vertex chains with a strip of quads.
// Unflipped quads wind (o0,o1,i0),(o1,i1,i0). With closed the last pair of
// each chain is joined back to the first.
func appendWall(indices []uint32, outer, inner []uint32, closed, flip bool) []uint32 {
	n := len(outer)
	segs := n - 1
	if closed {
		segs = n
	}
	for k := 0; k < segs; k++ {
		k1 := (k + 1) % n
		o0, o1 := outer[k], outer[k1]
		i0, i1 := inner[k], inner[k1]
		if flip {
			indices = append(indices, o0, i0, o1, o1, i0, i1)
		} else {
			indices = append(indices, o0, o1, i0, o1, i1, i0)
		}
	}
	return indices
}

// appendFan triangulates a convex polygon ring as a fan around ring[0].
func appendFan(indices []uint32, ring []uint32, flip bool) []uint32 {
	for k := 1; k < len(ring)-1; k++ {
		if flip {
			indices = append(indices, ring[0], ring[k+1], ring[k])
		} else {
			indices = append(indices, ring[0], ring[k], ring[k+1])
		}
	}
	return indices
}

// row returns the indices of grid row y.
func row(base uint32, w, y int) []uint32 {
	out := make([]uint32, w)
	for x := 0; x < w; x++ {
		out[x] = base + uint32(y*w+x)
	}
	return out
}

// column returns the indices of grid column x.
func column(base uint32, w, h, x int) []uint32 {
	out := make([]uint32, h)
	for y := 0; y < h; y++ {
		out[y] = base + uint32(y*w+x)
	}
	return out
}
