package planar

import (
	"iter"

	"deedles.dev/xiter"
)

// VerticalStack returns an iterator that yields first and then
// identical copies placed on top of one another repeatedly, thus
// producing an infinite vertical stack of rectangles above the first.
// Each rectangle is constructed at the previous one's upper edge, so
// in a quantized space every shared edge is exact: the top of the Nth
// rectangle equals the top of a single rectangle of N times the
// height, bit for bit.
func VerticalStack[T Scalar, S Space[T]](first Rect[T, S]) iter.Seq[Rect[T, S]] {
	return func(yield func(Rect[T, S]) bool) {
		r := first.Canon()
		for {
			if !yield(r) {
				return
			}
			r = Rt[S](r.LLX(), r.URY(), r.W, r.H)
		}
	}
}

// StackN stacks n copies of first vertically and returns them. The
// last element's upper edge coincides exactly with a single rectangle
// n times as tall as first.
func StackN[T Scalar, S Space[T]](first Rect[T, S], n int) []Rect[T, S] {
	rects := make([]Rect[T, S], n)
	insertFromSeq(rects, VerticalStack(first))
	return rects
}

// TileEvenVertically arranges and resizes the elements of tiles so
// that the result is a series of rectangles that comprise an even,
// vertical splitting of r.
func TileEvenVertically[T Scalar, S Space[T]](tiles []Rect[T, S], r Rect[T, S]) {
	insertFromSeq(tiles, TiledEvenVertically(len(tiles), r))
}

// TiledEvenVertically is the same as [TileEvenVertically] except that
// it yields the tiles from an iterator.
func TiledEvenVertically[T Scalar, S Space[T]](numtiles int, r Rect[T, S]) iter.Seq[Rect[T, S]] {
	return func(yield func(Rect[T, S]) bool) {
		c := r.Canon()
		h := c.H / T(numtiles)
		y := c.LLY()
		for range numtiles {
			t := Rt[S](c.LLX(), y, c.W, h)
			if !yield(t) {
				return
			}
			y = t.URY()
		}
	}
}

// TileEvenHorizontally arranges and resizes the elements of tiles so
// that the result is a series of rectangles that comprise an even,
// horizontal splitting of r.
func TileEvenHorizontally[T Scalar, S Space[T]](tiles []Rect[T, S], r Rect[T, S]) {
	insertFromSeq(tiles, TiledEvenHorizontally(len(tiles), r))
}

// TiledEvenHorizontally is the same as [TileEvenHorizontally] except
// that it yields the tiles from an iterator.
func TiledEvenHorizontally[T Scalar, S Space[T]](numtiles int, r Rect[T, S]) iter.Seq[Rect[T, S]] {
	return func(yield func(Rect[T, S]) bool) {
		c := r.Canon()
		w := c.W / T(numtiles)
		x := c.LLX()
		for range numtiles {
			t := Rt[S](x, c.LLY(), w, c.H)
			if !yield(t) {
				return
			}
			x = t.URX()
		}
	}
}

// TileRows arranges and resizes the elements of tiles to produce a
// series of rows and columns the union of which reproduces r. Each
// row is split evenly into at most cols columns; when that number is
// exceeded a new row is added above it instead.
func TileRows[T Scalar, S Space[T]](tiles []Rect[T, S], r Rect[T, S], cols int) {
	insertFromSeq(tiles, TiledRows(len(tiles), r, cols))
}

// TiledRows is the same as [TileRows] except that it yields the tiles
// from an iterator.
func TiledRows[T Scalar, S Space[T]](numtiles int, r Rect[T, S], cols int) iter.Seq[Rect[T, S]] {
	return func(yield func(Rect[T, S]) bool) {
		numrows := numtiles / cols
		if numtiles%cols != 0 {
			numrows++
		}

		for row := range TiledEvenVertically(numrows, r) {
			if numtiles <= 0 {
				break
			}

			numcols := min(numtiles, cols)
			for t := range TiledEvenHorizontally(numcols, row) {
				if !yield(t) {
					return
				}
			}
			numtiles -= numcols
		}
	}
}

func insertFromSeq[T Scalar, S Space[T]](tiles []Rect[T, S], s iter.Seq[Rect[T, S]]) {
	for i, t := range xiter.Enumerate(s) {
		if i >= len(tiles) {
			return
		}
		tiles[i] = t
	}
}
