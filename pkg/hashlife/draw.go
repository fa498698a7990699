package hashlife

// Point is one emitted cell position from Draw.
type Point struct {
	X, Y Dim
}

// drawNode is a recursive culled walk: a subtree is pruned the moment its
// bounding box lies entirely off-screen or it has no live cells. Once
// cellSize has shrunk to 1 or smaller, or a leaf is reached, the subtree's
// position is emitted directly rather than recursing further.
func drawNode(node *QuadNode, out *[]Point, x, y, size, offsetX, offsetY, height, width Dim) {
	if node.population == 0 ||
		x+size+offsetX < 0 || y+size+offsetY < 0 ||
		x+offsetX >= width || y+offsetY >= height {
		return
	}

	if size <= 1 || node.level == 0 {
		*out = append(*out, Point{X: x + offsetX, Y: y + offsetY})
		return
	}

	half := size / 2
	drawNode(node.nw, out, x, y, half, offsetX, offsetY, height, width)
	drawNode(node.ne, out, x+half, y, half, offsetX, offsetY, height, width)
	drawNode(node.sw, out, x, y+half, half, offsetX, offsetY, height, width)
	drawNode(node.se, out, x+half, y+half, half, offsetX, offsetY, height, width)
}

// Draw walks the universe culled to the [0, width) x [0, height) viewport
// (after applying offsetX/offsetY), emitting one Point per visible cell
// (or, once cellSize has shrunk to 1 pixel or less, per visible block) in
// pre-order NW, NE, SW, SE.
func (u *Universe) Draw(x, y, cellSize, width, height, offsetX, offsetY Dim) []Point {
	var out []Point
	drawNode(u.root, &out, x, y, cellSize, offsetX, offsetY, height, width)
	return out
}
