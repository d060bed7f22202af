package snake

// Body is the ordered list of snake segments. Index 0 is the head and the
// last element is the tail; positions shift through the body in this order.
type Body struct {
	segments []Handle
}

// Len returns the number of segments, head included.
func (b *Body) Len() int {
	return len(b.segments)
}

// Head returns the lead segment.
func (b *Body) Head() (Handle, bool) {
	if len(b.segments) == 0 {
		return Handle{}, false
	}
	return b.segments[0], true
}

// At returns the i-th segment handle.
func (b *Body) At(i int) Handle {
	return b.segments[i]
}

// Append adds h as the new tail.
func (b *Body) Append(h Handle) {
	b.segments = append(b.segments, h)
}

// Clear forgets every segment. The arena records are not touched.
func (b *Body) Clear() {
	b.segments = b.segments[:0]
}
