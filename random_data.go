package stillcount

// RandomDataArray is a pre-generated table of random 64-bit words, used as
// the per-position hash salt in GoLGrid.GetHash. The typical usage is to
// build the table once with NewRandomDataArray, sized to at least the
// largest grid's column-count*height, then index it directly.
type RandomDataArray struct {
	data []uint64
}

// NewRandomDataArray builds a table of size words drawn from prng.
func NewRandomDataArray(prng *PRNG, size int) *RandomDataArray {
	data := make([]uint64, size)
	for i := range data {
		data[i] = prng.Uint64()
	}
	return &RandomDataArray{data: data}
}

// VerifySize reports whether the table has at least neededSize words.
func (r *RandomDataArray) VerifySize(neededSize int) bool {
	return len(r.data) >= neededSize
}

// At returns the word at index, which must be < len after a successful
// VerifySize check.
func (r *RandomDataArray) At(index int) uint64 {
	return r.data[index]
}
