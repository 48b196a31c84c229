package stillcount

// GetHash returns a MurmurHash-style fingerprint of gg's physical-coordinate
// content, salted per word position by rda. Two grids with identical
// on-cells at identical physical coordinates always hash equal, regardless
// of their virtual position; this is what canonicalization relies on.
//
// Only the tight population box is hashed (not any alignment padding
// around it): that box is a deterministic function of the grid's content,
// so equal grids still hash equal, and a grid that only differs outside
// its own tight box cannot exist.
func (gg *GoLGrid) GetHash(rda *RandomDataArray) uint64 {
	const seed = uint64(0x0123456789abcdef)
	const mul = uint64(0xc6a4a7935bd1e995)

	hash := seed
	if gg.PopXOff <= gg.PopXOn {
		return hash
	}

	colOn := gg.PopXOn >> 6
	colOff := (gg.PopXOff + 63) >> 6
	height := gg.GridRect.Height

	for c := colOn; c < colOff; c++ {
		col := gg.columns[c]
		for y := gg.PopYOn; y < gg.PopYOff; y++ {
			pos := int(c)*int(height) + int(y)
			keyWord := col[y] ^ rda.At(pos)
			keyWord *= mul
			keyWord ^= keyWord >> 47
			keyWord *= mul
			hash ^= keyWord
		}
	}

	hash ^= hash >> 47
	return hash
}
