package duobit

// copyBits ORs numBits bits of src, starting at MSB-0 bit srcStart, into dst starting at
// MSB-0 bit dstStart. Callers validate the ranges.
func (a *Array) copyBits(dst []byte, dstStart int, src []byte, srcStart, numBits int) error {
	if numBits == 0 {
		return nil
	}

	relevant, err := a.relevantSourceBytes(src, srcStart, numBits)
	if err != nil {
		return err
	}

	srcOffset := srcStart - 8*a.utils.ByteIndexOf(srcStart)
	dstOffset := dstStart - 8*a.utils.ByteIndexOf(dstStart)
	first := a.utils.ByteIndexOf(dstStart)

	if srcOffset+numBits <= 8 && dstOffset+numBits <= 8 {
		merged, err := a.utils.AlignAndMergeBytes(relevant[0], srcOffset, dst[first], dstOffset-1)
		if err != nil {
			return err
		}
		dst[first] |= merged
		return nil
	}

	shift := dstOffset - srcOffset
	last := a.utils.ByteIndexOf(dstStart + numBits - 1)
	for k := 0; first+k <= last; k++ {
		b, err := a.utils.ShiftByteWithBorrow(relevant, k, shift)
		if err != nil {
			return err
		}
		dst[first+k] |= b
	}
	return nil
}

// relevantSourceBytes copies the source bytes spanned by the run and clears the bits
// outside of it, so shifting can not leak neighbouring bits into the destination.
func (a *Array) relevantSourceBytes(src []byte, start, numBits int) ([]byte, error) {
	first := a.utils.ByteIndexOf(start)
	last := a.utils.ByteIndexOf(start + numBits - 1)

	relevant := make([]byte, last-first+1)
	copy(relevant, src[first:last+1])

	head, err := a.utils.LowBitsMask(8 - (start - 8*first))
	if err != nil {
		return nil, err
	}
	relevant[0] &= head

	used, err := a.utils.BitsUsedInLastByte(start + numBits)
	if err != nil {
		return nil, err
	}
	tail, err := a.utils.HighBitsMask(used)
	if err != nil {
		return nil, err
	}
	relevant[len(relevant)-1] &= tail

	return relevant, nil
}
