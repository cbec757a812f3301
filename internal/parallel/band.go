package parallel

// Band is a half-open row range [Start, End).
type Band struct {
	Start, End int
}

// Len returns the number of rows in the band.
func (b Band) Len() int {
	return b.End - b.Start
}

// SplitRows divides rows into at most parts contiguous bands of nearly
// equal size. Earlier bands receive the remainder rows. It returns nil when
// rows is not positive.
func SplitRows(rows, parts int) []Band {
	if rows <= 0 {
		return nil
	}
	parts = max(1, min(parts, rows))

	bands := make([]Band, parts)
	size, extra := rows/parts, rows%parts
	start := 0
	for i := range bands {
		n := size
		if i < extra {
			n++
		}
		bands[i] = Band{Start: start, End: start + n}
		start += n
	}
	return bands
}
