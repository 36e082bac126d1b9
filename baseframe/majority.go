package baseframe

// MajorityVote builds the base one byte position at a time, using the value
// that occurs most often at that position across the corpus. Ties go to the
// smallest value so the result only depends on the input.
type MajorityVote struct{}

func (MajorityVote) SelectBase(corpus Corpus) ([]byte, error) {
	if err := corpus.Validate(); err != nil {
		return nil, err
	}

	base := make([]byte, corpus.FrameLen())
	for i := range base {
		occurrences := make(map[byte]int, len(corpus))
		for _, frame := range corpus {
			occurrences[frame[i]]++
		}

		bestValue, bestCount := byte(0), 0
		for value, count := range occurrences {
			if count > bestCount || (count == bestCount && value < bestValue) {
				bestValue, bestCount = value, count
			}
		}
		base[i] = bestValue
	}
	return base, nil
}
