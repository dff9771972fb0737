package strmatch

// Naive slides pattern over text one byte at a time, comparing
// left-to-right at each offset. O(T*P) worst case, O(1) space.
func Naive(text, pattern string) []int {
	T, P := len(text), len(pattern)
	var match []int
	if P == 0 {
		return match
	}

	for i := 0; i+P <= T; i++ {
		ok := true
		for j := 0; j < P; j++ {
			if text[i+j] != pattern[j] {
				ok = false
				break
			}
		}
		if ok {
			match = append(match, i)
		}
	}

	return match
}
