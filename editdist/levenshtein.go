package editdist

// Levenshtein computes insertion/removal/substitution edit distance
// between a and b. mode selects full-matrix O(A*B) space or two-row
// rolling O(min(A,B)) space; both return the same value.
func Levenshtein(a, b string, mode MemoryMode) int {
	if mode == FullMatrix {
		return levenshteinMatrix(a, b)
	}
	return levenshteinRolling(a, b)
}

func levenshteinMatrix(a, b string) int {
	A, B := len(a), len(b)
	matrix := make([][]int, A+1)
	for i := range matrix {
		matrix[i] = make([]int, B+1)
	}
	for i := 0; i <= A; i++ {
		matrix[i][0] = i
	}
	for j := 0; j <= B; j++ {
		matrix[0][j] = j
	}

	for i := 1; i <= A; i++ {
		for j := 1; j <= B; j++ {
			s := 1
			if a[i-1] == b[j-1] {
				s = 0
			}
			matrix[i][j] = min3(s+matrix[i-1][j-1], 1+matrix[i-1][j], 1+matrix[i][j-1])
		}
	}

	return matrix[A][B]
}

// levenshteinRolling swaps its arguments so a is the longer string,
// since Levenshtein(a,b) == Levenshtein(b,a); this keeps the rolling
// row width at min(A,B).
func levenshteinRolling(a, b string) int {
	if len(a) < len(b) {
		a, b = b, a
	}
	A, B := len(a), len(b)

	matrix := [2][]int{make([]int, B+1), make([]int, B+1)}
	for j := 0; j <= B; j++ {
		matrix[0][j] = j
	}

	for i := 1; i <= A; i++ {
		current := matrix[i%2]
		previous := matrix[(i+1)%2]
		current[0] = i

		for j := 1; j <= B; j++ {
			s := 1
			if a[i-1] == b[j-1] {
				s = 0
			}
			current[j] = min3(s+previous[j-1], 1+previous[j], 1+current[j-1])
		}
	}

	return matrix[A%2][B]
}
