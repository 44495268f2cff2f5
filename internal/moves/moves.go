// Package moves holds the neighborhood operations of the local search. Every
// move is a deterministic in-place transform of a route slice, parameterized
// by two positions i < j. The minimum gap of each move skips (i, j) pairs
// that would reduce to the identity or duplicate another move.
package moves

// Apply is an in-place permutation transform over route[i..j].
type Apply func(route []int, i, j int)

// Move pairs a transform with its enumeration constraints.
type Move struct {
	Name   string
	MinGap int // smallest admissible j - i
	Apply  Apply
}

// Catalog lists the moves in the order the driver scans them.
var Catalog = []Move{
	{Name: "two_opt", MinGap: 1, Apply: TwoOpt},
	{Name: "swap", MinGap: 3, Apply: Swap},
	{Name: "one_shift_left", MinGap: 2, Apply: OneShiftLeft},
	{Name: "one_shift_right", MinGap: 2, Apply: OneShiftRight},
	{Name: "two_shift_left", MinGap: 3, Apply: TwoShiftLeft},
	{Name: "two_shift_right", MinGap: 4, Apply: TwoShiftRight},
	{Name: "three_shift_left", MinGap: 5, Apply: ThreeShiftLeft},
	{Name: "three_shift_right", MinGap: 6, Apply: ThreeShiftRight},
}

// TwoOpt reverses the slice route[i..j].
func TwoOpt(route []int, i, j int) {
	for i < j {
		route[i], route[j] = route[j], route[i]
		i++
		j--
	}
}

// Swap exchanges the elements at positions i and j.
func Swap(route []int, i, j int) {
	route[i], route[j] = route[j], route[i]
}

// OneShiftLeft moves the element at j before position i.
func OneShiftLeft(route []int, i, j int) {
	rotateRight(route[i:j+1], 1)
}

// OneShiftRight moves the element at i after position j.
func OneShiftRight(route []int, i, j int) {
	rotateLeft(route[i:j+1], 1)
}

// TwoShiftLeft moves the pair at j-1, j before position i.
func TwoShiftLeft(route []int, i, j int) {
	rotateRight(route[i:j+1], 2)
}

// TwoShiftRight moves the pair at i, i+1 after position j.
func TwoShiftRight(route []int, i, j int) {
	rotateLeft(route[i:j+1], 2)
}

// ThreeShiftLeft moves the triple at j-2, j-1, j before position i.
func ThreeShiftLeft(route []int, i, j int) {
	rotateRight(route[i:j+1], 3)
}

// ThreeShiftRight moves the triple at i, i+1, i+2 after position j.
func ThreeShiftRight(route []int, i, j int) {
	rotateLeft(route[i:j+1], 3)
}

func rotateLeft(s []int, k int) {
	reverse(s[:k])
	reverse(s[k:])
	reverse(s)
}

func rotateRight(s []int, k int) {
	rotateLeft(s, len(s)-k)
}

func reverse(s []int) {
	for l, r := 0, len(s)-1; l < r; l, r = l+1, r-1 {
		s[l], s[r] = s[r], s[l]
	}
}
