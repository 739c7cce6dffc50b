package geo

import "errors"

var (
	// ErrNoPoints is returned when Route receives an empty slice.
	ErrNoPoints = errors.New("geo: route needs at least one point")
	// ErrStart is returned when RouteOptions.Start is out of range.
	ErrStart = errors.New("geo: route start out of range")
)

// RouteOptions controls Route.
type RouteOptions struct {
	// Closed returns to Start after the last stop.
	Closed bool
	// Start is the index of the first stop.
	Start int
	// MaxIters caps accepted 2-opt moves; 0 runs to a local optimum.
	MaxIters int
	// Eps is the minimum gain, in metres, for a move to be accepted.
	Eps float64
}

// Tour is a visiting order over the input points.
type Tour struct {
	Order  []int
	Length Distance
}

// Route orders points into a short tour using a nearest-neighbour seed
// improved by first-improvement 2-opt. Distances are great-circle
// (Haversine). The result is deterministic for a given input.
func Route(points []LatLong, opts RouteOptions) (Tour, error) {
	n := len(points)
	if n == 0 {
		return Tour{}, ErrNoPoints
	}
	if opts.Start < 0 || opts.Start >= n {
		return Tour{}, ErrStart
	}

	w := make([]float64, n*n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d := Haversine(points[i], points[j]).Metres()
			w[i*n+j], w[j*n+i] = d, d
		}
	}
	at := func(u, v int) float64 { return w[u*n+v] }

	order := nearest(n, opts.Start, at)
	twoOpt(order, opts, at)

	var total float64
	for i := 1; i < n; i++ {
		total += at(order[i-1], order[i])
	}
	if opts.Closed && n > 1 {
		total += at(order[n-1], order[0])
	}

	return Tour{Order: order, Length: metres(total)}, nil
}

// nearest builds a greedy tour; ties go to the lowest index.
func nearest(n, start int, at func(u, v int) float64) []int {
	order := make([]int, 0, n)
	seen := make([]bool, n)
	cur := start
	order = append(order, cur)
	seen[cur] = true
	for len(order) < n {
		next := -1
		for v := 0; v < n; v++ {
			if seen[v] {
				continue
			}
			if next < 0 || at(cur, v) < at(cur, next) {
				next = v
			}
		}
		seen[next] = true
		order = append(order, next)
		cur = next
	}

	return order
}

// twoOpt reverses order[i..k] while that shortens the tour, restarting the
// scan after every accepted move. order[0] never moves.
func twoOpt(order []int, opts RouteOptions, at func(u, v int) float64) {
	n := len(order)
	if n < 3 {
		return
	}
	eps := opts.Eps
	if eps < 0 {
		eps = 0
	}

	accepted := 0
	for {
		improved := false
	scan:
		for i := 1; i <= n-2; i++ {
			for k := i + 1; k <= n-1; k++ {
				a, b, c := order[i-1], order[i], order[k]
				delta := at(a, c) - at(a, b)
				switch {
				case k+1 < n:
					d := order[k+1]
					delta += at(b, d) - at(c, d)
				case opts.Closed:
					d := order[0]
					delta += at(b, d) - at(c, d)
				}
				if delta < -eps {
					reverse(order[i : k+1])
					accepted++
					improved = true
					break scan
				}
			}
		}
		if !improved || (opts.MaxIters > 0 && accepted >= opts.MaxIters) {
			return
		}
	}
}

func reverse(s []int) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
