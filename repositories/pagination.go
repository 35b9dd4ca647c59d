package repositories

// PageRequest is a 1-based page request. Out-of-range values fall back to
// the first page and a size of 10.
type PageRequest struct {
	Number int
	Size   int
}

// Normalize clamps the request to usable values.
func (p PageRequest) Normalize() PageRequest {
	if p.Number <= 0 {
		p.Number = 1
	}
	if p.Size <= 0 {
		p.Size = 10
	}
	return p
}

// Offset returns the SQL offset for the normalized request.
func (p PageRequest) Offset() int {
	n := p.Normalize()
	return (n.Number - 1) * n.Size
}

// Limit returns the SQL limit for the normalized request.
func (p PageRequest) Limit() int {
	return p.Normalize().Size
}
