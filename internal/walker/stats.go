package walker

// Stats accumulates totals over the entries of a walk.
type Stats struct {
	Files int
	Dirs  int
	Bytes int64
}

// Add counts e.
func (s *Stats) Add(e Entry) {
	if e.IsDir() {
		s.Dirs++
		return
	}
	s.Files++
	s.Bytes += e.Size
}
