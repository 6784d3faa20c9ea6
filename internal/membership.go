package internal

// A site is inside the hull of a point set iff adding it to the set does not
// make it a hull vertex. Anything outside becomes a vertex, and so does a
// candidate on the boundary whenever it ties with a vertex.
//
// The candidate goes in front of a copy of the source. Both scans in the hull
// builder break ties by first occurrence, so a candidate that coincides with an
// existing vertex takes that vertex's place and is reported as not inside. A
// candidate on an edge but not tied with any vertex (the midpoint of the
// leftmost-rightmost line, say) is never selected and is reported as inside.

func IsInside(source PointSet, candidate Point) bool {
	return IsSiteInside(source, Site{ID: source.NextID(), Position: candidate})
}

// Identity form of IsInside. If the source already holds a site with the
// candidate's ID, the candidate replaces it for the test. This answers "is site
// N strictly interior" for sites already in the set. The source is not modified.
func IsSiteInside(source PointSet, candidate Site) bool {
	points := make(PointSet, 0, len(source)+1)
	points = append(points, candidate)
	for _, s := range source {
		if s.ID != candidate.ID {
			points = append(points, s)
		}
	}
	hull := ComputeHull(points)
	inside := !hull.Contains(candidate.ID)
	log.Debug("classified site", "site", candidate.ID, "inside", inside)
	return inside
}
