// Copyright 2017 the Fenix Rooms authors.
// This software is released under an MIT/X11 open source license.

package spaces

// Resolver walks the space tree by sanitized name matching, one
// Directory fetch per hierarchy level.  It holds no state of its own
// beyond the Directory, so a single Resolver can serve any number of
// concurrent requests.
type Resolver struct {
	Directory Directory
}

// ResolveName finds the candidate whose sanitized name equals the
// sanitized target and fetches the full node for it.  Candidates with
// empty names are skipped.  The scan is linear and the first match
// wins; if two siblings sanitize to the same key the result is
// whichever upstream listed first, an ambiguity inherited from the
// upstream data.
//
// If no candidate matches, ResolveName returns ErrNoSuchSpace naming
// the target and performs no fetch at all.
func (r Resolver) ResolveName(target string, candidates []ChildRef) (*SpaceNode, error) {
	want := Sanitize(target)
	for _, c := range candidates {
		if c.Name == "" {
			continue
		}
		if Sanitize(c.Name) == want {
			return r.Directory.Space(c.ID)
		}
	}
	return nil, ErrNoSuchSpace{Name: target}
}

// ResolvePath resolves a sequence of name segments starting from the
// directory root.  Each segment costs exactly one fetch.  The chain
// short-circuits on the first failure: an unmatched segment aborts
// with ErrNoSuchSpace for that segment, and any upstream or parse
// failure aborts with that error.  Partial results are never
// returned.
//
// An empty path is invalid here; the root listing is available
// directly from the Directory.
func (r Resolver) ResolvePath(path []string) (*SpaceNode, error) {
	children, err := r.Directory.Root()
	if err != nil {
		return nil, err
	}
	return r.ResolveFrom(path, children)
}

// ResolveFrom is ResolvePath seeded with an explicit candidate list
// instead of the root.  The fixed-depth helpers below and the
// floor-within-floor case are expressed through it.
func (r Resolver) ResolveFrom(path []string, candidates []ChildRef) (*SpaceNode, error) {
	var node *SpaceNode
	var err error
	for _, segment := range path {
		node, err = r.ResolveName(segment, candidates)
		if err != nil {
			return nil, err
		}
		candidates = node.Children
	}
	if node == nil {
		return nil, ErrNoSuchSpace{Name: ""}
	}
	return node, nil
}

// Campus resolves a campus by name.
func (r Resolver) Campus(campus string) (*SpaceNode, error) {
	return r.ResolvePath([]string{campus})
}

// Building resolves a building within a campus.
func (r Resolver) Building(campus, building string) (*SpaceNode, error) {
	return r.ResolvePath([]string{campus, building})
}

// Floor resolves a floor within a building.
func (r Resolver) Floor(campus, building, floor string) (*SpaceNode, error) {
	return r.ResolvePath([]string{campus, building, floor})
}

// SubFloor resolves a floor nested inside another floor, for the
// campuses that have a floor-of-floors.
func (r Resolver) SubFloor(campus, building, floor, subfloor string) (*SpaceNode, error) {
	return r.ResolvePath([]string{campus, building, floor, subfloor})
}

// IsRoom reports whether id names an actual leaf room upstream.  This
// is the gate in front of room creation, and it deliberately fails
// closed: a missing id, a non-success upstream status, or a body that
// does not parse all yield false with no error.  Only a transport
// failure, where nothing can be said about the id at all, is reported
// as an error.
func (r Resolver) IsRoom(id string) (bool, error) {
	node, err := r.Directory.Space(id)
	switch e := err.(type) {
	case nil:
		return node.IsRoom(), nil
	case ErrNoSuchSpace:
		return false, nil
	case ErrMalformedData:
		return false, nil
	case ErrUpstream:
		if !e.Transport() {
			return false, nil
		}
		return false, err
	default:
		return false, err
	}
}
