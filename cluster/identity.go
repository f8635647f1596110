package cluster

import "fmt"

// Identity names the record a singleton cluster was built from.
//
// Only clusters of size 1 carry an identity; it is dropped as soon as a second
// point is absorbed or the cluster takes part in a merge.
type Identity struct {
	Type string
	ID   string
}

// NewIdentity returns an identity for the given record type and id.
func NewIdentity(typ, id string) *Identity {
	return &Identity{Type: typ, ID: id}
}

// Equal reports whether two identities, either of which may be nil, are the same.
func (i *Identity) Equal(other *Identity) bool {
	if i == nil || other == nil {
		return i == other
	}

	return i.Type == other.Type && i.ID == other.ID
}

func (i *Identity) String() string {
	if i == nil {
		return "<none>"
	}

	return fmt.Sprintf("%s/%s", i.Type, i.ID)
}

// Record is one input to a Builder: a point and, optionally, its identity.
type Record struct {
	Point    Point
	Identity *Identity
}
