package collision

// Layer is a bitmask identifying which collision groups a collider belongs
// to and which groups it scans for.
type Layer uint32

const (
	LayerNone Layer = 0
	LayerAll  Layer = ^Layer(0)
)

// Matches reports whether the mask accepts the other collider's layer.
func (l Layer) Matches(other Layer) bool {
	return l&other != 0
}
