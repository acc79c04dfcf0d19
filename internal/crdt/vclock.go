package crdt

// VectorClock представляет версионный вектор: NodeID -> счетчик событий.
// Отслеживает, сколько событий каждого узла видела реплика.
type VectorClock map[string]uint64

// NewVectorClock создает пустой версионный вектор
func NewVectorClock() VectorClock {
	return make(VectorClock)
}

// Increment увеличивает счетчик заданного узла
func (vc VectorClock) Increment(nodeID string) {
	vc[nodeID]++
}

// Merge сливает другой вектор поэлементным максимумом.
// Операция коммутативна и идемпотентна.
func (vc VectorClock) Merge(other VectorClock) {
	for id, counter := range other {
		if counter > vc[id] {
			vc[id] = counter
		}
	}
}

// Descends reports whether vc has seen everything other has seen (vc >= other).
// Vector clocks are partially ordered: !a.Descends(b) && !b.Descends(a)
// means the two states are concurrent.
func (vc VectorClock) Descends(other VectorClock) bool {
	for id, counter := range other {
		if vc[id] < counter {
			return false
		}
	}
	return true
}

// Clone создает копию вектора
func (vc VectorClock) Clone() VectorClock {
	clone := make(VectorClock, len(vc))
	for id, counter := range vc {
		clone[id] = counter
	}
	return clone
}
