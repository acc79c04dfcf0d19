package crdt

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/vmihailenco/msgpack/v5"
)

// rootID is the virtual origin of the first character of a document.
const rootID = "root"

// Vertex представляет один вставленный символ в последовательности документа.
// Удаление не убирает вершину, а помечает ее tombstone (надгробием),
// поэтому слияние состояний сводится к объединению множеств вершин.
type Vertex struct {
	ID        string `msgpack:"id"`
	Origin    string `msgpack:"origin"`
	NodeID    string `msgpack:"node_id"`
	Char      rune   `msgpack:"char"`
	Timestamp int64  `msgpack:"timestamp"`
	Tombstone bool   `msgpack:"tombstone"`
}

// documentState — сериализуемое состояние реплики
type documentState struct {
	Vertices map[string]*Vertex `msgpack:"vertices"`
	Clocks   VectorClock        `msgpack:"clocks"`
}

// Document представляет сходящуюся реплику текста одного документа.
// Слияние состояний коммутативно, ассоциативно и идемпотентно:
// применение одних и тех же байт дважды не меняет содержимое.
type Document struct {
	clock    *LamportClock
	vertices map[string]*Vertex
	vclock   VectorClock
	id       string
	order    []*Vertex
	mu       sync.RWMutex
}

// NewDocument создает пустую реплику документа
func NewDocument(documentID string, clock *LamportClock) *Document {
	return &Document{
		id:       documentID,
		clock:    clock,
		vertices: make(map[string]*Vertex),
		vclock:   NewVectorClock(),
	}
}

// DocumentID возвращает идентификатор документа
func (d *Document) DocumentID() string {
	return d.id
}

// InsertAt вставляет текст перед символом с индексом offset.
// Offset за пределами текущей длины прижимается к границам.
func (d *Document) InsertAt(offset int, text string) error {
	if text == "" {
		return nil
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	visible := d.visibleLocked()
	if offset < 0 {
		offset = 0
	}
	if offset > len(visible) {
		offset = len(visible)
	}

	// Origin — предыдущий видимый символ, для offset 0 — виртуальный корень
	origin := rootID
	if offset > 0 {
		origin = visible[offset-1].ID
	}

	nodeID := d.clock.NodeID()
	for _, r := range text {
		ts := d.clock.Tick()
		v := &Vertex{
			ID:        fmt.Sprintf("%d@%s", ts, nodeID),
			Origin:    origin,
			NodeID:    nodeID,
			Char:      r,
			Timestamp: ts,
		}
		d.vertices[v.ID] = v
		d.vclock.Increment(nodeID)
		origin = v.ID
	}

	d.order = nil
	return nil
}

// DeleteRange помечает символы в диапазоне [offset, offset+length) удаленными.
// Диапазон за пределами текста прижимается к фактической длине.
func (d *Document) DeleteRange(offset, length int) error {
	if length <= 0 {
		return nil
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	visible := d.visibleLocked()
	if offset < 0 {
		offset = 0
	}

	end := offset + length
	if end > len(visible) {
		end = len(visible)
	}

	for i := offset; i < end; i++ {
		visible[i].Tombstone = true
	}

	return nil
}

// Text возвращает текущее содержимое документа
func (d *Document) Text() string {
	d.mu.RLock()
	defer d.mu.RUnlock()

	var sb strings.Builder
	for _, v := range d.visibleLocked() {
		sb.WriteRune(v.Char)
	}
	return sb.String()
}

// Len возвращает количество видимых символов
func (d *Document) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()

	return len(d.visibleLocked())
}

// Version возвращает снимок версионного вектора реплики
func (d *Document) Version() VectorClock {
	d.mu.RLock()
	defer d.mu.RUnlock()

	return d.vclock.Clone()
}

// EncodeState сериализует состояние реплики в байты для передачи или хранения
func (d *Document) EncodeState() ([]byte, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	state := documentState{
		Vertices: d.vertices,
		Clocks:   d.vclock,
	}

	data, err := msgpack.Marshal(&state)
	if err != nil {
		return nil, fmt.Errorf("failed to encode document state: %w", err)
	}

	return data, nil
}

// Merge сливает закодированное состояние другой реплики в текущую.
// Вершины объединяются по множеству, tombstone побеждает. Операция
// коммутативна, ассоциативна и идемпотентна.
func (d *Document) Merge(data []byte) error {
	if len(data) == 0 {
		return nil
	}

	var state documentState
	if err := msgpack.Unmarshal(data, &state); err != nil {
		return fmt.Errorf("failed to decode document state: %w", err)
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	for id, incoming := range state.Vertices {
		existing, ok := d.vertices[id]
		if !ok {
			v := *incoming
			d.vertices[id] = &v
			d.clock.Observe(incoming.Timestamp)
			continue
		}
		if incoming.Tombstone {
			existing.Tombstone = true
		}
	}

	d.vclock.Merge(state.Clocks)
	d.order = nil

	return nil
}

// visibleLocked возвращает видимые вершины в порядке документа.
// Вызывается только под мьютексом.
func (d *Document) visibleLocked() []*Vertex {
	order := d.orderLocked()
	visible := make([]*Vertex, 0, len(order))
	for _, v := range order {
		if !v.Tombstone {
			visible = append(visible, v)
		}
	}
	return visible
}

// orderLocked детерминированно линеаризует множество вершин.
// Дети каждого origin упорядочены по (Timestamp desc, ID desc), обход
// в глубину. Результат зависит только от множества вершин, поэтому
// порядок слияний не влияет на итоговый текст.
func (d *Document) orderLocked() []*Vertex {
	if d.order != nil {
		return d.order
	}

	children := make(map[string][]*Vertex, len(d.vertices))
	for _, v := range d.vertices {
		children[v.Origin] = append(children[v.Origin], v)
	}
	for _, siblings := range children {
		sort.Slice(siblings, func(i, j int) bool {
			if siblings[i].Timestamp != siblings[j].Timestamp {
				return siblings[i].Timestamp > siblings[j].Timestamp
			}
			return siblings[i].ID > siblings[j].ID
		})
	}

	order := make([]*Vertex, 0, len(d.vertices))

	// Итеративный DFS: длинный документ — это длинная цепочка origin'ов,
	// рекурсия здесь переполнила бы стек.
	stack := make([]*Vertex, 0, len(d.vertices))
	push := func(origin string) {
		siblings := children[origin]
		for i := len(siblings) - 1; i >= 0; i-- {
			stack = append(stack, siblings[i])
		}
	}

	push(rootID)
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		order = append(order, v)
		push(v.ID)
	}

	d.order = order
	return order
}
