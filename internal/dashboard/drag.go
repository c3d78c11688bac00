package dashboard

// dragPhase is the state of the short-lived drag interaction:
// idle → dragging → released → idle. Hovering never mutates the layout;
// only a release does.
type dragPhase int

const (
	phaseIdle dragPhase = iota
	phaseDragging
)

// hoverKind records what the pointer is currently over while dragging.
type hoverKind int

const (
	hoverNothing hoverKind = iota
	hoverCard
	hoverTrash
)

// Gesture drives an Engine through one drag interaction at a time. Event
// handlers call Begin / HoverOver / HoverTrash / Leave as the pointer
// moves, and Release when the gesture completes.
type Gesture struct {
	engine *Engine

	phase     dragPhase
	draggedID string
	hover     hoverKind
	targetID  string
}

func NewGesture(engine *Engine) *Gesture {
	return &Gesture{engine: engine}
}

// Dragging reports whether a gesture is in flight.
func (g *Gesture) Dragging() bool {
	return g.phase == phaseDragging
}

// Begin starts a drag on the given card. Beginning while already dragging
// or on an id not in the layout is ignored.
func (g *Gesture) Begin(id string) {
	if g.phase != phaseIdle || g.engine.indexOf(id) < 0 {
		return
	}
	g.phase = phaseDragging
	g.draggedID = id
	g.hover = hoverNothing
}

// HoverOver records the card currently under the pointer. The dragged card
// itself is not a valid target.
func (g *Gesture) HoverOver(targetID string) {
	if g.phase != phaseDragging || targetID == g.draggedID {
		return
	}
	g.hover = hoverCard
	g.targetID = targetID
}

// HoverTrash records that the pointer is over the removal target.
func (g *Gesture) HoverTrash() {
	if g.phase != phaseDragging {
		return
	}
	g.hover = hoverTrash
	g.targetID = ""
}

// Leave records that the pointer left all drop targets.
func (g *Gesture) Leave() {
	if g.phase != phaseDragging {
		return
	}
	g.hover = hoverNothing
	g.targetID = ""
}

// Release completes the gesture and applies the mutation: a reorder when
// released over another card, a removal when released over the trash, and
// nothing when released elsewhere. The gesture then returns to idle.
func (g *Gesture) Release() {
	if g.phase != phaseDragging {
		return
	}

	switch g.hover {
	case hoverCard:
		g.engine.Reorder(g.draggedID, g.targetID)
	case hoverTrash:
		g.engine.DropOnTrash(g.draggedID)
	}

	g.phase = phaseIdle
	g.draggedID = ""
	g.hover = hoverNothing
	g.targetID = ""
}
