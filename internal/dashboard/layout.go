package dashboard

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// ErrUnknownWidget is returned when AddWidget is called with a kind that
// is not in the catalog.
var ErrUnknownWidget = errors.New("unknown widget type")

// Engine owns the ordered widget sequence. Every mutation persists the
// full sequence through the configured Storage.
type Engine struct {
	items   []Item
	storage Storage
	logger  zerolog.Logger
}

// NewEngine restores the last persisted layout, falling back silently to
// the default sequence when nothing usable is stored.
func NewEngine(storage Storage, logger zerolog.Logger) *Engine {
	items, err := storage.Load()
	if err != nil {
		logger.Debug().Msg("no stored layout, using defaults")
		items = DefaultLayout()
	}
	return &Engine{items: items, storage: storage, logger: logger}
}

// Items returns a copy of the current sequence in order.
func (e *Engine) Items() []Item {
	out := make([]Item, len(e.items))
	copy(out, e.items)
	return out
}

// AddWidget appends a new card of the given kind with a freshly generated
// id and the kind's catalog title. The same kind may appear any number of
// times.
func (e *Engine) AddWidget(kind WidgetType) (*Item, error) {
	title, ok := Catalog[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownWidget, kind)
	}

	item := Item{
		ID:    fmt.Sprintf("%s-%s", kind, uuid.NewString()),
		Type:  kind,
		Title: title,
	}
	e.items = append(e.items, item)
	e.persist()
	return &item, nil
}

// RemoveWidget removes the card with the given id. Removing an absent id
// is a no-op.
func (e *Engine) RemoveWidget(id string) {
	idx := e.indexOf(id)
	if idx < 0 {
		return
	}
	e.items = append(e.items[:idx], e.items[idx+1:]...)
	e.persist()
}

// Reorder moves the dragged card to the position currently held by the
// target card: the dragged card is removed, then reinserted at the
// target's index, preserving all other relative orderings. Unknown ids or
// dragging a card onto itself leave the sequence untouched.
func (e *Engine) Reorder(draggedID, targetID string) {
	if draggedID == targetID {
		return
	}
	from := e.indexOf(draggedID)
	if from < 0 {
		return
	}

	dragged := e.items[from]
	rest := append(append([]Item{}, e.items[:from]...), e.items[from+1:]...)

	to := -1
	for i, item := range rest {
		if item.ID == targetID {
			to = i
			break
		}
	}
	if to < 0 {
		return
	}

	e.items = append(rest[:to], append([]Item{dragged}, rest[to:]...)...)
	e.persist()
}

// DropOnTrash removes the dragged card; it is the drag-gesture spelling of
// RemoveWidget.
func (e *Engine) DropOnTrash(draggedID string) {
	e.RemoveWidget(draggedID)
}

func (e *Engine) indexOf(id string) int {
	for i, item := range e.items {
		if item.ID == id {
			return i
		}
	}
	return -1
}

// persist writes the full sequence after every mutation. A storage failure
// is logged and the in-memory sequence stays authoritative for the session.
func (e *Engine) persist() {
	if err := e.storage.Save(e.items); err != nil {
		e.logger.Warn().Err(err).Msg("failed to persist dashboard layout")
	}
}
