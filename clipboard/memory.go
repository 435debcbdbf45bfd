package clipboard

import "sync"

// Memory keeps clipboard data in-process. It is used for headless sessions
// and tests.
//
// Clipboard commands run on their own goroutines, so access is guarded.
type Memory struct {
	mu   sync.Mutex
	item Item
}

func NewMemory() *Memory { return &Memory{} }

func (m *Memory) ReadText() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.item.Text, nil
}

func (m *Memory) WriteText(s string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.item = Item{Text: s}
	return nil
}

func (m *Memory) WriteItem(it Item) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.item = it
	return nil
}

// Item returns the last written entry. HTML is empty after a plain-text
// write.
func (m *Memory) Item() Item {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.item
}

var (
	_ Clipboard  = (*Memory)(nil)
	_ Writer     = (*Memory)(nil)
	_ ReadWriter = (*Memory)(nil)
)
