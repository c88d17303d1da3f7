//go:build ci

package sound

const (
	EventDeal     = "deal"
	EventPlay     = "play"
	EventBomb     = "bomb"
	EventLandlord = "landlord"
	EventWin      = "win"
	EventLose     = "lose"
)

type Manager struct{}

func NewManager() *Manager { return &Manager{} }

func (m *Manager) Init() error { return nil }

func (m *Manager) Play(event string) {}

func (m *Manager) Close() {}
