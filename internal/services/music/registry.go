package music

import (
	"sync"

	"github.com/KirkDiggler/pearl/internal/common/clock"
	"github.com/KirkDiggler/pearl/internal/models"
)

// guildPlayer is the registry entry for one guild. Every field is guarded by mu.
type guildPlayer struct {
	mu sync.Mutex

	guildID string

	// session is nil while the guild has no session
	session *models.MusicSession

	voice voiceCredentials

	idleTimer clock.Timer

	// idleGen invalidates idle timers that were stopped too late
	idleGen uint64

	// removed is set once the entry left the registry
	removed bool
}

type voiceCredentials struct {
	token     string
	endpoint  string
	sessionID string
}

func (v voiceCredentials) complete() bool {
	return v.token != "" && v.endpoint != "" && v.sessionID != ""
}

type registry struct {
	mu      sync.Mutex
	players map[string]*guildPlayer
}

func newRegistry() *registry {
	return &registry{
		players: make(map[string]*guildPlayer),
	}
}

// acquire returns the guild's entry locked, creating it when create is set.
// It returns nil when there is no entry and create is false.
func (r *registry) acquire(guildID string, create bool) *guildPlayer {
	for {
		r.mu.Lock()
		p, ok := r.players[guildID]
		if !ok {
			if !create {
				r.mu.Unlock()
				return nil
			}
			p = &guildPlayer{guildID: guildID}
			r.players[guildID] = p
		}
		r.mu.Unlock()

		p.mu.Lock()
		if !p.removed {
			return p
		}
		// lost a race with teardown, look again
		p.mu.Unlock()
	}
}

// release unlocks p, dropping it from the registry if it never got a session
func (r *registry) release(p *guildPlayer) {
	if p.session == nil && !p.removed {
		r.remove(p)
	}
	p.mu.Unlock()
}

// remove drops p from the registry. p.mu must be held.
func (r *registry) remove(p *guildPlayer) {
	p.removed = true

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.players[p.guildID] == p {
		delete(r.players, p.guildID)
	}
}

func (r *registry) guildIDs() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	ids := make([]string, 0, len(r.players))
	for id := range r.players {
		ids = append(ids, id)
	}
	return ids
}
