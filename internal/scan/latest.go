package scan

import (
	"sync"
	"time"
)

// Reading is a decoded advertisement in display units. The short JSON
// keys match the node's serial debug line.
type Reading struct {
	Temperature float64   `json:"t"`
	Humidity    int       `json:"h"`
	Illuminance int       `json:"l"`
	Magnetic    int       `json:"m"`
	Flags       int       `json:"f"`
	Address     string    `json:"address"`
	RSSI        int16     `json:"rssi"`
	SeenAt      time.Time `json:"seen_at"`
}

// Latest holds the most recent reading for the dashboard API and fans
// it out to live subscribers.
type Latest struct {
	mu     sync.RWMutex
	r      Reading
	set    bool
	subs   map[int]chan Reading
	nextID int
}

func (l *Latest) Store(r Reading) {
	l.mu.Lock()
	l.r = r
	l.set = true
	for _, ch := range l.subs {
		// A subscriber that fell behind drops updates rather than
		// blocking the scan callback.
		select {
		case ch <- r:
		default:
		}
	}
	l.mu.Unlock()
}

// Snapshot returns the latest reading, or false if nothing has been
// seen yet.
func (l *Latest) Snapshot() (Reading, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.r, l.set
}

// Subscribe registers a channel that receives every subsequent Store.
// The returned cancel function must be called when the subscriber is
// done.
func (l *Latest) Subscribe() (<-chan Reading, func()) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.subs == nil {
		l.subs = make(map[int]chan Reading)
	}
	id := l.nextID
	l.nextID++
	ch := make(chan Reading, 8)
	l.subs[id] = ch
	cancel := func() {
		l.mu.Lock()
		delete(l.subs, id)
		l.mu.Unlock()
	}
	return ch, cancel
}
