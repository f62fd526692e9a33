package availability

import (
	"context"
	"sync"
)

type notification struct {
	Message  string
	Severity Severity
}

type recordingNotifier struct {
	mu    sync.Mutex
	notes []notification
}

func (n *recordingNotifier) Notify(message string, severity Severity) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.notes = append(n.notes, notification{Message: message, Severity: severity})
}

func (n *recordingNotifier) all() []notification {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]notification, len(n.notes))
	copy(out, n.notes)
	return out
}

// fakeGateway serves scripted responses. When resetGate is set, each reset
// call for that key blocks until the channel yields.
type fakeGateway struct {
	mu sync.Mutex

	listResp  []*ListResponse
	listErr   []error
	listCalls int

	resetErr   map[Key]error
	resetCalls []Key
	resetGate  map[Key]chan struct{}
	resetStart chan Key
}

func newFakeGateway() *fakeGateway {
	return &fakeGateway{
		resetErr:  make(map[Key]error),
		resetGate: make(map[Key]chan struct{}),
	}
}

// queueList appends one scripted ListUnavailable result. The last entry is
// repeated once the queue is exhausted.
func (g *fakeGateway) queueList(resp *ListResponse, err error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.listResp = append(g.listResp, resp)
	g.listErr = append(g.listErr, err)
}

func (g *fakeGateway) ListUnavailable(_ context.Context) (*ListResponse, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	i := g.listCalls
	g.listCalls++
	if len(g.listResp) == 0 {
		return &ListResponse{}, nil
	}
	if i >= len(g.listResp) {
		i = len(g.listResp) - 1
	}
	return g.listResp[i], g.listErr[i]
}

func (g *fakeGateway) ResetAvailability(_ context.Context, modelID, clientID string) (*ResetResponse, error) {
	key := Key{ModelID: modelID, ClientID: clientID}

	g.mu.Lock()
	g.resetCalls = append(g.resetCalls, key)
	gate := g.resetGate[key]
	started := g.resetStart
	err := g.resetErr[key]
	g.mu.Unlock()

	if started != nil {
		started <- key
	}
	if gate != nil {
		<-gate
	}
	if err != nil {
		return nil, err
	}
	return &ResetResponse{Status: "ok", ModelID: modelID, ClientID: clientID}, nil
}

func (g *fakeGateway) listCount() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.listCalls
}

func (g *fakeGateway) resets() []Key {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make([]Key, len(g.resetCalls))
	copy(out, g.resetCalls)
	return out
}
