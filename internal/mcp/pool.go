package mcp

import (
	"strings"
)

// Pool keeps one live session per server command, keyed by argv joined with
// space. The pool owns its sessions; Close releases them all.
type Pool struct {
	sessions map[string]*Session
}

func NewPool() *Pool {
	return &Pool{sessions: make(map[string]*Session)}
}

// GetOrStart returns the existing session for argv or starts a new blocking
// (pool) session.
func (p *Pool) GetOrStart(argv []string) (*Session, error) {
	key := strings.Join(argv, " ")
	if s, ok := p.sessions[key]; ok {
		return s, nil
	}

	s, err := Start(argv)
	if err != nil {
		return nil, err
	}
	p.sessions[key] = s
	return s, nil
}

func (p *Pool) Len() int {
	return len(p.sessions)
}

func (p *Pool) Close() {
	for key, s := range p.sessions {
		s.Close()
		delete(p.sessions, key)
	}
}
