// Package session: the receive → solve → send loop.
package session

import (
	"errors"
	"io"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/lockrow/keymaze/maze"
	"github.com/lockrow/keymaze/solve"
)

// Session runs the solve loop over one Transport.
type Session struct {
	transport Transport
	cellWidth int
	winBanner string
	tags      TagMap
}

// New builds a Session over t using cfg's wire settings.
func New(t Transport, cfg Config) *Session {
	width := cfg.CellWidth
	if width <= 0 {
		width = DefaultCellWidth
	}
	banner := cfg.WinBanner
	if banner == "" {
		banner = DefaultConfig().WinBanner
	}
	return &Session{
		transport: t,
		cellWidth: width,
		winBanner: banner,
		tags:      DefaultTags(),
	}
}

// Run receives mazes, solves them, and sends back move strings until the
// server transmits the win banner or the connection ends. The first read
// that yields only whitespace is treated as the protocol's greeting and
// skipped. Solver failures abort the session: a maze we cannot solve means
// the remaining rounds are unreachable anyway.
func (s *Session) Run() error {
	round := 0
	for {
		text, err := s.transport.Recv()
		if err != nil {
			if errors.Is(err, io.EOF) {
				log.WithField("rounds", round).Info("server closed the session")
				return nil
			}
			return err
		}
		if strings.TrimSpace(text) == "" {
			continue // greeting or keep-alive
		}
		if strings.HasPrefix(text, s.winBanner) {
			log.WithField("rounds", round).Info("session won")
			return nil
		}
		round++

		moves, err := s.solveRound(text)
		if err != nil {
			log.WithError(err).WithField("round", round).Error("round failed")
			return err
		}
		log.WithFields(log.Fields{"round": round, "moves": len(moves)}).Info("maze solved")

		if err := s.transport.Send(moves + "\r\n"); err != nil {
			return err
		}
	}
}

// solveRound decodes one maze text and produces its move string.
func (s *Session) solveRound(text string) (string, error) {
	cells, err := ParseGrid(text, s.cellWidth, s.tags)
	if err != nil {
		return "", err
	}
	m, err := maze.New(cells)
	if err != nil {
		return "", err
	}
	return solve.Solve(m)
}
