package session_test

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lockrow/keymaze/session"
)

// fakeTransport feeds scripted server messages and records what the
// session sends back.
type fakeTransport struct {
	incoming []string
	sent     []string
	closed   bool
}

func (f *fakeTransport) Recv() (string, error) {
	if len(f.incoming) == 0 {
		return "", io.EOF
	}
	msg := f.incoming[0]
	f.incoming = f.incoming[1:]
	return msg, nil
}

func (f *fakeTransport) Send(msg string) error {
	f.sent = append(f.sent, msg)
	return nil
}

func (f *fakeTransport) Close() error {
	f.closed = true
	return nil
}

// solvableRound is a corridor maze in wire format whose answer is six
// moves right: start (implicit at 1,1), key, door, exit.
var solvableRound = strings.Join([]string{
	"##################",
	"##....Om..{}..<>##",
	"##################",
}, "\n")

// TestSessionRun_WinBanner plays one round and stops on the win banner.
func TestSessionRun_WinBanner(t *testing.T) {
	ft := &fakeTransport{incoming: []string{
		"\n\n", // greeting
		solvableRound,
		"Gratz! flag{...}",
	}}
	s := session.New(ft, session.DefaultConfig())

	require.NoError(t, s.Run())
	require.Equal(t, []string{"rrrrrr\r\n"}, ft.sent)
}

// TestSessionRun_EOF treats a server hang-up as a clean session end.
func TestSessionRun_EOF(t *testing.T) {
	ft := &fakeTransport{incoming: []string{solvableRound}}
	s := session.New(ft, session.DefaultConfig())

	require.NoError(t, s.Run())
	require.Len(t, ft.sent, 1)
}

// TestSessionRun_UnsolvableAborts surfaces solver failures instead of
// looping on a maze the session can never answer.
func TestSessionRun_UnsolvableAborts(t *testing.T) {
	walledOff := strings.Join([]string{
		"##########",
		"##..##<>##",
		"##########",
	}, "\n")
	ft := &fakeTransport{incoming: []string{walledOff}}
	s := session.New(ft, session.DefaultConfig())

	require.Error(t, s.Run())
	require.Empty(t, ft.sent)
}
