// Package session: wire transports for the puzzle protocol.
package session

import (
	"net"

	"github.com/gorilla/websocket"
)

// recvBufSize bounds a single received message. Puzzle rounds are a few
// kilobytes of text at most.
const recvBufSize = 64 * 1024

// Transport is one message-oriented connection to a puzzle server.
type Transport interface {
	// Recv blocks until the next server message and returns it as text.
	Recv() (string, error)
	// Send transmits one message.
	Send(msg string) error
	// Close releases the connection.
	Close() error
}

// tcpTransport speaks the original raw-socket protocol: each Recv is one
// read from the stream, each Send one write.
type tcpTransport struct {
	conn net.Conn
	buf  []byte
}

// DialTCP connects to a raw TCP puzzle endpoint, e.g. "host:31397".
func DialTCP(addr string) (Transport, error) {
	conn, err := net.Dial("tcp", addr)
	if err != nil {
		return nil, err
	}
	return &tcpTransport{conn: conn, buf: make([]byte, recvBufSize)}, nil
}

func (t *tcpTransport) Recv() (string, error) {
	n, err := t.conn.Read(t.buf)
	if err != nil {
		return "", err
	}
	return string(t.buf[:n]), nil
}

func (t *tcpTransport) Send(msg string) error {
	_, err := t.conn.Write([]byte(msg))
	return err
}

func (t *tcpTransport) Close() error {
	return t.conn.Close()
}

// wsTransport carries the same text protocol over a WebSocket, one maze or
// move string per message.
type wsTransport struct {
	conn *websocket.Conn
}

// DialWebSocket connects to a WebSocket puzzle endpoint, e.g.
// "ws://host:8080/play".
func DialWebSocket(url string) (Transport, error) {
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		return nil, err
	}
	return &wsTransport{conn: conn}, nil
}

func (t *wsTransport) Recv() (string, error) {
	_, message, err := t.conn.ReadMessage()
	if err != nil {
		return "", err
	}
	return string(message), nil
}

func (t *wsTransport) Send(msg string) error {
	return t.conn.WriteMessage(websocket.TextMessage, []byte(msg))
}

func (t *wsTransport) Close() error {
	return t.conn.Close()
}
