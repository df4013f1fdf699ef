// Package session drives a solve loop against a remote puzzle server: it
// receives raw maze text, decodes the fixed-width cell tags into a grid,
// solves the maze, and transmits the move string back.
//
// The wire protocol is line-oriented text. Each round the server sends one
// maze: rows of two-character cell tags ("##" wall, "Om" key, "{}" door,
// "<>" exit, anything else open floor). The start cell carries no tag of
// its own; the protocol fixes it at grid position (1,1). The session
// answers with the move string followed by CRLF. A round starting with the
// win banner ends the session.
//
// Transports: a raw TCP dialer (the original protocol) and a WebSocket
// dialer, both satisfying the Transport interface.
//
// Errors:
//
//   - ErrBadTagWidth: a maze row is not a whole number of cell tags.
//   - ErrNoExit: the decoded grid has no exit cell.
package session
