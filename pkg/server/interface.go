/*
Package server implements msgpack IPC for compound splitting.

Clients write msgpack-encoded requests to the server's input and read one
msgpack-encoded response per request from its output, in order. Every
request carries an ID that is echoed back.

	{"id": "r1", "op": "split", "w": ["arbeitsgeber", "gartenhaus"]}
	{"id": "r1", "p": [["arbeit", "geber"], ["gartenhaus"]], "t": 12}

	{"id": "r2", "op": "tokenize", "x": "Der Polizeibericht zum Verkehrsunfall"}
	{"id": "r2", "tk": ["polizei", "bericht", "verkehr", "unfall"], "t": 40}

	{"id": "r3", "op": "lookup", "w": ["Haus"]}
	{"id": "r3", "e": [{"s": "Haus", "c": true, "f": true}], "t": 3}

Failed requests get an error response with the same ID:

	{"id": "r4", "err": "unknown op: nope", "code": 400}
*/
package server

// Ops understood by the server.
const (
	OpSplit    = "split"
	OpTokenize = "tokenize"
	OpLookup   = "lookup"
	OpHealth   = "health"
)

// Request is a single client message.
type Request struct {
	ID    string   `msgpack:"id"`
	Op    string   `msgpack:"op"`
	Words []string `msgpack:"w,omitempty"`
	Text  string   `msgpack:"x,omitempty"`
}

// LookupEntry describes one looked-up word.
type LookupEntry struct {
	Surface     string `msgpack:"s"`
	Capitalized bool   `msgpack:"c"`
	Found       bool   `msgpack:"f"`
}

// Response answers a Request. TimeTaken is in microseconds.
type Response struct {
	ID        string        `msgpack:"id"`
	Parts     [][]string    `msgpack:"p,omitempty"`
	Tokens    []string      `msgpack:"tk,omitempty"`
	Entries   []LookupEntry `msgpack:"e,omitempty"`
	Status    string        `msgpack:"st,omitempty"`
	TimeTaken int64         `msgpack:"t"`
}

// ErrorResponse reports a failed request.
type ErrorResponse struct {
	ID    string `msgpack:"id"`
	Error string `msgpack:"err"`
	Code  int    `msgpack:"code"`
}
