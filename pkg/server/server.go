package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/kerem-kaynak/kompositum/pkg/compound"
	"github.com/kerem-kaynak/kompositum/pkg/tokenizer"
)

// maxWordsPerRequest bounds a single split or lookup request.
const maxWordsPerRequest = 10_000

// Server answers split, tokenize and lookup requests over a msgpack stream.
type Server struct {
	dict      *compound.Dictionary
	splitter  *compound.Splitter
	tokenizer *tokenizer.Tokenizer
	workers   int
	logger    *log.Logger

	dec *msgpack.Decoder
	enc *msgpack.Encoder
}

// NewServer creates a server reading requests from r and writing responses
// to w.
func NewServer(dict *compound.Dictionary, splitter *compound.Splitter, tok *tokenizer.Tokenizer, r io.Reader, w io.Writer) *Server {
	return &Server{
		dict:      dict,
		splitter:  splitter,
		tokenizer: tok,
		workers:   1,
		logger:    log.New(io.Discard),
		dec:       msgpack.NewDecoder(r),
		enc:       msgpack.NewEncoder(w),
	}
}

// SetWorkers sets the parallelism used for split requests.
func (s *Server) SetWorkers(n int) {
	if n > 0 {
		s.workers = n
	}
}

// SetLogger replaces the server logger.
func (s *Server) SetLogger(l *log.Logger) {
	if l != nil {
		s.logger = l
	}
}

// decoded is one request read from the input, or the error that ended it.
type decoded struct {
	req Request
	err error
}

// Serve handles requests until the input ends or ctx is canceled. A canceled
// ctx returns while the input is still blocked on a read.
func (s *Server) Serve(ctx context.Context) error {
	s.logger.Debug("server started")
	if err := s.enc.Encode(Response{Status: "ready"}); err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	requests := make(chan decoded)
	go s.readRequests(ctx, requests)

	for {
		select {
		case <-ctx.Done():
			s.logger.Debug("server stopped", "err", ctx.Err())
			return ctx.Err()

		case d := <-requests:
			if d.err != nil {
				if errors.Is(d.err, io.EOF) {
					s.logger.Debug("input closed")
					return nil
				}
				s.logger.Error("decoding request", "err", d.err)
				return fmt.Errorf("decode request: %w", d.err)
			}

			if err := s.handle(ctx, d.req); err != nil {
				return err
			}
		}
	}
}

// readRequests decodes requests into out until decoding fails or ctx is
// done. A read blocked in the decoder outlives ctx until the input returns.
func (s *Server) readRequests(ctx context.Context, out chan<- decoded) {
	for {
		var req Request
		err := s.dec.Decode(&req)

		select {
		case out <- decoded{req: req, err: err}:
		case <-ctx.Done():
			return
		}
		if err != nil {
			return
		}
	}
}

func (s *Server) handle(ctx context.Context, req Request) error {
	start := time.Now()

	switch req.Op {
	case OpHealth:
		return s.enc.Encode(Response{ID: req.ID, Status: "ok"})

	case OpSplit:
		if len(req.Words) > maxWordsPerRequest {
			return s.sendError(req.ID, fmt.Sprintf("too many words: %d > %d", len(req.Words), maxWordsPerRequest), 400)
		}
		parts, err := s.splitter.SplitAll(ctx, req.Words, s.workers)
		if err != nil {
			return s.sendError(req.ID, err.Error(), 500)
		}
		return s.enc.Encode(Response{ID: req.ID, Parts: parts, TimeTaken: time.Since(start).Microseconds()})

	case OpTokenize:
		if s.tokenizer == nil {
			return s.sendError(req.ID, "tokenizer not configured", 501)
		}
		tokens := s.tokenizer.Tokenize(req.Text)
		return s.enc.Encode(Response{ID: req.ID, Tokens: tokens, TimeTaken: time.Since(start).Microseconds()})

	case OpLookup:
		if len(req.Words) > maxWordsPerRequest {
			return s.sendError(req.ID, fmt.Sprintf("too many words: %d > %d", len(req.Words), maxWordsPerRequest), 400)
		}
		entries := make([]LookupEntry, len(req.Words))
		for i, word := range req.Words {
			entry, ok := s.dict.Lookup(word)
			entries[i] = LookupEntry{Surface: entry.Surface, Capitalized: entry.Capitalized, Found: ok}
		}
		return s.enc.Encode(Response{ID: req.ID, Entries: entries, TimeTaken: time.Since(start).Microseconds()})

	default:
		s.logger.Debug("unknown op", "id", req.ID, "op", req.Op)
		return s.sendError(req.ID, "unknown op: "+req.Op, 400)
	}
}

func (s *Server) sendError(id, message string, code int) error {
	return s.enc.Encode(ErrorResponse{ID: id, Error: message, Code: code})
}
