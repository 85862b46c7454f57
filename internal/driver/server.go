package driver

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/mohsen1/tsz-sub014/internal/config"
)

// ErrShutdown is returned by Server.Run after an orderly `shutdown` request,
// distinguishing a clean exit from a read/write failure.
var ErrShutdown = errors.New("driver: shutdown requested")

// request is the union of every §6.4 request shape; Type selects which
// other fields apply.
type request struct {
	Type    string                 `json:"type"`
	ID      string                 `json:"id"`
	Files   map[string]string      `json:"files,omitempty"`
	Options map[string]interface{} `json:"options,omitempty"`
}

// response is the union of every §6.4 response shape; a server only
// populates the fields relevant to the request it is answering.
type response struct {
	ID              string   `json:"id"`
	Codes           []string `json:"codes,omitempty"`
	ElapsedMS       int64    `json:"elapsed_ms,omitempty"`
	MemoryMB        float64  `json:"memory_mb,omitempty"`
	ChecksCompleted int64    `json:"checks_completed,omitempty"`
	Error           string   `json:"error,omitempty"`
}

// Server is the §6.4 long-lived process: newline-delimited JSON requests
// in, newline-delimited JSON responses out. It owns a disk cache, which
// `recycle` clears, and a running count of completed checks across its
// lifetime, which `recycle` leaves as it is.
type Server struct {
	in     *bufio.Scanner
	out    io.Writer
	jobs   int
	cache  *DiskCache
	checks atomic.Int64

	// Resolve builds a Program for a `check` request's raw file map — the
	// driver has no lexer/parser/binder of its own (§1's out-of-scope
	// list), so a host supplies this hook to bind raw text into the
	// already-bound files CheckProgram expects.
	Resolve func(files map[string]string) (Program, error)
}

// NewServer wires a Server to the given streams; jobs<=0 picks
// runtime.GOMAXPROCS, matching CheckProgram's own default.
func NewServer(r io.Reader, w io.Writer, jobs int, cache *DiskCache) *Server {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	return &Server{in: scanner, out: w, jobs: jobs, cache: cache}
}

// Run reads requests until EOF, ErrShutdown, or ctx cancellation.
func (s *Server) Run(ctx context.Context) error {
	for s.in.Scan() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		line := s.in.Bytes()
		if len(line) == 0 {
			continue
		}
		var req request
		if err := json.Unmarshal(line, &req); err != nil {
			if werr := s.write(response{Error: fmt.Sprintf("malformed request: %v", err)}); werr != nil {
				return werr
			}
			continue
		}
		resp, done, err := s.handle(ctx, req)
		if err != nil {
			return err
		}
		if werr := s.write(resp); werr != nil {
			return werr
		}
		if done {
			return ErrShutdown
		}
	}
	return s.in.Err()
}

func (s *Server) handle(ctx context.Context, req request) (response, bool, error) {
	switch req.Type {
	case "check":
		return s.handleCheck(ctx, req)
	case "status":
		return s.handleStatus(req), false, nil
	case "recycle":
		if err := s.cache.DropAll(); err != nil {
			return response{ID: req.ID, Error: err.Error()}, false, nil
		}
		return response{ID: req.ID}, false, nil
	case "shutdown":
		return response{ID: req.ID}, true, nil
	default:
		return response{ID: req.ID, Error: fmt.Sprintf("unknown request type %q", req.Type)}, false, nil
	}
}

func (s *Server) handleCheck(ctx context.Context, req request) (response, bool, error) {
	if s.Resolve == nil {
		return response{ID: req.ID, Error: "server has no binder hook configured"}, false, nil
	}
	start := time.Now()
	prog, err := s.Resolve(req.Files)
	if err != nil {
		return response{ID: req.ID, Error: err.Error()}, false, nil
	}
	sc := decodeOptions(req.Options)
	result, err := CheckProgram(ctx, prog, sc, s.jobs)
	if err != nil {
		return response{ID: req.ID, Error: err.Error()}, false, nil
	}
	s.checks.Add(1)
	return response{
		ID:        req.ID,
		Codes:     result.Codes(),
		ElapsedMS: time.Since(start).Milliseconds(),
	}, false, nil
}

func (s *Server) handleStatus(req request) response {
	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)
	return response{
		ID:              req.ID,
		MemoryMB:        float64(mem.Alloc) / (1024 * 1024),
		ChecksCompleted: s.checks.Load(),
	}
}

func (s *Server) write(resp response) error {
	b, err := json.Marshal(resp)
	if err != nil {
		return err
	}
	b = append(b, '\n')
	_, err = s.out.Write(b)
	return err
}

// decodeOptions round-trips a request's loosely-typed JSON `options`
// object through SolverConfig's own json tags, rather than hand-mapping
// each §6.3 field by name.
func decodeOptions(opts map[string]interface{}) config.SolverConfig {
	sc := config.DefaultSolverConfig()
	if len(opts) == 0 {
		return sc
	}
	b, err := json.Marshal(opts)
	if err != nil {
		return sc
	}
	// Unmarshal over the existing defaults so a request's partial options
	// object doesn't zero out fields it never mentioned.
	if err := json.Unmarshal(b, &sc); err != nil {
		return config.DefaultSolverConfig()
	}
	return sc.ApplyStrictDefaults(nil)
}
