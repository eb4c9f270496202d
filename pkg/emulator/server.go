package emulator

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/thelolagemann/gbcore/internal/cpu"
	"github.com/thelolagemann/gbcore/internal/types"
	"github.com/thelolagemann/gbcore/pkg/log"
)

// ErrNotPaused is returned for a step request while the emulator runs.
var ErrNotPaused = errors.New("emulator: step requires a paused emulator")

// ErrNoSaver is returned for a save request when no SaveFunc is set.
var ErrNoSaver = errors.New("emulator: saving is not configured")

// SaveFunc writes a save file and returns its path.
type SaveFunc func() (string, error)

// ServerOpt is a function that modifies a Server.
type ServerOpt func(s *Server)

// WithLogger sets the logger of the server.
func WithLogger(l log.Logger) ServerOpt {
	return func(s *Server) {
		s.log = l
	}
}

// WithSaveFunc enables CommandSave.
func WithSaveFunc(fn SaveFunc) ServerOpt {
	return func(s *Server) {
		s.save = fn
	}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Server exposes a Controller over websocket connections. Each binary
// message from a client is a CommandPacket, and is answered with a
// ResponsePacket.
type Server struct {
	ctl  Controller
	log  log.Logger
	save SaveFunc

	mu      sync.Mutex
	err     error
	clients map[*websocket.Conn]struct{}
}

// NewServer creates a server controlling ctl.
func NewServer(ctl Controller, opts ...ServerOpt) *Server {
	s := &Server{
		ctl:     ctl,
		log:     log.NewNullLogger(),
		clients: make(map[*websocket.Conn]struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ReportError records the error the engine stopped with, so that
// clients see the emulator as Errored. A nil err clears it.
func (s *Server) ReportError(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = err
}

// Status returns the status of the controlled emulator.
func (s *Server) Status() Status {
	s.mu.Lock()
	err := s.err
	s.mu.Unlock()
	return StatusOf(s.ctl, err)
}

// ServeHTTP upgrades the request to a websocket connection and serves
// commands until the client closes it.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Errorf("upgrading connection from %s: %v", r.RemoteAddr, err)
		return
	}
	s.mu.Lock()
	s.clients[conn] = struct{}{}
	s.mu.Unlock()

	l := s.log.WithFields(log.Fields{"remote": r.RemoteAddr})
	l.Infof("client connected")
	defer func() {
		s.mu.Lock()
		delete(s.clients, conn)
		s.mu.Unlock()
		conn.Close()
		l.Infof("client disconnected")
	}()

	for {
		kind, message, err := conn.ReadMessage()
		if err != nil {
			return // connection closed
		}
		if kind != websocket.BinaryMessage {
			continue
		}

		var packet CommandPacket
		if err := packet.UnmarshalBinary(message); err != nil {
			l.Debugf("dropping message: %v", err)
			continue
		}
		if packet.Command == CommandClose {
			conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
			return
		}

		response := s.handle(packet)
		if response.Error != nil {
			l.Debugf("%s: %v", packet.Command, response.Error)
		}
		b, _ := response.MarshalBinary()
		if err := conn.WriteMessage(websocket.BinaryMessage, b); err != nil {
			return
		}
	}
}

func (s *Server) handle(p CommandPacket) ResponsePacket {
	response := ResponsePacket{Command: p.Command}
	switch p.Command {
	case CommandPause:
		s.ctl.Pause()
		response.Data = []byte{byte(s.Status())}
	case CommandResume:
		s.ctl.Resume()
		response.Data = []byte{byte(s.Status())}
	case CommandStep:
		if !s.ctl.Paused() {
			response.Error = ErrNotPaused
			break
		}
		status := s.ctl.Step()
		if err := status.Err(); err != nil {
			s.ReportError(err)
		}
		response.Data = encodeRegisters(s.ctl.Snapshot())
	case CommandRegisters:
		response.Data = encodeRegisters(s.ctl.Snapshot())
	case CommandStatus:
		response.Data = []byte{byte(s.Status())}
	case CommandSave:
		if s.save == nil {
			response.Error = ErrNoSaver
			break
		}
		path, err := s.save()
		if err != nil {
			response.Error = err
			break
		}
		response.Data = []byte(path)
	default:
		response.Error = fmt.Errorf("emulator: unknown command %d", uint8(p.Command))
	}
	return response
}

// ListenAndServe serves on addr until ctx is done, then closes every
// client connection.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/", s)
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	errs := make(chan error, 1)
	go func() {
		errs <- srv.ListenAndServe()
	}()
	s.log.Infof("remote control listening on %s", addr)

	select {
	case err := <-errs:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	// hijacked websocket connections are not closed by Shutdown
	s.mu.Lock()
	for conn := range s.clients {
		conn.Close()
	}
	s.mu.Unlock()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return ctx.Err()
}

func encodeRegisters(r cpu.Registers) []byte {
	s := types.NewState()
	r.Save(s)
	return s.Bytes()
}

// DecodeRegisters decodes the data of a registers or step response.
func DecodeRegisters(data []byte) (cpu.Registers, error) {
	var r cpu.Registers
	s := types.StateFromBytes(data)
	if err := s.Validate(cpu.RegistersSize); err != nil {
		return r, fmt.Errorf("%w: %v", ErrMalformedPacket, err)
	}
	r.Load(s)
	return r, nil
}
