package main

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"

	"i4.energy/across/apollo/cli"
)

// Executor runs one command line and reports the outcome. Err returns the
// error of the most recent Execute call.
type Executor interface {
	Execute(line string) string
	Err() error
}

// Server handles incoming HTTP requests carrying command lines for the
// configured interpreter instance
type Server struct {
	Logger      *slog.Logger
	Interpreter Executor
	// LineCapacity bounds a command line as on the serial console.
	// Defaults to cli.DefaultLineCapacity.
	LineCapacity int

	// mu serializes commands; the interpreter handles one line at a time.
	mu sync.Mutex
}

// CommandRequest is the body of POST /command.
type CommandRequest struct {
	Line *string `json:"line"`
}

// CommandResponse carries the interpreter reply. Error is set when the
// command was rejected, in which case Reply holds the same message.
type CommandResponse struct {
	Reply string `json:"reply"`
	Error string `json:"error,omitempty"`
}

// ServeHTTP implements the http.Handler interface for the Server struct
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /command", s.handleCommand)
	mux.ServeHTTP(w, r)
}

func (s *Server) sendError(w http.ResponseWriter, message string, statusCode int) {
	if message == "" {
		w.WriteHeader(statusCode)
		return
	}

	type ErrorResponse struct {
		Message string `json:"message"`
	}
	resp := ErrorResponse{Message: message}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(resp)
}

// handleCommand executes the command line posted in the request body
func (s *Server) handleCommand(w http.ResponseWriter, r *http.Request) {
	var req CommandRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	if req.Line == nil {
		s.sendError(w, "'line' field is required", http.StatusBadRequest)
		return
	}

	var resp CommandResponse
	line, err := cli.NormalizeLine(*req.Line, s.LineCapacity)
	if err != nil {
		resp.Reply = err.Error()
		resp.Error = err.Error()
	} else {
		s.mu.Lock()
		resp.Reply = s.Interpreter.Execute(line)
		if err := s.Interpreter.Err(); err != nil {
			resp.Error = err.Error()
		}
		s.mu.Unlock()
	}

	s.Logger.Info("Command executed", "line", *req.Line, "error", resp.Error)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(resp)
}
