// Package server connects the tool dispatcher to host transports: the
// official MCP SDK over stdio, Content-Length framed JSON-RPC, and HTTP.
package server

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/mwiater/mealdb/internal/logging"
	"github.com/mwiater/mealdb/mcp/tools"
)

const protocolVersion = "2024-11-05"

// Info identifies the server to MCP hosts.
type Info struct {
	Name    string
	Version string
}

// --- Protocol data types ---

type jsonrpcRequest struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      any             `json:"id,omitempty"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
}

type jsonrpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type jsonrpcResponse struct {
	JSONRPC string        `json:"jsonrpc"`
	ID      any           `json:"id,omitempty"`
	Result  any           `json:"result,omitempty"`
	Error   *jsonrpcError `json:"error,omitempty"`
}

// --- Framing Helpers ---

func writeMessage(w *bufio.Writer, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Content-Length: %d\r\n\r\n", len(data)); err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return err
	}
	return w.Flush()
}

func readMessage(r *bufio.Reader) (*jsonrpcRequest, error) {
	headers := map[string]string{}
	for {
		line, err := r.ReadString('\n')
		if err != nil {
			return nil, err
		}
		s := strings.TrimRight(line, "\r\n")
		if s == "" {
			if len(headers) == 0 {
				// Tolerate blank lines between frames.
				continue
			}
			break
		}
		if i := strings.IndexByte(s, ':'); i >= 0 {
			key := strings.ToLower(strings.TrimSpace(s[:i]))
			headers[key] = strings.TrimSpace(s[i+1:])
		}
	}
	clStr, ok := headers["content-length"]
	if !ok {
		return nil, fmt.Errorf("missing Content-Length")
	}
	var length int
	if _, err := fmt.Sscanf(clStr, "%d", &length); err != nil || length < 0 {
		return nil, fmt.Errorf("invalid Content-Length: %q", clStr)
	}
	body := make([]byte, length)
	if _, err := io.ReadFull(r, body); err != nil {
		return nil, err
	}
	var req jsonrpcRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return nil, err
	}
	return &req, nil
}

// --- RPC Helpers ---

func makeResult(id any, result any) jsonrpcResponse {
	return jsonrpcResponse{JSONRPC: "2.0", ID: id, Result: result}
}

func makeError(id any, code int, msg string) jsonrpcResponse {
	return jsonrpcResponse{JSONRPC: "2.0", ID: id, Error: &jsonrpcError{Code: code, Message: msg}}
}

// FramedServer speaks JSON-RPC 2.0 with Content-Length framing.
type FramedServer struct {
	dispatcher *tools.Dispatcher
	info       Info
}

// NewFramedServer wraps a dispatcher for framed stdio hosts.
func NewFramedServer(d *tools.Dispatcher, info Info) *FramedServer {
	return &FramedServer{dispatcher: d, info: info}
}

func (s *FramedServer) handleRequest(ctx context.Context, req *jsonrpcRequest) (jsonrpcResponse, bool) {
	// Notifications carry no id and get no response.
	notification := req.ID == nil

	switch req.Method {
	case "initialize":
		result := map[string]any{
			"protocolVersion": protocolVersion,
			"serverInfo":      map[string]any{"name": s.info.Name, "version": s.info.Version},
			"capabilities":    map[string]any{"tools": map[string]any{}},
		}
		return makeResult(req.ID, result), true

	case "ping":
		return makeResult(req.ID, map[string]any{}), true

	case "tools/list":
		return makeResult(req.ID, map[string]any{"tools": s.dispatcher.ListTools()}), true

	case "tools/call":
		var p tools.CallRequest
		if len(req.Params) > 0 {
			if err := json.Unmarshal(req.Params, &p); err != nil {
				return makeError(req.ID, -32602, "Invalid params"), true
			}
		}
		if p.Arguments == nil {
			p.Arguments = map[string]any{}
		}
		return makeResult(req.ID, s.dispatcher.Call(ctx, p)), true
	}

	if notification {
		return jsonrpcResponse{}, false
	}
	return makeError(req.ID, -32601, fmt.Sprintf("Method not found: %s", req.Method)), true
}

// Serve reads frames from in until EOF or ctx is done, answering each
// request on out. It returns nil on a clean EOF.
func (s *FramedServer) Serve(ctx context.Context, in io.Reader, out io.Writer) error {
	r := bufio.NewReader(in)
	w := bufio.NewWriter(out)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		req, err := readMessage(r)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			// The stream cannot be resynchronized after a bad frame.
			_ = writeMessage(w, jsonrpcResponse{JSONRPC: "2.0", Error: &jsonrpcError{Code: -32700, Message: err.Error()}})
			return fmt.Errorf("read frame: %w", err)
		}
		resp, ok := s.handleRequest(ctx, req)
		if !ok {
			logging.LogDebug("framed: ignoring notification %s", req.Method)
			continue
		}
		if err := writeMessage(w, resp); err != nil {
			return fmt.Errorf("write frame: %w", err)
		}
	}
}
