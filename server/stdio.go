package server

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/viant/jsonrpc"
)

// maxLineSize bounds a single inbound protocol line.
const maxLineSize = 10 * 1024 * 1024

// Stdio serves newline-delimited JSON-RPC 2.0 over an input/output stream
// pair, one line at a time. Only protocol messages are written to the output
// stream; diagnostics go to the logger.
type Stdio struct {
	handler *Handler
	input   io.Reader
	output  io.Writer
	logger  *logrus.Entry
}

// StdioOption customizes a Stdio server.
type StdioOption func(*Stdio)

// WithInput overrides the input stream, mostly for tests.
func WithInput(input io.Reader) StdioOption {
	return func(s *Stdio) {
		s.input = input
	}
}

// WithOutput overrides the output stream, mostly for tests.
func WithOutput(output io.Writer) StdioOption {
	return func(s *Stdio) {
		s.output = output
	}
}

// WithStdioLogger sets the diagnostic logger.
func WithStdioLogger(logger *logrus.Entry) StdioOption {
	return func(s *Stdio) {
		s.logger = logger
	}
}

// NewStdio creates a stdio server bound to os.Stdin/os.Stdout by default.
func NewStdio(handler *Handler, options ...StdioOption) *Stdio {
	ret := &Stdio{
		handler: handler,
		input:   os.Stdin,
		output:  os.Stdout,
		logger:  logrus.NewEntry(logrus.StandardLogger()),
	}
	for _, option := range options {
		option(ret)
	}
	return ret
}

// ListenAndServe reads one line, fully processes it, and emits its output
// before reading the next line. It returns when the input stream closes.
func (s *Stdio) ListenAndServe(ctx context.Context) error {
	scanner := bufio.NewScanner(s.input)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		s.handleLine(ctx, line)
	}
	return scanner.Err()
}

func (s *Stdio) handleLine(ctx context.Context, line []byte) {
	request := &jsonrpc.Request{}
	if err := json.Unmarshal(line, request); err != nil {
		// no request identity can be recovered, so there is nothing to
		// answer: report on the diagnostic channel only
		s.logger.WithError(err).Error("dropped malformed input line")
		return
	}
	if request.Id == nil {
		s.handler.OnNotification(ctx, &jsonrpc.Notification{
			Jsonrpc: request.Jsonrpc,
			Method:  request.Method,
			Params:  request.Params,
		})
		return
	}
	reply := s.handler.Serve(ctx, request)
	if reply == nil || reply.Response == nil {
		return
	}
	if err := s.write(reply.Response); err != nil {
		s.logger.WithError(err).Error("failed to write response")
		return
	}
	if reply.Notification == nil {
		return
	}
	if err := s.write(reply.Notification); err != nil {
		s.logger.WithError(err).Error("failed to write notification")
	}
}

func (s *Stdio) write(message interface{}) error {
	data, err := json.Marshal(message)
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = s.output.Write(data)
	return err
}
