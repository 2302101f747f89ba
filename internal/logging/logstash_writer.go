package logging

import (
	"errors"
	"io"
	"net"
	"strings"
	"sync"
	"time"
)

// LogstashWriter mirrors log output to a Logstash TCP input without ever
// blocking the caller. It holds one connection and drops writes while
// Logstash is unreachable, reconnecting after a cool-down.
type LogstashWriter struct {
	addr          string
	dialTimeout   time.Duration
	writeTimeout  time.Duration
	retryInterval time.Duration

	mu        sync.Mutex
	conn      net.Conn
	nextRetry time.Time
	closed    bool
}

// WriterConfig tunes connection behavior. Zero values fall back to defaults
// (2s dial, 1s write, 5s retry cool-down).
type WriterConfig struct {
	DialTimeout   time.Duration
	WriteTimeout  time.Duration
	RetryInterval time.Duration
}

var errRetryCooldown = errors.New("logstash: retry cooldown in effect")

// NewLogstashWriter returns a writer safe for concurrent use.
func NewLogstashWriter(addr string, cfg WriterConfig) (*LogstashWriter, error) {
	if strings.TrimSpace(addr) == "" {
		return nil, errors.New("logstash: empty address")
	}

	w := &LogstashWriter{
		addr:          addr,
		dialTimeout:   cfg.DialTimeout,
		writeTimeout:  cfg.WriteTimeout,
		retryInterval: cfg.RetryInterval,
	}
	if w.dialTimeout <= 0 {
		w.dialTimeout = 2 * time.Second
	}
	if w.writeTimeout <= 0 {
		w.writeTimeout = time.Second
	}
	if w.retryInterval <= 0 {
		w.retryInterval = 5 * time.Second
	}
	return w, nil
}

// Write implements io.Writer. Delivery is best effort: while Logstash is
// down the payload is dropped and the caller still sees success.
func (w *LogstashWriter) Write(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}

	data := make([]byte, len(p))
	copy(data, p)
	if data[len(data)-1] != '\n' {
		data = append(data, '\n')
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return 0, io.ErrClosedPipe
	}

	if err := w.ensureConnLocked(); err != nil {
		return len(p), nil
	}

	_ = w.conn.SetWriteDeadline(time.Now().Add(w.writeTimeout))

	if _, err := w.conn.Write(data); err != nil {
		w.closeConnLocked()
		w.nextRetry = time.Now().Add(w.retryInterval)
		return len(p), nil
	}

	return len(p), nil
}

// Close tears down the underlying TCP connection.
func (w *LogstashWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return nil
	}

	w.closed = true
	err := w.closeConnLocked()
	return err
}

func (w *LogstashWriter) ensureConnLocked() error {
	if w.conn != nil {
		return nil
	}

	now := time.Now()
	if !w.nextRetry.IsZero() && now.Before(w.nextRetry) {
		return errRetryCooldown
	}

	conn, err := net.DialTimeout("tcp", w.addr, w.dialTimeout)
	if err != nil {
		w.nextRetry = time.Now().Add(w.retryInterval)
		return err
	}

	w.conn = conn
	w.nextRetry = time.Time{}
	return nil
}

func (w *LogstashWriter) closeConnLocked() error {
	if w.conn == nil {
		return nil
	}

	err := w.conn.Close()
	w.conn = nil
	return err
}
