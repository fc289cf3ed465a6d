package bambu

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
)

// StatusFetcher defines the interface for fetching printer status.
// This interface is implemented by *Client and can be used for testing.
type StatusFetcher interface {
	FetchStatus(ctx context.Context) (*Status, error)
}

// Ensure Client implements StatusFetcher at compile time.
var _ StatusFetcher = (*Client)(nil)

var (
	// ErrNotConfigured is returned when the address, serial or access code is blank.
	ErrNotConfigured = errors.New("printer not configured")
	// ErrNoReport is returned when no status report arrives before the timeout.
	ErrNoReport = errors.New("no status report received")
)

const (
	DefaultPort    = 8883
	DefaultTimeout = 10 * time.Second
	username       = "bblp"
	clientIDPrefix = "bambubar-"
)

// Endpoint is everything a Dialer needs to open a session.
type Endpoint struct {
	Address  string
	Port     int
	Username string
	Password string
	ClientID string
}

// Session is a connected MQTT session. Handlers may run on any goroutine.
type Session interface {
	Subscribe(ctx context.Context, topic string, handler func(payload []byte)) error
	Publish(ctx context.Context, topic string, payload []byte) error
	Close()
}

// DialFunc opens a Session to the printer.
type DialFunc func(ctx context.Context, ep Endpoint) (Session, error)

// Client requests status from a single printer over its LAN MQTT broker.
type Client struct {
	address    string
	serial     string
	accessCode string
	port       int
	timeout    time.Duration
	dial       DialFunc
	logger     *slog.Logger
	now        func() time.Time
}

// Option customises a Client.
type Option func(*Client)

// WithTimeout bounds how long FetchStatus waits for a report.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithDialer replaces the MQTT transport.
func WithDialer(dial DialFunc) Option {
	return func(c *Client) {
		if dial != nil {
			c.dial = dial
		}
	}
}

// WithPort overrides the broker port.
func WithPort(port int) Option {
	return func(c *Client) {
		if port > 0 {
			c.port = port
		}
	}
}

// WithLogger sets the logger used for per-message diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewClient builds a Client for the printer at address.
func NewClient(address, serial, accessCode string, opts ...Option) (*Client, error) {
	address = strings.TrimSpace(address)
	serial = strings.TrimSpace(serial)
	accessCode = strings.TrimSpace(accessCode)
	if address == "" || serial == "" || accessCode == "" {
		return nil, ErrNotConfigured
	}
	c := &Client{
		address:    address,
		serial:     serial,
		accessCode: accessCode,
		port:       DefaultPort,
		timeout:    DefaultTimeout,
		dial:       DialMQTT,
		logger:     slog.Default(),
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Address returns the configured printer address.
func (c *Client) Address() string {
	return c.address
}

// RequestTopic is where commands for this printer are published.
func (c *Client) RequestTopic() string {
	return "device/" + c.serial + "/request"
}

// ReportTopic is where this printer publishes its state.
func (c *Client) ReportTopic() string {
	return "device/" + c.serial + "/report"
}

// FetchStatus connects, asks the printer to push its full state and returns
// the first status report. The session is always closed before returning.
func (c *Client) FetchStatus(ctx context.Context) (*Status, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	session, err := c.dial(ctx, Endpoint{
		Address:  c.address,
		Port:     c.port,
		Username: username,
		Password: c.accessCode,
		ClientID: clientIDPrefix + uuid.NewString(),
	})
	if err != nil {
		return nil, fmt.Errorf("connect %s: %w", c.address, err)
	}
	defer session.Close()

	reports := make(chan PrintReport, 1)
	handler := func(payload []byte) {
		report, ok, err := DecodeReport(payload)
		if err != nil {
			c.logger.Warn("failed to decode printer message", "printer", c.address, "err", err)
			return
		}
		if !ok {
			return
		}
		select {
		case reports <- report:
		default:
		}
	}

	if err := session.Subscribe(ctx, c.ReportTopic(), handler); err != nil {
		return nil, fmt.Errorf("subscribe %s: %w", c.ReportTopic(), c.timeoutErr(ctx, err))
	}
	if err := session.Publish(ctx, c.RequestTopic(), pushAllPayload()); err != nil {
		return nil, fmt.Errorf("publish %s: %w", c.RequestTopic(), c.timeoutErr(ctx, err))
	}

	select {
	case report := <-reports:
		status := report.Status(c.now())
		return &status, nil
	case <-ctx.Done():
		return nil, c.timeoutErr(ctx, ctx.Err())
	}
}

// timeoutErr maps our own deadline to ErrNoReport so callers can tell a
// silent printer from a refused connection.
func (c *Client) timeoutErr(ctx context.Context, err error) error {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) && errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w within %s", ErrNoReport, c.timeout)
	}
	return err
}
