// Package bambu provides a status client for Bambu Lab printers on the LAN.
//
// # Overview
//
// Bambu printers run an MQTT broker on port 8883 behind TLS with a
// self-signed certificate. A client logs in as "bblp" with the printer's
// access code, publishes commands to device/<serial>/request and receives
// state on device/<serial>/report.
//
// # Architecture
//
//   - client.go: Client, StatusFetcher and the one-shot request/report exchange
//   - transport.go: paho MQTT adapter behind the Session interface
//   - types.go: wire types and the Status value handed to the app
//   - status.go: summary text and kind used by the display
//
// # Client Usage
//
//	client, err := bambu.NewClient("192.168.1.20", "01S00C123456789", "12345678")
//	if err != nil {
//		return err
//	}
//	status, err := client.FetchStatus(ctx)
//	if err != nil {
//		log.Printf("printer unreachable: %v", err)
//	}
//	fmt.Println(status.Summary())
//
// # Request Handling
//
// Every FetchStatus call:
//   - Opens a fresh session with a random "bambubar-<uuid>" client id
//   - Subscribes to the report topic
//   - Publishes {"pushing":{"sequence_id":"0","command":"pushall"}}
//   - Returns the first message carrying a "print" object
//   - Closes the session
//
// Command echoes and other non-status messages are ignored. Messages that
// are not JSON are logged and ignored.
//
// # Error Handling
//
//   - ErrNotConfigured: a blank address, serial or access code
//   - "connect <addr>: ...": TLS or MQTT login failure, refused connection
//   - ErrNoReport: connected but no report before the timeout (10s default)
//
// All errors are wrapped with fmt.Errorf so errors.Is works on sentinels.
//
// # Testing Considerations
//
// WithDialer swaps the transport for an in-memory Session, which is how the
// package's own tests drive the exchange without a broker.
package bambu
