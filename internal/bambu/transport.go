package bambu

import (
	"context"
	"crypto/tls"
	"net"
	"strconv"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
)

const (
	keepAlive       = 60 * time.Second
	disconnectQuiet = 250 // milliseconds
	protocolMQTT311 = 4
)

// DialMQTT connects to the printer's broker over TLS. Printers present a
// self-signed certificate, so verification is disabled.
func DialMQTT(ctx context.Context, ep Endpoint) (Session, error) {
	opts := mqtt.NewClientOptions().
		AddBroker("ssl://" + net.JoinHostPort(ep.Address, strconv.Itoa(ep.Port))).
		SetClientID(ep.ClientID).
		SetUsername(ep.Username).
		SetPassword(ep.Password).
		SetProtocolVersion(protocolMQTT311).
		SetTLSConfig(&tls.Config{InsecureSkipVerify: true}). //nolint:gosec // printer certs are self-signed
		SetCleanSession(true).
		SetAutoReconnect(false).
		SetConnectRetry(false).
		SetKeepAlive(keepAlive).
		SetOrderMatters(false)
	if deadline, ok := ctx.Deadline(); ok {
		if remaining := time.Until(deadline); remaining > 0 {
			opts.SetConnectTimeout(remaining)
		}
	}

	client := mqtt.NewClient(opts)
	token := client.Connect()
	if err := waitToken(ctx, token); err != nil {
		abandonConnect(client, token)
		return nil, err
	}
	return &mqttSession{client: client}, nil
}

type disconnecter interface {
	Disconnect(quiesce uint)
}

// abandonConnect tears down a connect that ctx gave up on. The handshake may
// still finish afterwards, so the client is disconnected again once the
// token settles.
func abandonConnect(client disconnecter, token mqtt.Token) {
	client.Disconnect(0)
	go func() {
		<-token.Done()
		client.Disconnect(0)
	}()
}

type mqttSession struct {
	client mqtt.Client
}

func (s *mqttSession) Subscribe(ctx context.Context, topic string, handler func(payload []byte)) error {
	token := s.client.Subscribe(topic, 0, func(_ mqtt.Client, msg mqtt.Message) {
		handler(msg.Payload())
	})
	return waitToken(ctx, token)
}

func (s *mqttSession) Publish(ctx context.Context, topic string, payload []byte) error {
	return waitToken(ctx, s.client.Publish(topic, 0, false, payload))
}

func (s *mqttSession) Close() {
	s.client.Disconnect(disconnectQuiet)
}

func waitToken(ctx context.Context, token mqtt.Token) error {
	select {
	case <-token.Done():
		return token.Error()
	case <-ctx.Done():
		return ctx.Err()
	}
}
