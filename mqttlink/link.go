// Package mqttlink serves the command interpreter over MQTT. Command lines
// arrive on <topic>/command and every reply is published on <topic>/reply.
package mqttlink

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/google/uuid"
	"i4.energy/across/apollo/cli"
)

const (
	// DefaultTopic is the topic prefix used when Config.Topic is empty.
	DefaultTopic = "apollo"

	commandSuffix = "/command"
	replySuffix   = "/reply"

	disconnectQuiesce = 500 // milliseconds
	publishTimeout    = 5 * time.Second
)

var (
	// ErrNoBroker is returned by New without a broker URL.
	ErrNoBroker = errors.New("no MQTT broker configured")
	// ErrNoExecutor is returned by New without an Executor.
	ErrNoExecutor = errors.New("no executor configured")
)

// Executor runs one command line and returns its reply.
type Executor interface {
	Execute(line string) string
}

type Config struct {
	// Broker is the broker URL, for example tcp://localhost:1883.
	Broker   string
	ClientID string
	Topic    string
	Username string
	Password string
	// LineCapacity bounds a command line. Defaults to cli.DefaultLineCapacity.
	LineCapacity int
	Executor     Executor
	Logger       *slog.Logger
}

func (c *Config) validate() error {
	if c.Broker == "" {
		return ErrNoBroker
	}
	if c.Executor == nil {
		return ErrNoExecutor
	}
	return nil
}

func (c *Config) setDefaults() {
	if c.ClientID == "" {
		c.ClientID = "apollo-" + uuid.NewString()
	}
	c.Topic = strings.TrimSuffix(c.Topic, "/")
	if c.Topic == "" {
		c.Topic = DefaultTopic
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
}

// client is the part of mqtt.Client the link uses.
type client interface {
	Connect() mqtt.Token
	Disconnect(quiesce uint)
	Publish(topic string, qos byte, retained bool, payload interface{}) mqtt.Token
}

// subscriber is the part of mqtt.Client used when a connection is made.
type subscriber interface {
	Subscribe(topic string, qos byte, callback mqtt.MessageHandler) mqtt.Token
}

// Link connects one Executor to an MQTT broker.
type Link struct {
	client   client
	executor Executor
	capacity int
	logger   *slog.Logger

	commandTopic string
	replyTopic   string

	// mu serializes commands; the executor handles one line at a time.
	mu sync.Mutex
}

// New creates a Link. It does not connect until Start is called.
func New(config Config) (*Link, error) {
	if err := config.validate(); err != nil {
		return nil, err
	}
	config.setDefaults()

	l := &Link{
		executor:     config.Executor,
		capacity:     config.LineCapacity,
		logger:       config.Logger,
		commandTopic: config.Topic + commandSuffix,
		replyTopic:   config.Topic + replySuffix,
	}

	opts := mqtt.NewClientOptions()
	opts.AddBroker(config.Broker)
	opts.SetClientID(config.ClientID)
	if config.Username != "" {
		opts.SetUsername(config.Username)
		opts.SetPassword(config.Password)
	}
	opts.SetOrderMatters(true)
	opts.SetAutoReconnect(true)
	opts.SetConnectionLostHandler(func(_ mqtt.Client, err error) {
		l.logger.Warn("MQTT connection lost", "error", err)
	})
	opts.SetOnConnectHandler(func(c mqtt.Client) {
		l.subscribe(c)
	})

	l.client = mqtt.NewClient(opts)
	return l, nil
}

// CommandTopic returns the topic the link listens on.
func (l *Link) CommandTopic() string {
	return l.commandTopic
}

// ReplyTopic returns the topic replies are published on.
func (l *Link) ReplyTopic() string {
	return l.replyTopic
}

// Start connects to the broker and disconnects once ctx is done. Only the
// first connection attempt is reported; later losses reconnect on their own.
func (l *Link) Start(ctx context.Context) error {
	l.logger.Info("Connecting to MQTT broker", "topic", l.commandTopic)

	token := l.client.Connect()
	select {
	case <-token.Done():
		if err := token.Error(); err != nil {
			return fmt.Errorf("mqtt connect: %w", err)
		}
	case <-ctx.Done():
		l.client.Disconnect(disconnectQuiesce)
		return ctx.Err()
	}

	go func() {
		<-ctx.Done()
		l.client.Disconnect(disconnectQuiesce)
		l.logger.Info("Disconnected from MQTT broker")
	}()
	return nil
}

func (l *Link) subscribe(c subscriber) {
	l.logger.Info("MQTT connected, subscribing", "topic", l.commandTopic)
	if token := c.Subscribe(l.commandTopic, 1, l.handle); token.Wait() && token.Error() != nil {
		l.logger.Error("MQTT subscribe failed", "topic", l.commandTopic, "error", token.Error())
	}
}

func (l *Link) handle(_ mqtt.Client, m mqtt.Message) {
	reply := l.Execute(string(m.Payload()))

	// Handlers must not block the client, so the acknowledgement is
	// awaited elsewhere.
	token := l.client.Publish(l.replyTopic, 1, false, reply)
	go l.awaitPublish(token)
}

func (l *Link) awaitPublish(token mqtt.Token) {
	if !token.WaitTimeout(publishTimeout) {
		l.logger.Warn("MQTT reply not acknowledged", "topic", l.replyTopic)
		return
	}
	if err := token.Error(); err != nil {
		l.logger.Error("MQTT publish failed", "topic", l.replyTopic, "error", err)
	}
}

// Execute runs one payload as a command line, framed as on the serial
// console: the first non-empty line counts and an oversized one is rejected.
// Calls are serialized.
func (l *Link) Execute(payload string) string {
	line, err := cli.NormalizeLine(payload, l.capacity)
	if err != nil {
		return err.Error()
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	return l.executor.Execute(line)
}
