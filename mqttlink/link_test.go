package mqttlink

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeToken struct {
	err  error
	done chan struct{}
}

func doneToken(err error) *fakeToken {
	t := &fakeToken{err: err, done: make(chan struct{})}
	close(t.done)
	return t
}

func (t *fakeToken) Wait() bool                     { <-t.done; return true }
func (t *fakeToken) WaitTimeout(d time.Duration) bool {
	select {
	case <-t.done:
		return true
	case <-time.After(d):
		return false
	}
}
func (t *fakeToken) Done() <-chan struct{}          { return t.done }
func (t *fakeToken) Error() error                   { return t.err }

type fakeMessage struct {
	topic   string
	payload []byte
}

func (m fakeMessage) Duplicate() bool   { return false }
func (m fakeMessage) Qos() byte         { return 1 }
func (m fakeMessage) Retained() bool    { return false }
func (m fakeMessage) Topic() string     { return m.topic }
func (m fakeMessage) MessageID() uint16 { return 1 }
func (m fakeMessage) Payload() []byte   { return m.payload }
func (m fakeMessage) Ack()              {}

type published struct {
	topic   string
	payload string
}

type fakeClient struct {
	mu           sync.Mutex
	connectToken mqtt.Token
	publishToken mqtt.Token
	published    []published
	subscribed   []string
	disconnected chan struct{}
}

func newFakeClient(connectErr error) *fakeClient {
	return &fakeClient{
		connectToken: doneToken(connectErr),
		disconnected: make(chan struct{}, 1),
	}
}

func (c *fakeClient) Connect() mqtt.Token { return c.connectToken }

func (c *fakeClient) Disconnect(uint) { c.disconnected <- struct{}{} }

func (c *fakeClient) Publish(topic string, _ byte, _ bool, payload interface{}) mqtt.Token {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.published = append(c.published, published{topic: topic, payload: payload.(string)})
	if c.publishToken != nil {
		return c.publishToken
	}
	return doneToken(nil)
}

func (c *fakeClient) Subscribe(topic string, _ byte, _ mqtt.MessageHandler) mqtt.Token {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.subscribed = append(c.subscribed, topic)
	return doneToken(nil)
}

type executorFunc func(string) string

func (f executorFunc) Execute(line string) string { return f(line) }

var upper = executorFunc(strings.ToUpper)

func newTestLink(t *testing.T, config Config, c *fakeClient) *Link {
	t.Helper()
	l, err := New(config)
	require.NoError(t, err)
	l.client = c
	return l
}

func TestNew(t *testing.T) {
	tests := []struct {
		name     string
		config   Config
		expected error
	}{
		{name: "No broker", config: Config{Executor: upper}, expected: ErrNoBroker},
		{name: "No executor", config: Config{Broker: "tcp://localhost:1883"}, expected: ErrNoExecutor},
		{name: "Complete", config: Config{Broker: "tcp://localhost:1883", Executor: upper}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := New(tt.config)
			if tt.expected != nil {
				assert.ErrorIs(t, err, tt.expected)
				assert.Nil(t, l)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, l.client)
		})
	}
}

func TestConfigDefaults(t *testing.T) {
	c := Config{Topic: "site/apollo/"}
	c.setDefaults()

	assert.Equal(t, "site/apollo", c.Topic)
	assert.True(t, strings.HasPrefix(c.ClientID, "apollo-"))
	assert.Len(t, c.ClientID, len("apollo-")+36)
	assert.NotNil(t, c.Logger)

	other := Config{}
	other.setDefaults()
	assert.Equal(t, DefaultTopic, other.Topic)
	assert.NotEqual(t, c.ClientID, other.ClientID, "client ids must be unique")
}

func TestTopics(t *testing.T) {
	l := newTestLink(t, Config{Broker: "tcp://b:1883", Topic: "plant/7", Executor: upper}, newFakeClient(nil))

	assert.Equal(t, "plant/7/command", l.CommandTopic())
	assert.Equal(t, "plant/7/reply", l.ReplyTopic())
}

func TestHandlePublishesReply(t *testing.T) {
	c := newFakeClient(nil)
	var lines []string
	l := newTestLink(t, Config{
		Broker:   "tcp://b:1883",
		Executor: executorFunc(func(line string) string {
			lines = append(lines, line)
			return "OK"
		}),
	}, c)

	l.handle(nil, fakeMessage{topic: "apollo/command", payload: []byte("led on\r\n")})
	l.handle(nil, fakeMessage{topic: "apollo/command", payload: []byte("valve 1")})

	assert.Equal(t, []string{"led on", "valve 1"}, lines)
	assert.Equal(t, []published{
		{topic: "apollo/reply", payload: "OK"},
		{topic: "apollo/reply", payload: "OK"},
	}, c.published)
}

func TestHandleDoesNotWaitForAcknowledgement(t *testing.T) {
	c := newFakeClient(nil)
	pending := &fakeToken{done: make(chan struct{})}
	defer close(pending.done)
	c.publishToken = pending
	l := newTestLink(t, Config{Broker: "tcp://b:1883", Executor: upper}, c)

	handled := make(chan struct{})
	go func() {
		defer close(handled)
		for _, line := range []string{"time", "ip", "mac"} {
			l.handle(nil, fakeMessage{topic: "apollo/command", payload: []byte(line)})
		}
	}()

	select {
	case <-handled:
	case <-time.After(time.Second):
		t.Fatal("handler blocked on an unacknowledged publish")
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	assert.Equal(t, []published{
		{topic: "apollo/reply", payload: "TIME"},
		{topic: "apollo/reply", payload: "IP"},
		{topic: "apollo/reply", payload: "MAC"},
	}, c.published)
}

func TestSubscribe(t *testing.T) {
	c := newFakeClient(nil)
	l := newTestLink(t, Config{Broker: "tcp://b:1883", Executor: upper}, c)

	l.subscribe(c)
	assert.Equal(t, []string{"apollo/command"}, c.subscribed)
}

func TestStart(t *testing.T) {
	t.Run("Disconnects when context ends", func(t *testing.T) {
		c := newFakeClient(nil)
		l := newTestLink(t, Config{Broker: "tcp://b:1883", Executor: upper}, c)

		ctx, cancel := context.WithCancel(context.Background())
		require.NoError(t, l.Start(ctx))

		cancel()
		select {
		case <-c.disconnected:
		case <-time.After(time.Second):
			t.Fatal("expected Disconnect after cancellation")
		}
	})

	t.Run("Connect error", func(t *testing.T) {
		connectErr := errors.New("connection refused")
		l := newTestLink(t, Config{Broker: "tcp://b:1883", Executor: upper}, newFakeClient(connectErr))

		err := l.Start(context.Background())
		assert.ErrorIs(t, err, connectErr)
	})

	t.Run("Cancelled while connecting", func(t *testing.T) {
		c := newFakeClient(nil)
		c.connectToken = &fakeToken{done: make(chan struct{})}
		l := newTestLink(t, Config{Broker: "tcp://b:1883", Executor: upper}, c)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		assert.ErrorIs(t, l.Start(ctx), context.Canceled)
		assert.Len(t, c.disconnected, 1)
	})
}

func TestExecuteSerializes(t *testing.T) {
	var (
		active  int
		maxSeen int
		mu      sync.Mutex
	)
	l := newTestLink(t, Config{
		Broker:   "tcp://b:1883",
		Executor: executorFunc(func(line string) string {
			mu.Lock()
			active++
			if active > maxSeen {
				maxSeen = active
			}
			mu.Unlock()
			time.Sleep(time.Millisecond)
			mu.Lock()
			active--
			mu.Unlock()
			return line
		}),
	}, newFakeClient(nil))

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			l.Execute("time")
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, maxSeen)
}

func TestExecuteFramesLikeSerial(t *testing.T) {
	var executed []string
	l := newTestLink(t, Config{
		Broker:       "tcp://b:1883",
		LineCapacity: 8,
		Executor:     executorFunc(func(line string) string {
			executed = append(executed, line)
			return "OK"
		}),
	}, newFakeClient(nil))

	assert.Equal(t, "OK", l.Execute(" led on\r\n"))
	assert.Equal(t, "OK", l.Execute("\r\nsave"))
	assert.Equal(t, "command too long", l.Execute("cycle-duration 1 500"))
	assert.Equal(t, []string{" led on", "save"}, executed)
}
