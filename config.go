package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
)

// Config holds the application configuration
type Config struct {
	// BindAddress is the address the HTTP command endpoint listens on (e.g. "0.0.0.0:8080").
	// An empty address disables HTTP.
	BindAddress string
	// SerialPort is the path to the console serial port (e.g. "/dev/ttyUSB0").
	// An empty path disables the serial console.
	SerialPort string
	// BaudRate is the baud rate of the serial console (e.g. 115200)
	BaudRate int
	// LogLevel sets the logging level (e.g. "debug", "info", "warn", "error")
	LogLevel string
	// SettingsFile is the YAML file persisting the concentrator cycle settings
	SettingsFile string
	// LineCapacity bounds a command line received on the serial console
	LineCapacity int
	// GPIOChip is the GPIO character device driving the LED and valves
	GPIOChip string
	// LEDPin is the GPIO line offset of the status LED
	LEDPin int
	// ValvePins lists the GPIO line offset of each valve, valve 0 first
	ValvePins []int
	// Simulate keeps all outputs in memory instead of driving GPIOs
	Simulate bool
	// HardwareID overrides the identifier reported by the mac command
	HardwareID string
	// Interactive serves a line-editing console on the controlling terminal
	Interactive bool
	// MDNS advertises the HTTP endpoint via multicast DNS
	MDNS bool
	// MQTTBroker is the broker URL (e.g. "tcp://localhost:1883"). Empty disables MQTT.
	MQTTBroker string
	// MQTTClientID defaults to a random apollo-<uuid> identifier
	MQTTClientID string
	// MQTTTopic is the topic prefix for <topic>/command and <topic>/reply
	MQTTTopic string
	// MQTTUsername and MQTTPassword authenticate against the broker
	MQTTUsername string
	MQTTPassword string
}

// ConfigOption is a function that modifies a Config
type ConfigOption func(*Config) error

// LoadConfig creates a new config by applying the given options in order
func LoadConfig(opts ...ConfigOption) (*Config, error) {
	config := &Config{}

	for _, opt := range opts {
		if err := opt(config); err != nil {
			return nil, err
		}
	}

	return config, nil
}

// WithDefaults applies default configuration values
func WithDefaults() ConfigOption {
	return func(c *Config) error {
		c.BindAddress = "0.0.0.0:8080"
		c.SerialPort = "/dev/ttyUSB0"
		c.BaudRate = 115200
		c.LogLevel = "info"
		c.SettingsFile = "/var/lib/apollo/settings.yaml"
		c.LineCapacity = 128
		c.GPIOChip = "gpiochip0"
		c.LEDPin = 2
		c.ValvePins = []int{13, 14, 15, 16, 17, 18, 19, 21, 22}
		c.MQTTTopic = "apollo"
		return nil
	}
}

// WithEnv loads configuration from environment variables
func WithEnv() ConfigOption {
	return func(c *Config) error {
		if addr, ok := os.LookupEnv("BIND_ADDRESS"); ok {
			c.BindAddress = addr
		}

		if serial, ok := os.LookupEnv("SERIAL_PORT"); ok {
			c.SerialPort = serial
		}

		if baud := os.Getenv("BAUD_RATE"); baud != "" {
			if b, err := strconv.Atoi(baud); err == nil {
				c.BaudRate = b
			}
		}

		if level := os.Getenv("LOG_LEVEL"); level != "" {
			c.LogLevel = level
		}

		if file := os.Getenv("SETTINGS_FILE"); file != "" {
			c.SettingsFile = file
		}

		if capacity := os.Getenv("LINE_CAPACITY"); capacity != "" {
			if n, err := strconv.Atoi(capacity); err == nil {
				c.LineCapacity = n
			}
		}

		if chip := os.Getenv("GPIO_CHIP"); chip != "" {
			c.GPIOChip = chip
		}

		if pin := os.Getenv("LED_PIN"); pin != "" {
			if p, err := strconv.Atoi(pin); err == nil {
				c.LEDPin = p
			}
		}

		if pins := os.Getenv("VALVE_PINS"); pins != "" {
			p, err := parsePins(pins)
			if err != nil {
				return fmt.Errorf("VALVE_PINS: %w", err)
			}
			c.ValvePins = p
		}

		if simulate := os.Getenv("SIMULATE"); simulate != "" {
			if b, err := strconv.ParseBool(simulate); err == nil {
				c.Simulate = b
			}
		}

		if id := os.Getenv("HARDWARE_ID"); id != "" {
			c.HardwareID = id
		}

		if interactive := os.Getenv("INTERACTIVE"); interactive != "" {
			if b, err := strconv.ParseBool(interactive); err == nil {
				c.Interactive = b
			}
		}

		if mdns := os.Getenv("MDNS"); mdns != "" {
			if b, err := strconv.ParseBool(mdns); err == nil {
				c.MDNS = b
			}
		}

		if broker := os.Getenv("MQTT_BROKER"); broker != "" {
			c.MQTTBroker = broker
		}

		if clientID := os.Getenv("MQTT_CLIENT_ID"); clientID != "" {
			c.MQTTClientID = clientID
		}

		if topic := os.Getenv("MQTT_TOPIC"); topic != "" {
			c.MQTTTopic = topic
		}

		if user := os.Getenv("MQTT_USERNAME"); user != "" {
			c.MQTTUsername = user
		}

		if pass := os.Getenv("MQTT_PASSWORD"); pass != "" {
			c.MQTTPassword = pass
		}

		return nil
	}
}

// WithFlags loads configuration from command-line flags
func WithFlags(fSet *flag.FlagSet) ConfigOption {
	return func(c *Config) error {
		var err error
		fSet.Visit(func(f *flag.Flag) {
			switch f.Name {
			case "bind-address":
				c.BindAddress = f.Value.String()
			case "serial-port":
				c.SerialPort = f.Value.String()
			case "baud-rate":
				if b, err := strconv.Atoi(f.Value.String()); err == nil {
					c.BaudRate = b
				}
			case "log-level":
				c.LogLevel = f.Value.String()
			case "settings-file":
				c.SettingsFile = f.Value.String()
			case "line-capacity":
				if n, err := strconv.Atoi(f.Value.String()); err == nil {
					c.LineCapacity = n
				}
			case "gpio-chip":
				c.GPIOChip = f.Value.String()
			case "led-pin":
				if p, err := strconv.Atoi(f.Value.String()); err == nil {
					c.LEDPin = p
				}
			case "valve-pins":
				p, perr := parsePins(f.Value.String())
				if perr != nil {
					err = fmt.Errorf("-valve-pins: %w", perr)
					return
				}
				c.ValvePins = p
			case "simulate":
				c.Simulate = f.Value.String() == "true"
			case "hardware-id":
				c.HardwareID = f.Value.String()
			case "interactive":
				c.Interactive = f.Value.String() == "true"
			case "mdns":
				c.MDNS = f.Value.String() == "true"
			case "mqtt-broker":
				c.MQTTBroker = f.Value.String()
			case "mqtt-client-id":
				c.MQTTClientID = f.Value.String()
			case "mqtt-topic":
				c.MQTTTopic = f.Value.String()
			case "mqtt-username":
				c.MQTTUsername = f.Value.String()
			case "mqtt-password":
				c.MQTTPassword = f.Value.String()
			}
		})
		return err
	}
}

// parsePins parses a comma separated list of GPIO numbers.
func parsePins(s string) ([]int, error) {
	fields := strings.Split(s, ",")
	pins := make([]int, 0, len(fields))
	for _, field := range fields {
		p, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil {
			return nil, fmt.Errorf("invalid pin %q", field)
		}
		pins = append(pins, p)
	}
	return pins, nil
}

// slogLevel maps the configured log level name to a slog level.
func (c *Config) slogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
