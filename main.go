package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/enbility/zeroconf/v3"
	"i4.energy/across/apollo/concentrator"
	"i4.energy/across/apollo/console"
	"i4.energy/across/apollo/hardware"
	"i4.energy/across/apollo/interactive"
	"i4.energy/across/apollo/interpreter"
	"i4.energy/across/apollo/mqttlink"
	"i4.energy/across/apollo/system"
)

const mdnsService = "_apollo._tcp"

func main() {
	flag.String("serial-port", "/dev/ttyUSB0", "Serial port of the operator console (empty disables it)")
	flag.Int("baud-rate", 115200, "Baud rate of the serial console")
	flag.String("bind-address", "0.0.0.0:8080", "Bind address for the HTTP command endpoint (empty disables it)")
	flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	flag.String("settings-file", "/var/lib/apollo/settings.yaml", "YAML file persisting the cycle settings")
	flag.Int("line-capacity", 128, "Maximum length of a serial command line")
	flag.String("gpio-chip", "gpiochip0", "GPIO character device driving the outputs")
	flag.Int("led-pin", 2, "GPIO line offset of the status LED")
	flag.String("valve-pins", "13,14,15,16,17,18,19,21,22", "Comma separated GPIO line offsets of valves 0 to 8")
	flag.Bool("simulate", false, "Keep outputs in memory instead of driving GPIOs")
	flag.String("hardware-id", "", "Identifier reported by the mac command (defaults to the interface MAC)")
	flag.Bool("interactive", false, "Serve a line-editing console on the terminal")
	flag.Bool("mdns", false, "Advertise the HTTP endpoint via mDNS")
	flag.String("mqtt-broker", "", "MQTT broker URL (empty disables MQTT)")
	flag.String("mqtt-client-id", "", "MQTT client identifier (defaults to apollo-<uuid>)")
	flag.String("mqtt-topic", "apollo", "MQTT topic prefix")
	flag.String("mqtt-username", "", "MQTT user name")
	flag.String("mqtt-password", "", "MQTT password")
	flag.Parse()

	config, err := LoadConfig(WithDefaults(), WithEnv(), WithFlags(flag.CommandLine))
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: config.slogLevel()}))
	slog.SetDefault(logger)

	var pins hardware.Pins
	if config.Simulate {
		pins = hardware.NewMemoryPins()
	} else {
		chip := hardware.NewChipPins(config.GPIOChip)
		defer chip.Close()
		pins = chip
	}

	valves, err := hardware.NewValveBank(pins, config.ValvePins, logger.With("component", "valves"))
	if err != nil {
		logger.Error("Failed to set up valves", "error", err)
		os.Exit(1)
	}

	store, err := concentrator.Open(config.SettingsFile)
	if err != nil {
		logger.Error("Failed to load settings", "error", err, "file", config.SettingsFile)
		os.Exit(1)
	}

	engine := concentrator.NewEngine(store, valves, logger.With("component", "engine"))
	network := system.NewNetInfo(config.HardwareID)

	var serialConsole *console.Console
	restarter := &system.Restarter{
		Logger: logger.With("component", "restart"),
		// The new process opens the serial port and GPIO lines again.
		BeforeExec: func() {
			engine.Stop()
			if serialConsole != nil {
				serialConsole.Close()
			}
			if chip, ok := pins.(*hardware.ChipPins); ok {
				chip.Close()
			}
		},
	}
	outputs := hardware.PinOutput{Pins: pins, Logger: logger.With("component", "outputs")}

	// Every channel owns its own interpreter; they share the device.
	newInterpreter := func(channel string) *interpreter.Interpreter {
		i, err := interpreter.New(interpreter.Config{
			Outputs:   outputs,
			LEDPin:    config.LEDPin,
			Valves:    valves,
			Engine:    engine,
			Settings:  store,
			Network:   network,
			Restarter: restarter,
			Logger:    logger.With("component", "interpreter", "channel", channel),
		})
		if err != nil {
			logger.Error("Failed to create interpreter", "error", err)
			os.Exit(1)
		}
		return i
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	logger.Info("Starting concentrator controller",
		"settings", store.Path(),
		"serial", config.SerialPort,
		"http", config.BindAddress,
		"mqtt", config.MQTTBroker != "",
		"simulate", config.Simulate,
	)

	if config.SerialPort != "" {
		mode := console.DefaultMode
		mode.BaudRate = config.BaudRate

		serialConsole, err = console.New(ctx, console.Config{
			Dialer:       console.SerialDialer{PortName: config.SerialPort, Mode: &mode},
			Executor:     newInterpreter("serial"),
			LineCapacity: config.LineCapacity,
			Logger:       logger.With("component", "console"),
		})
		if err != nil {
			logger.Error("Failed to open serial console", "error", err, "port", config.SerialPort)
			os.Exit(1)
		}

		go func() {
			if err := serialConsole.Loop(ctx); err != nil && !errors.Is(err, context.Canceled) {
				logger.Error("Serial console stopped", "error", err)
			}
		}()
	}

	var httpServer *http.Server
	if config.BindAddress != "" {
		httpServer = &http.Server{
			Addr: config.BindAddress,
			Handler: &Server{
				Logger:       logger.With("component", "server"),
				Interpreter:  newInterpreter("http"),
				LineCapacity: config.LineCapacity,
			},
		}

		go func() {
			logger.Info("Starting HTTP server", "address", httpServer.Addr)
			if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				logger.Error("HTTP server failed", "error", err)
				os.Exit(1)
			}
		}()

		if config.MDNS {
			if mdns := advertise(config.BindAddress, network.HardwareID(), logger.With("component", "mdns")); mdns != nil {
				defer mdns.Shutdown()
			}
		}
	}

	if config.MQTTBroker != "" {
		link, err := mqttlink.New(mqttlink.Config{
			Broker:       config.MQTTBroker,
			ClientID:     config.MQTTClientID,
			Topic:        config.MQTTTopic,
			Username:     config.MQTTUsername,
			Password:     config.MQTTPassword,
			LineCapacity: config.LineCapacity,
			Executor:     newInterpreter("mqtt"),
			Logger:       logger.With("component", "mqtt"),
		})
		if err != nil {
			logger.Error("Failed to create MQTT link", "error", err)
			os.Exit(1)
		}
		if err := link.Start(ctx); err != nil {
			logger.Error("MQTT connect failed", "error", err)
		}
	}

	if config.Interactive {
		if !interactive.IsTerminal(os.Stdin) {
			logger.Warn("Interactive console requested but stdin is not a terminal")
		} else {
			shell, err := interactive.New(newInterpreter("interactive"), interactive.Config{
				LineCapacity: config.LineCapacity,
				Logger:       logger.With("component", "interactive"),
			})
			if err != nil {
				logger.Error("Failed to start interactive console", "error", err)
				os.Exit(1)
			}
			go shell.Run(ctx, cancel)
		}
	}

	<-ctx.Done()
	logger.Info("Received shutdown signal")

	engine.Stop()

	if serialConsole != nil {
		logger.Info("Closing serial console")
		if err := serialConsole.Close(); err != nil {
			logger.Error("Failed to close serial console", "error", err)
		}
	}

	if httpServer != nil {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		logger.Info("Closing HTTP server")
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Error("Failed to gracefully shutdown server", "error", err)
			os.Exit(1)
		}
	}
}

// advertise registers the HTTP endpoint via mDNS. It returns nil when the
// address has no usable port or registration fails.
func advertise(bindAddress, id string, logger *slog.Logger) *zeroconf.Server {
	_, portStr, err := net.SplitHostPort(bindAddress)
	if err != nil {
		logger.Warn("mDNS disabled, invalid bind address", "address", bindAddress, "error", err)
		return nil
	}
	port, err := strconv.Atoi(portStr)
	if err != nil || port == 0 {
		logger.Warn("mDNS disabled, no fixed port", "address", bindAddress)
		return nil
	}

	name := "apollo"
	if id != "" {
		name += "-" + id
	}

	server, err := zeroconf.Register(name, mdnsService, "local.", port, []string{"id=" + id, "path=/command"}, nil)
	if err != nil {
		logger.Error("mDNS register failed", "error", err)
		return nil
	}
	logger.Info("Advertised via mDNS", "name", name, "service", mdnsService, "port", port)
	return server
}
