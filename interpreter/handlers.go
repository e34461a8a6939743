package interpreter

import (
	"strconv"

	"i4.energy/across/apollo/cli"
)

// Every handler parses and validates all of its arguments before touching
// device state. An empty remainder after the required arguments selects the
// getter form.

func (i *Interpreter) led(args string) (string, error) {
	state, _, err := cli.ReadBool(args)
	if err != nil {
		return "", err
	}
	i.outputs.Write(i.ledPin, state)
	return cli.ReplyOK, nil
}

func (i *Interpreter) valve(args string) (string, error) {
	index, n, err := cli.ReadInteger(args)
	if err != nil {
		return "", err
	}
	if index < 0 || index > MaxValve {
		return "", ErrInvalidValve
	}
	args = args[n:]

	if args == "" {
		return i.formatBool(i.valves.Valve(index)), nil
	}

	state, _, err := cli.ReadBool(args)
	if err != nil {
		return "", err
	}
	i.valves.SetValve(index, state)
	return cli.ReplyOK, nil
}

func (i *Interpreter) concentrator(args string) (string, error) {
	run, _, err := cli.ReadBool(args)
	if err != nil {
		return "", err
	}
	if run {
		i.logger.Info("Starting concentrator cycle")
		i.engine.Start()
	} else {
		i.logger.Info("Stopping concentrator cycle")
		i.engine.Stop()
	}
	return cli.ReplyOK, nil
}

func (i *Interpreter) cycleDuration(args string) (string, error) {
	cycle, n, err := i.readCycle(args)
	if err != nil {
		return "", err
	}
	args = args[n:]

	if args == "" {
		return i.formatInt(i.settings.CycleDuration(cycle)), nil
	}

	ms, _, err := cli.ReadInteger(args)
	if err != nil {
		return "", err
	}
	i.settings.SetCycleDuration(cycle, ms)
	return cli.ReplyOK, nil
}

func (i *Interpreter) cycleValves(args string) (string, error) {
	cycle, n, err := i.readCycle(args)
	if err != nil {
		return "", err
	}
	args = args[n:]

	if args == "" {
		return i.formatHex(i.settings.CycleValves(cycle)), nil
	}

	state, _, err := cli.ReadInteger(args)
	if err != nil {
		return "", err
	}
	i.settings.SetCycleValves(cycle, uint8(state))
	return cli.ReplyOK, nil
}

func (i *Interpreter) cycleValveMask(args string) (string, error) {
	if args == "" {
		return i.formatHex(i.settings.CycleValveMask()), nil
	}

	mask, _, err := cli.ReadInteger(args)
	if err != nil {
		return "", err
	}
	i.settings.SetCycleValveMask(uint8(mask))
	return cli.ReplyOK, nil
}

func (i *Interpreter) save(string) (string, error) {
	// A failed save is not reported to the operator, only logged.
	if err := i.settings.Save(); err != nil {
		i.logger.Error("Failed to save configuration", "error", err)
	}
	return cli.ReplyOK, nil
}

func (i *Interpreter) localIP(string) (string, error) {
	addr := i.network.LocalIP().Unmap()
	if !addr.Is4() {
		return "0.0.0.0", nil
	}
	a := addr.As4()
	b := i.buf[:0]
	for k, octet := range a {
		if k > 0 {
			b = append(b, '.')
		}
		b = strconv.AppendUint(b, uint64(octet), 10)
	}
	return string(b), nil
}

func (i *Interpreter) hardwareID(string) (string, error) {
	return i.network.HardwareID(), nil
}

func (i *Interpreter) currentTime(string) (string, error) {
	return string(i.now().AppendFormat(i.buf[:0], TimeLayout)), nil
}

func (i *Interpreter) restart(string) (string, error) {
	i.logger.Info("Restart requested")
	i.restarter.Restart()
	return cli.ReplyOK, nil
}

func (i *Interpreter) help(string) (string, error) {
	return cli.HelpText, nil
}

// readCycle parses a cycle index and checks it against the live cycle count.
func (i *Interpreter) readCycle(args string) (cycle int, n int, err error) {
	cycle, n, err = cli.ReadInteger(args)
	if err != nil {
		return 0, 0, err
	}
	if cycle < 0 || cycle > i.settings.CycleCount() {
		return 0, 0, ErrInvalidCycle
	}
	return cycle, n, nil
}

func (i *Interpreter) formatBool(v bool) string {
	if v {
		return "1"
	}
	return "0"
}

func (i *Interpreter) formatInt(v int) string {
	return string(strconv.AppendInt(i.buf[:0], int64(v), 10))
}

// formatHex renders a mask as 0x followed by two lowercase hex digits.
func (i *Interpreter) formatHex(v uint8) string {
	b := append(i.buf[:0], '0', 'x')
	if v < 0x10 {
		b = append(b, '0')
	}
	return string(strconv.AppendUint(b, uint64(v), 16))
}
