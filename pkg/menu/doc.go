// Package menu implements a line-oriented command menu engine.
//
// A Menu reads bytes from a device.Device into a caller-supplied input buffer,
// splits complete lines into a command name and an optional argument text,
// dispatches to the registered Command and flushes whatever the command wrote
// to its output.Output back to the device:
//
//	dev := device.NewStream(os.Stdin, os.Stdout)
//	m := menu.New(dev, &state, make([]byte, 128), make([]byte, 256)).
//		WithCommand(versionCmd).
//		WithCommand(helloCmd)
//	err := m.Run(ctx)
//
// Buffers and the command table are fixed once Run starts. Malformed input,
// unknown commands, overflowing lines and failing commands are reported on
// the device as "Error: [CODE] message" lines and the loop continues; only a
// device failure, device closure or context cancellation ends Run.
//
// The line protocol is ASCII text terminated by '\n' ("\r\n" works too). The
// command name and its arguments are separated by the first run of spaces or
// tabs; there is no quoting. The built-in "help" command lists every
// registered command as "name: help" in registration order.
package menu
