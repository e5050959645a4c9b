// Package testutil provides utilities for testing picomenu components.
//
// Key components:
//   - MockDevice: scripted device.Device that records every flushed packet
//   - Isolate: points the config and state directories at temporary ones
//   - CreateFile / ReadFile: file fixtures that fail the test on error
//
// All test data should be defined inline, and each test should leave no
// files behind outside its temporary directories.
package testutil
