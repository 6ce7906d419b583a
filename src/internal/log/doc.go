// Package log provides leveled console logging for holectl.
//
// Messages are prefixed with a colored level tag: [DBG], [INF], [WRN] or [ERR].
// Debug messages are only printed in verbose mode. Errors always go to stderr;
// other levels go to stdout unless SetForceStdErr is enabled, which the
// generate-dnsmasq command does when it renders the configuration to stdout.
//
// # Example Usage
//
//	log.SetVerbose(true)
//	log.Debugf("loaded %d settings", n)
//	log.Infof("whitelist updated")
//	log.Errorf("gravity reload failed: %v", err)
//
// Tests can capture output with SetOutput:
//
//	var buf bytes.Buffer
//	restore := log.SetOutput(&buf, &buf)
//	defer restore()
//
// All functions are safe for concurrent use.
package log
