// Package log provides simple leveled logging for keen-lpm.
//
// Messages are printf-style and prefixed with a colored level tag:
// DEBUG (only in verbose mode), INFO, WARN and ERROR. Errors always go to
// stderr; the other levels go to stdout unless SetForceStdErr is enabled,
// which the CLI does so that lookup results stay machine readable.
//
// # Example Usage
//
//	log.Infof("Loaded %d routes from %s", n, path)
//	log.Warnf("Could not parse route, skipping: %s", line)
//
//	log.SetVerbose(true)
//	log.Debugf("Lookup %s -> %s", addr, pfx)
//
// Tests capture output with SetOutput:
//
//	var out, errOut bytes.Buffer
//	log.SetOutput(&out, &errOut)
//	defer log.SetOutput(nil, nil)
//
// The package uses global state guarded by a mutex and is safe for
// concurrent use.
package log
