// Package config loads bambubar's runtime options from
// ~/.config/bambubar/config.toml.
//
// The printer record itself (address, serial, access code) is owned by the
// settings package, since the app rewrites it. Config only holds the knobs
// around polling and logging, and where that record lives:
//
//	poll_seconds = 60        # never below 5
//	timeout_seconds = 10     # per report
//	log_level = "info"
//	log_file = "~/.local/state/bambubar/bambubar.log"
//	printer_file = "~/.config/bambubar/printer.toml"
//
// Every key is optional and a missing file is not an error; Load returns
// Default() in both cases. A file that exists but cannot be read or parsed
// is reported to the caller. Command-line flags are layered on afterwards
// with Config.ApplyOverrides.
//
// ExpandPath is shared by the packages that keep files under the user's
// home directory.
package config
