// Package config loads the verifier's ambient configuration (logging,
// filesystem layout, text-handling defaults) from environment variables with
// the EDV prefix, optionally overlaid by a config.yaml next to the
// executable. Match-policy mode and thresholds never live here; they are
// command-line parameters of a single run.
package config
