// Package file provides file-based implementations of driven port interfaces.
// These adapters persist data to the local filesystem.
//
// Adapters:
//   - ConfigStore: TOML-based settings storage under ~/.aufbau
//   - Watcher: change notifications for the settings file
package file
