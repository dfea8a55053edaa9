// Package paths resolves the directories and files slotcheck reads and writes.
//
// It wraps github.com/adrg/xdg for XDG Base Directory compliance. The
// configuration directory is <ConfigHome>/slotcheck unless overridden with
// the SLOTCHECK_CONFIG_DIR environment variable:
//
//	| OS      | Default config file                                  |
//	|---------|------------------------------------------------------|
//	| Linux   | ~/.config/slotcheck/config.yaml                      |
//	| macOS   | ~/Library/Application Support/slotcheck/config.yaml  |
//	| Windows | %LOCALAPPDATA%\slotcheck\config.yaml                 |
package paths
