// Package doctor runs diagnostic checks over the slotcheck config file and
// config directory.
//
// A Runner executes each registered Check in order and tallies the results
// by Severity. Checks that can repair what they find implement Fixer.
package doctor
