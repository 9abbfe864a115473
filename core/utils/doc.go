// Package utils provides small conversion helpers for the loosely typed JSON
// payloads returned by the upstream listing services.
package utils
