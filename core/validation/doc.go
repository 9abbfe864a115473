// Package validation configures request validation for the HTTP features.
package validation
