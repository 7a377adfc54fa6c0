// Package utils provides small conversion helpers shared by the HTTP handlers,
// mainly for lenient parsing of query and form values.
package utils
