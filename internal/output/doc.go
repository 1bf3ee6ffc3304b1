// Package output renders search results in text or JSON.
//
// The text format is meant for terminals and groups large numbers with
// thousands separators. The JSON format is the [triangle.Result] record as-is.
package output
