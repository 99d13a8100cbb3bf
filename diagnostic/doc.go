// Package diagnostic collects validation errors and transform warnings.
//
// Key capabilities:
//   - Coded errors with the dotted path they were found at
//   - Suggested keys for unexpected data keys
//   - A single aggregated error for strict validation
package diagnostic
