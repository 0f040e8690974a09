// Package sanitizer normalizes user supplied input before validation and storage.
//
// All normalization functions are idempotent - applying them multiple times produces
// the same result. Functions never fail: input that cannot be normalized is returned
// trimmed so the validator can reject it with a precise message.
//
// Normalization includes:
//   - Phone numbers: Convert to E.164 format (+[country][number])
//   - Emails: Trim and lowercase
//   - Names and single line text: Collapse whitespace, trim leading/trailing spaces
//   - Free text: Trim every line, collapse blank line runs
//   - Amenities: Match case-insensitively to the canonical catalog spelling
//   - URLs: Enforce HTTPS, lowercase hosts, drop utm_ tracking parameters
//   - Slices: Remove duplicates and empty values after normalization
package sanitizer
