// Package timezone provides time utilities for the application.
//
// Usage Examples:
//
//  1. Current time and day in the app timezone:
//     now := timezone.Now()
//     today := timezone.Today()
//
//  2. Calendar dates, as stored and exchanged for todos:
//     d, err := timezone.ParseDate("2020-01-01")
//     d.String() // "2020-01-01"
//
// Date serializes to JSON as "YYYY-MM-DD" (null when zero) and implements
// sql.Scanner and driver.Valuer for DATE columns.
//
// The timezone is configured via the APP_TIMEZONE environment variable
// and is automatically initialized when the package is imported.
// Use standard IANA timezone database names for reliable cross-platform compatibility.
package timezone
