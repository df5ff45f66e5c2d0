// Package timezone keeps every date the front desk writes in one location.
//
// Usage:
//
//	now := timezone.Now()                                   // current time in the hotel's timezone
//	stamp := timezone.Today()                               // "2025-01-01", for RegDate/JoinDate/BillDate
//	in, err := timezone.Parse(constant.StayDateFormat, "01-01-2025")
//
// The location comes from APP_TIMEZONE and is loaded when the package is imported.
// Use IANA names such as "UTC" or "Asia/Kolkata".
package timezone
