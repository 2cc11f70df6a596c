// Package timezone pins every date the service reasons about to the lodge's
// wall clock, configured through APP_TIMEZONE (an IANA name such as
// "Asia/Kolkata"; UTC when unset or unknown).
//
// Stay windows, peak-hour dates and calendar day buckets are all built here:
//
//	checkIn, checkOut, err := timezone.ParseWindow("2025-06-01", "2025-06-03")
//	day := timezone.StartOfDay(timezone.Now())
//	label := timezone.Format(booking.CheckOut, constant.DateFormat)
//
// The postgres session time zone should match, see DB_POSTGRES_*_TIMEZONE.
package timezone
