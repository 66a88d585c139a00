package checkin

// RawRecord is a single logged check-in as read from the source table.
// DateTime is kept verbatim, e.g. "4/17/2023 2:30:00 PM".
type RawRecord struct {
	DateTime string `json:"date_time"`
}
