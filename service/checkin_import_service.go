package services

import (
	"context"
	"fmt"

	"checkin-forecast/dao/redis"
	"checkin-forecast/logger"
	"checkin-forecast/metrics"
	"checkin-forecast/util"
)

// CheckInImportService copies a check-in table into the Redis store.
type CheckInImportService struct {
	source   CheckInSource
	dao      *redis.RedisCheckInDAO
	facility string
}

// NewCheckInImportService constructs a new CheckInImportService.
func NewCheckInImportService(source CheckInSource, dao *redis.RedisCheckInDAO, facility string) *CheckInImportService {
	return &CheckInImportService{
		source:   source,
		dao:      dao,
		facility: facility,
	}
}

// Import validates every record before storing any, so a malformed table
// leaves the store untouched. With replace set the facility's existing
// records are dropped first. It returns the number of imported records.
func (is *CheckInImportService) Import(ctx context.Context, replace bool) (int, error) {
	log := logger.Component("CheckInImportService")

	records, err := is.source.LoadCheckIns(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to load check-ins: %w", err)
	}
	if _, err := util.ParseCheckInTimestamps(records); err != nil {
		metrics.RecordCheckInRejected()
		return 0, fmt.Errorf("refusing to import: %w", err)
	}

	if replace {
		if err := is.dao.DeleteCheckIns(is.facility); err != nil {
			return 0, err
		}
	}
	if err := is.dao.AppendCheckIns(is.facility, records); err != nil {
		return 0, err
	}
	metrics.RecordCheckInsImported(len(records))

	stored, err := is.dao.CountCheckIns(is.facility)
	if err != nil {
		return 0, err
	}
	log.Info().
		Str("facility", is.facility).
		Int("records", len(records)).
		Int64("stored", stored).
		Bool("replace", replace).
		Msg("Imported check-ins")
	return len(records), nil
}
