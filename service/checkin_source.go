package services

import (
	"bytes"
	"context"
	"fmt"
	"sort"
	"strings"

	"checkin-forecast/api"
	"checkin-forecast/config"
	"checkin-forecast/dao/redis"
	"checkin-forecast/metrics"
	"checkin-forecast/models/checkin"
	"checkin-forecast/util"
)

// CheckInSource loads the raw check-in table in one bulk read.
type CheckInSource interface {
	LoadCheckIns(ctx context.Context) ([]checkin.RawRecord, error)
	Name() string
}

// FileCheckInSource reads a CSV table from disk or over HTTP.
type FileCheckInSource struct {
	path       string
	column     string
	httpClient *api.HTTPClient
}

// NewFileCheckInSource reads from path, which may be an http(s) URL.
func NewFileCheckInSource(path, column string) *FileCheckInSource {
	s := &FileCheckInSource{path: path, column: column}
	if config.IsRemote(path) {
		s.httpClient = api.NewHTTPClient(path)
	}
	return s
}

func (s *FileCheckInSource) Name() string {
	return config.SOURCE_FILE
}

func (s *FileCheckInSource) LoadCheckIns(ctx context.Context) ([]checkin.RawRecord, error) {
	var (
		records []checkin.RawRecord
		err     error
	)
	if s.httpClient != nil {
		var body []byte
		body, err = s.httpClient.Download(ctx, "")
		if err != nil {
			return nil, &util.InputError{Source: s.path, Reason: "failed to download table", Err: err}
		}
		records, err = util.ReadCheckIns(bytes.NewReader(body), s.path, s.column)
	} else {
		records, err = util.ReadCheckInsFromCSV(s.path, s.column)
	}
	if err != nil {
		return nil, err
	}
	metrics.RecordCheckInsLoaded(s.Name(), len(records))
	return records, nil
}

// RedisCheckInSource reads the check-ins previously imported for a facility.
type RedisCheckInSource struct {
	dao      *redis.RedisCheckInDAO
	facility string
}

func NewRedisCheckInSource(dao *redis.RedisCheckInDAO, facility string) *RedisCheckInSource {
	return &RedisCheckInSource{dao: dao, facility: facility}
}

func (s *RedisCheckInSource) Name() string {
	return config.SOURCE_REDIS
}

func (s *RedisCheckInSource) LoadCheckIns(_ context.Context) ([]checkin.RawRecord, error) {
	records, err := s.dao.ListCheckIns(s.facility)
	if err != nil {
		return nil, &util.InputError{Source: "redis:" + s.facility, Reason: "failed to read check-ins", Err: err}
	}
	if len(records) == 0 {
		reason := "no check-ins stored, run the import mode first"
		if facilities, err := s.dao.ListFacilities(); err == nil && len(facilities) > 0 {
			sort.Strings(facilities)
			reason += fmt.Sprintf(" (stored facilities: %s)", strings.Join(facilities, ", "))
		}
		return nil, &util.InputError{Source: "redis:" + s.facility, Reason: reason}
	}
	metrics.RecordCheckInsLoaded(s.Name(), len(records))
	return records, nil
}
