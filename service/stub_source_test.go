package services

import (
	"context"

	"checkin-forecast/models/checkin"
)

// stubSource serves fixed records, or err when set.
type stubSource struct {
	records []checkin.RawRecord
	err     error
	calls   int
}

func (s *stubSource) LoadCheckIns(_ context.Context) ([]checkin.RawRecord, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.records, nil
}

func (s *stubSource) Name() string { return "stub" }

func rawRecords(values ...string) []checkin.RawRecord {
	out := make([]checkin.RawRecord, len(values))
	for i, v := range values {
		out[i] = checkin.RawRecord{DateTime: v}
	}
	return out
}
