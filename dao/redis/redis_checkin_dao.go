package redis

import (
	"fmt"
	"strings"

	"checkin-forecast/db"
	"checkin-forecast/logger"
	"checkin-forecast/models/checkin"
)

// CHECKINS_KEY_FORMAT holds the raw check-in strings of one facility as a list,
// in the order they were imported.
const CHECKINS_KEY_FORMAT = "checkins_v1:%s"

// RedisCheckInDAO stores raw check-in records in Redis.
type RedisCheckInDAO struct {
	client db.RedisClient
}

// NewRedisCheckInDAO initializes a RedisCheckInDAO with the Redis client.
func NewRedisCheckInDAO(client db.RedisClient) *RedisCheckInDAO {
	return &RedisCheckInDAO{client: client}
}

func checkInsKey(facility string) string {
	return fmt.Sprintf(CHECKINS_KEY_FORMAT, strings.ToLower(strings.TrimSpace(facility)))
}

// AppendCheckIns appends records to the facility's list, preserving order.
func (dao *RedisCheckInDAO) AppendCheckIns(facility string, records []checkin.RawRecord) error {
	if len(records) == 0 {
		return nil
	}
	values := make([]string, len(records))
	for i, r := range records {
		values[i] = r.DateTime
	}
	if err := dao.client.RPush(checkInsKey(facility), values...); err != nil {
		return fmt.Errorf("[RedisCheckInDAO] failed to append check-ins for %s: %w", facility, err)
	}
	return nil
}

// ListCheckIns returns every stored record of the facility in import order.
func (dao *RedisCheckInDAO) ListCheckIns(facility string) ([]checkin.RawRecord, error) {
	log := logger.Component("RedisCheckInDAO")
	log.Debug().Str("facility", facility).Msg("Getting check-ins")

	values, err := dao.client.LRange(checkInsKey(facility), 0, -1)
	if err != nil {
		return nil, fmt.Errorf("[RedisCheckInDAO] failed to get check-ins: %w", err)
	}

	records := make([]checkin.RawRecord, len(values))
	for i, v := range values {
		records[i] = checkin.RawRecord{DateTime: v}
	}
	log.Debug().Int("records", len(records)).Msg("Finished getting check-ins")
	return records, nil
}

// CountCheckIns returns the number of stored records of the facility.
func (dao *RedisCheckInDAO) CountCheckIns(facility string) (int64, error) {
	n, err := dao.client.LLen(checkInsKey(facility))
	if err != nil {
		return 0, fmt.Errorf("[RedisCheckInDAO] failed to count check-ins: %w", err)
	}
	return n, nil
}

// DeleteCheckIns drops the facility's list.
func (dao *RedisCheckInDAO) DeleteCheckIns(facility string) error {
	key := checkInsKey(facility)
	if err := dao.client.Del(key); err != nil {
		return fmt.Errorf("failed to delete check-ins key %s: %w", key, err)
	}
	logger.Component("RedisCheckInDAO").Info().Str("facility", facility).Msg("Deleted check-ins")
	return nil
}

// ListFacilities returns the facility names that have stored check-ins.
func (dao *RedisCheckInDAO) ListFacilities() ([]string, error) {
	keys, err := dao.client.Keys(fmt.Sprintf(CHECKINS_KEY_FORMAT, "*"))
	if err != nil {
		return nil, fmt.Errorf("failed to list check-in keys: %w", err)
	}
	prefix := fmt.Sprintf(CHECKINS_KEY_FORMAT, "")
	names := make([]string, 0, len(keys))
	for _, k := range keys {
		names = append(names, strings.TrimPrefix(k, prefix))
	}
	return names, nil
}
