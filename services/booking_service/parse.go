package booking_service

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sagarikadotcom/canaan-pet-resort/models/booking_models"
	"github.com/sagarikadotcom/canaan-pet-resort/utils"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

// ParseDate accepts a calendar date (taken as UTC midnight) or an RFC 3339 instant.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if t, err := time.ParseInLocation(dateLayout, s, time.UTC); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t.UTC(), true
	}
	return time.Time{}, false
}

// ParseTimeOfDay accepts a wall-clock "HH:mm" string.
func ParseTimeOfDay(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if len(s) != len(timeLayout) {
		return "", false
	}
	if _, err := time.Parse(timeLayout, s); err != nil {
		return "", false
	}
	return s, true
}

func parseID(s, msg string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(s))
	if err != nil {
		return uuid.Nil, utils.ValidationError(msg)
	}
	return id, nil
}

// parseServices validates each value and drops repeats; order is irrelevant.
func parseServices(values []string) ([]booking_models.Service, error) {
	seen := make(map[booking_models.Service]bool, len(values))
	services := make([]booking_models.Service, 0, len(values))
	for _, v := range values {
		s := booking_models.Service(strings.TrimSpace(v))
		if !s.IsValid() {
			return nil, utils.ValidationError("Invalid service value")
		}
		if !seen[s] {
			seen[s] = true
			services = append(services, s)
		}
	}
	return services, nil
}

func optionalDate(s *string, msg string) (*time.Time, error) {
	if s == nil {
		return nil, nil
	}
	t, ok := ParseDate(*s)
	if !ok {
		return nil, utils.ValidationError(msg)
	}
	return &t, nil
}

func optionalTime(s *string, msg string) (*string, error) {
	if s == nil {
		return nil, nil
	}
	v, ok := ParseTimeOfDay(*s)
	if !ok {
		return nil, utils.ValidationError(msg)
	}
	return &v, nil
}
