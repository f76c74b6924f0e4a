package domain

import (
	"errors"

	"github.com/zohoustanley/barbeshop/pkg/types"
)

// Overlaps reports whether two half-open intervals [aStart, aEnd) and
// [bStart, bEnd) intersect. Back-to-back intervals do not overlap:
// an appointment ending at 10:30 never collides with one starting at 10:30.
func Overlaps(aStart, aEnd, bStart, bEnd types.TimeString) bool {
	return aStart.IsBefore(bEnd) && bStart.IsBefore(aEnd)
}

// ConflictsWith проверяет, пересекается ли кандидат [start, start+duration)
// хотя бы с одной из переданных броней.
//
// Брони с неблокирующим статусом или без времени начала пропускаются.
// Если у брони не сохранена длительность, вместо нее подставляется
// длительность кандидата: неполная запись считается занимающей слот,
// а не свободной.
func ConflictsWith(start types.TimeString, durationMinutes int, reservations []*Reservation) (bool, error) {
	end, err := start.AddMinutes(durationMinutes)
	if err != nil {
		return false, err
	}

	for _, res := range reservations {
		if res == nil || !res.IsBlocking() || res.StartTime.IsZero() {
			continue
		}

		resDuration := res.DurationMinutes
		if resDuration <= 0 {
			resDuration = durationMinutes
		}

		resEnd, err := res.StartTime.AddMinutes(resDuration)
		if err != nil {
			// Бронь упирается в конец суток: сравниваем только начало.
			if errors.Is(err, types.ErrTimeOverflow) {
				if res.StartTime.IsBefore(end) {
					return true, nil
				}
				continue
			}
			return false, err
		}

		if Overlaps(start, end, res.StartTime, resEnd) {
			return true, nil
		}
	}

	return false, nil
}
