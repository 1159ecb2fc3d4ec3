package booking

import (
	"fmt"

	"food-delivery/internal/entities"
)

// TransitionPolicy определяет, какие целевые статусы допустимы для AdvanceStatus.
type TransitionPolicy string

const (
	// PolicyStrict разрешает только непосредственно следующий статус.
	PolicyStrict TransitionPolicy = "strict"
	// PolicyMembership разрешает любой статус из started/reached/collected/delivered,
	// в том числе возврат назад. Повтор текущего статуса отклоняется, хотя
	// веб-версия приложения принимала его и дописывала лишнюю запись в журнал.
	PolicyMembership TransitionPolicy = "membership"
)

func ParsePolicy(s string) (TransitionPolicy, error) {
	switch p := TransitionPolicy(s); p {
	case PolicyStrict, PolicyMembership:
		return p, nil
	}
	return "", fmt.Errorf("unknown transition policy %q", s)
}

func (p TransitionPolicy) allows(current, target entities.BookingStatus) bool {
	if !target.IsAdvanceTarget() || current == target {
		return false
	}
	switch p {
	case PolicyMembership:
		return true
	default:
		next, ok := current.Next()
		return ok && next == target
	}
}
