package usecase

import (
	"fmt"
	"strconv"

	"oficina_os/internal/domain/entities"
)

// The order id allocator is stateless: the next sequential number is derived
// entirely from the collection currently known to this process. There is no
// independent counter, so two clients working from stale collections can
// compute the same id; the upsert-by-id persistence makes the later save win
// silently. That is the accepted tradeoff of the offline-tolerant design.

// NumericOrderID extracts the numeric sequence from an order id by stripping
// every non-digit character. Empty or unparseable results count as 0.
func NumericOrderID(id string) int {
	var digits []byte
	for i := 0; i < len(id); i++ {
		if id[i] >= '0' && id[i] <= '9' {
			digits = append(digits, id[i])
		}
	}
	n, err := strconv.Atoi(string(digits))
	if err != nil {
		return 0
	}
	return n
}

// FormatOrderID renders a sequence number as OS-NNNN. Numbers past 9999 simply
// widen the field.
func FormatOrderID(n int) string {
	return fmt.Sprintf("OS-%04d", n)
}

// NextOrderID returns the id for the next order: one past the highest numeric
// sequence present in the known collection, OS-0001 for an empty one.
func NextOrderID(orders []entities.ServiceOrder) string {
	maxSeen := 0
	for _, o := range orders {
		if n := NumericOrderID(o.ID); n > maxSeen {
			maxSeen = n
		}
	}
	return FormatOrderID(maxSeen + 1)
}
