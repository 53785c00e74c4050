package presenter

import (
	"fmt"
	"time"
)

// TimeAgo renders d as a Russian relative phrase. Plural forms follow the
// 1 / 2-4 / 5+ split for minutes, hours and days.
func TimeAgo(d time.Duration) string {
	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60

	switch {
	case hours > 24:
		return ago(hours/24, "день", "дня", "дней")
	case hours > 0:
		return ago(hours, "час", "часа", "часов")
	case minutes > 0:
		return ago(minutes, "минуту", "минуты", "минут")
	default:
		return "только что"
	}
}

func ago(n int, one, few, many string) string {
	return fmt.Sprintf("%d %s назад", n, plural(n, one, few, many))
}

func plural(n int, one, few, many string) string {
	switch {
	case n == 1:
		return one
	case n < 5:
		return few
	default:
		return many
	}
}
