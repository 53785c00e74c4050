package presenter_test

import (
	"testing"
	"time"

	"github.com/Lutefd/curconv/internal/presenter"
	"github.com/stretchr/testify/assert"
)

func TestTimeAgo(t *testing.T) {
	tests := []struct {
		d        time.Duration
		expected string
	}{
		{-5 * time.Minute, "только что"},
		{0, "только что"},
		{59 * time.Second, "только что"},
		{time.Minute, "1 минуту назад"},
		{2 * time.Minute, "2 минуты назад"},
		{4*time.Minute + 59*time.Second, "4 минуты назад"},
		{5 * time.Minute, "5 минут назад"},
		{30 * time.Minute, "30 минут назад"},
		{59 * time.Minute, "59 минут назад"},
		{time.Hour, "1 час назад"},
		{time.Hour + 45*time.Minute, "1 час назад"},
		{2 * time.Hour, "2 часа назад"},
		{4 * time.Hour, "4 часа назад"},
		{5 * time.Hour, "5 часов назад"},
		{24 * time.Hour, "24 часов назад"},
		{24*time.Hour + 59*time.Minute, "24 часов назад"},
		{25 * time.Hour, "1 день назад"},
		{47 * time.Hour, "1 день назад"},
		{48 * time.Hour, "2 дня назад"},
		{4 * 24 * time.Hour, "4 дня назад"},
		{5 * 24 * time.Hour, "5 дней назад"},
		{30 * 24 * time.Hour, "30 дней назад"},
	}

	for _, tt := range tests {
		t.Run(tt.d.String(), func(t *testing.T) {
			assert.Equal(t, tt.expected, presenter.TimeAgo(tt.d))
		})
	}
}
