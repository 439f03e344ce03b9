package timestamps

import (
	"fmt"
	"time"
)

// FormatHHMMSS formats d as hh:mm:ss, truncating fractional seconds.
// Hours are not wrapped at 24 and may exceed two digits.
func FormatHHMMSS(d time.Duration) string {
	sign := ""
	if d < 0 {
		sign = "-"
		d = -d
	}
	secs := int64(d / time.Second)
	return fmt.Sprintf("%s%02d:%02d:%02d", sign, secs/3600, secs%3600/60, secs%60)
}
