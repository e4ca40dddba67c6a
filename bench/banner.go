// SPDX-License-Identifier: MIT

package bench

import (
	"fmt"
	"io"
	"time"
)

// Console banners. The literals are part of the program's output contract
// and must not change.
const (
	BannerStart = "プログラムの開始！"
	BannerDone  = "プログラムが終了しました！"

	elapsedFormat = "処理に要した時間は、%.6f 秒でした。"
)

// FormatElapsed renders the final banner line for the given seconds.
func FormatElapsed(seconds float64) string {
	return fmt.Sprintf(elapsedFormat, seconds)
}

// elapsedSeconds converts d to seconds, clamping negative durations to zero.
func elapsedSeconds(d time.Duration) float64 {
	if d < 0 {
		return 0
	}

	return d.Seconds()
}

func writeStartBanner(w io.Writer) error {
	if _, err := fmt.Fprintln(w, BannerStart); err != nil {
		return fmt.Errorf("bench: write start banner: %w", err)
	}

	return nil
}

func writeDoneBanner(w io.Writer, seconds float64) error {
	if _, err := fmt.Fprintf(w, "%s\n%s\n", BannerDone, FormatElapsed(seconds)); err != nil {
		return fmt.Errorf("bench: write completion banner: %w", err)
	}

	return nil
}
