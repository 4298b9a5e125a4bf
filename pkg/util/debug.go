package util

import (
	"os"
	"strings"
)

var (
	isDebug *bool
)

func IsDebug() bool {
	if isDebug == nil {
		outlierDebug := os.Getenv("OUTLIER_DEBUG")
		d := outlierDebug == "1" || strings.EqualFold(outlierDebug, "true")
		isDebug = &d
	}

	return *isDebug
}
