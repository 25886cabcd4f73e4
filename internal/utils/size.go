package utils

import (
	"fmt"
	"strconv"
)

// dataSizeUnits follows Finder, which reports sizes in powers of 1000.
var dataSizeUnits = [...]string{"b", "kb", "mb", "gb", "tb"}

const (
	dataSizeStep             = 1000
	previewedDataSizeFormat  = "%s, first %s shown"
	singleDecimalSizeCeiling = 10
	fixedPointFormat         = 'f'
)

// FormatDataSize describes a project data file of total bytes of which previewed bytes are dumped.
// The preview is only mentioned when it is shorter than the file.
func FormatDataSize(total int64, previewed int) string {
	totalText := formatFinderSize(total)
	if previewed < 0 || int64(previewed) >= total {
		return totalText
	}
	return fmt.Sprintf(previewedDataSizeFormat, totalText, formatFinderSize(int64(previewed)))
}

func formatFinderSize(size int64) string {
	if size <= 0 {
		return "0" + dataSizeUnits[0]
	}
	unitIndex := 0
	scaled := float64(size)
	for scaled >= dataSizeStep && unitIndex < len(dataSizeUnits)-1 {
		scaled /= dataSizeStep
		unitIndex++
	}
	precision := 0
	if unitIndex > 0 && scaled < singleDecimalSizeCeiling {
		precision = 1
	}
	formatted := strconv.FormatFloat(scaled, fixedPointFormat, precision, 64)
	if precision == 1 && formatted[len(formatted)-1] == '0' {
		formatted = formatted[:len(formatted)-2]
	}
	return formatted + dataSizeUnits[unitIndex]
}
