package constants

const (
	// Version of the bootimage tool
	Version = "0.2.0"

	// WarningColor used in warning texts
	WarningColor = "\033[1;33m%s\033[0m"
	// ErrorColor used in error texts
	ErrorColor = "\033[1;31m%s\033[0m"
)
