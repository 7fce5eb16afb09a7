package utils

import "strconv"

// IsScalar reports whether the input string parses as a single floating
// point value, for validating parameter-file entries that may hold either a
// number or a filename.
func IsScalar(input string) bool {
	_, err := strconv.ParseFloat(input, 64)
	return err == nil
}
