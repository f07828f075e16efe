/* utils.go
 * Contains helpers for the command line entry point
 * Authors: Zachary Bower
 */

package main

import (
	"fmt"
	"strings"
)

// convertStrToBool parses the string-valued mode flags (-serve, -bot, -test).
// Preconditions: Receives a string containing either true or false (case insensitive,
// surrounding whitespace tolerated)
// Postconditions: Returns the boolean value, or an error for anything else
func convertStrToBool(str string) (bool, error) {
	str = strings.TrimSpace(str)
	str = strings.ToLower(str)

	if str == "true" {
		return true, nil
	} else if str == "false" {
		return false, nil
	}
	return false, fmt.Errorf("invalid boolean string")
}
