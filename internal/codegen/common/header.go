package common

import "fmt"

// GeneratedHeader returns the marker line placed at the top of generated
// files, using the target language's line comment prefix.
// The line matches the convention recognized by linters and editors:
// "// Code generated by rosmsgc 1.2.3. DO NOT EDIT."
func GeneratedHeader(commentPrefix, version string) string {
	return fmt.Sprintf("%s Code generated by rosmsgc %s. DO NOT EDIT.\n", commentPrefix, version)
}
