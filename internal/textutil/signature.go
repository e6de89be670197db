package textutil

import (
	"regexp"
	"strings"
)

// methodSignature matches a line that is only a method declaration header,
// e.g. `public void run() {`
var methodSignature = regexp.MustCompile(`^(public|protected|private|static|\s) +[\w<>\[\]]+\s+(\w+) *\([^)]*\) *(\{?|[^;])$`)

// DefaultSignatureAnnotations are stripped from the start of a line before it
// is matched against the method signature pattern
var DefaultSignatureAnnotations = []string{"@Nullable", "@Override"}

// PrepareLine trims a source line for signature matching: leading annotations
// are removed, and so is any `throws` clause
func PrepareLine(line string, annotations []string) string {
	line = strings.TrimSpace(line)
	for _, annotation := range annotations {
		if strings.HasPrefix(line, annotation) {
			line = strings.TrimSpace(line[len(annotation):])
		}
	}
	if ind := strings.Index(line, "throws "); ind >= 0 {
		line = line[:ind]
	}
	return line
}

// IsMethodSignature reports whether a prepared line is a method declaration header
func IsMethodSignature(line string) bool {
	return methodSignature.MatchString(line)
}
