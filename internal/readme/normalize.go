package readme

import "strings"

var contentKeywords = []string{"project", "repository", "application"}

// Normalize strips code-fence artifacts from generated text and drops any
// leading prose before the first line that looks like README content.
//
// Fence handling removes fixed-width tokens: 11 characters for a
// "```markdown" opener, 3 for a bare fence, 3 for a trailing fence. It does
// not parse fence syntax, so an opener with a different language tag keeps
// its tag after the backticks are removed. This is the compatibility target;
// do not generalize it without treating the change as a behavior change.
//
// The leading-prose scan is best effort: it can discard legitimate content
// when the model front-loads prose containing none of the trigger keywords.
func Normalize(raw string) string {
	content := strings.TrimSpace(raw)

	if strings.HasPrefix(content, "```markdown") {
		content = content[11:]
	} else if strings.HasPrefix(content, "```") {
		content = content[3:]
	}
	if strings.HasSuffix(content, "```") {
		content = content[:len(content)-3]
	}

	lines := strings.Split(content, "\n")
	start := 0
	for i, line := range lines {
		if isContentStart(line) {
			start = i
			break
		}
	}

	return strings.TrimSpace(strings.Join(lines[start:], "\n"))
}

func isContentStart(line string) bool {
	if strings.HasPrefix(line, "#") {
		return true
	}
	if strings.HasPrefix(strings.ToUpper(strings.TrimSpace(line)), "README") {
		return true
	}
	lower := strings.ToLower(line)
	for _, keyword := range contentKeywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return false
}
