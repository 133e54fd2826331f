// Package prompt assembles the generation instruction string.
package prompt

import (
	"fmt"
	"strings"

	"github.com/clintrovert/readmeforge/pkg/types"
)

// Each embedded excerpt is capped again at prompt time, independently of the
// cap applied at selection time.
const fileExcerptCap = 1000

const (
	noDescription = "No description provided"
	notSpecified  = "Not specified"
)

// Build assembles the prompt from repository metadata and the selected file
// excerpts, in their selection order. Output is deterministic for a given
// input and Build always succeeds.
func Build(meta *types.RepoMetadata, files []types.FileExcerpt) string {
	var sb strings.Builder

	sb.WriteString("Based on the following GitHub repository information, generate a comprehensive and professional README.md file:\n\n")
	sb.WriteString("**Repository Information:**\n")
	sb.WriteString("- Name: " + orDefault(meta.Name, "N/A") + "\n")
	sb.WriteString("- Description: " + orDefault(meta.Description, noDescription) + "\n")
	sb.WriteString("- Language: " + orDefault(meta.Language, notSpecified) + "\n")
	sb.WriteString(fmt.Sprintf("- Stars: %d\n", meta.Stars))
	sb.WriteString(fmt.Sprintf("- Forks: %d\n", meta.Forks))
	sb.WriteString("- License: " + orDefault(meta.License, notSpecified) + "\n\n")
	sb.WriteString("**File Contents Analysis:**\n")

	for _, f := range files {
		sb.WriteString("\n**" + f.Path + ":**\n```\n" + truncate(f.Content, fileExcerptCap) + "...\n```\n")
	}

	sb.WriteString("\nIMPORTANT: Return ONLY the raw Markdown content for the README.md file. ")
	sb.WriteString("Do not include any explanatory text, code block markers (```), or additional commentary. ")
	sb.WriteString("Start directly with the README content.\n\n")
	sb.WriteString("Generate a comprehensive README.md that includes:\n")
	sb.WriteString("1. Project title and description\n")
	sb.WriteString("2. Features (inferred from the code)\n")
	sb.WriteString("3. Installation instructions\n")
	sb.WriteString("4. Usage examples\n")
	sb.WriteString("5. Contributing guidelines\n")
	sb.WriteString("6. License information\n")
	sb.WriteString("7. Any other relevant sections\n\n")
	sb.WriteString("Output should be pure Markdown that can be directly saved as README.md file.\n")

	return sb.String()
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen]
}
