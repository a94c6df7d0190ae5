package ai

import (
	"fmt"

	"github.com/linara-sh/linara/internal/domain"
)

// promptTemplate keeps the instruction short so responses fit the low token
// budget. Few-shot examples cover file and folder operations (quoting names
// that contain spaces) plus editor and IDE requests; unconvertible input maps
// to the sentinel.
const promptTemplate = `Convert natural language to a Linux command. Respond ONLY with the command, no explanation.

Rules:
- Gibberish/nonsense -> %[1]s
- Questions without context -> %[1]s
- Valid requests -> command only
- For filenames with spaces, use quotes: "file name" or 'file name'

Examples:
list files -> ls
create folder test -> mkdir test
remove file -> rm file
delete folder -> rm -r folder
remove my folder -> rm -r "my folder"
delete test file -> rm "test file"
delete old folder -> rm -r "old folder"
open folder in editor -> cursor .
open current folder in vscode -> code .
open this folder in file manager -> xdg-open .

Input: %[2]s
Command:`

// buildPrompt renders the single-user-turn prompt for one input.
func buildPrompt(naturalInput string) string {
	return fmt.Sprintf(promptTemplate, domain.SentinelNoCommand, naturalInput)
}
