// Package validate checks executable-likeness: whether a candidate string's
// first token resolves to a recognized builtin or a runnable program. It says
// nothing about whether running the command would succeed.
package validate

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/linara-sh/linara/internal/ports"
)

// defaultBuiltins are accepted without a PATH lookup: shell builtins and
// launchers that commonly live outside PATH.
var defaultBuiltins = []string{"cd", "cursor", "code", "xdg-open"}

// PathValidator implements ports.CommandValidator against the local
// filesystem. It holds no mutable state and is safe for concurrent use.
type PathValidator struct {
	builtins map[string]struct{}
}

// NewPathValidator builds a validator with the given builtin allowlist,
// falling back to the defaults when empty.
func NewPathValidator(builtins []string) *PathValidator {
	if len(builtins) == 0 {
		builtins = defaultBuiltins
	}
	set := make(map[string]struct{}, len(builtins))
	for _, name := range builtins {
		set[name] = struct{}{}
	}
	return &PathValidator{builtins: set}
}

// LooksValid implements ports.CommandValidator.
func (v *PathValidator) LooksValid(candidate string) (bool, string) {
	cleaned := StripFences(candidate)
	if cleaned == "" {
		return false, "empty command"
	}

	fields := strings.Fields(cleaned)
	if len(fields) == 0 {
		return false, "empty command"
	}
	first := fields[0]

	if _, ok := v.builtins[first]; ok {
		return true, ""
	}

	if strings.HasPrefix(first, "-") {
		return false, fmt.Sprintf("leading token %q looks like a flag, not a program", first)
	}

	if strings.ContainsRune(first, '/') || strings.ContainsRune(first, os.PathSeparator) {
		if isExecutableFile(first) {
			return true, ""
		}
		return false, fmt.Sprintf("%s is not an executable file", first)
	}

	for _, dir := range filepath.SplitList(os.Getenv("PATH")) {
		if dir == "" {
			continue
		}
		if isExecutableFile(filepath.Join(dir, first)) {
			return true, ""
		}
	}
	return false, fmt.Sprintf("no executable named %q found in PATH", first)
}

// StripFences removes surrounding markdown code-fence markers that inference
// models sometimes wrap commands in.
func StripFences(candidate string) string {
	cleaned := strings.TrimSpace(candidate)
	cleaned = strings.TrimPrefix(cleaned, "```bash")
	cleaned = strings.TrimPrefix(cleaned, "```sh")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	return strings.TrimSpace(cleaned)
}

// isExecutableFile reports whether path is a regular file with an executable
// permission bit. Platforms without a permission-bit model only require a
// regular file.
func isExecutableFile(path string) bool {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return false
	}
	if runtime.GOOS == "windows" {
		return true
	}
	return info.Mode().Perm()&0o111 != 0
}

var _ ports.CommandValidator = (*PathValidator)(nil)
