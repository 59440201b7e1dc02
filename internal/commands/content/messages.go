// Package contentcmd exposes catalog maintenance operations as commands so
// CLIs and schedulers share the same validation and logging path.
package contentcmd

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const lintDirectoryMessageType = "site.content.lint_directory"

// LintDirectoryCommand checks every content document under Directory for
// front matter problems. Directory is resolved relative to the content root;
// an empty string lints the whole tree.
type LintDirectoryCommand struct {
	// Directory selects a subtree of the content root to lint.
	Directory string `json:"directory"`
	// Pattern overrides the loader's file pattern for this run.
	Pattern string `json:"pattern,omitempty"`
}

// Type implements command.Message.
func (LintDirectoryCommand) Type() string { return lintDirectoryMessageType }

// Validate rejects path escapes before handlers execute.
func (cmd LintDirectoryCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.Directory, validation.By(func(value any) error {
			dir := strings.TrimSpace(value.(string))
			if strings.Contains(dir, "..") {
				return validation.NewError("site.content.lint_directory.directory_invalid", "directory must stay inside the content root")
			}
			return nil
		})),
	)
}
