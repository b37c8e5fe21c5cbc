package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mirakui/gj/internal/output"
)

// Shell wrappers: run gj, and cd into whatever path it prints. A
// command that prints nothing (e.g. --no-cd, list) leaves the shell
// where it is.
const zshWrapper = `# gj shell integration (zsh)
# Add to ~/.zshrc:  eval "$(gj shell-init zsh)"
gj() {
    local dir
    dir=$(command gj "$@") || return $?
    if [ -n "$dir" ] && [ -d "$dir" ]; then
        cd "$dir"
    elif [ -n "$dir" ]; then
        printf '%s\n' "$dir"
    fi
}
`

const bashWrapper = `# gj shell integration (bash)
# Add to ~/.bashrc:  eval "$(gj shell-init bash)"
gj() {
    local dir
    dir=$(command gj "$@") || return $?
    if [ -n "$dir" ] && [ -d "$dir" ]; then
        cd "$dir"
    elif [ -n "$dir" ]; then
        printf '%s\n' "$dir"
    fi
}
`

const fishWrapper = `# gj shell integration (fish)
# Add to ~/.config/fish/config.fish:  gj shell-init fish | source
function gj
    set -l dir (command gj $argv)
    set -l code $status
    if test $code -ne 0
        return $code
    end
    if test -n "$dir" -a -d "$dir"
        cd $dir
    else if test -n "$dir"
        printf '%s\n' $dir
    end
end
`

func newShellInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:       "shell-init <shell>",
		Short:     "Generate the shell wrapper function",
		GroupID:   GroupSetup,
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"zsh", "bash", "fish"},
		Long: `Print a shell function that wraps gj and cds into the path the
wrapped command prints. Without the wrapper, gj can only print target
paths; a child process cannot change its parent shell's directory.`,
		Example: `  eval "$(gj shell-init zsh)"     # in ~/.zshrc
  eval "$(gj shell-init bash)"    # in ~/.bashrc
  gj shell-init fish | source     # in config.fish`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := output.FromContext(cmd.Context())

			switch args[0] {
			case "zsh":
				out.Printf("%s", zshWrapper)
			case "bash":
				out.Printf("%s", bashWrapper)
			case "fish":
				out.Printf("%s", fishWrapper)
			default:
				return fmt.Errorf("unsupported shell %q (supported: zsh, bash, fish)", args[0])
			}
			return nil
		},
	}

	return cmd
}
