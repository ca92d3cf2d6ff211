// guide.go implements the "ffind guide" command.
//
// Guides are embedded in the binary. A terminal gets glamour rendering;
// a pipe or redirect gets raw markdown.

package core

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/jpl-au/ffind/cmd"
	"github.com/jpl-au/ffind/guide"
	"github.com/jpl-au/ffind/internal/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func newGuideCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "guide [topic]",
		Short: "Show the ffind usage guide",
		Long: `Outputs the ffind guide for humans and LLMs.

  ffind guide          # overview
  ffind guide grep     # content search in detail
  ffind guide config   # config keys and locations`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			name := ""
			if len(args) > 0 {
				name = args[0]
			}

			content, err := guide.Get(name)
			log.Event("core:guide", "read").Detail("topic", name).Write(err)
			if err != nil {
				available, listErr := guide.List()
				if listErr != nil {
					return listErr
				}
				return cmd.PrintJSONError(fmt.Errorf("guide %q not found. Available: %s", name, strings.Join(available, ", ")))
			}

			if cmd.JSON() {
				return cmd.PrintJSON(map[string]string{"topic": name, "content": content})
			}

			if term.IsTerminal(int(os.Stdout.Fd())) {
				rendered, err := glamour.Render(content, "dark")
				if err == nil {
					fmt.Fprint(cmd.Out(), rendered)
					return nil
				}
			}

			fmt.Fprint(cmd.Out(), content)
			return nil
		},
	}
}
