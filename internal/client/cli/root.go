package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
)

// getStatus renders the prompt suffix: the logged-in user and current route.
func (a *App) getStatus() string {
	s := ""
	if st := a.store.State(); st.Authenticated {
		s = st.User.Name + " "
	}
	s = s + string(a.nav.Current())
	return fmt.Sprintf("(%s)", s)
}

// Root shows the landing view and hands control to the REPL.
func (a *App) Root(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to DevTinder (type 'help' for commands)")
	a.renderLanding()

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}
