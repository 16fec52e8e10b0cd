package cmd

import (
	"fmt"
	"os"

	"github.com/go-as2js/as2js/internal/ast"
	"github.com/go-as2js/as2js/internal/position"
	"github.com/spf13/cobra"
)

var lockedNodeNoUnlock bool

// lockedNodeCheckCmd reproduces the original C++ `locked-node` test binary's
// contract (§8.3, §12): create a node, lock it, optionally unlock it, then
// destroy it. An unbalanced lock must abort the tree teardown.
var lockedNodeCheckCmd = &cobra.Command{
	Use:    "internal-locked-node-check",
	Hidden: true,
	Short:  "Create a node, lock it, then destroy it (-u skips the unlock)",
	RunE:   runLockedNodeCheck,
}

func init() {
	rootCmd.AddCommand(lockedNodeCheckCmd)
	lockedNodeCheckCmd.Flags().BoolVarP(&lockedNodeNoUnlock, "unlock-skip", "u", false,
		"create a node, lock it and then delete it which must fail; without -u, unlock first")
}

func runLockedNodeCheck(cmd *cobra.Command, args []string) error {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(*ast.LockedNodeError); ok {
				fmt.Fprintln(os.Stderr, "as2js: node lock/unlock aborted")
				os.Exit(1)
			}
			panic(r)
		}
	}()

	n := ast.New(ast.INTEGER, position.New("<locked-node-check>"))
	n.Lock()
	if !lockedNodeNoUnlock {
		n.Unlock()
	}

	// Without the unlock, this panics via ast.Destroy.
	n.Destroy()

	fmt.Println("as2js: node lock/unlock success")
	return nil
}
