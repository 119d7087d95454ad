// Package main provides the NumGo CLI.
package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/numgo-ml/numgo/np"
)

const version = "v0.1.0-dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "numgo",
		Short: "NumGo - a NumPy-compatible array API for Go",
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), "NumGo - NumPy-compatible arrays for Go")
			fmt.Fprintf(cmd.OutOrStdout(), "Version: %s\n\n", version)
			fmt.Fprintln(cmd.OutOrStdout(), "Run 'numgo dtypes' to list supported dtypes.")
			return nil
		},
	}

	root.AddCommand(newVersionCmd(), newDtypesCmd(), newShowCmd())
	return root
}

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <file.npy>",
		Short: "Print the shape, dtype, and contents of a .npy file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := np.Load(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), a)
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "NumGo %s\n", version)
		},
	}
}

func newDtypesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dtypes",
		Short: "List supported dtypes and their machine limits",
		Run: func(cmd *cobra.Command, _ []string) {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "DTYPE\tBITS\tMIN\tMAX\tEPS")

			for _, dt := range []np.DataType{np.Float32, np.Float64} {
				fi := np.Finfo(dt)
				fmt.Fprintf(w, "%s\t%d\t%g\t%g\t%g\n", dt, fi.Bits, fi.Min, fi.Max, fi.Eps)
			}
			for _, dt := range []np.DataType{np.Uint8, np.Int32, np.Int64} {
				ii := np.Iinfo(dt)
				fmt.Fprintf(w, "%s\t%d\t%d\t%d\t-\n", dt, ii.Bits, ii.Min, ii.Max)
			}
			fmt.Fprintln(w, "bool\t8\t-\t-\t-")

			w.Flush()
		},
	}
}
