package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newReverseCommand() *cobra.Command {
	var dir, reason, by string

	cmd := &cobra.Command{
		Use:   "reverse <reference>",
		Short: "Reverse a recorded transaction with an offsetting entry pair",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(dir)
			if err != nil {
				return err
			}

			reference := args[0]
			reversalRef, err := a.recorder.Reverse(reference, reason)
			if err != nil {
				return err
			}

			a.finish(by, "reverse_transaction", reference, "Reversed by "+reversalRef)
			fmt.Printf("Reversed %s with %s\n", reference, reversalRef)
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "project directory")
	cmd.Flags().StringVar(&reason, "reason", "", "why the transaction is being reversed")
	cmd.Flags().StringVar(&by, "by", "", "who reversed the transaction")

	return cmd
}
