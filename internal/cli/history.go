package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recent score records",
		Run:   runHistory,
	}
	cmd.Flags().IntP("limit", "l", 7, "Max results")
	RootCmd.AddCommand(cmd)
}

func runHistory(cmd *cobra.Command, args []string) {
	limit, _ := cmd.Flags().GetInt("limit")

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	scores, err := s.ListScores(cmd.Context(), limit)
	if err != nil {
		exitErr("history", err)
	}

	b, _ := json.MarshalIndent(scores, "", "  ")
	fmt.Println(string(b))
}
