package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tmori/gutcheck/internal/model"
)

func init() {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the stored advice entry for a date",
		Run:   runShow,
	}
	addDateFlag(cmd)
	RootCmd.AddCommand(cmd)
}

func runShow(cmd *cobra.Command, args []string) {
	date := resolveDate(cmd)

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	entry, err := s.GetAdvice(cmd.Context(), date)
	if err != nil {
		exitErr("show", err)
	}
	if entry == nil {
		exitErr("show", fmt.Errorf("no advice entry for %s", date.Format(model.DateKey)))
	}

	b, _ := json.MarshalIndent(entry, "", "  ")
	fmt.Println(string(b))
}
