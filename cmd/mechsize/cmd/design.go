package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var designShowEval bool

var designCmd = &cobra.Command{
	Use:   "design",
	Short: "Manage saved drive designs",
	Long:  "Saves design documents in the local design store and recalls them by ID or name.",
}

var designSaveCmd = &cobra.Command{
	Use:   "save <design.yaml>",
	Short: "Validate and save a design, replacing one with the same name",
	Args:  cobra.ExactArgs(1),
	RunE:  runDesignSave,
}

var designListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved designs",
	Args:  cobra.NoArgs,
	RunE:  runDesignList,
}

var designShowCmd = &cobra.Command{
	Use:   "show <id|name>",
	Short: "Print a saved design",
	Args:  cobra.ExactArgs(1),
	RunE:  runDesignShow,
}

var designRmCmd = &cobra.Command{
	Use:     "rm <id|name>",
	Aliases: []string{"remove"},
	Short:   "Delete a saved design",
	Args:    cobra.ExactArgs(1),
	RunE:    runDesignRm,
}

func init() {
	designShowCmd.Flags().BoolVar(&designShowEval, "eval", false, "evaluate the design instead of printing its source")

	designCmd.AddCommand(designSaveCmd)
	designCmd.AddCommand(designListCmd)
	designCmd.AddCommand(designShowCmd)
	designCmd.AddCommand(designRmCmd)
}

func runDesignSave(cmd *cobra.Command, args []string) error {
	rec, err := application.SaveDesign(args[0])
	if err != nil {
		return storeError(err)
	}
	out := cmd.OutOrStdout()
	if wantJSON() {
		return writeJSON(out, map[string]string{"id": rec.ID, "name": rec.Name})
	}
	fmt.Fprintf(out, "%s✓%s saved %s%s%s (%s)\n",
		paint(colorGreen), paint(colorReset), paint(colorCyan), rec.Name, paint(colorReset), rec.ID)
	return nil
}

func runDesignList(cmd *cobra.Command, args []string) error {
	store, err := application.Store()
	if err != nil {
		return storeError(err)
	}
	recs, err := store.ListDesigns()
	if err != nil {
		return fmt.Errorf("list designs: %w", err)
	}

	out := cmd.OutOrStdout()
	if wantJSON() {
		type entry struct {
			ID      string `json:"id"`
			Name    string `json:"name"`
			SavedAt string `json:"saved_at"`
		}
		list := make([]entry, 0, len(recs))
		for _, r := range recs {
			list = append(list, entry{r.ID, r.Name, r.SavedAt.Format(time.RFC3339)})
		}
		return writeJSON(out, list)
	}
	fmt.Fprint(out, formatDesigns(recs))
	return nil
}

func runDesignShow(cmd *cobra.Command, args []string) error {
	if designShowEval {
		_, r, err := application.EvaluateStored(args[0])
		if err != nil {
			return storeError(err)
		}
		return printReport(cmd, r)
	}

	store, err := application.Store()
	if err != nil {
		return storeError(err)
	}
	rec, err := store.LoadDesign(args[0])
	if err != nil {
		return fmt.Errorf("load design %q: %w", args[0], err)
	}
	out := cmd.OutOrStdout()
	if wantJSON() {
		return writeJSON(out, map[string]string{
			"id":       rec.ID,
			"name":     rec.Name,
			"saved_at": rec.SavedAt.Format(time.RFC3339),
			"source":   string(rec.Source),
		})
	}
	fmt.Fprintf(out, "%s# %s (%s)%s\n", paint(colorGray), rec.ID, rec.SavedAt.Local().Format(time.DateTime), paint(colorReset))
	out.Write(rec.Source)
	return nil
}

func runDesignRm(cmd *cobra.Command, args []string) error {
	store, err := application.Store()
	if err != nil {
		return storeError(err)
	}
	if err := store.DeleteDesign(args[0]); err != nil {
		return fmt.Errorf("delete design %q: %w", args[0], err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "removed %s\n", args[0])
	return nil
}
