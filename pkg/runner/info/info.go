package info

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/writersblock/pkg/app"
	"tableflip.dev/writersblock/pkg/store"
)

type Info struct {
	Config  store.Config
	Service *app.Service
}

func (n *Info) Do(ctx context.Context) error {
	if override := os.Getenv(store.ConfigPathEnv); override != "" {
		fmt.Println(store.ConfigPathEnv+" found on env, using ", override)
	} else {
		fmt.Println(store.ConfigPathEnv + " env var not set")
	}

	if n.Config == nil {
		var err error
		n.Config, err = store.LoadConfig()
		if err != nil {
			return err
		}
	}

	bold := color.New(color.Bold)
	tbl := uitable.New()
	tbl.Separator = "  "
	if f := store.ConfigFile(n.Config); f != "" {
		tbl.AddRow(bold.Sprint("Config file"), f)
	}
	tbl.AddRow(bold.Sprint("Backend"), n.Config.Backend())
	tbl.AddRow(bold.Sprint("Path"), n.Config.BasePath())
	_, _ = fmt.Fprintln(color.Output, tbl)

	if n.Service == nil || n.Service.Persistence == nil {
		return fmt.Errorf("Failed to create persistence object.")
	}

	fmt.Printf("Keys:\n")
	keys := n.Service.Persistence.Keys(ctx)
	for _, k := range keys {
		fmt.Printf("  %s\n", k)
	}
	if len(keys) == 0 {
		fmt.Printf("  %s\n", "no data yet")
	}

	folders, err := n.Service.Folders(ctx)
	if err != nil {
		if app.IsCorrupt(err) {
			_, _ = color.New(color.FgRed).Fprintf(color.Output, "\n%v\nRun `writersblock repair` to move it aside.\n", err)
			return nil
		}
		return err
	}
	fmt.Printf("Folders:\n")
	for _, f := range folders {
		fmt.Printf("  %s (%d)\n", f.Name, len(f.Entries))
	}
	return nil
}
