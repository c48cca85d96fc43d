package cmd

import (
	"bytes"
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"

	"github.com/df07/go-pathtracer/pkg/scene"
)

// ListScenes prints the built-in scenes.
func ListScenes(ctx *cli.Context) error {
	setupLogging(ctx)

	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Scene", "Objects", "Lamps", "Description"})
	for _, info := range scene.ListBuiltins() {
		sc, err := scene.Builtin(info.Name)
		if err != nil {
			return err
		}
		table.Append([]string{
			info.Name,
			fmt.Sprintf("%d", len(sc.Objects())),
			fmt.Sprintf("%d", len(sc.Lamps())),
			info.Description,
		})
	}
	table.Render()

	_, err := fmt.Fprint(ctx.App.Writer, buf.String())
	return err
}
