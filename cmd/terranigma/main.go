package main

import (
	"archive/zip"
	"errors"
	"fmt"
	"io/ioutil"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/bodgit/terranigma/srm"
	"github.com/gabriel-vasile/mimetype"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli/v2"
)

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

var errNoImage = errors.New("no SRAM image found in archive")

// readImage reads a raw SRAM image, either directly or from the first
// suitably sized entry of a zip archive
func readImage(path string) ([]byte, error) {
	mime, err := mimetype.DetectFile(path)
	if err != nil {
		return nil, err
	}

	if !mime.Is("application/zip") {
		return ioutil.ReadFile(path)
	}

	r, err := zip.OpenReader(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	for _, file := range r.File {
		if file.UncompressedSize64 != srm.Size {
			continue
		}
		rc, err := file.Open()
		if err != nil {
			return nil, err
		}
		defer rc.Close()

		return ioutil.ReadAll(rc)
	}

	return nil, errNoImage
}

func loadFile(path string) (*srm.File, error) {
	b, err := readImage(path)
	if err != nil {
		return nil, err
	}

	f := new(srm.File)
	if err := f.UnmarshalBinary(b); err != nil {
		return nil, err
	}

	return f, nil
}

func statusToString(s srm.SlotStatus) string {
	switch s.Status {
	case srm.Uninitialized:
		return "(uninitialized)"
	case srm.Damaged:
		return "(damaged)"
	default:
		return fmt.Sprintf("'%s' (ok)", s.Name)
	}
}

func info(c *cli.Context) error {
	if c.NArg() < 1 {
		cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
	}

	f, err := loadFile(c.Args().First())
	if err != nil {
		return cli.NewExitError(err, 1)
	}

	statuses := f.ClassifyAll()

	table := tablewriter.NewWriter(os.Stdout)
	table.SetBorder(false)
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetTablePadding(" ")
	table.SetNoWhiteSpace(true)

	table.SetHeader([]string{"", "Slot 1", "Slot 2", "Slot 3"})

	for mirror := 0; mirror < srm.Mirrors; mirror++ {
		label := "active"
		if mirror > 0 {
			label = "mirror"
		}

		row := []string{label}
		for slot := 0; slot < srm.Slots; slot++ {
			row = append(row, statusToString(statuses[mirror][slot]))
		}
		table.Append(row)
	}

	table.Render()

	return nil
}

func edit(c *cli.Context) error {
	if c.NArg() < 1 {
		cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
	}

	path := c.Args().First()

	f, err := loadFile(path)
	if err != nil {
		return cli.NewExitError(err, 1)
	}

	slot := c.Int("slot") - 1

	mirror, err := f.EditableCopy(slot)
	if err != nil {
		return cli.NewExitError(err, 1)
	}

	updates := make(map[string]string)
	if c.IsSet("name") {
		updates[srm.PlayerName] = c.String("name")
	}
	if c.IsSet("alt-name") {
		updates[srm.PlayerNameAlt] = c.String("alt-name")
	}

	if len(updates) == 0 {
		return cli.NewExitError("nothing to change", 1)
	}

	if err := f.ApplyEdit(mirror, slot, updates); err != nil {
		return cli.NewExitError(err, 1)
	}

	out := c.String("output")
	if out == "" {
		base := strings.TrimSuffix(filepath.Base(path), srm.Extension)
		out = filepath.Join(filepath.Dir(path), base+".changed"+srm.Extension)
	}

	b, err := f.MarshalBinary()
	if err != nil {
		return cli.NewExitError(err, 1)
	}

	if err := ioutil.WriteFile(out, b, 0644); err != nil {
		return cli.NewExitError(err, 1)
	}

	return nil
}

func main() {
	app := cli.NewApp()

	app.Name = "terranigma"
	app.Usage = "Terranigma SRAM savegame utility"
	app.Version = "1.0.0"

	app.Commands = []*cli.Command{
		{
			Name:        "info",
			Usage:       "Show the slot status of a " + srm.Extension + " file",
			Description: "",
			Action:      info,
		},
		{
			Name:        "edit",
			Usage:       "Edit a savegame slot in a " + srm.Extension + " file",
			Description: "",
			Action:      edit,
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:     "slot",
					Aliases:  []string{"s"},
					Usage:    "savegame slot `NUMBER` (1-3)",
					Required: true,
				},
				&cli.StringFlag{
					Name:  "name",
					Usage: "set the player name to `NAME`",
				},
				&cli.StringFlag{
					Name:  "alt-name",
					Usage: "set the alternate player name to `NAME`",
				},
				&cli.StringFlag{
					Name:    "output",
					Aliases: []string{"o"},
					Usage:   "write the result to `FILE`",
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
