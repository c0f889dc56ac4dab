package launcher

import (
	"gopkg.in/urfave/cli.v1"

	"github.com/rony4d/go-duobit/flags"
)

func newApp() *cli.App {
	app := flags.NewApp("pack and unpack bit fields from both ends of a fixed size buffer")
	app.Commands = []cli.Command{
		packCommand,
		unpackCommand,
		maskCommand,
		dumpConfigCommand,
	}
	return app
}

// Launch parses args and runs the selected command.
func Launch(args []string) error {
	return newApp().Run(args)
}

func commandFlags(groups ...[]cli.Flag) []cli.Flag {
	all := flags.CommonFlags()
	for _, g := range groups {
		all = append(all, g...)
	}
	return all
}
