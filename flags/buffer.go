package flags

import (
	"gopkg.in/urfave/cli.v1"
)

// BufferFlags configure the bit buffer a command operates on.
func BufferFlags() []cli.Flag {
	return []cli.Flag{
		cli.IntFlag{
			Name:  "capacity",
			Usage: "Buffer capacity in bits",
			Value: 64,
		},
		cli.BoolFlag{
			Name:  "masked",
			Usage: "Also print the written and unused bit masks",
		},
		cli.StringFlag{
			Name:  "order",
			Usage: "Byte order of 0x-prefixed field values (big|little)",
			Value: "big",
		},
	}
}
