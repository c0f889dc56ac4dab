package flags

import (
	"gopkg.in/urfave/cli.v1"
)

// FieldFlags describe the values packed into, or read from, either side of a buffer.
func FieldFlags() []cli.Flag {
	return []cli.Flag{
		cli.StringFlag{
			Name:  "left",
			Usage: "Comma-separated left side fields, as width:value when packing or width when unpacking",
		},
		cli.StringFlag{
			Name:  "right",
			Usage: "Comma-separated right side fields, as width:value when packing or width when unpacking",
		},
		cli.StringFlag{
			Name:  "data",
			Usage: "0x-prefixed packed buffer to unpack",
		},
	}
}
