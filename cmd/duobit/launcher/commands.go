package launcher

import (
	"fmt"
	"io"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/sirupsen/logrus"
	"gopkg.in/urfave/cli.v1"

	"github.com/rony4d/go-duobit/duobit"
	"github.com/rony4d/go-duobit/flags"
)

var (
	packCommand = cli.Command{
		Action:    packAction,
		Name:      "pack",
		Usage:     "Pack fields into both ends of a buffer",
		ArgsUsage: "--left w:v[,w:v...] --right w:v[,w:v...]",
		Flags:     commandFlags(flags.BufferFlags(), flags.FieldFlags()),
		Description: `
Packs the left fields from the start of the buffer forward and the right fields
from the end of the buffer backward, then prints the buffer as hex.`,
	}
	unpackCommand = cli.Command{
		Action:    unpackAction,
		Name:      "unpack",
		Usage:     "Read fields back from both ends of a packed buffer",
		ArgsUsage: "--data 0x.. --left w[,w...] --right w[,w...]",
		Flags:     commandFlags(flags.BufferFlags(), flags.FieldFlags()),
	}
	maskCommand = cli.Command{
		Action:    maskAction,
		Name:      "mask",
		Usage:     "Print the written and unused bit masks of packed fields",
		ArgsUsage: "--left w:v[,w:v...] --right w:v[,w:v...]",
		Flags:     commandFlags(flags.BufferFlags(), flags.FieldFlags()),
	}
	dumpConfigCommand = cli.Command{
		Action:      dumpConfig,
		Name:        "dumpconfig",
		Usage:       "Show configuration values",
		ArgsUsage:   "",
		Flags:       commandFlags(flags.BufferFlags()),
		Description: `The dumpconfig command shows configuration values.`,
	}
)

// prepare builds the config and the logger of a command.
func prepare(ctx *cli.Context) (Config, *logrus.Logger, error) {
	cfg, err := MakeAllConfigs(ctx)
	if err != nil {
		return cfg, nil, err
	}
	logger, err := setupLogging(cfg, ctx.App.ErrWriter)
	if err != nil {
		return cfg, nil, err
	}
	return cfg, logger, nil
}

// packFields enqueues the --left and --right fields into a new queue.
func packFields(ctx *cli.Context, cfg Config, logger *logrus.Logger) (*duobit.Queue, error) {
	left, err := parseFields(ctx.String("left"))
	if err != nil {
		return nil, err
	}
	right, err := parseFields(ctx.String("right"))
	if err != nil {
		return nil, err
	}

	q, err := duobit.NewQueue(cfg.Buffer.Capacity, duobit.DefaultUtilities(), cfg.ByteOrder())
	if err != nil {
		return nil, err
	}
	for i, f := range left {
		if f.Raw != nil {
			err = q.EnqueueLeft(f.Raw, f.Width)
		} else {
			err = q.EnqueueLeftUint64(f.Value, f.Width)
		}
		if err != nil {
			return nil, fmt.Errorf("left field %d: %w", i, err)
		}
	}
	for i, f := range right {
		if f.Raw != nil {
			err = q.EnqueueRight(f.Raw, f.Width)
		} else {
			err = q.EnqueueRightUint64(f.Value, f.Width)
		}
		if err != nil {
			return nil, fmt.Errorf("right field %d: %w", i, err)
		}
	}

	logger.WithFields(logrus.Fields{
		"capacity":  cfg.Buffer.Capacity,
		"left":      len(left),
		"right":     len(right),
		"remaining": q.RemainingCapacity(),
	}).Debug("Packed fields")
	return q, nil
}

func printMasks(w io.Writer, q *duobit.Queue) error {
	unused, err := q.MaskOfUnusedBits()
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "written: %s\n", hexutil.Encode(q.Mask().ToByteArray()))
	fmt.Fprintf(w, "unused: %s\n", hexutil.Encode(unused.ToByteArray()))
	return nil
}

func packAction(ctx *cli.Context) error {
	cfg, logger, err := prepare(ctx)
	if err != nil {
		return err
	}
	q, err := packFields(ctx, cfg, logger)
	if err != nil {
		logger.WithError(err).Error("Failed to pack fields")
		return err
	}

	w := ctx.App.Writer
	fmt.Fprintf(w, "data: %s\n", hexutil.Encode(q.Bytes()))
	fmt.Fprintf(w, "remaining: %d\n", q.RemainingCapacity())
	if cfg.Buffer.Masked {
		return printMasks(w, q)
	}
	return nil
}

func maskAction(ctx *cli.Context) error {
	cfg, logger, err := prepare(ctx)
	if err != nil {
		return err
	}
	q, err := packFields(ctx, cfg, logger)
	if err != nil {
		logger.WithError(err).Error("Failed to pack fields")
		return err
	}
	return printMasks(ctx.App.Writer, q)
}

func unpackAction(ctx *cli.Context) error {
	cfg, logger, err := prepare(ctx)
	if err != nil {
		return err
	}

	data, err := hexutil.Decode(ctx.String("data"))
	if err != nil {
		return fmt.Errorf("invalid --data: %w", err)
	}
	left, err := parseWidths(ctx.String("left"))
	if err != nil {
		return err
	}
	right, err := parseWidths(ctx.String("right"))
	if err != nil {
		return err
	}

	arr, err := duobit.New(cfg.Buffer.Capacity, duobit.DefaultUtilities())
	if err != nil {
		return err
	}
	if err := arr.SetLeftBits(data, 0, 0, cfg.Buffer.Capacity); err != nil {
		return fmt.Errorf("%d byte buffer can not hold %d bits: %w", len(data), cfg.Buffer.Capacity, err)
	}

	w := ctx.App.Writer
	if err := unpackSide(w, arr, duobit.Left, left); err != nil {
		logger.WithError(err).Error("Failed to unpack left fields")
		return err
	}
	if err := unpackSide(w, arr, duobit.Right, right); err != nil {
		logger.WithError(err).Error("Failed to unpack right fields")
		return err
	}
	return nil
}

func unpackSide(w io.Writer, arr duobit.ReadOnly, side duobit.Side, widths []int) error {
	offset := 0
	for _, width := range widths {
		v, err := duobit.ToUint64(arr, side, offset, width)
		if err != nil {
			return fmt.Errorf("%s field at bit %d: %w", side, offset, err)
		}
		fmt.Fprintf(w, "%s %d: %d\n", side, width, v)
		offset += width
	}
	return nil
}

func dumpConfig(ctx *cli.Context) error {
	cfg, err := MakeAllConfigs(ctx)
	if err != nil {
		return err
	}
	out, err := tomlSettings.Marshal(&cfg)
	if err != nil {
		return err
	}
	_, err = ctx.App.Writer.Write(out)
	return err
}
