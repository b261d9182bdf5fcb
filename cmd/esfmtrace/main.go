// Command esfmtrace renders a JSON register-write trace through the
// esfm core into a raw interleaved 16-bit PCM file, for offline
// regression comparison against a reference renderer.
package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/go-faster/jx"

	"esfm"
	"esfm/writebuf"
)

var vars = kong.Vars{
	"trace_help": "JSON trace file: an array of {\"sample\":N,\"addr\":N,\"data\":N} writes.",
	"out_help":   "Output path for raw interleaved stereo PCM16 samples.",
}

type CLI struct {
	Trace   string `arg:"" name:"trace" help:"${trace_help}" type:"existingfile"`
	Out     string `name:"out" help:"${out_help}" default:"out.pcm"`
	Samples int    `name:"samples" help:"Number of stereo samples to render." default:"44100"`
}

func main() {
	var cli CLI
	parser, err := kong.New(&cli,
		kong.Name("esfmtrace"),
		kong.Description("Render an ESFM register-write trace to PCM."),
		kong.UsageOnError(),
		vars)
	checkf(err, "failed to build CLI parser")

	_, err = parser.Parse(os.Args[1:])
	checkf(err, "failed to parse command line")

	writes, err := loadTrace(cli.Trace)
	checkf(err, "failed to load trace %s", cli.Trace)

	out, err := os.Create(cli.Out)
	checkf(err, "failed to create %s", cli.Out)
	defer out.Close()

	checkf(render(writes, cli.Samples, out), "failed to render")
}

func loadTrace(path string) ([]writebuf.Write, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var writes []writebuf.Write
	d := jx.DecodeBytes(buf)
	err = d.Arr(func(d *jx.Decoder) error {
		var w writebuf.Write
		err := d.Obj(func(d *jx.Decoder, key string) error {
			switch key {
			case "sample":
				n, err := d.UInt64()
				w.Sample = n
				return err
			case "addr":
				n, err := d.UInt16()
				w.Addr = n
				return err
			case "data":
				n, err := d.UInt8()
				w.Data = n
				return err
			default:
				return d.Skip()
			}
		})
		if err != nil {
			return err
		}
		writes = append(writes, w)
		return nil
	})
	return writes, err
}

func render(writes []writebuf.Write, numSamples int, out *os.File) error {
	var chip esfm.Chip
	esfm.Init(&chip)

	var queue writebuf.Queue
	for _, w := range writes {
		queue.Push(w.Sample, w.Addr, w.Data)
	}

	pcm := make([]int16, 2*numSamples)
	for i := 0; i < numSamples; i++ {
		queue.Drain(uint64(i), func(addr uint16, data uint8) {
			esfm.WriteReg(&chip, addr, data)
		})
		l, r := esfm.GenerateSample(&chip)
		pcm[2*i] = l
		pcm[2*i+1] = r
	}

	buf := make([]byte, len(pcm)*2)
	for i, s := range pcm {
		buf[2*i] = byte(s)
		buf[2*i+1] = byte(s >> 8)
	}
	_, err := out.Write(buf)
	return err
}

func checkf(err error, format string, args ...any) {
	if err == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "fatal error:\n\t%s: %s\n", fmt.Sprintf(format, args...), err)
	os.Exit(1)
}
