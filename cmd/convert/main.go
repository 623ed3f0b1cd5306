package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"spherecoord/internal/logging"
	"spherecoord/internal/mathutil"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run converts one triple. Exit codes: 0 ok, 2 usage error.
func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	fs.SetOutput(stderr)
	to := fs.String("to", "spherical", "Target system: spherical (from x y z) or cartesian (from r theta phi)")
	deg := fs.Bool("deg", false, "Angles in degrees instead of radians")
	prec := fs.Int("prec", 11, "Digits after the decimal point")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: convert [-to spherical|cartesian] [-deg] [-prec n] [--] a b c")
		fmt.Fprintln(stderr, "Put -- before the triple when its first value is negative.")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return 2
	}
	log := logging.New("info", "console", stderr)

	if fs.NArg() != 3 {
		fs.Usage()
		return 2
	}
	var in [3]float64
	for i := range in {
		f, err := strconv.ParseFloat(fs.Arg(i), 64)
		if err != nil {
			log.Error().Str("arg", fs.Arg(i)).Msg("not a number")
			return 2
		}
		in[i] = f
	}

	var out [3]float64
	switch *to {
	case "spherical":
		s := mathutil.CartesianToSpherical(mathutil.Vec3(in))
		if *deg {
			s = s.Degrees()
		}
		out = [3]float64{s.R, s.Theta, s.Phi}
	case "cartesian":
		r, theta, phi := in[0], in[1], in[2]
		if *deg {
			theta, phi = mathutil.Deg2Rad(theta), mathutil.Deg2Rad(phi)
		}
		out = mathutil.SphericalToCartesian(mathutil.Spherical{R: r, Theta: theta, Phi: phi})
	default:
		log.Error().Str("to", *to).Msg("unknown target system")
		return 2
	}

	fmt.Fprintf(stdout, "%.*f %.*f %.*f\n", *prec, out[0], *prec, out[1], *prec, out[2])
	return 0
}
