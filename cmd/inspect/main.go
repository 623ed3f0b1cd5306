package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"spherecoord/internal/mathutil"
	"spherecoord/internal/pointlist"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run prints every point of a point list with its spherical form and
// the round-trip error of converting it back.
func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("inspect", flag.ContinueOnError)
	fs.SetOutput(stderr)
	deg := fs.Bool("deg", false, "Print angles in degrees")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(stderr, "Usage: inspect [-deg] points.xml")
		return 2
	}

	sets, err := pointlist.Parse(fs.Arg(0))
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	fmt.Fprintf(stdout, "Sets: %d\n", len(sets))
	for _, s := range sets {
		fmt.Fprintf(stdout, "  Set[%d] %q: points=%d rot=(%.1f, %.1f, %.1f)\n", s.Index, s.Name, len(s.Points), s.RotX, s.RotY, s.RotZ)
		framed := s.Frame()
		for i, sph := range s.Spherical() {
			back := mathutil.SphericalToCartesian(sph)
			shown := sph
			if *deg {
				shown = sph.Degrees()
			}
			fmt.Fprintf(stdout, "    (%10.4f, %10.4f, %10.4f) -> r=%.6f theta=%.6f phi=%.6f  roundtrip=%.2g\n",
				framed[i].X(), framed[i].Y(), framed[i].Z(),
				shown.R, shown.Theta, shown.Phi,
				back.Sub(framed[i]).MaxAbs())
		}
	}
	return 0
}
