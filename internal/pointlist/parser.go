package pointlist

import (
	"encoding/xml"
	"fmt"
	"os"
	"strconv"
	"strings"

	"spherecoord/internal/mathutil"
)

// xmlPointList matches the points.xml schema.
type xmlPointList struct {
	Sets []xmlSet `xml:"Set"`
}

type xmlSet struct {
	Index  string     `xml:"Index,attr"`
	Name   string     `xml:"Name,attr"`
	RotX   string     `xml:"RotX,attr"`
	RotY   string     `xml:"RotY,attr"`
	RotZ   string     `xml:"RotZ,attr"`
	Points []xmlPoint `xml:"Point"`
}

type xmlPoint struct {
	X string `xml:"X,attr"`
	Y string `xml:"Y,attr"`
	Z string `xml:"Z,attr"`
}

// Parse reads a point list XML file and returns its sets in file order.
// Sets with a malformed Index, or an Index already taken by an earlier set, are skipped.
func Parse(xmlPath string) ([]PointSet, error) {
	raw, err := os.ReadFile(xmlPath)
	if err != nil {
		return nil, fmt.Errorf("pointlist: read %s: %w", xmlPath, err)
	}

	var list xmlPointList
	if err := xml.Unmarshal(raw, &list); err != nil {
		return nil, fmt.Errorf("pointlist: parse %s: %w", xmlPath, err)
	}

	var sets []PointSet
	seen := make(map[int]bool)
	for _, sec := range list.Sets {
		idx, err := strconv.Atoi(strings.TrimSpace(sec.Index))
		if err != nil || seen[idx] {
			continue
		}
		seen[idx] = true
		set := PointSet{
			Index: idx,
			Name:  sec.Name,
			RotX:  optFloat(sec.RotX),
			RotY:  optFloat(sec.RotY),
			RotZ:  optFloat(sec.RotZ),
		}
		for _, p := range sec.Points {
			v, ok := parsePoint(p)
			if !ok {
				continue
			}
			set.Points = append(set.Points, v)
		}
		sets = append(sets, set)
	}

	return sets, nil
}

func parsePoint(p xmlPoint) (mathutil.Vec3, bool) {
	var v mathutil.Vec3
	for i, s := range [3]string{p.X, p.Y, p.Z} {
		f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return mathutil.Vec3{}, false
		}
		v[i] = f
	}
	return v, true
}

// optFloat treats a missing or malformed attribute as 0.
func optFloat(s string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return f
}
